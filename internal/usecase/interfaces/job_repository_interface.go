package interfaces

import (
	"context"
	"painting_crm/internal/domain/entities"
)

// IJobRepository abstracts persistence for Job.
//
// Every read takes the organization explicitly; an empty orgID reads across
// all organizations.
//
//go:generate mockgen -source=job_repository_interface.go -destination=mocks/job_repository_interface_mock.go -package=mock_interfaces

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	ListCompletedBetween(ctx context.Context, orgID string, r entities.DateRange) ([]entities.Job, error)
}
