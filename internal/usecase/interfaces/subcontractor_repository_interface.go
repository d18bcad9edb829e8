package interfaces

import (
	"context"
	"painting_crm/internal/domain/entities"
)

//go:generate mockgen -source=subcontractor_repository_interface.go -destination=mocks/subcontractor_repository_interface_mock.go -package=mock_interfaces

type ISubcontractorRepository interface {
	Create(ctx context.Context, s entities.Subcontractor) (entities.Subcontractor, error)
	ListActive(ctx context.Context, orgID string) ([]entities.Subcontractor, error)
}

// IReviewRepository reads customer reviews. ListAttributed returns only
// reviews linked to a subcontractor, across all time.
type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	ListAttributed(ctx context.Context, orgID string) ([]entities.Review, error)
}
