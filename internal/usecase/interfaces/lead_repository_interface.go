package interfaces

import (
	"context"
	"painting_crm/internal/domain/entities"
)

// ILeadRepository abstracts persistence for Lead.
//
//go:generate mockgen -source=lead_repository_interface.go -destination=mocks/lead_repository_interface_mock.go -package=mock_interfaces

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	ListCreatedBetween(ctx context.Context, orgID string, r entities.DateRange) ([]entities.Lead, error)
	ListAll(ctx context.Context, orgID string) ([]entities.Lead, error)
}

// ILeadEventRepository abstracts the append-only lead attribution log.
type ILeadEventRepository interface {
	Create(ctx context.Context, e entities.LeadEvent) (entities.LeadEvent, error)
	ListByTypeBetween(ctx context.Context, orgID string, eventType entities.LeadEventType, r entities.DateRange) ([]entities.LeadEvent, error)
}
