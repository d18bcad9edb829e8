package sqlstore

import (
	"context"
	"fmt"

	"painting_crm/internal/adapter/persistence/sqlstore/model"
	"painting_crm/internal/domain/entities"
	"painting_crm/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type LeadRepository struct {
	db *gorm.DB
}

var _ interfaces.ILeadRepository = (*LeadRepository)(nil)

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	db, err := withContext(ctx, r.db)
	if err != nil {
		return entities.Lead{}, err
	}
	row := model.Lead{
		ID:             l.ID,
		OrganizationID: l.OrganizationID,
		Name:           l.Name,
		Email:          l.Email,
		Phone:          l.Phone,
		Address:        l.Address,
		Source:         l.Source,
		Status:         string(l.Status),
		EstimatedValue: l.EstimatedValue,
		CreatedAt:      formatTime(l.CreatedAt),
		UpdatedAt:      formatTime(l.UpdatedAt),
	}
	if err := db.Create(&row).Error; err != nil {
		return entities.Lead{}, fmt.Errorf("insert lead: %w", err)
	}
	return l, nil
}

func (r *LeadRepository) ListCreatedBetween(ctx context.Context, orgID string, dr entities.DateRange) ([]entities.Lead, error) {
	db, err := withContext(ctx, r.db)
	if err != nil {
		return nil, err
	}
	q := scoped(db.Model(&model.Lead{}), orgID).
		Where("created_at >= ? AND created_at < ?", formatTime(dr.Start), formatTime(dr.End))
	return r.find(q)
}

func (r *LeadRepository) ListAll(ctx context.Context, orgID string) ([]entities.Lead, error) {
	db, err := withContext(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return r.find(scoped(db.Model(&model.Lead{}), orgID))
}

func (r *LeadRepository) find(q *gorm.DB) ([]entities.Lead, error) {
	var rows []model.Lead
	if err := q.Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query leads: %w", err)
	}
	leads := make([]entities.Lead, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, entities.Lead{
			ID:             row.ID,
			OrganizationID: row.OrganizationID,
			Name:           row.Name,
			Email:          row.Email,
			Phone:          row.Phone,
			Address:        row.Address,
			Source:         row.Source,
			Status:         entities.LeadStatus(row.Status),
			EstimatedValue: row.EstimatedValue,
			CreatedAt:      parseTime(row.CreatedAt),
			UpdatedAt:      parseTime(row.UpdatedAt),
		})
	}
	return leads, nil
}

type LeadEventRepository struct {
	db *gorm.DB
}

var _ interfaces.ILeadEventRepository = (*LeadEventRepository)(nil)

func NewLeadEventRepository(db *gorm.DB) *LeadEventRepository {
	return &LeadEventRepository{db: db}
}

func (r *LeadEventRepository) Create(ctx context.Context, e entities.LeadEvent) (entities.LeadEvent, error) {
	db, err := withContext(ctx, r.db)
	if err != nil {
		return entities.LeadEvent{}, err
	}
	row := model.LeadEvent{
		ID:             e.ID,
		OrganizationID: e.OrganizationID,
		LeadID:         e.LeadID,
		EventType:      string(e.EventType),
		Channel:        e.Channel,
		OccurredAt:     formatTime(e.OccurredAt),
	}
	if err := db.Create(&row).Error; err != nil {
		return entities.LeadEvent{}, fmt.Errorf("insert lead event: %w", err)
	}
	return e, nil
}

func (r *LeadEventRepository) ListByTypeBetween(ctx context.Context, orgID string, eventType entities.LeadEventType, dr entities.DateRange) ([]entities.LeadEvent, error) {
	db, err := withContext(ctx, r.db)
	if err != nil {
		return nil, err
	}

	var rows []model.LeadEvent
	err = scoped(db.Model(&model.LeadEvent{}), orgID).
		Where("event_type = ?", string(eventType)).
		Where("occurred_at >= ? AND occurred_at < ?", formatTime(dr.Start), formatTime(dr.End)).
		Order("occurred_at asc").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query lead events: %w", err)
	}

	events := make([]entities.LeadEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, entities.LeadEvent{
			ID:             row.ID,
			OrganizationID: row.OrganizationID,
			LeadID:         row.LeadID,
			EventType:      entities.LeadEventType(row.EventType),
			Channel:        row.Channel,
			OccurredAt:     parseTime(row.OccurredAt),
		})
	}
	return events, nil
}
