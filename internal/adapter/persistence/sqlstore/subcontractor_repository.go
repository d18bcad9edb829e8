package sqlstore

import (
	"context"
	"fmt"

	"painting_crm/internal/adapter/persistence/sqlstore/model"
	"painting_crm/internal/domain/entities"
	"painting_crm/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type SubcontractorRepository struct {
	db *gorm.DB
}

var _ interfaces.ISubcontractorRepository = (*SubcontractorRepository)(nil)

func NewSubcontractorRepository(db *gorm.DB) *SubcontractorRepository {
	return &SubcontractorRepository{db: db}
}

func (r *SubcontractorRepository) Create(ctx context.Context, s entities.Subcontractor) (entities.Subcontractor, error) {
	db, err := withContext(ctx, r.db)
	if err != nil {
		return entities.Subcontractor{}, err
	}
	row := model.Subcontractor{
		ID:             s.ID,
		OrganizationID: s.OrganizationID,
		Name:           s.Name,
		Email:          s.Email,
		Phone:          s.Phone,
		IsActive:       s.IsActive,
		CreatedAt:      formatTime(s.CreatedAt),
	}
	if err := db.Create(&row).Error; err != nil {
		return entities.Subcontractor{}, fmt.Errorf("insert subcontractor: %w", err)
	}
	return s, nil
}

func (r *SubcontractorRepository) ListActive(ctx context.Context, orgID string) ([]entities.Subcontractor, error) {
	db, err := withContext(ctx, r.db)
	if err != nil {
		return nil, err
	}

	var rows []model.Subcontractor
	err = scoped(db.Model(&model.Subcontractor{}), orgID).
		Where("is_active = ?", true).
		Order("name asc").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query subcontractors: %w", err)
	}

	subs := make([]entities.Subcontractor, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, entities.Subcontractor{
			ID:             row.ID,
			OrganizationID: row.OrganizationID,
			Name:           row.Name,
			Email:          row.Email,
			Phone:          row.Phone,
			IsActive:       row.IsActive,
			CreatedAt:      parseTime(row.CreatedAt),
		})
	}
	return subs, nil
}

type ReviewRepository struct {
	db *gorm.DB
}

var _ interfaces.IReviewRepository = (*ReviewRepository)(nil)

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv entities.Review) (entities.Review, error) {
	db, err := withContext(ctx, r.db)
	if err != nil {
		return entities.Review{}, err
	}
	row := model.Review{
		ID:              rv.ID,
		OrganizationID:  rv.OrganizationID,
		JobID:           rv.JobID,
		SubcontractorID: rv.SubcontractorID,
		Rating:          rv.Rating,
		CreatedAt:       formatTime(rv.CreatedAt),
	}
	if err := db.Create(&row).Error; err != nil {
		return entities.Review{}, fmt.Errorf("insert review: %w", err)
	}
	return rv, nil
}

func (r *ReviewRepository) ListAttributed(ctx context.Context, orgID string) ([]entities.Review, error) {
	db, err := withContext(ctx, r.db)
	if err != nil {
		return nil, err
	}

	var rows []model.Review
	err = scoped(db.Model(&model.Review{}), orgID).
		Where("subcontractor_id IS NOT NULL AND subcontractor_id <> ''").
		Order("created_at asc").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}

	reviews := make([]entities.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, entities.Review{
			ID:              row.ID,
			OrganizationID:  row.OrganizationID,
			JobID:           row.JobID,
			SubcontractorID: row.SubcontractorID,
			Rating:          row.Rating,
			CreatedAt:       parseTime(row.CreatedAt),
		})
	}
	return reviews, nil
}
