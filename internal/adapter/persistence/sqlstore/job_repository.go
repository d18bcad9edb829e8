package sqlstore

import (
	"context"
	"fmt"

	"painting_crm/internal/adapter/persistence/sqlstore/model"
	"painting_crm/internal/domain/entities"
	"painting_crm/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

var _ interfaces.IJobRepository = (*JobRepository)(nil)

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts the job and, when present, its payout in one transaction.
func (r *JobRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	db, err := withContext(ctx, r.db)
	if err != nil {
		return entities.Job{}, err
	}
	row := toJobRow(j)
	if err := db.Create(&row).Error; err != nil {
		return entities.Job{}, fmt.Errorf("insert job: %w", err)
	}
	return j, nil
}

func (r *JobRepository) ListCompletedBetween(ctx context.Context, orgID string, dr entities.DateRange) ([]entities.Job, error) {
	db, err := withContext(ctx, r.db)
	if err != nil {
		return nil, err
	}

	var rows []model.Job
	err = scoped(db.Model(&model.Job{}), orgID).
		Preload("Payout").
		Where("status IN ?", []string{string(entities.JobStatusCompleted), string(entities.JobStatusPaid)}).
		Where("completed_at >= ? AND completed_at < ?", formatTime(dr.Start), formatTime(dr.End)).
		Order("completed_at asc").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}

	jobs := make([]entities.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, mapJob(row))
	}
	return jobs, nil
}

func toJobRow(j entities.Job) model.Job {
	row := model.Job{
		ID:              j.ID,
		OrganizationID:  j.OrganizationID,
		LeadID:          j.LeadID,
		SubcontractorID: j.SubcontractorID,
		CustomerName:    j.CustomerName,
		Status:          string(j.Status),
		JobValue:        j.JobValue,
		GrossProfit:     j.GrossProfit,
		Commission:      j.Commission,
		CompletedAt:     formatTimePtr(j.CompletedAt),
		CreatedAt:       formatTime(j.CreatedAt),
		UpdatedAt:       formatTime(j.UpdatedAt),
	}
	if p := j.Payout; p != nil {
		row.Payout = &model.SubcontractorPayout{
			ID:              p.ID,
			JobID:           j.ID,
			SubcontractorID: p.SubcontractorID,
			FinalPayout:     p.FinalPayout,
			PaidAt:          formatTimePtr(p.PaidAt),
		}
	}
	return row
}

func mapJob(row model.Job) entities.Job {
	j := entities.Job{
		ID:              row.ID,
		OrganizationID:  row.OrganizationID,
		LeadID:          row.LeadID,
		SubcontractorID: row.SubcontractorID,
		CustomerName:    row.CustomerName,
		Status:          entities.JobStatus(row.Status),
		JobValue:        row.JobValue,
		GrossProfit:     row.GrossProfit,
		Commission:      row.Commission,
		CompletedAt:     parseTimePtr(row.CompletedAt),
		CreatedAt:       parseTime(row.CreatedAt),
		UpdatedAt:       parseTime(row.UpdatedAt),
	}
	if p := row.Payout; p != nil {
		j.Payout = &entities.SubcontractorPayout{
			ID:              p.ID,
			JobID:           p.JobID,
			SubcontractorID: p.SubcontractorID,
			FinalPayout:     p.FinalPayout,
			PaidAt:          parseTimePtr(p.PaidAt),
		}
	}
	return j
}
