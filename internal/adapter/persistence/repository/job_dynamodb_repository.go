package repository

import (
	"context"
	"fmt"

	"painting_crm/internal/domain/entities"
	"painting_crm/internal/usecase/interfaces"
)

const defaultJobsTableName = "jobs"

type payoutItem struct {
	ID              string   `dynamodbav:"id"`
	SubcontractorID string   `dynamodbav:"subcontractor_id,omitempty"`
	FinalPayout     *float64 `dynamodbav:"final_payout,omitempty"`
	PaidAt          string   `dynamodbav:"paid_at,omitempty"`
}

type jobItem struct {
	ID              string      `dynamodbav:"id"`
	OrganizationID  string      `dynamodbav:"organization_id"`
	LeadID          string      `dynamodbav:"lead_id,omitempty"`
	SubcontractorID string      `dynamodbav:"subcontractor_id,omitempty"`
	CustomerName    string      `dynamodbav:"customer_name"`
	Status          string      `dynamodbav:"status"`
	JobValue        float64     `dynamodbav:"job_value"`
	GrossProfit     *float64    `dynamodbav:"gross_profit,omitempty"`
	Commission      float64     `dynamodbav:"commission"`
	Payout          *payoutItem `dynamodbav:"payout,omitempty"`
	CompletedAt     string      `dynamodbav:"completed_at,omitempty"`
	CreatedAt       string      `dynamodbav:"created_at"`
	UpdatedAt       string      `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: organization_id-index (PK: organization_id)
//
// The settled payout is stored inline on the job item, so reads always
// return it with its job.
type JobDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb DynamoAPI) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toJobItem(j)); err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) ListCompletedBetween(ctx context.Context, orgID string, dr entities.DateRange) ([]entities.Job, error) {
	filter, names, values := rangeFilter("completed_at", dr.Start, dr.End)
	filter += " AND #status IN (:completed, :paid)"
	names["#status"] = "status"
	values[":completed"] = stringValue(string(entities.JobStatusCompleted))
	values[":paid"] = stringValue(string(entities.JobStatusPaid))

	raw, err := listOrgItems(ctx, r.ddb, r.tableName, orgID, filter, names, values)
	if err != nil {
		return nil, err
	}
	return unmarshalItems[jobItem](raw, fromJobItem)
}

func toJobItem(j entities.Job) jobItem {
	it := jobItem{
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
	if j.Payout != nil {
		it.Payout = &payoutItem{
			ID:              j.Payout.ID,
			SubcontractorID: j.Payout.SubcontractorID,
			FinalPayout:     j.Payout.FinalPayout,
			PaidAt:          formatTimePtr(j.Payout.PaidAt),
		}
	}
	return it
}

func fromJobItem(it jobItem) (entities.Job, error) {
	var d timeDecoder
	j := entities.Job{
		ID:              it.ID,
		OrganizationID:  it.OrganizationID,
		LeadID:          it.LeadID,
		SubcontractorID: it.SubcontractorID,
		CustomerName:    it.CustomerName,
		Status:          entities.JobStatus(it.Status),
		JobValue:        it.JobValue,
		GrossProfit:     it.GrossProfit,
		Commission:      it.Commission,
		CompletedAt:     d.ptr(it.CompletedAt),
		CreatedAt:       d.at(it.CreatedAt),
		UpdatedAt:       d.at(it.UpdatedAt),
	}
	if it.Payout != nil {
		j.Payout = &entities.SubcontractorPayout{
			ID:              it.Payout.ID,
			JobID:           it.ID,
			SubcontractorID: it.Payout.SubcontractorID,
			FinalPayout:     it.Payout.FinalPayout,
			PaidAt:          d.ptr(it.Payout.PaidAt),
		}
	}
	if d.err != nil {
		return entities.Job{}, fmt.Errorf("job %s: %w", it.ID, d.err)
	}
	return j, nil
}

