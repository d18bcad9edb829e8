package entities

import "time"

// JobStatus represents the lifecycle of a painting job.
//
// Jobs are created from won leads and move forward as crews finish the work.
// Only completed and paid jobs count toward revenue.
type JobStatus string

const (
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusPaid       JobStatus = "paid"
	JobStatusCancelled  JobStatus = "cancelled"
)

// CompletedJobStatuses lists the statuses whose jobs have finished work.
var CompletedJobStatuses = []JobStatus{JobStatusCompleted, JobStatusPaid}

// Job is a painting job owned by an organization.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (organization_id-index): organization_id
//
// Monetary representation:
//   - JobValue is the contracted price charged to the customer.
//   - GrossProfit is the estimated profit captured when the estimate was accepted.
//   - Payout, when present, is the settled subcontractor payout for this job.
type Job struct {
	ID              string
	OrganizationID  string
	LeadID          string
	SubcontractorID string
	CustomerName    string
	Status          JobStatus
	JobValue        float64
	GrossProfit     *float64
	Commission      float64
	Payout          *SubcontractorPayout
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SubcontractorPayout is the settlement row attached to a job.
type SubcontractorPayout struct {
	ID              string
	JobID           string
	SubcontractorID string
	FinalPayout     *float64
	PaidAt          *time.Time
}

func (j Job) IsCompleted() bool {
	for _, s := range CompletedJobStatuses {
		if j.Status == s {
			return true
		}
	}
	return false
}

// ActualProfit resolves the profit reported for a job: the settled payout's
// final amount when there is one, otherwise the estimated gross profit,
// otherwise zero. Dashboards depend on this precedence.
func (j Job) ActualProfit() float64 {
	if j.Payout != nil && j.Payout.FinalPayout != nil {
		return *j.Payout.FinalPayout
	}
	if j.GrossProfit != nil {
		return *j.GrossProfit
	}
	return 0
}
