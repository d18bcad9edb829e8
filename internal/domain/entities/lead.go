package entities

import "time"

// LeadStatus is the funnel stage a lead currently sits in.
type LeadStatus string

const (
	LeadStatusNew               LeadStatus = "new"
	LeadStatusContacted         LeadStatus = "contacted"
	LeadStatusEstimateScheduled LeadStatus = "estimate_scheduled"
	LeadStatusEstimateSent      LeadStatus = "estimate_sent"
	LeadStatusWon               LeadStatus = "won"
	LeadStatusLost              LeadStatus = "lost"
)

// Lead is a prospective customer captured by the intake forms or imported
// from a referral channel.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (organization_id-index): organization_id
type Lead struct {
	ID             string
	OrganizationID string
	Name           string
	Email          string
	Phone          string
	Address        string
	Source         string
	Status         LeadStatus
	EstimatedValue float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LeadEventType names an entry in the lead attribution log.
type LeadEventType string

const (
	LeadEventCreated       LeadEventType = "lead_created"
	LeadEventStatusChanged LeadEventType = "status_changed"
	LeadEventContacted     LeadEventType = "contacted"
)

// LeadEvent is an append-only attribution record.
type LeadEvent struct {
	ID             string
	OrganizationID string
	LeadID         string
	EventType      LeadEventType
	Channel        string
	OccurredAt     time.Time
}
