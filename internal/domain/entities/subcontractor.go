package entities

import "time"

// Subcontractor is a field crew lead that performs jobs on behalf of an
// organization. Inactive subcontractors are kept for history but excluded
// from rankings.
type Subcontractor struct {
	ID             string
	OrganizationID string
	Name           string
	Email          string
	Phone          string
	IsActive       bool
	CreatedAt      time.Time
}

// Review is a customer rating left after a job. SubcontractorID is nil when
// the review could not be attributed to a crew.
type Review struct {
	ID              string
	OrganizationID  string
	JobID           string
	SubcontractorID *string
	Rating          int
	CreatedAt       time.Time
}
