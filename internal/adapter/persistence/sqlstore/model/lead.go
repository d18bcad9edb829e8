package model

type Lead struct {
	ID             string  `gorm:"column:id;type:text;primaryKey"`
	OrganizationID string  `gorm:"column:organization_id;type:text;not null;index:idx_leads_org_created,priority:1"`
	Name           string  `gorm:"column:name;type:text;not null"`
	Email          string  `gorm:"column:email;type:text"`
	Phone          string  `gorm:"column:phone;type:text"`
	Address        string  `gorm:"column:address;type:text"`
	Source         string  `gorm:"column:source;type:text"`
	Status         string  `gorm:"column:status;type:text;not null"`
	EstimatedValue float64 `gorm:"column:estimated_value;not null;default:0"`
	CreatedAt      string  `gorm:"column:created_at;type:text;not null;index:idx_leads_org_created,priority:2"`
	UpdatedAt      string  `gorm:"column:updated_at;type:text;not null"`
}

func (Lead) TableName() string {
	return "leads"
}

type LeadEvent struct {
	ID             string `gorm:"column:id;type:text;primaryKey"`
	OrganizationID string `gorm:"column:organization_id;type:text;not null;index:idx_lead_events_org_type,priority:1"`
	LeadID         string `gorm:"column:lead_id;type:text;not null;index"`
	EventType      string `gorm:"column:event_type;type:text;not null;index:idx_lead_events_org_type,priority:2"`
	Channel        string `gorm:"column:channel;type:text"`
	OccurredAt     string `gorm:"column:occurred_at;type:text;not null"`
}

func (LeadEvent) TableName() string {
	return "lead_events"
}
