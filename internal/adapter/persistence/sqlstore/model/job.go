package model

type Job struct {
	ID              string               `gorm:"column:id;type:text;primaryKey"`
	OrganizationID  string               `gorm:"column:organization_id;type:text;not null;index:idx_jobs_org_completed,priority:1"`
	LeadID          string               `gorm:"column:lead_id;type:text"`
	SubcontractorID string               `gorm:"column:subcontractor_id;type:text;index"`
	CustomerName    string               `gorm:"column:customer_name;type:text;not null"`
	Status          string               `gorm:"column:status;type:text;not null"`
	JobValue        float64              `gorm:"column:job_value;not null;default:0"`
	GrossProfit     *float64             `gorm:"column:gross_profit"`
	Commission      float64              `gorm:"column:commission;not null;default:0"`
	CompletedAt     *string              `gorm:"column:completed_at;type:text;index:idx_jobs_org_completed,priority:2"`
	CreatedAt       string               `gorm:"column:created_at;type:text;not null"`
	UpdatedAt       string               `gorm:"column:updated_at;type:text;not null"`
	Payout          *SubcontractorPayout `gorm:"foreignKey:JobID;references:ID"`
}

func (Job) TableName() string {
	return "jobs"
}

type SubcontractorPayout struct {
	ID              string   `gorm:"column:id;type:text;primaryKey"`
	JobID           string   `gorm:"column:job_id;type:text;not null;uniqueIndex"`
	SubcontractorID string   `gorm:"column:subcontractor_id;type:text"`
	FinalPayout     *float64 `gorm:"column:final_payout"`
	PaidAt          *string  `gorm:"column:paid_at;type:text"`
}

func (SubcontractorPayout) TableName() string {
	return "subcontractor_payouts"
}
