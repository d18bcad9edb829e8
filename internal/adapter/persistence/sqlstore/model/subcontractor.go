package model

type Subcontractor struct {
	ID             string `gorm:"column:id;type:text;primaryKey"`
	OrganizationID string `gorm:"column:organization_id;type:text;not null;index"`
	Name           string `gorm:"column:name;type:text;not null"`
	Email          string `gorm:"column:email;type:text"`
	Phone          string `gorm:"column:phone;type:text"`
	IsActive       bool   `gorm:"column:is_active;not null"`
	CreatedAt      string `gorm:"column:created_at;type:text;not null"`
}

func (Subcontractor) TableName() string {
	return "subcontractors"
}

type Review struct {
	ID              string  `gorm:"column:id;type:text;primaryKey"`
	OrganizationID  string  `gorm:"column:organization_id;type:text;not null;index"`
	JobID           string  `gorm:"column:job_id;type:text;not null"`
	SubcontractorID *string `gorm:"column:subcontractor_id;type:text;index"`
	Rating          int     `gorm:"column:rating;not null"`
	CreatedAt       string  `gorm:"column:created_at;type:text;not null"`
}

func (Review) TableName() string {
	return "reviews"
}
