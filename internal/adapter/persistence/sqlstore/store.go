package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"painting_crm/internal/adapter/persistence/sqlstore/model"

	"gorm.io/gorm"
)

// Text columns hold times in this fixed-width UTC layout so range filters can
// compare them as strings.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Migrate creates or updates every table the repositories read.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("db is required")
	}
	if err := db.AutoMigrate(
		&model.Job{},
		&model.SubcontractorPayout{},
		&model.Lead{},
		&model.LeadEvent{},
		&model.Subcontractor{},
		&model.Review{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func withContext(ctx context.Context, db *gorm.DB) (*gorm.DB, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	return db.WithContext(ctx), nil
}

// scoped restricts a query to one organization; an empty orgID leaves it
// unscoped.
func scoped(q *gorm.DB, orgID string) *gorm.DB {
	if orgID == "" {
		return q
	}
	return q.Where("organization_id = ?", orgID)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

func parseTimePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t := parseTime(*s)
	return &t
}
