package sqlstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"painting_crm/internal/domain/entities"

	gormsqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "kpi.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func ptr[T any](v T) *T { return &v }

var (
	rangeStart = time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd   = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	october    = entities.DateRange{Start: rangeStart, End: rangeEnd}
)

func TestJobRepository_ListCompletedBetween(t *testing.T) {
	db := setupDB(t)
	repo := NewJobRepository(db)
	ctx := context.Background()

	inside := rangeStart.Add(36 * time.Hour)
	atEnd := rangeEnd
	justBefore := rangeStart.Add(-time.Nanosecond)
	paidAt := inside.Add(24 * time.Hour)

	seed := []entities.Job{
		{ID: "paid", OrganizationID: "org-1", CustomerName: "A", Status: entities.JobStatusPaid, JobValue: 1000, GrossProfit: ptr(400.0), CompletedAt: &inside,
			Payout: &entities.SubcontractorPayout{ID: "p1", SubcontractorID: "s1", FinalPayout: ptr(380.0), PaidAt: &paidAt}},
		{ID: "completed", OrganizationID: "org-1", CustomerName: "B", Status: entities.JobStatusCompleted, JobValue: 500, CompletedAt: &rangeStart},
		{ID: "at-end", OrganizationID: "org-1", CustomerName: "C", Status: entities.JobStatusCompleted, JobValue: 1, CompletedAt: &atEnd},
		{ID: "before", OrganizationID: "org-1", CustomerName: "D", Status: entities.JobStatusCompleted, JobValue: 1, CompletedAt: &justBefore},
		{ID: "scheduled", OrganizationID: "org-1", CustomerName: "E", Status: entities.JobStatusScheduled, JobValue: 1, CompletedAt: &inside},
		{ID: "other-org", OrganizationID: "org-2", CustomerName: "F", Status: entities.JobStatusCompleted, JobValue: 700, CompletedAt: &inside},
		{ID: "open", OrganizationID: "org-1", CustomerName: "G", Status: entities.JobStatusInProgress, JobValue: 1},
	}
	for _, j := range seed {
		_, err := repo.Create(ctx, j)
		require.NoError(t, err, j.ID)
	}

	jobs, err := repo.ListCompletedBetween(ctx, "org-1", october)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "completed", jobs[0].ID)
	assert.Equal(t, "paid", jobs[1].ID)

	require.NotNil(t, jobs[1].Payout)
	assert.Equal(t, "paid", jobs[1].Payout.JobID)
	assert.Equal(t, 380.0, jobs[1].ActualProfit())
	assert.Equal(t, paidAt, *jobs[1].Payout.PaidAt)
	assert.Nil(t, jobs[0].Payout)
	assert.Equal(t, 0.0, jobs[0].ActualProfit())

	all, err := repo.ListCompletedBetween(ctx, "", october)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestLeadRepositories(t *testing.T) {
	db := setupDB(t)
	leads := NewLeadRepository(db)
	events := NewLeadEventRepository(db)
	ctx := context.Background()

	in := rangeStart.Add(48 * time.Hour)
	out := rangeStart.AddDate(0, -1, 0)
	for _, l := range []entities.Lead{
		{ID: "l1", OrganizationID: "org-1", Name: "A", Source: "google", Status: entities.LeadStatusNew, CreatedAt: in, UpdatedAt: in},
		{ID: "l2", OrganizationID: "org-1", Name: "B", Source: "referral", Status: entities.LeadStatusWon, EstimatedValue: 3000, CreatedAt: out, UpdatedAt: out},
		{ID: "l3", OrganizationID: "org-2", Name: "C", Status: entities.LeadStatusNew, CreatedAt: in, UpdatedAt: in},
	} {
		_, err := leads.Create(ctx, l)
		require.NoError(t, err)
	}

	got, err := leads.ListCreatedBetween(ctx, "org-1", october)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "l1", got[0].ID)
	assert.Equal(t, in, got[0].CreatedAt)

	pipeline, err := leads.ListAll(ctx, "org-1")
	require.NoError(t, err)
	assert.Len(t, pipeline, 2)

	for _, e := range []entities.LeadEvent{
		{ID: "e1", OrganizationID: "org-1", LeadID: "l1", EventType: entities.LeadEventCreated, Channel: "google", OccurredAt: in},
		{ID: "e2", OrganizationID: "org-1", LeadID: "l1", EventType: entities.LeadEventContacted, OccurredAt: in},
		{ID: "e3", OrganizationID: "org-1", LeadID: "l2", EventType: entities.LeadEventCreated, Channel: "referral", OccurredAt: out},
	} {
		_, err := events.Create(ctx, e)
		require.NoError(t, err)
	}

	created, err := events.ListByTypeBetween(ctx, "org-1", entities.LeadEventCreated, october)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "e1", created[0].ID)
	assert.Equal(t, "google", created[0].Channel)
}

func TestSubcontractorAndReviewRepositories(t *testing.T) {
	db := setupDB(t)
	subs := NewSubcontractorRepository(db)
	reviews := NewReviewRepository(db)
	ctx := context.Background()

	for _, s := range []entities.Subcontractor{
		{ID: "s1", OrganizationID: "org-1", Name: "Brush Bros", IsActive: true, CreatedAt: rangeStart},
		{ID: "s2", OrganizationID: "org-1", Name: "Ace Crew", IsActive: true, CreatedAt: rangeStart},
		{ID: "s3", OrganizationID: "org-1", Name: "Retired", IsActive: false, CreatedAt: rangeStart},
	} {
		_, err := subs.Create(ctx, s)
		require.NoError(t, err)
	}

	active, err := subs.ListActive(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Ace Crew", active[0].Name)
	assert.Equal(t, "Brush Bros", active[1].Name)

	for _, rv := range []entities.Review{
		{ID: "r1", OrganizationID: "org-1", JobID: "j1", SubcontractorID: ptr("s1"), Rating: 5, CreatedAt: rangeStart},
		{ID: "r2", OrganizationID: "org-1", JobID: "j2", Rating: 2, CreatedAt: rangeStart},
		{ID: "r3", OrganizationID: "org-1", JobID: "j3", SubcontractorID: ptr(""), Rating: 1, CreatedAt: rangeStart},
	} {
		_, err := reviews.Create(ctx, rv)
		require.NoError(t, err)
	}

	attributed, err := reviews.ListAttributed(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, attributed, 1)
	assert.Equal(t, "r1", attributed[0].ID)
	assert.Equal(t, "s1", *attributed[0].SubcontractorID)
}

func TestMigrate_RequiresDB(t *testing.T) {
	assert.Error(t, Migrate(nil))
}
