package persistence

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"painting_crm/internal/domain/entities"
	"painting_crm/internal/infrastructure/config"
	"painting_crm/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLiteRoundTripThroughKPIReport(t *testing.T) {
	cfg := config.Config{DBDriver: config.DriverSQLite, SQLiteDSN: filepath.Join(t.TempDir(), "crm.sqlite")}
	repos, closeFn, err := Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })

	ctx := context.Background()
	now := time.Now().UTC()
	completed := now.Add(-time.Hour)
	profit := 400.0

	_, err = repos.Jobs.Create(ctx, entities.Job{
		ID: "job-1", OrganizationID: "org-1", CustomerName: "Jane",
		Status: entities.JobStatusCompleted, JobValue: 1000, GrossProfit: &profit,
		CompletedAt: &completed, CreatedAt: completed, UpdatedAt: completed,
	})
	require.NoError(t, err)

	report, err := usecase.NewKPIUseCase(repos, nil, nil).GetReport(ctx, "org-1", "week")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, report.Revenue.Current)
	assert.Equal(t, 40.0, report.GrossMargin.Current)
	assert.Equal(t, 1, int(report.JobsCompleted.Current))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, closeFn, err := Open(context.Background(), config.Config{DBDriver: "mysql"}, nil)
	assert.Error(t, err)
	assert.NoError(t, closeFn())
}
