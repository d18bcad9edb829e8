package persistence

import (
	"context"
	"fmt"

	"painting_crm/internal/adapter/persistence/repository"
	"painting_crm/internal/adapter/persistence/sqlstore"
	"painting_crm/internal/infrastructure/config"
	"painting_crm/internal/infrastructure/database"
	"painting_crm/internal/usecase"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Open connects the configured backend and returns its repositories. The
// returned close func releases the connection and is never nil.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (usecase.Repositories, func() error, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLiteDSN, logger)
		if err != nil {
			return usecase.Repositories{}, nopClose, err
		}
		if err := sqlstore.Migrate(db); err != nil {
			return usecase.Repositories{}, nopClose, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return usecase.Repositories{}, nopClose, err
		}
		return SQLRepositories(db), sqlDB.Close, nil

	case config.DriverDynamoDB:
		client, err := database.ConnectDynamoDB(ctx, logger)
		if err != nil {
			return usecase.Repositories{}, nopClose, fmt.Errorf("connect dynamodb: %w", err)
		}
		return DynamoRepositories(client), nopClose, nil

	default:
		return usecase.Repositories{}, nopClose, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

func SQLRepositories(db *gorm.DB) usecase.Repositories {
	return usecase.Repositories{
		Jobs:           sqlstore.NewJobRepository(db),
		Leads:          sqlstore.NewLeadRepository(db),
		LeadEvents:     sqlstore.NewLeadEventRepository(db),
		Subcontractors: sqlstore.NewSubcontractorRepository(db),
		Reviews:        sqlstore.NewReviewRepository(db),
	}
}

func DynamoRepositories(ddb repository.DynamoAPI) usecase.Repositories {
	return usecase.Repositories{
		Jobs:           repository.NewJobDynamoRepository(ddb),
		Leads:          repository.NewLeadDynamoRepository(ddb),
		LeadEvents:     repository.NewLeadEventDynamoRepository(ddb),
		Subcontractors: repository.NewSubcontractorDynamoRepository(ddb),
		Reviews:        repository.NewReviewDynamoRepository(ddb),
	}
}

func nopClose() error { return nil }
