package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"painting_crm/internal/domain/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidOrganizationID = errors.New("invalid organization id")

// SeedSummary counts the rows written by a seed run.
type SeedSummary struct {
	Subcontractors int
	Leads          int
	LeadEvents     int
	Jobs           int
	Reviews        int
}

// ISeedUseCase loads a realistic demo dataset for one organization so the
// dashboard has something to show in local and staging environments.
type ISeedUseCase interface {
	Seed(ctx context.Context, orgID string, days int) (SeedSummary, error)
}

type SeedUseCase struct {
	repos  Repositories
	logger *zap.Logger
	rng    *rand.Rand
	now    func() time.Time
}

var _ ISeedUseCase = (*SeedUseCase)(nil)

var (
	demoCrews   = []string{"Ace Painting Crew", "Brush Brothers", "Coat & Co", "Drip Free Finishes", "Edge Line Painters", "Fresh Coat Team"}
	demoSources = []string{"google", "referral", "facebook", "yard_sign", "angi", "website"}
	demoStreets = []string{"Maple Ave", "Oak St", "Pine Rd", "Cedar Ln", "Birch Blvd"}
)

func NewSeedUseCase(repos Repositories, logger *zap.Logger, seed int64) *SeedUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedUseCase{
		repos:  repos,
		logger: logger.With(zap.String("component", "seed.usecase")),
		rng:    rand.New(rand.NewSource(seed)),
		now:    time.Now,
	}
}

// Seed writes subcontractors, then one lead per day (with its lead_created
// event) over the last `days` days. Won leads turn into completed jobs,
// most of which get a review.
func (u *SeedUseCase) Seed(ctx context.Context, orgID string, days int) (SeedSummary, error) {
	orgID = strings.TrimSpace(orgID)
	if orgID == "" {
		return SeedSummary{}, ErrInvalidOrganizationID
	}
	if days <= 0 {
		return SeedSummary{}, fmt.Errorf("days must be positive, got %d", days)
	}
	if err := u.repos.validate(); err != nil {
		return SeedSummary{}, err
	}

	var sum SeedSummary
	now := u.now().UTC()

	crews := make([]entities.Subcontractor, 0, len(demoCrews))
	for i, name := range demoCrews {
		s, err := u.repos.Subcontractors.Create(ctx, entities.Subcontractor{
			ID:             uuid.NewString(),
			OrganizationID: orgID,
			Name:           name,
			Email:          fmt.Sprintf("crew%d@example.com", i+1),
			IsActive:       i < len(demoCrews)-1,
			CreatedAt:      now.AddDate(0, 0, -days-30),
		})
		if err != nil {
			return sum, fmt.Errorf("create subcontractor: %w", err)
		}
		crews = append(crews, s)
		sum.Subcontractors++
	}

	for d := days; d > 0; d-- {
		createdAt := now.AddDate(0, 0, -d).Add(time.Duration(u.rng.Intn(10)+8) * time.Hour)
		lead, err := u.seedLead(ctx, orgID, createdAt)
		if err != nil {
			return sum, err
		}
		sum.Leads++
		sum.LeadEvents++

		if lead.Status != entities.LeadStatusWon {
			continue
		}

		crew := crews[u.rng.Intn(len(crews))]
		completedAt := createdAt.AddDate(0, 0, u.rng.Intn(14)+3)
		if !completedAt.Before(now) {
			continue
		}
		job, err := u.seedJob(ctx, orgID, lead, crew, completedAt)
		if err != nil {
			return sum, err
		}
		sum.Jobs++

		if u.rng.Intn(4) == 0 {
			continue
		}
		crewID := crew.ID
		if _, err := u.repos.Reviews.Create(ctx, entities.Review{
			ID:              uuid.NewString(),
			OrganizationID:  orgID,
			JobID:           job.ID,
			SubcontractorID: &crewID,
			Rating:          3 + u.rng.Intn(3),
			CreatedAt:       completedAt.Add(48 * time.Hour),
		}); err != nil {
			return sum, fmt.Errorf("create review: %w", err)
		}
		sum.Reviews++
	}

	u.logger.Info("demo data seeded",
		zap.String("organization_id", orgID),
		zap.Int("leads", sum.Leads),
		zap.Int("jobs", sum.Jobs),
		zap.Int("reviews", sum.Reviews),
	)
	return sum, nil
}

func (u *SeedUseCase) seedLead(ctx context.Context, orgID string, createdAt time.Time) (entities.Lead, error) {
	statuses := []entities.LeadStatus{
		entities.LeadStatusNew, entities.LeadStatusContacted, entities.LeadStatusEstimateScheduled,
		entities.LeadStatusEstimateSent, entities.LeadStatusWon, entities.LeadStatusWon, entities.LeadStatusLost,
	}
	source := demoSources[u.rng.Intn(len(demoSources))]

	lead, err := u.repos.Leads.Create(ctx, entities.Lead{
		ID:             uuid.NewString(),
		OrganizationID: orgID,
		Name:           fmt.Sprintf("Homeowner %d", u.rng.Intn(9000)+1000),
		Address:        fmt.Sprintf("%d %s", u.rng.Intn(900)+100, demoStreets[u.rng.Intn(len(demoStreets))]),
		Source:         source,
		Status:         statuses[u.rng.Intn(len(statuses))],
		EstimatedValue: float64(1500 + u.rng.Intn(85)*100),
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	})
	if err != nil {
		return entities.Lead{}, fmt.Errorf("create lead: %w", err)
	}

	if _, err := u.repos.LeadEvents.Create(ctx, entities.LeadEvent{
		ID:             uuid.NewString(),
		OrganizationID: orgID,
		LeadID:         lead.ID,
		EventType:      entities.LeadEventCreated,
		Channel:        source,
		OccurredAt:     createdAt,
	}); err != nil {
		return entities.Lead{}, fmt.Errorf("create lead event: %w", err)
	}
	return lead, nil
}

func (u *SeedUseCase) seedJob(ctx context.Context, orgID string, lead entities.Lead, crew entities.Subcontractor, completedAt time.Time) (entities.Job, error) {
	value := lead.EstimatedValue
	estimated := value * 0.42
	jobID := uuid.NewString()

	job := entities.Job{
		ID:              jobID,
		OrganizationID:  orgID,
		LeadID:          lead.ID,
		SubcontractorID: crew.ID,
		CustomerName:    lead.Name,
		Status:          entities.JobStatusCompleted,
		JobValue:        value,
		GrossProfit:     &estimated,
		Commission:      value * 0.05,
		CompletedAt:     &completedAt,
		CreatedAt:       lead.CreatedAt,
		UpdatedAt:       completedAt,
	}
	if u.rng.Intn(2) == 0 {
		final := value * (0.36 + float64(u.rng.Intn(10))/100)
		paidAt := completedAt.Add(72 * time.Hour)
		job.Status = entities.JobStatusPaid
		job.Payout = &entities.SubcontractorPayout{
			ID:              uuid.NewString(),
			JobID:           jobID,
			SubcontractorID: crew.ID,
			FinalPayout:     &final,
			PaidAt:          &paidAt,
		}
	}

	created, err := u.repos.Jobs.Create(ctx, job)
	if err != nil {
		return entities.Job{}, fmt.Errorf("create job: %w", err)
	}
	return created, nil
}
