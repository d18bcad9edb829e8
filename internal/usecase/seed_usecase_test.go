package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"painting_crm/internal/domain/entities"
	mock_interfaces "painting_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newSeedUseCase(t *testing.T) (*SeedUseCase, kpiMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := kpiMocks{
		jobs:    mock_interfaces.NewMockIJobRepository(ctrl),
		leads:   mock_interfaces.NewMockILeadRepository(ctrl),
		events:  mock_interfaces.NewMockILeadEventRepository(ctrl),
		subs:    mock_interfaces.NewMockISubcontractorRepository(ctrl),
		reviews: mock_interfaces.NewMockIReviewRepository(ctrl),
	}
	uc := NewSeedUseCase(Repositories{
		Jobs:           m.jobs,
		Leads:          m.leads,
		LeadEvents:     m.events,
		Subcontractors: m.subs,
		Reviews:        m.reviews,
	}, nil, 42)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func TestSeedUseCase_Validations(t *testing.T) {
	t.Run("empty organization", func(t *testing.T) {
		uc := NewSeedUseCase(Repositories{}, nil, 1)
		_, err := uc.Seed(context.Background(), "  ", 10)
		if !errors.Is(err, ErrInvalidOrganizationID) {
			t.Fatalf("expected ErrInvalidOrganizationID, got %v", err)
		}
	})

	t.Run("non positive days", func(t *testing.T) {
		uc := NewSeedUseCase(Repositories{}, nil, 1)
		if _, err := uc.Seed(context.Background(), "org-1", 0); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("subcontractor create error", func(t *testing.T) {
		uc, m := newSeedUseCase(t)
		m.subs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Subcontractor{}, errors.New("db"))

		_, err := uc.Seed(context.Background(), "org-1", 5)
		if err == nil || err.Error() != "create subcontractor: db" {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})
}

func TestSeedUseCase_Seed(t *testing.T) {
	uc, m := newSeedUseCase(t)


	m.subs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.Subcontractor) (entities.Subcontractor, error) {
			if s.OrganizationID != "org-1" || s.ID == "" {
				t.Fatalf("unexpected subcontractor: %+v", s)
			}
			return s, nil
		}).Times(len(demoCrews))
	m.leads.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l entities.Lead) (entities.Lead, error) {
			if l.OrganizationID != "org-1" || !l.CreatedAt.Before(fixedNow) {
				t.Fatalf("unexpected lead: %+v", l)
			}
			return l, nil
		}).Times(60)
	m.events.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.LeadEvent) (entities.LeadEvent, error) {
			if e.EventType != entities.LeadEventCreated || e.LeadID == "" {
				t.Fatalf("unexpected event: %+v", e)
			}
			return e, nil
		}).Times(60)

	var jobs, reviews int
	m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, j entities.Job) (entities.Job, error) {
			if !j.IsCompleted() || j.CompletedAt == nil || !j.CompletedAt.Before(fixedNow) {
				t.Fatalf("unexpected job: %+v", j)
			}
			if j.Payout != nil && j.Payout.JobID != j.ID {
				t.Fatalf("payout not linked to job: %+v", j.Payout)
			}
			jobs++
			return j, nil
		}).AnyTimes()
	m.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r entities.Review) (entities.Review, error) {
			if r.SubcontractorID == nil || r.Rating < 3 || r.Rating > 5 {
				t.Fatalf("unexpected review: %+v", r)
			}
			reviews++
			return r, nil
		}).AnyTimes()

	sum, err := uc.Seed(context.Background(), "org-1", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Leads != 60 || sum.LeadEvents != 60 || sum.Subcontractors != len(demoCrews) {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if sum.Jobs != jobs || sum.Reviews != reviews {
		t.Fatalf("summary does not match writes: %+v jobs=%d reviews=%d", sum, jobs, reviews)
	}
	if sum.Reviews > sum.Jobs {
		t.Fatalf("more reviews than jobs: %+v", sum)
	}
}
