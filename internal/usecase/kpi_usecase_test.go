package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"painting_crm/internal/domain/entities"
	"painting_crm/internal/domain/kpi"
	mock_interfaces "painting_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type kpiMocks struct {
	jobs     *mock_interfaces.MockIJobRepository
	leads    *mock_interfaces.MockILeadRepository
	events   *mock_interfaces.MockILeadEventRepository
	subs     *mock_interfaces.MockISubcontractorRepository
	reviews  *mock_interfaces.MockIReviewRepository
	observer *mock_interfaces.MockIReportObserver
}

var fixedNow = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

func newKPIUseCase(t *testing.T) (*KPIUseCase, kpiMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := kpiMocks{
		jobs:     mock_interfaces.NewMockIJobRepository(ctrl),
		leads:    mock_interfaces.NewMockILeadRepository(ctrl),
		events:   mock_interfaces.NewMockILeadEventRepository(ctrl),
		subs:     mock_interfaces.NewMockISubcontractorRepository(ctrl),
		reviews:  mock_interfaces.NewMockIReviewRepository(ctrl),
		observer: mock_interfaces.NewMockIReportObserver(ctrl),
	}
	uc := NewKPIUseCase(Repositories{
		Jobs:           m.jobs,
		Leads:          m.leads,
		LeadEvents:     m.events,
		Subcontractors: m.subs,
		Reviews:        m.reviews,
	}, m.observer, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func (m kpiMocks) expectEmpty(orgID string, ranges kpi.PeriodRanges) {
	m.jobs.EXPECT().ListCompletedBetween(gomock.Any(), orgID, ranges.Current).Return(nil, nil)
	m.jobs.EXPECT().ListCompletedBetween(gomock.Any(), orgID, ranges.Previous).Return(nil, nil)
	m.leads.EXPECT().ListCreatedBetween(gomock.Any(), orgID, ranges.Current).Return(nil, nil)
	m.leads.EXPECT().ListCreatedBetween(gomock.Any(), orgID, ranges.Previous).Return(nil, nil)
	m.leads.EXPECT().ListAll(gomock.Any(), orgID).Return(nil, nil)
	m.events.EXPECT().ListByTypeBetween(gomock.Any(), orgID, entities.LeadEventCreated, ranges.Current).Return(nil, nil)
	m.subs.EXPECT().ListActive(gomock.Any(), orgID).Return(nil, nil)
	m.reviews.EXPECT().ListAttributed(gomock.Any(), orgID).Return(nil, nil)
}

func TestKPIUseCase_GetReport(t *testing.T) {
	t.Run("invalid period", func(t *testing.T) {
		uc, _ := newKPIUseCase(t)
		for _, period := range []string{"fortnight", "   ", "week "} {
			_, err := uc.GetReport(context.Background(), "org-1", period)
			if !errors.Is(err, ErrInvalidPeriod) {
				t.Fatalf("period %q: expected ErrInvalidPeriod, got %v", period, err)
			}
		}
	})

	t.Run("repositories not configured", func(t *testing.T) {
		uc := NewKPIUseCase(Repositories{}, nil, nil)
		_, err := uc.GetReport(context.Background(), "org-1", "week")
		if err == nil || err.Error() != "kpi repositories not configured" {
			t.Fatalf("expected configuration error, got %v", err)
		}
	})

	t.Run("empty month", func(t *testing.T) {
		uc, m := newKPIUseCase(t)
		_, ranges := kpi.ResolvePeriod(kpi.PeriodMonth, fixedNow)
		m.expectEmpty("org-1", ranges)
		m.observer.EXPECT().ObserveReport("month", gomock.Any(), nil)

		report, err := uc.GetReport(context.Background(), "org-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Period != kpi.PeriodMonth {
			t.Fatalf("expected month, got %s", report.Period)
		}
		if report.Revenue.Current != 0 || report.Revenue.Direction != kpi.DirectionFlat {
			t.Fatalf("unexpected revenue: %+v", report.Revenue)
		}
		if len(report.LeadSources) != 0 || report.LeadSources == nil {
			t.Fatalf("expected empty lead sources, got %+v", report.LeadSources)
		}
	})

	t.Run("unscoped organization", func(t *testing.T) {
		uc, m := newKPIUseCase(t)
		_, ranges := kpi.ResolvePeriod(kpi.PeriodWeek, fixedNow)
		m.expectEmpty("", ranges)
		m.observer.EXPECT().ObserveReport("week", gomock.Any(), nil)

		if _, err := uc.GetReport(context.Background(), "", "week"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("single completed job", func(t *testing.T) {
		uc, m := newKPIUseCase(t)
		_, ranges := kpi.ResolvePeriod(kpi.PeriodMonth, fixedNow)
		completedAt := time.Date(2026, time.October, 5, 10, 0, 0, 0, time.UTC)
		profit := 400.0

		m.jobs.EXPECT().ListCompletedBetween(gomock.Any(), "org-1", ranges.Current).Return([]entities.Job{
			{ID: "job-1", Status: entities.JobStatusCompleted, JobValue: 1000, GrossProfit: &profit, CompletedAt: &completedAt},
		}, nil)
		m.jobs.EXPECT().ListCompletedBetween(gomock.Any(), "org-1", ranges.Previous).Return(nil, nil)
		m.leads.EXPECT().ListCreatedBetween(gomock.Any(), "org-1", gomock.Any()).Return(nil, nil).Times(2)
		m.leads.EXPECT().ListAll(gomock.Any(), "org-1").Return(nil, nil)
		m.events.EXPECT().ListByTypeBetween(gomock.Any(), "org-1", entities.LeadEventCreated, ranges.Current).Return(nil, nil)
		m.subs.EXPECT().ListActive(gomock.Any(), "org-1").Return(nil, nil)
		m.reviews.EXPECT().ListAttributed(gomock.Any(), "org-1").Return(nil, nil)
		m.observer.EXPECT().ObserveReport("month", gomock.Any(), nil)

		report, err := uc.GetReport(context.Background(), "org-1", "month")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Revenue.Current != 1000 || report.Revenue.Previous != 0 || report.Revenue.Delta != 100 || report.Revenue.Direction != kpi.DirectionUp {
			t.Fatalf("unexpected revenue: %+v", report.Revenue)
		}
		if report.GrossProfit.Current != 400 {
			t.Fatalf("unexpected gross profit: %+v", report.GrossProfit)
		}
		if report.GrossMargin.Current != 40 {
			t.Fatalf("unexpected gross margin: %+v", report.GrossMargin)
		}
	})

	t.Run("query failure fails the report", func(t *testing.T) {
		uc, m := newKPIUseCase(t)
		dbErr := errors.New("db")

		m.jobs.EXPECT().ListCompletedBetween(gomock.Any(), "org-1", gomock.Any()).Return(nil, nil).AnyTimes()
		m.leads.EXPECT().ListCreatedBetween(gomock.Any(), "org-1", gomock.Any()).Return(nil, nil).AnyTimes()
		m.leads.EXPECT().ListAll(gomock.Any(), "org-1").Return(nil, nil).AnyTimes()
		m.events.EXPECT().ListByTypeBetween(gomock.Any(), "org-1", gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		m.subs.EXPECT().ListActive(gomock.Any(), "org-1").Return(nil, nil).AnyTimes()
		m.reviews.EXPECT().ListAttributed(gomock.Any(), "org-1").Return(nil, dbErr)
		m.observer.EXPECT().ObserveReport("quarter", gomock.Any(), gomock.Not(gomock.Nil()))

		_, err := uc.GetReport(context.Background(), "org-1", "quarter")
		if !errors.Is(err, dbErr) {
			t.Fatalf("expected db error, got %v", err)
		}
		if err.Error() != "list reviews: db" {
			t.Fatalf("expected wrapped error, got %q", err.Error())
		}
	})
}
