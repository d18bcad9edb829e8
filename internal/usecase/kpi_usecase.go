package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"painting_crm/internal/domain/entities"
	"painting_crm/internal/domain/kpi"
	"painting_crm/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidPeriod = kpi.ErrInvalidPeriod

// IKPIUseCase builds the dashboard KPI report for an organization.
//
//go:generate mockgen -source=kpi_usecase.go -destination=../adapter/http/handlers/mocks/kpi_usecase_mock.go -package=mocks

type IKPIUseCase interface {
	GetReport(ctx context.Context, orgID string, period string) (kpi.Report, error)
}

// Repositories groups the read ports the KPI report and the demo seeder use.
type Repositories struct {
	Jobs           interfaces.IJobRepository
	Leads          interfaces.ILeadRepository
	LeadEvents     interfaces.ILeadEventRepository
	Subcontractors interfaces.ISubcontractorRepository
	Reviews        interfaces.IReviewRepository
}

type KPIUseCase struct {
	repos    Repositories
	observer interfaces.IReportObserver
	logger   *zap.Logger
	now      func() time.Time
}

var _ IKPIUseCase = (*KPIUseCase)(nil)

func NewKPIUseCase(repos Repositories, observer interfaces.IReportObserver, logger *zap.Logger) *KPIUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KPIUseCase{
		repos:    repos,
		observer: observer,
		logger:   logger.With(zap.String("component", "kpi.usecase")),
		now:      time.Now,
	}
}

// GetReport validates the period, loads both periods' rows concurrently and
// computes the report. Any failed query fails the whole report.
func (u *KPIUseCase) GetReport(ctx context.Context, orgID string, period string) (report kpi.Report, err error) {
	p, err := kpi.ParsePeriod(period)
	if err != nil {
		return kpi.Report{}, err
	}

	started := u.now()
	defer func() {
		if u.observer != nil {
			u.observer.ObserveReport(string(p), time.Since(started), err)
		}
	}()

	p, ranges := kpi.ResolvePeriod(p, started)
	log := u.logger.With(
		zap.String("organization_id", orgID),
		zap.String("period", string(p)),
	)
	log.Debug("building kpi report",
		zap.Time("current_start", ranges.Current.Start),
		zap.Time("current_end", ranges.Current.End),
	)

	snap, err := u.fetchSnapshot(ctx, orgID, ranges)
	if err != nil {
		log.Error("kpi report fetch failed", zap.Error(err))
		return kpi.Report{}, err
	}

	report = kpi.BuildReport(p, ranges, snap, u.now())
	log.Info("kpi report built",
		zap.Int("current_jobs", len(snap.CurrentJobs)),
		zap.Int("current_leads", len(snap.CurrentLeads)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return report, nil
}

func (u *KPIUseCase) fetchSnapshot(ctx context.Context, orgID string, ranges kpi.PeriodRanges) (kpi.Snapshot, error) {
	if err := u.repos.validate(); err != nil {
		return kpi.Snapshot{}, err
	}

	var snap kpi.Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.CurrentJobs, err = u.repos.Jobs.ListCompletedBetween(gctx, orgID, ranges.Current)
		return wrap(err, "list current jobs")
	})
	g.Go(func() (err error) {
		snap.PreviousJobs, err = u.repos.Jobs.ListCompletedBetween(gctx, orgID, ranges.Previous)
		return wrap(err, "list previous jobs")
	})
	g.Go(func() (err error) {
		snap.CurrentLeads, err = u.repos.Leads.ListCreatedBetween(gctx, orgID, ranges.Current)
		return wrap(err, "list current leads")
	})
	g.Go(func() (err error) {
		snap.PreviousLeads, err = u.repos.Leads.ListCreatedBetween(gctx, orgID, ranges.Previous)
		return wrap(err, "list previous leads")
	})
	g.Go(func() (err error) {
		snap.AllLeads, err = u.repos.Leads.ListAll(gctx, orgID)
		return wrap(err, "list pipeline leads")
	})
	g.Go(func() (err error) {
		snap.LeadEvents, err = u.repos.LeadEvents.ListByTypeBetween(gctx, orgID, entities.LeadEventCreated, ranges.Current)
		return wrap(err, "list lead events")
	})
	g.Go(func() (err error) {
		snap.Subcontractors, err = u.repos.Subcontractors.ListActive(gctx, orgID)
		return wrap(err, "list subcontractors")
	})
	g.Go(func() (err error) {
		snap.Reviews, err = u.repos.Reviews.ListAttributed(gctx, orgID)
		return wrap(err, "list reviews")
	})

	if err := g.Wait(); err != nil {
		return kpi.Snapshot{}, err
	}
	return snap, nil
}

func (r Repositories) validate() error {
	if r.Jobs == nil || r.Leads == nil || r.LeadEvents == nil || r.Subcontractors == nil || r.Reviews == nil {
		return errors.New("kpi repositories not configured")
	}
	return nil
}

func wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
