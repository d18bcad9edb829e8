package kpi

import (
	"time"

	"painting_crm/internal/domain/entities"
)

// Snapshot is the set of rows fetched for one report request.
type Snapshot struct {
	CurrentJobs    []entities.Job
	PreviousJobs   []entities.Job
	CurrentLeads   []entities.Lead
	PreviousLeads  []entities.Lead
	AllLeads       []entities.Lead
	LeadEvents     []entities.LeadEvent
	Subcontractors []entities.Subcontractor
	Reviews        []entities.Review
}

// Report is the full dashboard payload for one period.
type Report struct {
	Period    Period
	Ranges    PeriodRanges
	UpdatedAt time.Time

	Revenue     Metric
	GrossProfit Metric
	GrossMargin Metric

	Leads          Metric
	ConversionRate Metric
	JobsCompleted  Metric
	AvgJobValue    Metric

	LeadPipeline         []PipelineStage
	LeadSources          []LeadSource
	TotalSourceLeads     int
	SubcontractorRanking []SubcontractorRank
}

// BuildReport computes every KPI from a snapshot. Jobs that are not completed
// are ignored even if the store returned them.
func BuildReport(p Period, ranges PeriodRanges, s Snapshot, now time.Time) Report {
	current := completedJobs(s.CurrentJobs)
	previous := completedJobs(s.PreviousJobs)

	curRevenue, prevRevenue := Revenue(current), Revenue(previous)
	curProfit, prevProfit := GrossProfit(current), GrossProfit(previous)

	revenueTrend := BuildTrend(current, ranges.Current, p, jobCompletedAt, func(j entities.Job) float64 { return j.JobValue })
	profitTrend := BuildTrend(current, ranges.Current, p, jobCompletedAt, entities.Job.ActualProfit)
	jobsTrend := BuildTrend(current, ranges.Current, p, jobCompletedAt, func(entities.Job) float64 { return 1 })
	leadsTrend := BuildTrend(s.CurrentLeads, ranges.Current, p, leadCreatedAt, func(entities.Lead) float64 { return 1 })

	sources, totalSources := AttributeSources(s.LeadEvents, s.CurrentLeads)

	return Report{
		Period:    p,
		Ranges:    ranges,
		UpdatedAt: now.UTC(),

		Revenue:     NewMetric(curRevenue, prevRevenue, revenueTrend),
		GrossProfit: NewMetric(curProfit, prevProfit, profitTrend),
		GrossMargin: NewMetric(GrossMargin(curProfit, curRevenue), GrossMargin(prevProfit, prevRevenue), RatioTrend(profitTrend, revenueTrend)),

		Leads:          NewMetric(float64(len(s.CurrentLeads)), float64(len(s.PreviousLeads)), leadsTrend),
		ConversionRate: NewMetric(ConversionRate(s.CurrentLeads), ConversionRate(s.PreviousLeads), nil),
		JobsCompleted:  NewMetric(float64(len(current)), float64(len(previous)), jobsTrend),
		AvgJobValue:    NewMetric(AverageJobValue(curRevenue, len(current)), AverageJobValue(prevRevenue, len(previous)), nil),

		LeadPipeline:         BuildPipeline(s.AllLeads),
		LeadSources:          sources,
		TotalSourceLeads:     totalSources,
		SubcontractorRanking: RankSubcontractors(s.Subcontractors, current, s.Reviews),
	}
}

func completedJobs(jobs []entities.Job) []entities.Job {
	out := make([]entities.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.IsCompleted() {
			out = append(out, j)
		}
	}
	return out
}

func jobCompletedAt(j entities.Job) (time.Time, bool) {
	if j.CompletedAt == nil {
		return time.Time{}, false
	}
	return *j.CompletedAt, true
}

func leadCreatedAt(l entities.Lead) (time.Time, bool) {
	return l.CreatedAt, !l.CreatedAt.IsZero()
}
