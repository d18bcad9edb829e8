package response

import (
	"time"

	"painting_crm/internal/domain/entities"
	"painting_crm/internal/domain/kpi"
)

const trendDateLayout = "2006-01-02"

type TrendPointResponse struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type MetricResponse struct {
	Current        float64              `json:"current"`
	Previous       float64              `json:"previous"`
	Delta          float64              `json:"delta"`
	DeltaDirection string               `json:"deltaDirection"`
	Trend          []TrendPointResponse `json:"trend"`
}

type RangeResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DateRangeResponse carries both compared ranges. End is exclusive.
type DateRangeResponse struct {
	Current  RangeResponse `json:"current"`
	Previous RangeResponse `json:"previous"`
}

type PipelineStageResponse struct {
	Stage string  `json:"stage"`
	Label string  `json:"label"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

type LeadSourceResponse struct {
	Source     string  `json:"source"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type SubcontractorRankResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	JobsCompleted int     `json:"jobsCompleted"`
	Revenue       float64 `json:"revenue"`
	AvgRating     float64 `json:"avgRating"`
	ReviewCount   int     `json:"reviewCount"`
}

type KPIResponse struct {
	Period    string            `json:"period"`
	DateRange DateRangeResponse `json:"dateRange"`
	UpdatedAt time.Time         `json:"updatedAt"`

	Revenue     MetricResponse `json:"revenue"`
	GrossProfit MetricResponse `json:"grossProfit"`
	GrossMargin MetricResponse `json:"grossMargin"`

	Leads          MetricResponse `json:"leads"`
	ConversionRate MetricResponse `json:"conversionRate"`
	JobsCompleted  MetricResponse `json:"jobsCompleted"`
	AvgJobValue    MetricResponse `json:"avgJobValue"`

	LeadPipeline         []PipelineStageResponse     `json:"leadPipeline"`
	LeadSources          []LeadSourceResponse        `json:"leadSources"`
	TotalSourceLeads     int                         `json:"totalSourceLeads"`
	SubcontractorRanking []SubcontractorRankResponse `json:"subcontractorRanking"`
}

func FromKPIReport(r kpi.Report) KPIResponse {
	res := KPIResponse{
		Period: string(r.Period),
		DateRange: DateRangeResponse{
			Current:  fromRange(r.Ranges.Current),
			Previous: fromRange(r.Ranges.Previous),
		},
		UpdatedAt: r.UpdatedAt.UTC(),

		Revenue:     fromMetric(r.Revenue),
		GrossProfit: fromMetric(r.GrossProfit),
		GrossMargin: fromMetric(r.GrossMargin),

		Leads:          fromMetric(r.Leads),
		ConversionRate: fromMetric(r.ConversionRate),
		JobsCompleted:  fromMetric(r.JobsCompleted),
		AvgJobValue:    fromMetric(r.AvgJobValue),

		LeadPipeline:         make([]PipelineStageResponse, 0, len(r.LeadPipeline)),
		LeadSources:          make([]LeadSourceResponse, 0, len(r.LeadSources)),
		TotalSourceLeads:     r.TotalSourceLeads,
		SubcontractorRanking: make([]SubcontractorRankResponse, 0, len(r.SubcontractorRanking)),
	}

	for _, s := range r.LeadPipeline {
		res.LeadPipeline = append(res.LeadPipeline, PipelineStageResponse{
			Stage: string(s.Stage),
			Label: s.Label,
			Count: s.Count,
			Value: s.Value,
		})
	}
	for _, s := range r.LeadSources {
		res.LeadSources = append(res.LeadSources, LeadSourceResponse{
			Source:     s.Source,
			Count:      s.Count,
			Percentage: s.Percentage,
		})
	}
	for _, s := range r.SubcontractorRanking {
		res.SubcontractorRanking = append(res.SubcontractorRanking, SubcontractorRankResponse{
			ID:            s.ID,
			Name:          s.Name,
			JobsCompleted: s.JobsCompleted,
			Revenue:       s.Revenue,
			AvgRating:     s.AvgRating,
			ReviewCount:   s.ReviewCount,
		})
	}
	return res
}

func fromMetric(m kpi.Metric) MetricResponse {
	trend := make([]TrendPointResponse, 0, len(m.Trend))
	for _, p := range m.Trend {
		trend = append(trend, TrendPointResponse{Date: p.Date.UTC().Format(trendDateLayout), Value: p.Value})
	}
	return MetricResponse{
		Current:        m.Current,
		Previous:       m.Previous,
		Delta:          m.Delta,
		DeltaDirection: string(m.Direction),
		Trend:          trend,
	}
}

func fromRange(r entities.DateRange) RangeResponse {
	return RangeResponse{Start: r.Start.UTC(), End: r.End.UTC()}
}
