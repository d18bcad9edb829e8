package kpi

import (
	"painting_crm/internal/domain/entities"
	"painting_crm/internal/domain/numeric"
)

// Metric is a KPI value for the current period compared with the previous one.
type Metric struct {
	Current   float64
	Previous  float64
	Delta     float64
	Direction Direction
	Trend     []TrendPoint
}

// NewMetric wraps a current/previous pair with its delta. A nil trend becomes
// an empty series.
func NewMetric(current, previous float64, trend []TrendPoint) Metric {
	if trend == nil {
		trend = []TrendPoint{}
	}
	d := ComputeDelta(current, previous)
	return Metric{
		Current:   current,
		Previous:  previous,
		Delta:     d.Percent,
		Direction: d.Direction,
		Trend:     trend,
	}
}

func Revenue(jobs []entities.Job) float64 {
	total := 0.0
	for _, j := range jobs {
		total += j.JobValue
	}
	return numeric.Round2(total)
}

func GrossProfit(jobs []entities.Job) float64 {
	total := 0.0
	for _, j := range jobs {
		total += j.ActualProfit()
	}
	return numeric.Round2(total)
}

// GrossMargin is profit as a percentage of revenue.
func GrossMargin(profit, revenue float64) float64 {
	return numeric.Percent(profit, revenue)
}

// ConversionRate is the share of leads that were won.
func ConversionRate(leads []entities.Lead) float64 {
	won := 0
	for _, l := range leads {
		if l.Status == entities.LeadStatusWon {
			won++
		}
	}
	return numeric.Percent(float64(won), float64(len(leads)))
}

func AverageJobValue(revenue float64, jobs int) float64 {
	if jobs == 0 {
		return 0
	}
	return numeric.Round2(revenue / float64(jobs))
}
