package kpi

import (
	"sort"
	"time"

	"painting_crm/internal/domain/entities"
	"painting_crm/internal/domain/numeric"
)

// MaxTrendPoints caps the length of every trend series.
const MaxTrendPoints = 30

// TrendPoint is one sample of a time series; Date is the bucket start (UTC day).
type TrendPoint struct {
	Date  time.Time
	Value float64
}

// bucketStep is one day, or one week for yearly reports.
func bucketStep(p Period) int {
	if p == PeriodYear {
		return 7
	}
	return 1
}

// trendBuckets lists the bucket starts covering r, keeping the most recent
// MaxTrendPoints of them.
func trendBuckets(r entities.DateRange, p Period) []time.Time {
	step := bucketStep(p)
	start := truncateDay(r.Start)

	var buckets []time.Time
	for d := start; d.Before(r.End); d = d.AddDate(0, 0, step) {
		buckets = append(buckets, d)
	}
	if len(buckets) > MaxTrendPoints {
		buckets = buckets[len(buckets)-MaxTrendPoints:]
	}
	return buckets
}

// BuildTrend aggregates rows into per-bucket sums over r.
//
// A row whose day matches a bucket start lands in that bucket; any other row
// folds into the bucket closest to it in time (ties go to the earlier bucket).
// Rows for which dateOf reports false are skipped.
//
// When the range spans more than MaxTrendPoints buckets (quarter, and year
// once past week 30) only the most recent buckets are kept, so every older
// row folds into the first point. That point then carries the sum of the
// whole uncovered head of the range and reads as a spike on a chart.
func BuildTrend[T any](rows []T, r entities.DateRange, p Period, dateOf func(T) (time.Time, bool), valueOf func(T) float64) []TrendPoint {
	buckets := trendBuckets(r, p)
	points := make([]TrendPoint, len(buckets))
	for i, b := range buckets {
		points[i] = TrendPoint{Date: b}
	}
	if len(buckets) == 0 {
		return points
	}

	for _, row := range rows {
		t, ok := dateOf(row)
		if !ok {
			continue
		}
		idx := nearestBucket(buckets, truncateDay(t))
		points[idx].Value += valueOf(row)
	}

	for i := range points {
		points[i].Value = numeric.Round2(points[i].Value)
	}
	return points
}

// nearestBucket finds the bucket equal to day or, failing that, the one at the
// smallest distance. buckets must be sorted ascending and non-empty.
func nearestBucket(buckets []time.Time, day time.Time) int {
	i := sort.Search(len(buckets), func(i int) bool {
		return !buckets[i].Before(day)
	})
	switch {
	case i < len(buckets) && buckets[i].Equal(day):
		return i
	case i == 0:
		return 0
	case i == len(buckets):
		return len(buckets) - 1
	}
	if day.Sub(buckets[i-1]) <= buckets[i].Sub(day) {
		return i - 1
	}
	return i
}

// RatioTrend divides two aligned series point by point as a percentage with
// one decimal. Points whose denominator is zero are 0.
func RatioTrend(numerator, denominator []TrendPoint) []TrendPoint {
	points := make([]TrendPoint, len(denominator))
	for i, d := range denominator {
		points[i] = TrendPoint{Date: d.Date}
		if i < len(numerator) {
			points[i].Value = numeric.Percent(numerator[i].Value, d.Value)
		}
	}
	return points
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
