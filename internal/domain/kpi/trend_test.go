package kpi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"painting_crm/internal/domain/entities"
)

type sample struct {
	at    time.Time
	value float64
	dated bool
}

func sampleDate(s sample) (time.Time, bool) { return s.at, s.dated }
func sampleValue(s sample) float64         { return s.value }

func TestBuildTrend_DailyBuckets(t *testing.T) {
	r := entities.DateRange{Start: day(2026, 10, 12), End: day(2026, 10, 19)}
	rows := []sample{
		{at: day(2026, 10, 12).Add(9 * time.Hour), value: 100, dated: true},
		{at: day(2026, 10, 12).Add(17 * time.Hour), value: 50, dated: true},
		{at: day(2026, 10, 18).Add(23 * time.Hour), value: 25, dated: true},
		{value: 999},
	}

	points := BuildTrend(rows, r, PeriodWeek, sampleDate, sampleValue)
	require.Len(t, points, 7)
	assert.Equal(t, day(2026, 10, 12), points[0].Date)
	assert.Equal(t, 150.0, points[0].Value)
	assert.Equal(t, 25.0, points[6].Value)

	total := 0.0
	for _, p := range points {
		total += p.Value
	}
	assert.Equal(t, 175.0, total)
}

func TestBuildTrend_CapsAtMaxPoints(t *testing.T) {
	for _, p := range []Period{PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear} {
		_, ranges := ResolvePeriod(p, time.Date(2026, time.December, 31, 12, 0, 0, 0, time.UTC))
		points := BuildTrend([]sample{}, ranges.Current, p, sampleDate, sampleValue)
		assert.LessOrEqual(t, len(points), MaxTrendPoints, string(p))
		assert.NotNil(t, points)
	}
}

func TestBuildTrend_QuarterKeepsMostRecentBuckets(t *testing.T) {
	r := entities.DateRange{Start: day(2026, 7, 21), End: day(2026, 10, 19)}
	rows := []sample{
		{at: day(2026, 8, 1), value: 10, dated: true},
		{at: day(2026, 10, 18), value: 5, dated: true},
	}

	points := BuildTrend(rows, r, PeriodQuarter, sampleDate, sampleValue)
	require.Len(t, points, MaxTrendPoints)
	assert.Equal(t, day(2026, 9, 19), points[0].Date)
	assert.Equal(t, day(2026, 10, 18), points[len(points)-1].Date)
	// Older rows fold into the earliest kept bucket.
	assert.Equal(t, 10.0, points[0].Value)
	assert.Equal(t, 5.0, points[len(points)-1].Value)
}

func TestBuildTrend_WeeklyBucketsFoldToNearest(t *testing.T) {
	r := entities.DateRange{Start: day(2026, 1, 1), End: day(2026, 2, 1)}
	rows := []sample{
		{at: day(2026, 1, 1), value: 1, dated: true},  // exact bucket
		{at: day(2026, 1, 3), value: 2, dated: true},  // 2 days after Jan 1
		{at: day(2026, 1, 6), value: 4, dated: true},  // 1 day before Jan 8
		{at: day(2026, 1, 29), value: 8, dated: true}, // exact last bucket
		{at: day(2026, 1, 31), value: 16, dated: true},
	}

	points := BuildTrend(rows, r, PeriodYear, sampleDate, sampleValue)
	require.Len(t, points, 5)
	assert.Equal(t, []time.Time{day(2026, 1, 1), day(2026, 1, 8), day(2026, 1, 15), day(2026, 1, 22), day(2026, 1, 29)},
		[]time.Time{points[0].Date, points[1].Date, points[2].Date, points[3].Date, points[4].Date})
	assert.Equal(t, 3.0, points[0].Value)
	assert.Equal(t, 4.0, points[1].Value)
	assert.Equal(t, 24.0, points[4].Value)
}

func TestNearestBucket_TieGoesToEarlier(t *testing.T) {
	buckets := []time.Time{day(2026, 1, 1), day(2026, 1, 3)}
	assert.Equal(t, 0, nearestBucket(buckets, day(2026, 1, 2)))
	assert.Equal(t, 1, nearestBucket(buckets, day(2026, 1, 3)))
	assert.Equal(t, 0, nearestBucket(buckets, day(2025, 12, 1)))
	assert.Equal(t, 1, nearestBucket(buckets, day(2026, 6, 1)))
}

func TestRatioTrend(t *testing.T) {
	den := []TrendPoint{{Date: day(2026, 1, 1), Value: 1000}, {Date: day(2026, 1, 2), Value: 0}}
	num := []TrendPoint{{Date: day(2026, 1, 1), Value: 400}, {Date: day(2026, 1, 2), Value: 50}}
	got := RatioTrend(num, den)
	require.Len(t, got, 2)
	assert.Equal(t, 40.0, got[0].Value)
	assert.Equal(t, 0.0, got[1].Value)
}

func TestBuildTrend_OlderRowsFoldIntoFirstPoint(t *testing.T) {
	r := entities.DateRange{Start: day(2026, 7, 21), End: day(2026, 10, 19)}
	var rows []sample
	for d := r.Start; d.Before(r.End); d = d.AddDate(0, 0, 1) {
		rows = append(rows, sample{at: d.Add(10 * time.Hour), value: 1, dated: true})
	}
	require.Len(t, rows, 90)

	points := BuildTrend(rows, r, PeriodQuarter, sampleDate, sampleValue)
	require.Len(t, points, MaxTrendPoints)
	assert.Equal(t, day(2026, 9, 19), points[0].Date)
	assert.Equal(t, 61.0, points[0].Value)
	assert.Equal(t, 1.0, points[1].Value)
	assert.Equal(t, 1.0, points[len(points)-1].Value)
}
