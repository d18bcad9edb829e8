package kpi

import (
	"errors"
	"time"

	"painting_crm/internal/domain/entities"
)

var ErrInvalidPeriod = errors.New("invalid period")

// Period is the reporting window requested by the dashboard.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// DefaultPeriod is used when the caller does not ask for one.
const DefaultPeriod = PeriodMonth

const (
	weekDays    = 7
	quarterDays = 90
)

func (p Period) Valid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return true
	}
	return false
}

// ParsePeriod validates a period token. An empty token selects DefaultPeriod;
// anything else must match one of the tokens exactly, surrounding spaces
// included.
func ParsePeriod(token string) (Period, error) {
	if token == "" {
		return DefaultPeriod, nil
	}
	p := Period(token)
	if !p.Valid() {
		return "", ErrInvalidPeriod
	}
	return p, nil
}

// PeriodRanges holds the current window and the previous window it is
// compared against. Both are half-open and disjoint.
type PeriodRanges struct {
	Current  entities.DateRange
	Previous entities.DateRange
}

// ResolvePeriod computes the date ranges for a period anchored to now (UTC).
// The current range ends at the start of tomorrow so that today is included.
//
// Unknown tokens resolve as DefaultPeriod without error; callers that must
// reject bad input validate with ParsePeriod first.
func ResolvePeriod(p Period, now time.Time) (Period, PeriodRanges) {
	if !p.Valid() {
		p = DefaultPeriod
	}

	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := today.AddDate(0, 0, 1)

	switch p {
	case PeriodWeek:
		return p, trailingRanges(end, weekDays)
	case PeriodQuarter:
		return p, trailingRanges(end, quarterDays)
	case PeriodYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return p, alignedRanges(start, end, start.AddDate(-1, 0, 0))
	default:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return p, alignedRanges(start, end, start.AddDate(0, -1, 0))
	}
}

func trailingRanges(end time.Time, days int) PeriodRanges {
	start := end.AddDate(0, 0, -days)
	return PeriodRanges{
		Current:  entities.DateRange{Start: start, End: end},
		Previous: entities.DateRange{Start: start.AddDate(0, 0, -days), End: start},
	}
}

// alignedRanges builds a calendar-aligned current window and a previous window
// of the same elapsed length starting at prevStart, clamped so the two never
// overlap.
func alignedRanges(start, end, prevStart time.Time) PeriodRanges {
	prevEnd := prevStart.Add(end.Sub(start))
	if prevEnd.After(start) {
		prevEnd = start
	}
	return PeriodRanges{
		Current:  entities.DateRange{Start: start, End: end},
		Previous: entities.DateRange{Start: prevStart, End: prevEnd},
	}
}
