package kpi

import (
	"math"
	"sort"
	"strings"

	"painting_crm/internal/domain/entities"
)

// UnknownSource labels leads captured without a channel.
const UnknownSource = "unknown"

// LeadSource is one row of the lead-source attribution table.
type LeadSource struct {
	Source     string
	Count      int
	Percentage float64
}

// AttributeSources tallies lead_created events by channel. When the period has
// no such events it falls back to the source recorded on the leads
// themselves. It returns the rows sorted by count (desc) then name, and the
// number of leads attributed.
func AttributeSources(events []entities.LeadEvent, leads []entities.Lead) ([]LeadSource, int) {
	counts := map[string]int{}
	total := 0
	for _, e := range events {
		if e.EventType != entities.LeadEventCreated {
			continue
		}
		counts[sourceName(e.Channel)]++
		total++
	}

	if total == 0 {
		for _, l := range leads {
			counts[sourceName(l.Source)]++
			total++
		}
	}

	if total == 0 {
		return []LeadSource{}, 0
	}

	sources := make([]LeadSource, 0, len(counts))
	for name, c := range counts {
		sources = append(sources, LeadSource{Source: name, Count: c})
	}
	sort.Slice(sources, func(i, j int) bool {
		if sources[i].Count != sources[j].Count {
			return sources[i].Count > sources[j].Count
		}
		return sources[i].Source < sources[j].Source
	})

	apportionPercentages(sources, total)
	return sources, total
}

func sourceName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return UnknownSource
	}
	return s
}

// apportionPercentages assigns one-decimal percentages that add up to exactly
// 100.0 using the largest remainder method over tenths of a percent.
func apportionPercentages(sources []LeadSource, total int) {
	const tenths = 1000

	type share struct {
		idx       int
		floor     int
		remainder float64
	}

	shares := make([]share, len(sources))
	assigned := 0
	for i, s := range sources {
		exact := float64(s.Count) * tenths / float64(total)
		f := math.Floor(exact)
		shares[i] = share{idx: i, floor: int(f), remainder: exact - f}
		assigned += int(f)
	}

	order := make([]share, len(shares))
	copy(order, shares)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].remainder > order[j].remainder
	})
	for k := 0; k < tenths-assigned && k < len(order); k++ {
		shares[order[k].idx].floor++
	}

	for _, sh := range shares {
		sources[sh.idx].Percentage = float64(sh.floor) / 10
	}
}
