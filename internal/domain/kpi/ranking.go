package kpi

import (
	"sort"

	"painting_crm/internal/domain/entities"
	"painting_crm/internal/domain/numeric"
)

// MaxRankedSubcontractors is the length of the leaderboard.
const MaxRankedSubcontractors = 5

// SubcontractorRank is one leaderboard entry.
type SubcontractorRank struct {
	ID            string
	Name          string
	JobsCompleted int
	Revenue       float64
	AvgRating     float64
	ReviewCount   int
}

// RankSubcontractors joins completed jobs of the period with all-time reviews
// per active subcontractor. Subcontractors with neither jobs nor reviews are
// left out. Entries are ordered by review count, then completed jobs (both
// descending), then name.
func RankSubcontractors(subs []entities.Subcontractor, jobs []entities.Job, reviews []entities.Review) []SubcontractorRank {
	type ratingSum struct {
		total int
		count int
	}

	jobsBySub := map[string]int{}
	revenueBySub := map[string]float64{}
	for _, j := range jobs {
		if j.SubcontractorID == "" || !j.IsCompleted() {
			continue
		}
		jobsBySub[j.SubcontractorID]++
		revenueBySub[j.SubcontractorID] += j.JobValue
	}

	ratings := map[string]ratingSum{}
	for _, r := range reviews {
		if r.SubcontractorID == nil || *r.SubcontractorID == "" {
			continue
		}
		rs := ratings[*r.SubcontractorID]
		rs.total += r.Rating
		rs.count++
		ratings[*r.SubcontractorID] = rs
	}

	ranking := make([]SubcontractorRank, 0, len(subs))
	for _, s := range subs {
		if !s.IsActive {
			continue
		}
		jobsCompleted := jobsBySub[s.ID]
		rs := ratings[s.ID]
		if jobsCompleted == 0 && rs.count == 0 {
			continue
		}

		entry := SubcontractorRank{
			ID:            s.ID,
			Name:          s.Name,
			JobsCompleted: jobsCompleted,
			Revenue:       numeric.Round2(revenueBySub[s.ID]),
			ReviewCount:   rs.count,
		}
		if rs.count > 0 {
			entry.AvgRating = numeric.Round1(float64(rs.total) / float64(rs.count))
		}
		ranking = append(ranking, entry)
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		a, b := ranking[i], ranking[j]
		if a.ReviewCount != b.ReviewCount {
			return a.ReviewCount > b.ReviewCount
		}
		if a.JobsCompleted != b.JobsCompleted {
			return a.JobsCompleted > b.JobsCompleted
		}
		return a.Name < b.Name
	})

	if len(ranking) > MaxRankedSubcontractors {
		ranking = ranking[:MaxRankedSubcontractors]
	}
	return ranking
}
