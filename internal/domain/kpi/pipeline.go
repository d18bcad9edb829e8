package kpi

import (
	"painting_crm/internal/domain/entities"
	"painting_crm/internal/domain/numeric"
)

// PipelineStage is the count and estimated value of leads sitting in one
// funnel stage at query time.
type PipelineStage struct {
	Stage entities.LeadStatus
	Label string
	Count int
	Value float64
}

// PipelineStages is the fixed funnel order shown on the dashboard.
var PipelineStages = []struct {
	Status entities.LeadStatus
	Label  string
}{
	{entities.LeadStatusNew, "New"},
	{entities.LeadStatusContacted, "Contacted"},
	{entities.LeadStatusEstimateScheduled, "Estimate Scheduled"},
	{entities.LeadStatusEstimateSent, "Estimate Sent"},
	{entities.LeadStatusWon, "Won"},
	{entities.LeadStatusLost, "Lost"},
}

// BuildPipeline distributes a lead snapshot over PipelineStages. Leads in a
// status outside the funnel are ignored.
func BuildPipeline(leads []entities.Lead) []PipelineStage {
	index := make(map[entities.LeadStatus]int, len(PipelineStages))
	stages := make([]PipelineStage, len(PipelineStages))
	for i, s := range PipelineStages {
		stages[i] = PipelineStage{Stage: s.Status, Label: s.Label}
		index[s.Status] = i
	}

	for _, l := range leads {
		i, ok := index[l.Status]
		if !ok {
			continue
		}
		stages[i].Count++
		stages[i].Value += l.EstimatedValue
	}

	for i := range stages {
		stages[i].Value = numeric.Round2(stages[i].Value)
	}
	return stages
}
