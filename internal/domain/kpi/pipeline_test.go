package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"painting_crm/internal/domain/entities"
)

func TestBuildPipeline(t *testing.T) {
	leads := []entities.Lead{
		{Status: entities.LeadStatusNew, EstimatedValue: 1200},
		{Status: entities.LeadStatusNew, EstimatedValue: 800.5},
		{Status: entities.LeadStatusEstimateSent, EstimatedValue: 4500},
		{Status: entities.LeadStatusWon, EstimatedValue: 3000},
		{Status: "archived", EstimatedValue: 99999},
	}

	stages := BuildPipeline(leads)
	require.Len(t, stages, len(PipelineStages))
	for i, s := range PipelineStages {
		assert.Equal(t, s.Status, stages[i].Stage)
		assert.Equal(t, s.Label, stages[i].Label)
	}

	assert.Equal(t, 2, stages[0].Count)
	assert.Equal(t, 2000.5, stages[0].Value)
	assert.Equal(t, 0, stages[1].Count)
	assert.Equal(t, 1, stages[3].Count)
	assert.Equal(t, 4500.0, stages[3].Value)
	assert.Equal(t, 1, stages[4].Count)
}

func TestBuildPipeline_Empty(t *testing.T) {
	stages := BuildPipeline(nil)
	require.Len(t, stages, len(PipelineStages))
	for _, s := range stages {
		assert.Zero(t, s.Count)
		assert.Zero(t, s.Value)
	}
}
