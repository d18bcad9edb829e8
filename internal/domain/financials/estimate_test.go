package financials

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	in := EstimateInput{
		LineItems: []LineItem{
			{Description: "Living room walls", Quantity: 2, UnitPrice: 1500},
			{Description: "Trim", Quantity: 1, UnitPrice: 1000},
			{Description: "Free touch-up", Quantity: 1, UnitPrice: 0},
		},
		MaterialsCost:  600,
		PayoutPercent:  35,
		CommissionRate: 5,
		RiskModifiers: []RiskModifier{
			{Name: "Lead paint", Percent: 15},
			{Name: "Repeat customer", Percent: -5},
		},
	}

	b, err := Calculate(in, DefaultGuardrails)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, b.Subtotal)
	assert.Equal(t, 10.0, b.RiskPercent)
	assert.Equal(t, 4400.0, b.Price)
	assert.Equal(t, 1540.0, b.Payout)
	assert.Equal(t, 220.0, b.Commission)
	assert.Equal(t, 2040.0, b.GrossProfit)
	assert.Equal(t, 46.4, b.GrossMargin)
	assert.Equal(t, GuardrailOK, b.Guardrail)
}

func TestCalculate_LaborCostOverridesPayoutPercent(t *testing.T) {
	b, err := Calculate(EstimateInput{
		LineItems:     []LineItem{{Quantity: 1, UnitPrice: 1000}},
		LaborCost:     450,
		PayoutPercent: 10,
	}, DefaultGuardrails)
	require.NoError(t, err)
	assert.Equal(t, 450.0, b.Payout)
	assert.Equal(t, 550.0, b.GrossProfit)
	assert.Equal(t, 55.0, b.GrossMargin)
}

func TestCalculate_Guardrails(t *testing.T) {
	cases := []struct {
		name   string
		labor  float64
		status GuardrailStatus
	}{
		{"at target", 600, GuardrailOK},
		{"between floor and target", 650, GuardrailWarning},
		{"at floor", 700, GuardrailWarning},
		{"below floor", 701, GuardrailBlocked},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Calculate(EstimateInput{
				LineItems: []LineItem{{Quantity: 1, UnitPrice: 1000}},
				LaborCost: tc.labor,
			}, DefaultGuardrails)
			require.NoError(t, err)
			assert.Equal(t, tc.status, b.Guardrail)
		})
	}
}

func TestCalculate_Validation(t *testing.T) {
	item := []LineItem{{Quantity: 1, UnitPrice: 100}}
	cases := []struct {
		name string
		in   EstimateInput
		err  error
	}{
		{"no items", EstimateInput{}, ErrEmptyEstimate},
		{"only free items", EstimateInput{LineItems: []LineItem{{Quantity: 3, UnitPrice: 0}}}, ErrEmptyEstimate},
		{"negative materials", EstimateInput{LineItems: item, MaterialsCost: -1}, ErrNegativeCost},
		{"negative labor", EstimateInput{LineItems: item, LaborCost: -1}, ErrNegativeCost},
		{"payout over 100", EstimateInput{LineItems: item, PayoutPercent: 101}, ErrRateOutOfRange},
		{"negative commission", EstimateInput{LineItems: item, CommissionRate: -2}, ErrRateOutOfRange},
		{"modifiers wipe price", EstimateInput{LineItems: item, RiskModifiers: []RiskModifier{{Percent: -100}}}, ErrNonPositivePrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Calculate(tc.in, DefaultGuardrails)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
		})
	}
}
