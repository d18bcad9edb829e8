package financials

import (
	"errors"

	"painting_crm/internal/domain/numeric"
)

var (
	ErrEmptyEstimate    = errors.New("estimate has no billable line items")
	ErrNegativeCost     = errors.New("costs must not be negative")
	ErrRateOutOfRange   = errors.New("rates must be between 0 and 100")
	ErrNonPositivePrice = errors.New("risk modifiers reduce price to zero or below")
)

// LineItem is one billable row of an estimate (a room, a surface, prep work).
type LineItem struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

// RiskModifier adjusts the price by a percentage (e.g. "lead paint +15",
// "repeat customer -5"). Modifiers stack additively.
type RiskModifier struct {
	Name    string
	Percent float64
}

type EstimateInput struct {
	LineItems      []LineItem
	MaterialsCost  float64
	LaborCost      float64
	PayoutPercent  float64
	CommissionRate float64
	RiskModifiers  []RiskModifier
}

// Guardrails are the margin thresholds, in percent, an estimate is checked
// against.
type Guardrails struct {
	TargetMargin float64
	FloorMargin  float64
}

var DefaultGuardrails = Guardrails{TargetMargin: 40, FloorMargin: 30}

type GuardrailStatus string

const (
	GuardrailOK      GuardrailStatus = "ok"
	GuardrailWarning GuardrailStatus = "warning"
	GuardrailBlocked GuardrailStatus = "blocked"
)

// Breakdown is the priced estimate.
type Breakdown struct {
	Subtotal      float64
	RiskPercent   float64
	Price         float64
	MaterialsCost float64
	Payout        float64
	Commission    float64
	GrossProfit   float64
	GrossMargin   float64
	Guardrail     GuardrailStatus
}

// Calculate prices an estimate.
//
// Line items with a non-positive quantity or unit price are ignored. The
// subcontractor payout is the explicit labor cost when given, otherwise
// PayoutPercent of the price. Commission is CommissionRate of the price.
func Calculate(in EstimateInput, g Guardrails) (Breakdown, error) {
	if in.MaterialsCost < 0 || in.LaborCost < 0 {
		return Breakdown{}, ErrNegativeCost
	}
	if !inPercentRange(in.PayoutPercent) || !inPercentRange(in.CommissionRate) {
		return Breakdown{}, ErrRateOutOfRange
	}

	subtotal := Subtotal(in.LineItems)
	if subtotal <= 0 {
		return Breakdown{}, ErrEmptyEstimate
	}

	risk := StackRiskModifiers(in.RiskModifiers)
	price := numeric.Round2(subtotal * (1 + risk/100))
	if price <= 0 {
		return Breakdown{}, ErrNonPositivePrice
	}

	payout := in.LaborCost
	if payout <= 0 {
		payout = price * in.PayoutPercent / 100
	}
	payout = numeric.Round2(payout)
	commission := numeric.Round2(price * in.CommissionRate / 100)
	materials := numeric.Round2(in.MaterialsCost)

	profit := numeric.Round2(price - materials - payout - commission)
	margin := numeric.Percent(profit, price)

	return Breakdown{
		Subtotal:      subtotal,
		RiskPercent:   risk,
		Price:         price,
		MaterialsCost: materials,
		Payout:        payout,
		Commission:    commission,
		GrossProfit:   profit,
		GrossMargin:   margin,
		Guardrail:     g.Check(margin),
	}, nil
}

// Subtotal sums quantity times unit price over billable line items.
func Subtotal(items []LineItem) float64 {
	total := 0.0
	for _, it := range items {
		if it.Quantity > 0 && it.UnitPrice > 0 {
			total += it.Quantity * it.UnitPrice
		}
	}
	return numeric.Round2(total)
}

// StackRiskModifiers adds up modifier percentages.
func StackRiskModifiers(mods []RiskModifier) float64 {
	total := 0.0
	for _, m := range mods {
		total += m.Percent
	}
	return numeric.Round2(total)
}

// Check classifies a margin against the thresholds.
func (g Guardrails) Check(margin float64) GuardrailStatus {
	switch {
	case margin >= g.TargetMargin:
		return GuardrailOK
	case margin >= g.FloorMargin:
		return GuardrailWarning
	default:
		return GuardrailBlocked
	}
}

func inPercentRange(v float64) bool {
	return v >= 0 && v <= 100
}
