package request

import (
	"strings"

	"painting_crm/internal/domain/financials"
)

type LineItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unitPrice" binding:"required"`
}

type RiskModifierRequest struct {
	Name    string  `json:"name" binding:"required"`
	Percent float64 `json:"percent"`
}

// EstimateRequest is the payload of POST /api/estimates/calculate. Rates and
// modifier percents are whole percentages (15 means 15%).
type EstimateRequest struct {
	LineItems      []LineItemRequest     `json:"lineItems" binding:"required,min=1,dive"`
	MaterialsCost  float64               `json:"materialsCost"`
	LaborCost      float64               `json:"laborCost"`
	PayoutPercent  float64               `json:"payoutPercent"`
	CommissionRate float64               `json:"commissionRate"`
	RiskModifiers  []RiskModifierRequest `json:"riskModifiers" binding:"dive"`
}

func (r EstimateRequest) ToInput() financials.EstimateInput {
	in := financials.EstimateInput{
		LineItems:      make([]financials.LineItem, 0, len(r.LineItems)),
		MaterialsCost:  r.MaterialsCost,
		LaborCost:      r.LaborCost,
		PayoutPercent:  r.PayoutPercent,
		CommissionRate: r.CommissionRate,
	}
	for _, li := range r.LineItems {
		in.LineItems = append(in.LineItems, financials.LineItem{
			Description: strings.TrimSpace(li.Description),
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
		})
	}
	for _, m := range r.RiskModifiers {
		in.RiskModifiers = append(in.RiskModifiers, financials.RiskModifier{
			Name:    strings.TrimSpace(m.Name),
			Percent: m.Percent,
		})
	}
	return in
}
