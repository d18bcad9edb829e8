package response

import "painting_crm/internal/domain/financials"

type EstimateResponse struct {
	Subtotal      float64 `json:"subtotal"`
	RiskPercent   float64 `json:"riskPercent"`
	Price         float64 `json:"price"`
	MaterialsCost float64 `json:"materialsCost"`
	Payout        float64 `json:"payout"`
	Commission    float64 `json:"commission"`
	GrossProfit   float64 `json:"grossProfit"`
	GrossMargin   float64 `json:"grossMargin"`
	Guardrail     string  `json:"guardrail"`
}

func FromBreakdown(b financials.Breakdown) EstimateResponse {
	return EstimateResponse{
		Subtotal:      b.Subtotal,
		RiskPercent:   b.RiskPercent,
		Price:         b.Price,
		MaterialsCost: b.MaterialsCost,
		Payout:        b.Payout,
		Commission:    b.Commission,
		GrossProfit:   b.GrossProfit,
		GrossMargin:   b.GrossMargin,
		Guardrail:     string(b.Guardrail),
	}
}
