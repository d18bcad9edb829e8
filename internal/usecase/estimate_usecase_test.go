package usecase

import (
	"context"
	"errors"
	"testing"

	"painting_crm/internal/domain/financials"

	"go.uber.org/zap"
)

func TestNewEstimateUseCase(t *testing.T) {
	t.Run("floor above target", func(t *testing.T) {
		_, err := NewEstimateUseCase(financials.Guardrails{TargetMargin: 20, FloorMargin: 30}, nil)
		if !errors.Is(err, ErrInvalidGuardrails) {
			t.Fatalf("expected ErrInvalidGuardrails, got %v", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		uc, err := NewEstimateUseCase(financials.DefaultGuardrails, nil)
		if err != nil || uc == nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_CalculateEstimate(t *testing.T) {
	uc, err := NewEstimateUseCase(financials.Guardrails{TargetMargin: 45, FloorMargin: 35}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("invalid input", func(t *testing.T) {
		_, err := uc.CalculateEstimate(context.Background(), financials.EstimateInput{})
		if !errors.Is(err, ErrInvalidEstimateInput) || !errors.Is(err, financials.ErrEmptyEstimate) {
			t.Fatalf("expected ErrInvalidEstimateInput wrapping ErrEmptyEstimate, got %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := uc.CalculateEstimate(ctx, financials.EstimateInput{})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("uses configured guardrails", func(t *testing.T) {
		res, err := uc.CalculateEstimate(context.Background(), financials.EstimateInput{
			LineItems: []financials.LineItem{{Description: "  Exterior  ", Quantity: 1, UnitPrice: 1000}},
			LaborCost: 600,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.GrossMargin != 40 || res.Guardrail != financials.GuardrailWarning {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("leaves caller line items untouched", func(t *testing.T) {
		items := []financials.LineItem{{Description: "  Trim work  ", Quantity: 2, UnitPrice: 150}}
		if _, err := uc.CalculateEstimate(context.Background(), financials.EstimateInput{LineItems: items}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if items[0].Description != "  Trim work  " {
			t.Fatalf("caller slice was modified: %q", items[0].Description)
		}
	})
}
