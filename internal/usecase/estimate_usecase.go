package usecase

import (
	"context"
	"errors"
	"strings"

	"painting_crm/internal/domain/financials"

	"go.uber.org/zap"
)

var (
	ErrInvalidEstimateInput = errors.New("invalid estimate input")
	ErrInvalidGuardrails    = errors.New("margin floor must not exceed target")
)

// IEstimateUseCase prices painting estimates and checks them against the
// organization's margin guardrails.
//
//go:generate mockgen -source=estimate_usecase.go -destination=../adapter/http/handlers/mocks/estimate_usecase_mock.go -package=mocks

type IEstimateUseCase interface {
	CalculateEstimate(ctx context.Context, in financials.EstimateInput) (financials.Breakdown, error)
}

type EstimateUseCase struct {
	guardrails financials.Guardrails
	logger     *zap.Logger
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(guardrails financials.Guardrails, logger *zap.Logger) (*EstimateUseCase, error) {
	if guardrails.FloorMargin > guardrails.TargetMargin {
		return nil, ErrInvalidGuardrails
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EstimateUseCase{
		guardrails: guardrails,
		logger:     logger.With(zap.String("component", "estimate.usecase")),
	}, nil
}

func (u *EstimateUseCase) CalculateEstimate(ctx context.Context, in financials.EstimateInput) (financials.Breakdown, error) {
	if err := ctx.Err(); err != nil {
		return financials.Breakdown{}, err
	}

	items := make([]financials.LineItem, len(in.LineItems))
	for i, item := range in.LineItems {
		item.Description = strings.TrimSpace(item.Description)
		items[i] = item
	}
	in.LineItems = items

	b, err := financials.Calculate(in, u.guardrails)
	if err != nil {
		u.logger.Debug("estimate rejected", zap.Error(err), zap.Int("line_items", len(in.LineItems)))
		return financials.Breakdown{}, errors.Join(ErrInvalidEstimateInput, err)
	}

	if b.Guardrail != financials.GuardrailOK {
		u.logger.Warn("estimate below target margin",
			zap.Float64("price", b.Price),
			zap.Float64("gross_margin", b.GrossMargin),
			zap.String("guardrail", string(b.Guardrail)),
		)
	}
	return b, nil
}
