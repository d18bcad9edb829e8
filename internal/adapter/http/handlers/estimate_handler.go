package handlers

import (
	"errors"
	"net/http"

	request "painting_crm/internal/adapter/http/dto/request"
	response "painting_crm/internal/adapter/http/dto/response"
	"painting_crm/internal/domain/financials"
	"painting_crm/internal/usecase"
	"painting_crm/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler prices estimates before they are sent to the customer.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CalculateEstimate godoc
// @Summary      Price an estimate
// @Description  Computes price, payout, commission, gross profit, margin and the guardrail status for a draft estimate. Nothing is stored.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        payload  body      request.EstimateRequest  true  "Draft estimate"
// @Success      200      {object}  response.EstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /estimates/calculate [post]
func (h *EstimateHandler) CalculateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	b, err := h.usecase.CalculateEstimate(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBreakdown(b))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, financials.ErrEmptyEstimate):
		return pkg.NewDomainErrorSimple("EMPTY_ESTIMATE", "Estimate has no billable line items", http.StatusBadRequest)
	case errors.Is(err, financials.ErrNonPositivePrice):
		return pkg.NewDomainErrorSimple("NON_POSITIVE_PRICE", "Risk modifiers reduce the price to zero or below", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateInput):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
