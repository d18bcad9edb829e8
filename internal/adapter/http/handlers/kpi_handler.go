package handlers

import (
	"errors"
	"net/http"

	"painting_crm/internal/adapter/http/dto/response"
	"painting_crm/internal/adapter/http/middleware"
	"painting_crm/internal/usecase"
	"painting_crm/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type KPIHandler struct {
	usecase usecase.IKPIUseCase
	logger  *zap.Logger
}

func NewKPIHandler(uc usecase.IKPIUseCase, logger *zap.Logger) *KPIHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KPIHandler{usecase: uc, logger: logger.With(zap.String("component", "kpi.handler"))}
}

// GetKPIs godoc
// @Summary      Dashboard KPIs
// @Description  Hero and secondary KPIs for the period compared with the previous one, plus lead pipeline, lead sources and subcontractor ranking.
// @Tags         kpis
// @Produce      json
// @Param        period             query   string  false  "Reporting period"  Enums(week, month, quarter, year)  default(month)
// @Param        X-Organization-ID  header  string  false  "Organization scope"
// @Success      200  {object}  response.KPIResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /kpis [get]
func (h *KPIHandler) GetKPIs(c *gin.Context) {
	period, present := c.GetQuery("period")
	if present && period == "" {
		appErr := mapKPIError(usecase.ErrInvalidPeriod)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	report, err := h.usecase.GetReport(c.Request.Context(), middleware.OrganizationID(c), period)
	if err != nil {
		appErr := mapKPIError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Error("failed to fetch kpis",
				zap.Error(err),
				zap.String("period", period),
				zap.String("request_id", middleware.RequestIDFrom(c)),
			)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromKPIReport(report))
}

func mapKPIError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPeriod):
		return pkg.NewDomainErrorSimple("INVALID_PERIOD", "Invalid period. Use week, month, quarter or year", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("KPI_FETCH_FAILED", "Failed to fetch KPIs", err, http.StatusInternalServerError)
	}
}
