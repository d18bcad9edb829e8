package routes

import (
	"painting_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathKPIs      = "/kpis"
	PathEstimates = "/estimates"
)

func addKPIRoutes(rg *gin.RouterGroup, h *handlers.KPIHandler) {
	rg.GET(PathKPIs, h.GetKPIs)
}

func addEstimateRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("/calculate", h.CalculateEstimate)
	}
}
