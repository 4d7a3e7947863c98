package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/imoveis-app/imoveis_backend/internal/core/ports/services"
	"github.com/imoveis-app/imoveis_backend/internal/dto"
	"github.com/imoveis-app/imoveis_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler handles HTTP requests for the dashboard summary.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// RegisterDashboardRoutes registers the dashboard route.
func RegisterDashboardRoutes(rg *gin.RouterGroup, ds portssvc.DashboardSvcFacade) {
	h := &dashboardHandler{dashboardService: ds}
	rg.GET("/dashboard", h.getDashboardStats)
}

// getDashboardStats godoc
// @Summary Get dashboard statistics
// @Description Aggregates the current portfolio snapshot: occupancy counts, income, value and contracts expiring within 90 days
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 500 {object} map[string]string "Failed to compute dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboardStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.dashboardService.GetDashboardStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute dashboard stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}
