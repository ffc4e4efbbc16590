package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gramavoice/internal/service"
)

type AnalyticsHandler interface {
	GetDashboard(c *gin.Context)
}

type analyticsHandler struct {
	gateway *service.Gateway
	logger  *zap.Logger
}

func NewAnalyticsHandler(gateway *service.Gateway, logger *zap.Logger) AnalyticsHandler {
	return &analyticsHandler{gateway: gateway, logger: logger}
}

type dashboardRequest struct {
	Days int `json:"days"`
}

// GetDashboard handles POST /api/dashboard-data
func (h *analyticsHandler) GetDashboard(c *gin.Context) {
	req := dashboardRequest{Days: 7}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid dashboard request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	data, err := h.gateway.Dashboard(req.Days)
	if err != nil {
		h.logger.Error("Failed to get dashboard data", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dashboard data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
