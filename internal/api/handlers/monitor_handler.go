package handlers

import (
	"net/http"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/monitor"
	"github.com/gin-gonic/gin"
)

type MonitorHandler struct {
	monitor *monitor.Monitor
}

func NewMonitorHandler(m *monitor.Monitor) *MonitorHandler {
	return &MonitorHandler{monitor: m}
}

func (h *MonitorHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitor.Systems())
}

func (h *MonitorHandler) GetIntegrations(c *gin.Context) {
	c.JSON(http.StatusOK, monitor.Integrations())
}

func (h *MonitorHandler) GetPredictions(c *gin.Context) {
	c.JSON(http.StatusOK, monitor.Predictions())
}
