package handlers

import (
	"net/http"
	"strconv"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	service *service.RebalanceService
}

func NewRouteHandler(service *service.RebalanceService) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) GetRoutes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"routes":    h.service.Routes(),
		"analyzing": h.service.Analyzing(),
	})
}

// Analyze runs a pass inline, or in the background with ?async=true
func (h *RouteHandler) Analyze(c *gin.Context) {
	if async, _ := strconv.ParseBool(c.DefaultQuery("async", "false")); async {
		started := h.service.AnalyzeAsync(c.Request.Context())
		c.JSON(http.StatusAccepted, gin.H{"started": started, "analyzing": true})
		return
	}

	routes, err := h.service.Analyze(c.Request.Context())
	if err != nil {
		writeError(c, "failed to analyze network", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes, "analyzing": false})
}

func (h *RouteHandler) Execute(c *gin.Context) {
	rec, err := h.service.ExecuteRoute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "failed to execute route", err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
