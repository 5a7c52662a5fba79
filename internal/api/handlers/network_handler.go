package handlers

import (
	"net/http"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

type NetworkHandler struct {
	service *service.RebalanceService
}

func NewNetworkHandler(service *service.RebalanceService) *NetworkHandler {
	return &NetworkHandler{service: service}
}

func (h *NetworkHandler) GetLocations(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Locations(c.Request.Context()))
}

func (h *NetworkHandler) GetLocation(c *gin.Context) {
	loc, err := h.service.Location(c.Param("id"))
	if err != nil {
		writeError(c, "failed to fetch location", err)
		return
	}
	c.JSON(http.StatusOK, loc)
}

func (h *NetworkHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Overview(c.Request.Context()))
}
