package handlers

import (
	"net/http"
	"strings"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

type TransferHandler struct {
	service *service.RebalanceService
}

func NewTransferHandler(service *service.RebalanceService) *TransferHandler {
	return &TransferHandler{service: service}
}

func (h *TransferHandler) Create(c *gin.Context) {
	var req domain.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transfer request", "details": err.Error()})
		return
	}

	rec, err := h.service.ManualTransfer(c.Request.Context(), req)
	if err != nil {
		writeError(c, "transfer rejected", err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *TransferHandler) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.History())
}

func (h *TransferHandler) GetOptions(c *gin.Context) {
	from := strings.TrimSpace(c.Query("from"))
	if from == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from is required"})
		return
	}

	options, err := h.service.TransferOptions(from)
	if err != nil {
		writeError(c, "failed to fetch transfer options", err)
		return
	}
	c.JSON(http.StatusOK, options)
}
