package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbilling/internal/service"
)

// InventoryHandler handles stock tracking endpoints.
type InventoryHandler struct {
	inventoryService service.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// List handles GET /api/v1/inventory
func (h *InventoryHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	inventory, err := h.inventoryService.List(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inventory)
}

// GetByProduct handles GET /api/v1/inventory/:productId
func (h *InventoryHandler) GetByProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	productID, ok := pathUUID(c, "productId")
	if !ok {
		return
	}

	inv, err := h.inventoryService.GetByProduct(c.Request.Context(), userID, productID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inv)
}

// AddLog handles POST /api/v1/inventory/:productId/logs
func (h *InventoryHandler) AddLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	productID, ok := pathUUID(c, "productId")
	if !ok {
		return
	}

	var input service.AddStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	logEntry, err := h.inventoryService.AddLog(c.Request.Context(), userID, productID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, logEntry)
}

// ListLogs handles GET /api/v1/inventory/:productId/logs
func (h *InventoryHandler) ListLogs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	productID, ok := pathUUID(c, "productId")
	if !ok {
		return
	}

	logs, err := h.inventoryService.ListLogs(c.Request.Context(), userID, productID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, logs)
}
