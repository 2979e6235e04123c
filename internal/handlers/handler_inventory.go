package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/firm_books/internal/core/ports/services"
	"github.com/SscSPs/firm_books/internal/dto"
	"github.com/SscSPs/firm_books/internal/middleware"
	"github.com/gin-gonic/gin"
)

// inventoryHandler handles HTTP requests related to stock items.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

// registerInventoryRoutes registers routes related to stock items
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := &inventoryHandler{inventoryService: inventoryService}

	inventory := rg.Group("/inventory")
	{
		inventory.POST("", h.createItem)
		inventory.GET("", h.listItems)
		inventory.GET("/summary", h.getSummary)
		inventory.GET("/:itemID", h.getItem)
		inventory.PUT("/:itemID", h.updateItem)
		inventory.DELETE("/:itemID", h.deleteItem)
	}
}

// createItem godoc
// @Summary Add a stock item
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   item body dto.InventoryItemRequest true "Stock item"
// @Success 201 {object} dto.InventoryItemResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Security BearerAuth
// @Router /inventory [post]
func (h *inventoryHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), req, middleware.UserIDOrSystem(c))
	if err != nil {
		respondWithError(c, logger, err, "Failed to create stock item")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInventoryItemResponse(item))
}

// listItems godoc
// @Summary List stock items
// @Description Lists every stock item with the totals of the stock on hand
// @Tags inventory
// @Produce  json
// @Success 200 {object} dto.ListInventoryResponse
// @Security BearerAuth
// @Router /inventory [get]
func (h *inventoryHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.inventoryService.ListItems(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list stock items")
		return
	}
	summary, err := h.inventoryService.Summary(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list stock items")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInventoryResponse(items, summary))
}

// getSummary godoc
// @Summary Stock totals
// @Tags inventory
// @Produce  json
// @Success 200 {object} dto.InventorySummaryResponse
// @Security BearerAuth
// @Router /inventory/summary [get]
func (h *inventoryHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.inventoryService.Summary(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to summarise stock")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInventoryResponse(nil, summary).Summary)
}

// getItem godoc
// @Summary Get a stock item
// @Tags inventory
// @Produce  json
// @Param   itemID path string true "Item ID"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 404 {object} map[string]string "Item not found"
// @Security BearerAuth
// @Router /inventory/{itemID} [get]
func (h *inventoryHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	item, err := h.inventoryService.GetItemByID(c.Request.Context(), itemID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("item_id", itemID)), err, "Failed to retrieve stock item")
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// updateItem godoc
// @Summary Replace a stock item
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   itemID path string true "Item ID"
// @Param   item body dto.InventoryItemRequest true "Stock item"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Item not found"
// @Security BearerAuth
// @Router /inventory/{itemID} [put]
func (h *inventoryHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	var req dto.InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), itemID, req, middleware.UserIDOrSystem(c))
	if err != nil {
		respondWithError(c, logger.With(slog.String("item_id", itemID)), err, "Failed to update stock item")
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// deleteItem godoc
// @Summary Delete a stock item
// @Tags inventory
// @Param   itemID path string true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Item not found"
// @Security BearerAuth
// @Router /inventory/{itemID} [delete]
func (h *inventoryHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	if err := h.inventoryService.DeleteItem(c.Request.Context(), itemID); err != nil {
		respondWithError(c, logger.With(slog.String("item_id", itemID)), err, "Failed to delete stock item")
		return
	}

	logger.Info("Stock item deleted", slog.String("item_id", itemID))
	c.Status(http.StatusNoContent)
}
