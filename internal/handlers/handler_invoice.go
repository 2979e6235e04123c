package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/firm_books/internal/core/ports/services"
	"github.com/SscSPs/firm_books/internal/dto"
	"github.com/SscSPs/firm_books/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(invoiceService portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: invoiceService}
}

// registerInvoiceRoutes registers routes related to invoices
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("/preview", h.previewInvoice)
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoiceID", h.getInvoice)
	}
}

// previewInvoice godoc
// @Summary Compute invoice lines and totals
// @Description Computes each line's amount including GST and the invoice totals without saving
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   request body dto.InvoiceLinesRequest true "Invoice lines"
// @Success 200 {object} dto.InvoiceComputationResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Security BearerAuth
// @Router /invoices/preview [post]
func (h *invoiceHandler) previewInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.InvoiceLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for previewInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.invoiceService.PreviewInvoice(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute invoice")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// createInvoice godoc
// @Summary Issue an invoice
// @Description Numbers, computes and stores an invoice
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Failed to create invoice"
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	inv, err := h.invoiceService.CreateInvoice(c.Request.Context(), req, middleware.UserIDOrSystem(c))
	if err != nil {
		respondWithError(c, logger, err, "Failed to create invoice")
		return
	}

	logger.Info("Invoice created", slog.String("invoice_id", inv.InvoiceID), slog.String("invoice_number", inv.InvoiceNumber))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(inv))
}

// getInvoice godoc
// @Summary Get an invoice
// @Tags invoices
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{invoiceID} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	inv, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), invoiceID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("invoice_id", invoiceID)), err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// listInvoices godoc
// @Summary List invoices
// @Description Lists invoices newest first
// @Tags invoices
// @Produce  json
// @Param   limit query int false "Page size (1-100)" default(20)
// @Param   offset query int false "Number of invoices to skip"
// @Success 200 {array} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listInvoices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponses(invoices))
}
