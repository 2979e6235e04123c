package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/firm_books/internal/core/ports/services"
	"github.com/SscSPs/firm_books/internal/dto"
	"github.com/SscSPs/firm_books/internal/middleware"
	"github.com/SscSPs/firm_books/internal/utils"
	"github.com/gin-gonic/gin"
)

// maxImportBytes caps the size of a legacy export accepted by the import endpoint.
const maxImportBytes = 10 << 20

// journalHandler handles HTTP requests related to journals.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	posthogClient  *utils.PosthogClientWrapper
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade, posthogClient *utils.PosthogClientWrapper) *journalHandler {
	return &journalHandler{
		journalService: journalService,
		posthogClient:  posthogClient,
	}
}

// registerJournalRoutes registers routes related to journal entries
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := newJournalHandler(journalService, posthogClient)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournal)
		journals.GET("", h.listJournals)
		journals.POST("/classify", h.classifyNarration)
		journals.POST("/import", h.importJournals)
		journals.GET("/:journalID", h.getJournal)
	}
}

// createJournal godoc
// @Summary Record a journal entry
// @Description Validates that debits equal credits and stores the entry with its postings
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.CreateJournalRequest true "Journal entry"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Invalid request or unbalanced entry"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create journal"
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	creatorUserID := middleware.UserIDOrSystem(c)
	entry, err := h.journalService.CreateJournal(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create journal")
		return
	}

	logger.Info("Journal created", slog.String("journal_id", entry.ID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(entry))
}

// getJournal godoc
// @Summary Get a journal entry
// @Description Retrieves a journal entry and its postings by ID
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 500 {object} map[string]string "Failed to retrieve journal"
// @Security BearerAuth
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	entry, err := h.journalService.GetJournalByID(c.Request.Context(), journalID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("journal_id", journalID)), err, "Failed to retrieve journal")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(entry))
}

// listJournals godoc
// @Summary List journal entries
// @Description Lists journal entries newest first using token-based pagination
// @Tags journals
// @Produce  json
// @Param   limit query int false "Page size (1-100)" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list journals"
// @Security BearerAuth
// @Router /journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listJournals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.journalService.ListJournals(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list journals")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// classifyNarration godoc
// @Summary Suggest postings for a narration
// @Description Runs the narration classifier. Nothing is stored; matched is false when no rule applies.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   request body dto.ClassifyRequest true "Narration"
// @Success 200 {object} dto.ClassifyResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Security BearerAuth
// @Router /journals/classify [post]
func (h *journalHandler) classifyNarration(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for classifyNarration", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.journalService.ClassifyNarration(c.Request.Context(), req.Narration))
}

// importJournals godoc
// @Summary Import a legacy export
// @Description Loads the transactions of an exported JSON file. Either every entry is stored or none is.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   export body object true "Exported transactions"
// @Success 201 {object} dto.ImportJournalsResponse
// @Failure 400 {object} map[string]string "Malformed or unbalanced export"
// @Failure 409 {object} map[string]string "An entry already exists"
// @Failure 500 {object} map[string]string "Failed to import journals"
// @Security BearerAuth
// @Router /journals/import [post]
func (h *journalHandler) importJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)

	creatorUserID := middleware.UserIDOrSystem(c)
	resp, err := h.journalService.ImportJournals(c.Request.Context(), body, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to import journals")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "journals_imported", map[string]any{
		"imported": resp.Imported,
		"warnings": len(resp.Warnings),
	})
	c.JSON(http.StatusCreated, resp)
}
