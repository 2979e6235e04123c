package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/firm_books/internal/core/ports/services"
	"github.com/SscSPs/firm_books/internal/dto"
	"github.com/SscSPs/firm_books/internal/middleware"
	"github.com/gin-gonic/gin"
)

type firmHandler struct {
	firmService portssvc.FirmSvcFacade
}

// registerFirmRoutes registers the firm profile routes
func registerFirmRoutes(rg *gin.RouterGroup, firmService portssvc.FirmSvcFacade) {
	h := &firmHandler{firmService: firmService}

	rg.GET("/firm", h.getFirmProfile)
	rg.PUT("/firm", h.updateFirmProfile)
}

// getFirmProfile godoc
// @Summary Get the firm profile
// @Description Returns the firm profile; every field is empty until one has been saved
// @Tags firm
// @Produce  json
// @Success 200 {object} dto.FirmProfileResponse
// @Failure 500 {object} map[string]string "Failed to load firm profile"
// @Security BearerAuth
// @Router /firm [get]
func (h *firmHandler) getFirmProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profile, err := h.firmService.GetProfile(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to load firm profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToFirmProfileResponse(profile))
}

// updateFirmProfile godoc
// @Summary Replace the firm profile
// @Tags firm
// @Accept  json
// @Produce  json
// @Param   profile body dto.UpdateFirmProfileRequest true "Firm profile"
// @Success 200 {object} dto.FirmProfileResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Failed to save firm profile"
// @Security BearerAuth
// @Router /firm [put]
func (h *firmHandler) updateFirmProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateFirmProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateFirmProfile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	profile, err := h.firmService.UpdateProfile(c.Request.Context(), req, middleware.UserIDOrSystem(c))
	if err != nil {
		respondWithError(c, logger, err, "Failed to save firm profile")
		return
	}

	logger.Info("Firm profile updated")
	c.JSON(http.StatusOK, dto.ToFirmProfileResponse(profile))
}
