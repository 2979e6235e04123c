package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/firm_books/internal/core/domain"
	portssvc "github.com/SscSPs/firm_books/internal/core/ports/services"
	"github.com/SscSPs/firm_books/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/general-ledger", h.getGeneralLedger)
		reportingGroup.GET("/cash-book", h.getCashBook)
		reportingGroup.GET("/journal-book", h.getJournalBook)
		reportingGroup.GET("/summary", h.getSummary)
	}
}

// report runs build over the period named in the query string and writes the result.
func report[T any](c *gin.Context, name string, build func(context.Context, domain.Period) (*T, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("report", name))

	period, err := periodFromQuery(c)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate report")
		return
	}

	resp, err := build(c.Request.Context(), period)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate report")
		return
	}

	logger.Debug("Report generated")
	c.JSON(http.StatusOK, resp)
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Lists every account with its debit and credit totals for the period
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD)"
// @Param toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	report(c, "trial-balance", h.reportingService.TrialBalance)
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Compares revenue and expense accounts; the net line balances both sides
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD)"
// @Param toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	report(c, "profit-and-loss", h.reportingService.ProfitAndLoss)
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Lists assets and liabilities and derives capital as the difference
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD)"
// @Param toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	report(c, "balance-sheet", h.reportingService.BalanceSheet)
}

// getGeneralLedger godoc
// @Summary Generate general ledger
// @Description Shows each account's totals and its Dr/Cr balance
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD)"
// @Param toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.GeneralLedgerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/general-ledger [get]
func (h *reportingHandler) getGeneralLedger(c *gin.Context) {
	report(c, "general-ledger", h.reportingService.GeneralLedger)
}

// getCashBook godoc
// @Summary Generate cash book
// @Description Lists receipts and payments of entries touching cash or bank accounts
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD)"
// @Param toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.CashBookResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/cash-book [get]
func (h *reportingHandler) getCashBook(c *gin.Context) {
	report(c, "cash-book", h.reportingService.CashBook)
}

// getJournalBook godoc
// @Summary Generate journal book
// @Description Lists every entry in date order
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD)"
// @Param toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.JournalBookResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/journal-book [get]
func (h *reportingHandler) getJournalBook(c *gin.Context) {
	report(c, "journal-book", h.reportingService.JournalBook)
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Sales, purchases, expenses, net profit, cash and bank, GST collected and stock value
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD)"
// @Param toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	report(c, "summary", h.reportingService.Summary)
}
