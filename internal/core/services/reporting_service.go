package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/core/ledger"
	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/firm_books/internal/core/ports/services"
	"github.com/SscSPs/firm_books/internal/core/statements"
	"github.com/SscSPs/firm_books/internal/dto"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	journalRepo   portsrepo.JournalReader
	firmRepo      portsrepo.FirmRepositoryFacade
	invoiceRepo   portsrepo.InvoiceReader
	inventoryRepo portsrepo.InventoryReader
	now           func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithInvoiceReader lets the summary include GST collected on invoices.
func WithInvoiceReader(repo portsrepo.InvoiceReader) ReportingServiceOption {
	return func(s *reportingService) {
		s.invoiceRepo = repo
	}
}

// WithInventoryReader lets the summary include stock value.
func WithInventoryReader(repo portsrepo.InventoryReader) ReportingServiceOption {
	return func(s *reportingService) {
		s.inventoryRepo = repo
	}
}

// WithReportingClock overrides the generation timestamp.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(journalRepo portsrepo.JournalReader, firmRepo portsrepo.FirmRepositoryFacade, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		journalRepo: journalRepo,
		firmRepo:    firmRepo,
		now:         time.Now,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// load fetches the entries for the period and the report header.
func (s *reportingService) load(ctx context.Context, report string, period domain.Period) ([]domain.JournalEntry, dto.ReportHeader, error) {
	if period.From != nil && period.To != nil && period.From.After(*period.To) {
		return nil, dto.ReportHeader{}, fmt.Errorf("%w: fromDate must not be after toDate", apperrors.ErrValidation)
	}

	entries, err := s.journalRepo.ListEntries(ctx, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve journal entries for report", slog.String("report", report))
		return nil, dto.ReportHeader{}, fmt.Errorf("failed to retrieve %s data: %w", report, err)
	}

	var firm domain.FirmHeader
	profile, err := s.firmRepo.GetFirmProfile(ctx)
	switch {
	case err == nil:
		firm = profile.Header()
	case errors.Is(err, apperrors.ErrNotFound):
		s.LogDebug(ctx, "No firm profile saved, report header left blank")
	default:
		s.LogError(ctx, err, "Failed to retrieve firm profile", slog.String("report", report))
		return nil, dto.ReportHeader{}, fmt.Errorf("failed to retrieve firm profile: %w", err)
	}

	return entries, dto.NewReportHeader(firm, period, s.now().UTC()), nil
}

// TrialBalance lists every account with its debit and credit totals.
func (s *reportingService) TrialBalance(ctx context.Context, period domain.Period) (*dto.TrialBalanceResponse, error) {
	entries, header, err := s.load(ctx, "trial balance", period)
	if err != nil {
		return nil, err
	}

	tb := statements.TrialBalance(ledger.Aggregate(entries))
	if !tb.IsBalanced() {
		s.GetLogger(ctx).Warn("Trial balance does not balance",
			slog.String("total_debit", tb.TotalDebit.String()),
			slog.String("total_credit", tb.TotalCredit.String()))
	}

	resp := dto.ToTrialBalanceResponse(tb, header)
	s.LogInfo(ctx, "Trial balance report generated successfully", slog.Int("row_count", len(tb.Rows)))
	return &resp, nil
}

// ProfitAndLoss compares revenue and expense accounts.
func (s *reportingService) ProfitAndLoss(ctx context.Context, period domain.Period) (*dto.ProfitAndLossResponse, error) {
	entries, header, err := s.load(ctx, "profit and loss", period)
	if err != nil {
		return nil, err
	}

	report := statements.ProfitAndLoss(ledger.Aggregate(entries))
	resp := dto.ToProfitAndLossResponse(report, header)
	s.LogInfo(ctx, "Profit and loss report generated successfully",
		slog.Int("revenue_accounts", len(report.Revenue)),
		slog.Int("expense_accounts", len(report.Expenses)))
	return &resp, nil
}

// BalanceSheet compares asset and liability accounts and derives capital.
func (s *reportingService) BalanceSheet(ctx context.Context, period domain.Period) (*dto.BalanceSheetResponse, error) {
	entries, header, err := s.load(ctx, "balance sheet", period)
	if err != nil {
		return nil, err
	}

	report := statements.BalanceSheet(ledger.Aggregate(entries))
	resp := dto.ToBalanceSheetResponse(report, header)
	s.LogInfo(ctx, "Balance sheet report generated successfully",
		slog.Int("asset_accounts", len(report.Assets)),
		slog.Int("liability_accounts", len(report.Liabilities)))
	return &resp, nil
}

// GeneralLedger shows each account's totals and Dr/Cr balance.
func (s *reportingService) GeneralLedger(ctx context.Context, period domain.Period) (*dto.GeneralLedgerResponse, error) {
	entries, header, err := s.load(ctx, "general ledger", period)
	if err != nil {
		return nil, err
	}

	rows := statements.GeneralLedger(ledger.Aggregate(entries))
	resp := dto.ToGeneralLedgerResponse(rows, header)
	s.LogInfo(ctx, "General ledger generated successfully", slog.Int("account_count", len(rows)))
	return &resp, nil
}

// CashBook lists entries touching cash or bank accounts.
func (s *reportingService) CashBook(ctx context.Context, period domain.Period) (*dto.CashBookResponse, error) {
	entries, header, err := s.load(ctx, "cash book", period)
	if err != nil {
		return nil, err
	}

	rows := statements.CashBook(entries)
	resp := dto.ToCashBookResponse(rows, header)
	s.LogInfo(ctx, "Cash book generated successfully", slog.Int("row_count", len(rows)))
	return &resp, nil
}

// JournalBook lists every entry in date order.
func (s *reportingService) JournalBook(ctx context.Context, period domain.Period) (*dto.JournalBookResponse, error) {
	entries, header, err := s.load(ctx, "journal book", period)
	if err != nil {
		return nil, err
	}

	book := statements.JournalBook(entries)
	resp := dto.ToJournalBookResponse(book, header)
	s.LogInfo(ctx, "Journal book generated successfully", slog.Int("entry_count", len(book)))
	return &resp, nil
}

// Summary returns the dashboard figures. Inventory value is the current stock,
// independent of the period.
func (s *reportingService) Summary(ctx context.Context, period domain.Period) (*dto.SummaryResponse, error) {
	entries, header, err := s.load(ctx, "summary", period)
	if err != nil {
		return nil, err
	}

	summary := statements.Summary(ledger.Aggregate(entries), len(entries))

	if s.invoiceRepo != nil {
		totals, count, err := s.invoiceRepo.SumInvoiceTotals(ctx, period)
		if err != nil {
			s.LogError(ctx, err, "Failed to sum invoice totals")
			return nil, fmt.Errorf("failed to retrieve invoice totals: %w", err)
		}
		summary.GSTCollected = totals.TotalGST
		summary.InvoiceCount = count
	}

	if s.inventoryRepo != nil {
		items, err := s.inventoryRepo.ListItems(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to list inventory items")
			return nil, fmt.Errorf("failed to retrieve inventory: %w", err)
		}
		value := decimal.Zero
		for _, item := range items {
			value = value.Add(item.StockValue())
		}
		summary.InventoryValue = value
	}

	resp := dto.ToSummaryResponse(summary, header)
	s.LogInfo(ctx, "Summary generated successfully", slog.Int("entry_count", summary.EntryCount))
	return &resp, nil
}
