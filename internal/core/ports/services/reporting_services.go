package services

import (
	"context"

	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/dto"
)

// ReportingService defines operations for generating financial reports.
// Every report is derived from the journal entries dated within the period.
type ReportingService interface {
	// TrialBalance lists every account with its debit and credit totals.
	TrialBalance(ctx context.Context, period domain.Period) (*dto.TrialBalanceResponse, error)

	// ProfitAndLoss compares revenue and expense accounts.
	ProfitAndLoss(ctx context.Context, period domain.Period) (*dto.ProfitAndLossResponse, error)

	// BalanceSheet compares asset and liability accounts and derives capital.
	BalanceSheet(ctx context.Context, period domain.Period) (*dto.BalanceSheetResponse, error)

	// GeneralLedger shows each account's totals and Dr/Cr balance.
	GeneralLedger(ctx context.Context, period domain.Period) (*dto.GeneralLedgerResponse, error)

	// CashBook lists entries touching cash or bank accounts.
	CashBook(ctx context.Context, period domain.Period) (*dto.CashBookResponse, error)

	// JournalBook lists every entry in date order.
	JournalBook(ctx context.Context, period domain.Period) (*dto.JournalBookResponse, error)

	// Summary returns the dashboard figures.
	Summary(ctx context.Context, period domain.Period) (*dto.SummaryResponse, error)
}
