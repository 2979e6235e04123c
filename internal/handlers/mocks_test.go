package handlers_test

import (
	"context"
	"io"

	"github.com/SscSPs/firm_books/internal/core/domain"
	portssvc "github.com/SscSPs/firm_books/internal/core/ports/services"
	"github.com/SscSPs/firm_books/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest, creatorUserID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalsResponse), args.Error(1)
}

func (m *MockJournalService) ImportJournals(ctx context.Context, r io.Reader, creatorUserID string) (*dto.ImportJournalsResponse, error) {
	body, _ := io.ReadAll(r)
	args := m.Called(ctx, string(body), creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ImportJournalsResponse), args.Error(1)
}

func (m *MockJournalService) ClassifyNarration(ctx context.Context, narration string) *dto.ClassifyResponse {
	args := m.Called(ctx, narration)
	return args.Get(0).(*dto.ClassifyResponse)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

func (m *MockReportingService) TrialBalance(ctx context.Context, period domain.Period) (*dto.TrialBalanceResponse, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TrialBalanceResponse), args.Error(1)
}

func (m *MockReportingService) ProfitAndLoss(ctx context.Context, period domain.Period) (*dto.ProfitAndLossResponse, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProfitAndLossResponse), args.Error(1)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context, period domain.Period) (*dto.BalanceSheetResponse, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BalanceSheetResponse), args.Error(1)
}

func (m *MockReportingService) GeneralLedger(ctx context.Context, period domain.Period) (*dto.GeneralLedgerResponse, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GeneralLedgerResponse), args.Error(1)
}

func (m *MockReportingService) CashBook(ctx context.Context, period domain.Period) (*dto.CashBookResponse, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CashBookResponse), args.Error(1)
}

func (m *MockReportingService) JournalBook(ctx context.Context, period domain.Period) (*dto.JournalBookResponse, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.JournalBookResponse), args.Error(1)
}

func (m *MockReportingService) Summary(ctx context.Context, period domain.Period) (*dto.SummaryResponse, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SummaryResponse), args.Error(1)
}
