package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/classifier"
	"github.com/SscSPs/firm_books/internal/core/domain"
	portssvc "github.com/SscSPs/firm_books/internal/core/ports/services"
	"github.com/SscSPs/firm_books/internal/core/services"
	"github.com/SscSPs/firm_books/internal/dto"
	"github.com/SscSPs/firm_books/internal/importer"
	"github.com/SscSPs/firm_books/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	service         portssvc.JournalSvcFacade
	userID          string
	now             time.Time
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.now = time.Date(2024, 4, 1, 9, 30, 0, 0, time.UTC)
	suite.service = services.NewJournalService(suite.mockJournalRepo,
		services.WithJournalClock(func() time.Time { return suite.now }),
	)
	suite.userID = "user-1"
}

func (suite *JournalServiceTestSuite) TestCreateJournal_Success() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		Date:      "2024-04-01",
		Narration: "Sold goods",
		Postings: []dto.PostingRequest{
			{Account: "Cash A/c", Debit: "5000", Credit: ""},
			{Account: " Sales A/c ", Debit: "0", Credit: "5000"},
		},
	}

	suite.mockJournalRepo.On("SaveJournal", ctx, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()

	entry, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.ID)
	suite.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), entry.Date)
	suite.Equal("Sales A/c", entry.Postings[1].Account)
	suite.True(decimal.NewFromInt(5000).Equal(entry.TotalDebit()))
	suite.Equal(suite.now, entry.CreatedAt)
	suite.Equal(suite.userID, entry.CreatedBy)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		Date: "2024-04-01",
		Postings: []dto.PostingRequest{
			{Account: "Cash A/c", Debit: "100"},
			{Account: "Sales A/c", Credit: "90"},
		},
	}

	_, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnbalancedEntry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "100.00")
	suite.Contains(err.Error(), "90.00")
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_RoundsBeforeComparing() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		Date: "2024-04-01",
		Postings: []dto.PostingRequest{
			{Account: "Cash A/c", Debit: "0.1"},
			{Account: "Cash A/c", Debit: "0.2"},
			{Account: "Sales A/c", Credit: "0.3"},
		},
	}
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()

	_, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().NoError(err)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_RejectsSubPaisaAmounts() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		Date: "2024-04-01",
		Postings: []dto.PostingRequest{
			{Account: "Cash A/c", Debit: "1.004"},
			{Account: "Sales A/c", Credit: "1.00"},
		},
	}

	_, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.NotErrorIs(err, apperrors.ErrUnbalancedEntry)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_InvalidDate() {
	_, err := suite.service.CreateJournal(context.Background(), dto.CreateJournalRequest{
		Date:     "01-04-2024",
		Postings: []dto.PostingRequest{{Account: "A", Debit: "1"}, {Account: "B", Credit: "1"}},
	}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_MalformedAmountPolicies() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		Date: "2024-04-01",
		Postings: []dto.PostingRequest{
			{Account: "Cash A/c", Debit: "abc"},
			{Account: "Sales A/c", Credit: "0"},
		},
	}

	// zero policy: the malformed debit becomes 0 and the entry still balances
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()
	entry, err := suite.service.CreateJournal(ctx, req, suite.userID)
	suite.Require().NoError(err)
	suite.True(entry.TotalDebit().IsZero())

	strict := services.NewJournalService(suite.mockJournalRepo, services.WithNumericPolicy(utils.NumericPolicyReject))
	_, err = strict.CreateJournal(ctx, req, suite.userID)
	suite.Require().Error(err)
	var malformed *utils.MalformedNumericFieldError
	suite.Require().True(errors.As(err, &malformed))
	suite.Equal("postings[0].debit", malformed.Field)
	suite.mockJournalRepo.AssertNumberOfCalls(suite.T(), "SaveJournal", 1)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_RepositoryError() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		Date:     "2024-04-01",
		Postings: []dto.PostingRequest{{Account: "A", Debit: "1"}, {Account: "B", Credit: "1"}},
	}
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.Anything).Return(assert.AnError).Once()

	_, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *JournalServiceTestSuite) TestGetJournalByID() {
	ctx := context.Background()
	stored := &domain.JournalEntry{ID: "j1"}
	suite.mockJournalRepo.On("FindJournalByID", ctx, "j1").Return(stored, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetJournalByID(ctx, "j1")
	suite.Require().NoError(err)
	suite.Equal(stored, got)

	_, err = suite.service.GetJournalByID(ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestListJournals_DefaultsLimitAndPassesToken() {
	ctx := context.Background()
	entries := []domain.JournalEntry{{ID: "0190abcdef123456", Date: suite.now}}
	suite.mockJournalRepo.On("ListJournals", ctx, 20, (*string)(nil)).Return(entries, "next", nil).Once()

	resp, err := suite.service.ListJournals(ctx, dto.ListJournalsParams{})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Journals, 1)
	suite.Equal("123456", resp.Journals[0].Ref)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next", *resp.NextToken)
}

func (suite *JournalServiceTestSuite) TestClassifyNarration() {
	resp := suite.service.ClassifyNarration(context.Background(), "Sold goods for 5000")

	suite.True(resp.Matched)
	suite.Equal("sale", resp.Rule)
	suite.Require().Len(resp.Postings, 2)
	suite.Equal(classifier.CashBankAccount, resp.Postings[0].Account)
	suite.True(decimal.NewFromInt(5000).Equal(resp.Postings[0].Debit))
	suite.Equal(classifier.SalesAccount, resp.Postings[1].Account)

	none := suite.service.ClassifyNarration(context.Background(), "Opening balance 100")
	suite.False(none.Matched)
	suite.Empty(none.Postings)
}

func (suite *JournalServiceTestSuite) TestClassifyNarration_Hinglish() {
	svc := services.NewJournalService(suite.mockJournalRepo,
		services.WithClassifier(classifier.New(classifier.WithHinglish(classifier.DefaultRules()))))

	resp := svc.ClassifyNarration(context.Background(), "maal khareeda 1200")

	suite.True(resp.Matched)
	suite.Equal("purchase", resp.Rule)
}

func (suite *JournalServiceTestSuite) TestImportJournals() {
	ctx := context.Background()
	export := `[{"id":"1","date":"2024-04-01","narration":"sale","entries":[{"account":"Cash A/c","debit":10,"credit":""},{"account":"Sales A/c","debit":"","credit":"10"}],"createdAt":"2024-04-01T00:00:00Z"}]`
	suite.mockJournalRepo.On("SaveJournals", ctx, mock.MatchedBy(func(entries []domain.JournalEntry) bool {
		return len(entries) == 1 && entries[0].ID == "1" && entries[0].CreatedBy == suite.userID
	})).Return(nil).Once()

	resp, err := suite.service.ImportJournals(ctx, strings.NewReader(export), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, resp.Imported)
	suite.Empty(resp.Warnings)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestImportJournals_UnbalancedStoresNothing() {
	ctx := context.Background()
	export := `[{"id":"1","date":"2024-04-01","entries":[{"account":"A","debit":10,"credit":0},{"account":"B","debit":0,"credit":5}]}]`

	_, err := suite.service.ImportJournals(ctx, strings.NewReader(export), suite.userID)

	suite.Require().Error(err)
	var entryErr *importer.EntryError
	suite.True(errors.As(err, &entryErr))
	suite.ErrorIs(err, apperrors.ErrUnbalancedEntry)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournals", mock.Anything, mock.Anything)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
