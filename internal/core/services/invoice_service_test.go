package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/core/invoice"
	portssvc "github.com/SscSPs/firm_books/internal/core/ports/services"
	"github.com/SscSPs/firm_books/internal/core/services"
	"github.com/SscSPs/firm_books/internal/dto"
	"github.com/SscSPs/firm_books/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	service         portssvc.InvoiceSvcFacade
	now             time.Time
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.now = time.UnixMilli(1712345678901).UTC()
	clock := func() time.Time { return suite.now }

	numberer, err := invoice.NewNumberer(1, invoice.WithClock(clock))
	suite.Require().NoError(err)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, numberer, services.WithInvoiceClock(clock))
}

func sampleLines() []dto.InvoiceLineRequest {
	return []dto.InvoiceLineRequest{
		{Name: "Widget", Quantity: "2", Rate: "100"},
		{Name: "Service", Rate: "50", GSTPercent: "5"},
	}
}

func (suite *InvoiceServiceTestSuite) TestPreviewInvoice_AppliesDefaults() {
	resp, err := suite.service.PreviewInvoice(context.Background(), dto.InvoiceLinesRequest{Items: sampleLines()})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Items, 2)
	suite.Equal("18", resp.Items[0].GSTPercent.String())
	suite.Equal("236.00", resp.Items[0].Amount)
	suite.Equal("1", resp.Items[1].Quantity.String())
	suite.Equal("52.50", resp.Items[1].Amount)
	suite.Equal("250.00", resp.Totals.Subtotal)
	suite.Equal("38.50", resp.Totals.TotalGST)
	suite.Equal("288.50", resp.Totals.Total)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestPreviewInvoice_ExplicitZeroGSTIsKept() {
	resp, err := suite.service.PreviewInvoice(context.Background(), dto.InvoiceLinesRequest{Items: []dto.InvoiceLineRequest{
		{Name: "Exempt", Quantity: "3", Rate: "10", GSTPercent: "0"},
	}})

	suite.Require().NoError(err)
	suite.Equal("30.00", resp.Totals.Total)
	suite.Equal("0.00", resp.Totals.TotalGST)
}

func (suite *InvoiceServiceTestSuite) TestPreviewInvoice_Invalid() {
	tests := []struct {
		name  string
		items []dto.InvoiceLineRequest
	}{
		{"no items", nil},
		{"negative quantity", []dto.InvoiceLineRequest{{Name: "x", Quantity: "-1", Rate: "1"}}},
		{"negative rate", []dto.InvoiceLineRequest{{Name: "x", Rate: "-5"}}},
		{"gst above 100", []dto.InvoiceLineRequest{{Name: "x", Rate: "5", GSTPercent: "101"}}},
	}
	for _, tc := range tests {
		suite.Run(tc.name, func() {
			_, err := suite.service.PreviewInvoice(context.Background(), dto.InvoiceLinesRequest{Items: tc.items})
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
}

func (suite *InvoiceServiceTestSuite) TestPreviewInvoice_RejectPolicy() {
	numberer, err := invoice.NewNumberer(2)
	suite.Require().NoError(err)
	strict := services.NewInvoiceService(suite.mockInvoiceRepo, numberer, services.WithInvoiceNumericPolicy(utils.NumericPolicyReject))

	_, err = strict.PreviewInvoice(context.Background(), dto.InvoiceLinesRequest{Items: []dto.InvoiceLineRequest{
		{Name: "x", Rate: "ten"},
	}})

	var malformed *utils.MalformedNumericFieldError
	suite.Require().True(errors.As(err, &malformed))
	suite.Equal("items[0].rate", malformed.Field)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice() {
	ctx := context.Background()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.InvoiceNumber == "INV-678901" && inv.Total.StringFixed(2) == "288.50"
	})).Return(nil).Once()

	inv, err := suite.service.CreateInvoice(ctx, dto.CreateInvoiceRequest{
		CustomerName: "Acme Retail",
		CustomerGST:  "27abcde1234f1z5",
		Items:        sampleLines(),
	}, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(inv.InvoiceID)
	suite.Equal("INV-678901", inv.InvoiceNumber)
	suite.Equal("27ABCDE1234F1Z5", inv.CustomerGST)
	suite.Equal(time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC), inv.Date)
	suite.Equal("user-1", inv.CreatedBy)
	suite.True(inv.Items[0].Amount.Equal(inv.Items[0].Quantity.Mul(inv.Items[0].Rate).Mul(dec("1.18"))))
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ExplicitDateAndRepoError() {
	ctx := context.Background()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.Anything).Return(assert.AnError).Once()

	_, err := suite.service.CreateInvoice(ctx, dto.CreateInvoiceRequest{
		CustomerName: "Acme",
		Date:         "2024-03-31",
		Items:        sampleLines(),
	}, "user-1")

	suite.ErrorIs(err, assert.AnError)
}

func (suite *InvoiceServiceTestSuite) TestGetAndListInvoices() {
	ctx := context.Background()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockInvoiceRepo.On("ListInvoices", ctx, 20, 0).Return([]domain.Invoice{{InvoiceID: "1"}}, nil).Once()

	_, err := suite.service.GetInvoiceByID(ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	invoices, err := suite.service.ListInvoices(ctx, dto.ListInvoicesParams{})
	suite.Require().NoError(err)
	suite.Len(invoices, 1)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
