package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	portssvc "github.com/SscSPs/firm_books/internal/core/ports/services"
	"github.com/SscSPs/firm_books/internal/core/services"
	"github.com/SscSPs/firm_books/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InventoryServiceTestSuite struct {
	suite.Suite
	mockInventoryRepo *MockInventoryRepository
	service           portssvc.InventorySvcFacade
	now               time.Time
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockInventoryRepo = new(MockInventoryRepository)
	suite.now = time.Date(2024, 4, 10, 8, 0, 0, 0, time.UTC)
	suite.service = services.NewInventoryService(suite.mockInventoryRepo,
		services.WithInventoryClock(func() time.Time { return suite.now }))
}

func (suite *InventoryServiceTestSuite) TestCreateItem() {
	ctx := context.Background()
	suite.mockInventoryRepo.On("SaveItem", ctx, mock.AnythingOfType("domain.InventoryItem")).Return(nil).Once()

	item, err := suite.service.CreateItem(ctx, dto.InventoryItemRequest{
		Name: " Rice 25kg ", Supplier: "Agro Mills", PurchaseCost: "1200.50", SalesPrice: "1400",
		HSNCode: "1006", GSTPercent: "5", Quantity: 10,
	}, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(item.ItemID)
	suite.Equal("Rice 25kg", item.Name)
	suite.Equal("12005", item.StockValue().String())
	suite.Equal(suite.now, item.CreatedAt)
	suite.Equal("user-1", item.LastUpdatedBy)
	suite.mockInventoryRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestCreateItem_Invalid() {
	tests := []struct {
		name string
		req  dto.InventoryItemRequest
	}{
		{"blank name", dto.InventoryItemRequest{Name: "  "}},
		{"negative cost", dto.InventoryItemRequest{Name: "x", PurchaseCost: "-1"}},
		{"gst above 100", dto.InventoryItemRequest{Name: "x", GSTPercent: "120"}},
		{"negative quantity", dto.InventoryItemRequest{Name: "x", Quantity: -2}},
	}
	for _, tc := range tests {
		suite.Run(tc.name, func() {
			_, err := suite.service.CreateItem(context.Background(), tc.req, "user-1")
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockInventoryRepo.AssertNotCalled(suite.T(), "SaveItem", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestUpdateItem_KeepsCreationAudit() {
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := &domain.InventoryItem{
		ItemID: "i1", Name: "Old", Quantity: 1,
		AuditFields: domain.AuditFields{CreatedAt: created, CreatedBy: "creator"},
	}
	suite.mockInventoryRepo.On("FindItemByID", ctx, "i1").Return(existing, nil).Once()
	suite.mockInventoryRepo.On("SaveItem", ctx, mock.MatchedBy(func(item domain.InventoryItem) bool {
		return item.ItemID == "i1" && item.Name == "New" && item.Quantity == 5
	})).Return(nil).Once()

	item, err := suite.service.UpdateItem(ctx, "i1", dto.InventoryItemRequest{Name: "New", PurchaseCost: "2", Quantity: 5}, "editor")

	suite.Require().NoError(err)
	suite.Equal(created, item.CreatedAt)
	suite.Equal("creator", item.CreatedBy)
	suite.Equal("editor", item.LastUpdatedBy)
	suite.Equal(suite.now, item.LastUpdatedAt)
}

func (suite *InventoryServiceTestSuite) TestUpdateItem_NotFound() {
	ctx := context.Background()
	suite.mockInventoryRepo.On("FindItemByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateItem(ctx, "nope", dto.InventoryItemRequest{Name: "x"}, "u")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InventoryServiceTestSuite) TestDeleteItem() {
	ctx := context.Background()
	suite.mockInventoryRepo.On("DeleteItem", ctx, "i1").Return(nil).Once()
	suite.mockInventoryRepo.On("DeleteItem", ctx, "nope").Return(apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.DeleteItem(ctx, "i1"))
	suite.ErrorIs(suite.service.DeleteItem(ctx, "nope"), apperrors.ErrNotFound)
}

func (suite *InventoryServiceTestSuite) TestSummary() {
	ctx := context.Background()
	suite.mockInventoryRepo.On("ListItems", ctx).Return([]domain.InventoryItem{
		{ItemID: "a", PurchaseCost: dec("10"), Quantity: 3},
		{ItemID: "b", PurchaseCost: dec("2.5"), Quantity: 4},
	}, nil).Once()

	summary, err := suite.service.Summary(ctx)

	suite.Require().NoError(err)
	suite.Equal(2, summary.ItemCount)
	suite.Equal(int64(7), summary.TotalQuantity)
	suite.True(dec("40").Equal(summary.TotalValue))
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
