package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/delivery-order-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ValidateInventory(t *testing.T) {
	catalog := []entities.Product{
		{SkuID: "A", Name: "Milk", Price: 10, Stock: 5},
		{SkuID: "B", Name: "Bread", Price: 7, Discount: 2, Stock: 0},
	}

	testCases := []struct {
		name         string
		items        []entities.RequestedItem
		mockBehavior func(repo *mocks.MockProductRepo)
		wantReasons  []string
		wantErr      error
	}{
		{
			name:  "all items available",
			items: []entities.RequestedItem{{SkuID: "A", Qty: 2}},
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().GetProductsBySKU(mock.Anything, []string{"A"}).Return(catalog, nil).Once()
			},
		},
		{
			name: "collects every reason",
			items: []entities.RequestedItem{
				{SkuID: "A", Qty: -1},
				{SkuID: "B", Qty: 1},
				{SkuID: "C", Qty: 1},
			},
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().GetProductsBySKU(mock.Anything, []string{"A", "B", "C"}).Return(catalog, nil).Once()
			},
			wantReasons: []string{
				"A: quantity must be positive",
				"B out of stock",
				"C not found",
			},
		},
		{
			name:  "quantity above stock",
			items: []entities.RequestedItem{{SkuID: "A", Qty: 6}},
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().GetProductsBySKU(mock.Anything, []string{"A"}).Return(catalog, nil).Once()
			},
			wantReasons: []string{"A out of stock"},
		},
		{
			name:  "repo error",
			items: []entities.RequestedItem{{SkuID: "A", Qty: 1}},
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().GetProductsBySKU(mock.Anything, []string{"A"}).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: errors.New("failed to fetch products"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			tc.mockBehavior(repo)

			svc := service.NewCatalogService(testLogger(), repo)

			err := svc.ValidateInventory(context.Background(), tc.items)
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			if len(tc.wantReasons) > 0 {
				var invErr *entities.InventoryError
				require.ErrorAs(t, err, &invErr)
				assert.Equal(t, tc.wantReasons, invErr.Reasons)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCatalogService_CalculatePrice(t *testing.T) {
	catalog := []entities.Product{
		{SkuID: "A", Name: "Milk", Price: 10, Stock: 5},
		{SkuID: "B", Name: "Bread", Price: 7, Discount: 2, Stock: 3},
	}

	repo := mocks.NewMockProductRepo(t)
	repo.EXPECT().GetProductsBySKU(mock.Anything, []string{"A", "B", "C"}).Return(catalog, nil).Once()

	svc := service.NewCatalogService(testLogger(), repo)

	breakdown, err := svc.CalculatePrice(context.Background(), []entities.RequestedItem{
		{SkuID: "A", Qty: 2},
		{SkuID: "B", Qty: 3},
		// неизвестный SKU в расчет не попадает
		{SkuID: "C", Qty: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 2*10+3*(7-2), breakdown.TotalAmount)
	assert.Equal(t, map[string]int{"A": 10, "B": 7}, breakdown.ItemPrices)
	assert.Equal(t, map[string]int{"A": 0, "B": 2}, breakdown.ItemDiscounts)
}
