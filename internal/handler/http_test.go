package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/delivery-order-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(t *testing.T) (chi.Router, *mocks.MockOrderService) {
	t.Helper()

	svc := mocks.NewMockOrderService(t)
	h := handler.NewHTTPHandler(testLogger(), svc)

	r := chi.NewRouter()
	h.Init(r)
	return r, svc
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	validBody := `{
		"user_id": "user-1",
		"address_id": "addr-1",
		"items": [{"sku_id": "A", "qty": 2}],
		"preferred_slot_id": "slot-1"
	}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		checkBody    func(t *testing.T, body []byte)
	}{
		{
			name: "created",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, entities.CreateOrderRequest{
						UserID:          "user-1",
						AddressID:       "addr-1",
						Items:           []entities.RequestedItem{{SkuID: "A", Qty: 2}},
						PreferredSlotID: "slot-1",
					}).
					Return(entities.Order{
						OrderID:     "order-1",
						UserID:      "user-1",
						TotalAmount: 20,
						Status:      entities.OrderStatusPending,
					}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body []byte) {
				var order handler.Order
				require.NoError(t, json.Unmarshal(body, &order))
				assert.Equal(t, "order-1", order.OrderID)
				assert.Equal(t, entities.OrderStatusPending, order.Status)
			},
		},
		{
			name:         "invalid json",
			body:         "{not json",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "missing user_id",
			body:         `{"address_id": "addr-1", "items": [{"sku_id": "A", "qty": 1}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "empty items",
			body:         `{"user_id": "user-1", "address_id": "addr-1", "items": []}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "non-positive quantity",
			body:         `{"user_id": "user-1", "address_id": "addr-1", "items": [{"sku_id": "A", "qty": 0}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "inventory invalid",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, &entities.InventoryError{
						Reasons: []string{"A out of stock"},
					}).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			checkBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "A out of stock")
			},
		},
		{
			name: "user not found",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrUserNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "no slots available",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrNoSlotsAvailable).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "internal error",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, svc := newTestRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.checkBody != nil {
				tc.checkBody(t, rec.Body.Bytes())
			}
		})
	}
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
	}{
		{
			name:    "found",
			orderID: "order-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{OrderID: "order-1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "not found",
			orderID: "not-exist",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:    "internal error",
			orderID: "order-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, svc := newTestRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tc.orderID, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
