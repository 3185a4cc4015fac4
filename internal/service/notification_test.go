package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/delivery-order-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 1 июня 2025 - воскресенье, окно 14:00-17:00 UTC
func sundaySlot() entities.DeliverySlot {
	return entities.DeliverySlot{
		SlotID:       "slot-sun",
		StartTime:    time.Date(2025, time.June, 1, 14, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2025, time.June, 1, 17, 0, 0, 0, time.UTC),
		IsActive:     true,
		CurrentUsage: 1,
		MaxCapacity:  5,
	}
}

func TestNotificationService_Dispatch(t *testing.T) {
	baseInput := func(method entities.AssignmentMethod) service.DispatchInput {
		return service.DispatchInput{
			OrderID: "order-1",
			UserID:  "user-1",
			Type:    entities.NotificationOrderCreated,
			Assignment: &entities.SlotAssignment{
				Slot:   sundaySlot(),
				Method: method,
			},
		}
	}

	testCases := []struct {
		name         string
		input        service.DispatchInput
		mockBehavior func(repo *mocks.MockNotificationRepo, publisher *mocks.MockEventPublisher)
		wantTitle    string
		wantContent  []string
		wantErr      error
	}{
		{
			name:  "unknown notification type",
			input: service.DispatchInput{OrderID: "order-1", UserID: "user-1", Type: "order_shipped"},
			mockBehavior: func(repo *mocks.MockNotificationRepo, publisher *mocks.MockEventPublisher) {
			},
			wantErr: entities.ErrUnknownNotificationType,
		},
		{
			name:  "fallback slot explains the reassignment",
			input: baseInput(entities.MethodFallback),
			mockBehavior: func(repo *mocks.MockNotificationRepo, publisher *mocks.MockEventPublisher) {
				repo.EXPECT().SaveNotification(mock.Anything, mock.Anything).Return("notif-1", nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantTitle: "Order confirmed",
			wantContent: []string{
				"Your order order-1 has been placed successfully.",
				"Your preferred time slot was unavailable, so we assigned the next available slot:",
				"Sunday 2:00 PM - 5:00 PM",
			},
		},
		{
			name:  "user selected slot",
			input: baseInput(entities.MethodUserSelected),
			mockBehavior: func(repo *mocks.MockNotificationRepo, publisher *mocks.MockEventPublisher) {
				repo.EXPECT().SaveNotification(mock.Anything, mock.Anything).Return("notif-1", nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantTitle: "Order confirmed",
			wantContent: []string{
				"Your selected delivery time: Sunday 2:00 PM - 5:00 PM.",
			},
		},
		{
			name:  "auto assigned slot",
			input: baseInput(entities.MethodAutoAssigned),
			mockBehavior: func(repo *mocks.MockNotificationRepo, publisher *mocks.MockEventPublisher) {
				repo.EXPECT().SaveNotification(mock.Anything, mock.Anything).Return("notif-1", nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantContent: []string{
				"Scheduled for Sunday 2:00 PM - 5:00 PM.",
			},
		},
		{
			name:  "no assignment looks up the order slot",
			input: service.DispatchInput{OrderID: "order-1", UserID: "user-1", Type: entities.NotificationOrderCreated},
			mockBehavior: func(repo *mocks.MockNotificationRepo, publisher *mocks.MockEventPublisher) {
				slot := sundaySlot()
				repo.EXPECT().GetOrderSlot(mock.Anything, "order-1").Return(&slot, nil).Once()
				repo.EXPECT().SaveNotification(mock.Anything, mock.Anything).Return("notif-1", nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantContent: []string{
				"Scheduled for Sunday 2:00 PM - 5:00 PM.",
			},
		},
		{
			name:  "no slot at all falls back to a placeholder",
			input: service.DispatchInput{OrderID: "order-1", UserID: "user-1", Type: entities.NotificationOrderCreated},
			mockBehavior: func(repo *mocks.MockNotificationRepo, publisher *mocks.MockEventPublisher) {
				repo.EXPECT().GetOrderSlot(mock.Anything, "order-1").Return(nil, nil).Once()
				repo.EXPECT().SaveNotification(mock.Anything, mock.Anything).Return("notif-1", nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantContent: []string{
				"Delivery details will be provided soon.",
			},
		},
		{
			name:  "publish failure does not fail the dispatch",
			input: baseInput(entities.MethodUserSelected),
			mockBehavior: func(repo *mocks.MockNotificationRepo, publisher *mocks.MockEventPublisher) {
				repo.EXPECT().SaveNotification(mock.Anything, mock.Anything).Return("notif-1", nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).
					Return(errors.New("broker unavailable")).Once()
			},
			wantTitle: "Order confirmed",
		},
		{
			name:  "save failure fails the dispatch",
			input: baseInput(entities.MethodUserSelected),
			mockBehavior: func(repo *mocks.MockNotificationRepo, publisher *mocks.MockEventPublisher) {
				repo.EXPECT().SaveNotification(mock.Anything, mock.Anything).
					Return("", errors.New("db error")).Once()
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockNotificationRepo(t)
			publisher := mocks.NewMockEventPublisher(t)
			tc.mockBehavior(repo, publisher)

			svc := service.NewNotificationService(testLogger(), repo, publisher)

			notification, err := svc.Dispatch(context.Background(), tc.input)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "notif-1", notification.NotificationID)
			assert.Equal(t, "user-1", notification.UserID)
			assert.Equal(t, "order-1", notification.OrderID)
			assert.False(t, notification.IsRead)
			if tc.wantTitle != "" {
				assert.Equal(t, tc.wantTitle, notification.Title)
			}
			for _, fragment := range tc.wantContent {
				assert.Contains(t, notification.Content, fragment)
			}
		})
	}
}

func TestNotificationService_RegisterTemplate(t *testing.T) {
	repo := mocks.NewMockNotificationRepo(t)
	publisher := mocks.NewMockEventPublisher(t)

	repo.EXPECT().SaveNotification(mock.Anything, mock.Anything).Return("notif-2", nil).Once()
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	svc := service.NewNotificationService(testLogger(), repo, publisher)
	svc.RegisterTemplate("order_delayed", "Order delayed", "Order {orderId} is delayed by {hours} hours, courier: {courier}.")

	notification, err := svc.Dispatch(context.Background(), service.DispatchInput{
		OrderID: "order-2",
		UserID:  "user-1",
		Type:    "order_delayed",
		Extra: map[string]any{
			"hours":   2,
			"courier": "Ivan",
			// нескалярное значение должно быть пропущено
			"details": map[string]string{"reason": "traffic"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Order delayed", notification.Title)
	assert.Equal(t, "Order order-2 is delayed by 2 hours, courier: Ivan.", notification.Content)
}
