package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/delivery-order-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func futureSlot(id string, usage, capacity int) entities.DeliverySlot {
	return entities.DeliverySlot{
		SlotID:       id,
		StartTime:    time.Now().Add(time.Hour),
		EndTime:      time.Now().Add(4 * time.Hour),
		IsActive:     true,
		CurrentUsage: usage,
		MaxCapacity:  capacity,
	}
}

func TestSlotService_CheckSlot(t *testing.T) {
	dbError := errors.New("db error")

	testCases := []struct {
		name          string
		mockBehavior  func(repo *mocks.MockSlotRepo)
		wantAvailable bool
		wantReason    string
		wantErr       error
	}{
		{
			name: "available",
			mockBehavior: func(repo *mocks.MockSlotRepo) {
				repo.EXPECT().GetSlot(mock.Anything, "slot-1").
					Return(futureSlot("slot-1", 0, 5), nil).Once()
			},
			wantAvailable: true,
		},
		{
			name: "not found",
			mockBehavior: func(repo *mocks.MockSlotRepo) {
				repo.EXPECT().GetSlot(mock.Anything, "slot-1").
					Return(entities.DeliverySlot{}, entities.ErrSlotNotFound).Once()
			},
			wantReason: "slot not found",
		},
		{
			name: "inactive regardless of capacity and time",
			mockBehavior: func(repo *mocks.MockSlotRepo) {
				slot := futureSlot("slot-1", 0, 5)
				slot.IsActive = false
				repo.EXPECT().GetSlot(mock.Anything, "slot-1").Return(slot, nil).Once()
			},
			wantReason: "slot is inactive",
		},
		{
			name: "full",
			mockBehavior: func(repo *mocks.MockSlotRepo) {
				repo.EXPECT().GetSlot(mock.Anything, "slot-1").
					Return(futureSlot("slot-1", 5, 5), nil).Once()
			},
			wantReason: "slot is at full capacity",
		},
		{
			name: "already started regardless of capacity",
			mockBehavior: func(repo *mocks.MockSlotRepo) {
				slot := futureSlot("slot-1", 0, 5)
				slot.StartTime = time.Now().Add(-time.Hour)
				repo.EXPECT().GetSlot(mock.Anything, "slot-1").Return(slot, nil).Once()
			},
			wantReason: "slot has already started",
		},
		{
			name: "repo error",
			mockBehavior: func(repo *mocks.MockSlotRepo) {
				repo.EXPECT().GetSlot(mock.Anything, "slot-1").
					Return(entities.DeliverySlot{}, dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockSlotRepo(t)
			assigner := mocks.NewMockDefaultAssigner(t)
			tc.mockBehavior(repo)

			svc := service.NewSlotService(testLogger(), repo, assigner)

			check, err := svc.CheckSlot(context.Background(), "slot-1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantAvailable, check.Available)
			assert.Equal(t, tc.wantReason, check.Reason)
		})
	}
}

func TestSlotService_Allocate(t *testing.T) {
	defaultSlot := futureSlot("slot-default", 0, 10)

	testCases := []struct {
		name         string
		preferred    string
		mockBehavior func(repo *mocks.MockSlotRepo, assigner *mocks.MockDefaultAssigner)
		wantMethod   entities.AssignmentMethod
		wantSlotID   string
		wantUsage    int
		wantErr      error
	}{
		{
			name:      "no preference assigns default",
			preferred: "",
			mockBehavior: func(repo *mocks.MockSlotRepo, assigner *mocks.MockDefaultAssigner) {
				slot := defaultSlot
				assigner.EXPECT().NextAvailableSlot(mock.Anything, mock.Anything).Return(&slot, nil).Once()
				repo.EXPECT().ReserveSlot(mock.Anything, "slot-default", mock.Anything).Return(nil).Once()
			},
			wantMethod: entities.MethodAutoAssigned,
			wantSlotID: "slot-default",
			wantUsage:  1,
		},
		{
			name:      "preferred slot reserved",
			preferred: "slot-1",
			mockBehavior: func(repo *mocks.MockSlotRepo, assigner *mocks.MockDefaultAssigner) {
				repo.EXPECT().GetSlot(mock.Anything, "slot-1").
					Return(futureSlot("slot-1", 0, 1), nil).Once()
				repo.EXPECT().ReserveSlot(mock.Anything, "slot-1", mock.Anything).Return(nil).Once()
			},
			wantMethod: entities.MethodUserSelected,
			wantSlotID: "slot-1",
			wantUsage:  1,
		},
		{
			name:      "preferred slot full falls back to default",
			preferred: "slot-1",
			mockBehavior: func(repo *mocks.MockSlotRepo, assigner *mocks.MockDefaultAssigner) {
				repo.EXPECT().GetSlot(mock.Anything, "slot-1").
					Return(futureSlot("slot-1", 1, 1), nil).Once()
				slot := defaultSlot
				assigner.EXPECT().NextAvailableSlot(mock.Anything, mock.Anything).Return(&slot, nil).Once()
				repo.EXPECT().ReserveSlot(mock.Anything, "slot-default", mock.Anything).Return(nil).Once()
			},
			wantMethod: entities.MethodFallback,
			wantSlotID: "slot-default",
			wantUsage:  1,
		},
		{
			name:      "lost race for last seat falls back",
			preferred: "slot-1",
			mockBehavior: func(repo *mocks.MockSlotRepo, assigner *mocks.MockDefaultAssigner) {
				repo.EXPECT().GetSlot(mock.Anything, "slot-1").
					Return(futureSlot("slot-1", 0, 1), nil).Once()
				repo.EXPECT().ReserveSlot(mock.Anything, "slot-1", mock.Anything).
					Return(entities.ErrSlotTaken).Once()
				slot := defaultSlot
				assigner.EXPECT().NextAvailableSlot(mock.Anything, mock.Anything).Return(&slot, nil).Once()
				repo.EXPECT().ReserveSlot(mock.Anything, "slot-default", mock.Anything).Return(nil).Once()
			},
			wantMethod: entities.MethodFallback,
			wantSlotID: "slot-default",
			wantUsage:  1,
		},
		{
			name:      "no default slot available",
			preferred: "slot-1",
			mockBehavior: func(repo *mocks.MockSlotRepo, assigner *mocks.MockDefaultAssigner) {
				repo.EXPECT().GetSlot(mock.Anything, "slot-1").
					Return(futureSlot("slot-1", 1, 1), nil).Once()
				assigner.EXPECT().NextAvailableSlot(mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			wantErr: entities.ErrNoSlotsAvailable,
		},
		{
			name:      "default slot lost race",
			preferred: "",
			mockBehavior: func(repo *mocks.MockSlotRepo, assigner *mocks.MockDefaultAssigner) {
				slot := defaultSlot
				assigner.EXPECT().NextAvailableSlot(mock.Anything, mock.Anything).Return(&slot, nil).Once()
				repo.EXPECT().ReserveSlot(mock.Anything, "slot-default", mock.Anything).
					Return(entities.ErrSlotTaken).Once()
			},
			wantErr: entities.ErrNoSlotsAvailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockSlotRepo(t)
			assigner := mocks.NewMockDefaultAssigner(t)
			tc.mockBehavior(repo, assigner)

			svc := service.NewSlotService(testLogger(), repo, assigner)

			assignment, err := svc.Allocate(context.Background(), tc.preferred)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantMethod, assignment.Method)
			assert.Equal(t, tc.wantSlotID, assignment.Slot.SlotID)
			assert.Equal(t, tc.wantUsage, assignment.Slot.CurrentUsage)
		})
	}
}

// fakeSlotStore имитирует условный UPDATE: инкремент под мьютексом
// проходит только пока есть свободные места
type fakeSlotStore struct {
	mu    sync.Mutex
	slots map[string]*entities.DeliverySlot
}

func (f *fakeSlotStore) GetSlot(_ context.Context, slotID string) (entities.DeliverySlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	slot, ok := f.slots[slotID]
	if !ok {
		return entities.DeliverySlot{}, entities.ErrSlotNotFound
	}
	return *slot, nil
}

func (f *fakeSlotStore) ReserveSlot(_ context.Context, slotID string, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	slot, ok := f.slots[slotID]
	if !ok || !slot.IsActive || slot.CurrentUsage >= slot.MaxCapacity || !slot.StartTime.After(now) {
		return entities.ErrSlotTaken
	}
	slot.CurrentUsage++
	return nil
}

func (f *fakeSlotStore) NextAvailableSlot(_ context.Context, now time.Time) (*entities.DeliverySlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var next *entities.DeliverySlot
	for _, slot := range f.slots {
		if !slot.IsActive || slot.CurrentUsage >= slot.MaxCapacity || !slot.StartTime.After(now) {
			continue
		}
		if next == nil || slot.StartTime.Before(next.StartTime) {
			next = slot
		}
	}
	if next == nil {
		return nil, nil
	}
	copied := *next
	return &copied, nil
}

func TestSlotService_Allocate_Concurrent(t *testing.T) {
	const (
		requests = 16
		capacity = 5
	)

	preferred := futureSlot("slot-hot", 0, capacity)
	// запасной слот позже и заведомо вместительнее
	fallback := futureSlot("slot-backup", 0, requests)
	fallback.StartTime = preferred.StartTime.Add(3 * time.Hour)
	fallback.EndTime = preferred.EndTime.Add(3 * time.Hour)

	store := &fakeSlotStore{slots: map[string]*entities.DeliverySlot{
		preferred.SlotID: &preferred,
		fallback.SlotID:  &fallback,
	}}

	svc := service.NewSlotService(testLogger(), store, store)

	var mu sync.Mutex
	methods := make(map[entities.AssignmentMethod]int)

	var eg errgroup.Group
	for i := 0; i < requests; i++ {
		eg.Go(func() error {
			assignment, err := svc.Allocate(context.Background(), "slot-hot")
			if err != nil {
				return err
			}
			mu.Lock()
			methods[assignment.Method]++
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	// ровно capacity заявок получили желаемый слот, остальные - fallback
	assert.Equal(t, capacity, methods[entities.MethodUserSelected])
	assert.Equal(t, requests-capacity, methods[entities.MethodFallback])
	assert.Equal(t, capacity, preferred.CurrentUsage)
	assert.LessOrEqual(t, preferred.CurrentUsage, preferred.MaxCapacity)
}
