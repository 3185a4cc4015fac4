package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
)

type SlotRepo interface {
	GetSlot(ctx context.Context, slotID string) (entities.DeliverySlot, error)

	// ReserveSlot - условный инкремент current_usage, возвращает
	// entities.ErrSlotTaken если ни одна строка не была обновлена
	ReserveSlot(ctx context.Context, slotID string, now time.Time) error
}

type DefaultAssigner interface {
	NextAvailableSlot(ctx context.Context, now time.Time) (*entities.DeliverySlot, error)
}

// SlotCheck результат проверки доступности слота. Проверка только
// рекомендательная: между ней и резервированием слот могут занять,
// поэтому само резервирование всегда идет через условный UPDATE.
type SlotCheck struct {
	Slot      entities.DeliverySlot
	Available bool
	Reason    string
}

const (
	reasonNotFound = "slot not found"
	reasonInactive = "slot is inactive"
	reasonFull     = "slot is at full capacity"
	reasonPast     = "slot has already started"
)

type slotService struct {
	logger   *slog.Logger
	repo     SlotRepo
	assigner DefaultAssigner
}

func NewSlotService(logger *slog.Logger, repo SlotRepo, assigner DefaultAssigner) *slotService {
	return &slotService{
		logger:   logger.With(slog.String("service", "slot")),
		repo:     repo,
		assigner: assigner,
	}
}

func (s *slotService) CheckSlot(ctx context.Context, slotID string) (SlotCheck, error) {
	slot, err := s.repo.GetSlot(ctx, slotID)
	if errors.Is(err, entities.ErrSlotNotFound) {
		return SlotCheck{Reason: reasonNotFound}, nil
	}
	if err != nil {
		return SlotCheck{}, fmt.Errorf("failed to check slot: %w", err)
	}

	check := SlotCheck{Slot: slot}
	switch {
	case !slot.IsActive:
		check.Reason = reasonInactive
	case slot.CurrentUsage >= slot.MaxCapacity:
		check.Reason = reasonFull
	case !slot.StartTime.After(time.Now()):
		check.Reason = reasonPast
	default:
		check.Available = true
	}
	return check, nil
}

// Allocate выбирает и резервирует слот доставки для заказа. Если клиент
// прислал желаемый слот и он доступен - занимаем его. Если слот устарел
// (его заняли, деактивировали или он уже начался) - не валим заказ, а
// прозрачно назначаем ближайший свободный слот, сохраняя тег fallback
// для текста уведомления.
func (s *slotService) Allocate(ctx context.Context, preferredSlotID string) (entities.SlotAssignment, error) {
	if preferredSlotID == "" {
		return s.assignDefault(ctx, entities.MethodAutoAssigned)
	}

	check, err := s.CheckSlot(ctx, preferredSlotID)
	if err != nil {
		return entities.SlotAssignment{}, err
	}

	reason := check.Reason
	if check.Available {
		err := s.repo.ReserveSlot(ctx, preferredSlotID, time.Now())
		if err == nil {
			slot := check.Slot
			slot.CurrentUsage++
			return entities.SlotAssignment{Slot: slot, Method: entities.MethodUserSelected}, nil
		}
		if !errors.Is(err, entities.ErrSlotTaken) {
			return entities.SlotAssignment{}, err
		}
		// проиграли гонку за последнее место
		reason = reasonFull
	}

	s.logger.Warn("preferred slot unavailable, assigning default",
		slog.String("slot_id", preferredSlotID),
		slog.String("reason", reason),
	)
	slotFallbacks.Inc()

	return s.assignDefault(ctx, entities.MethodFallback)
}

func (s *slotService) assignDefault(ctx context.Context, method entities.AssignmentMethod) (entities.SlotAssignment, error) {
	now := time.Now()

	slot, err := s.assigner.NextAvailableSlot(ctx, now)
	if err != nil {
		return entities.SlotAssignment{}, fmt.Errorf("failed to assign default slot: %w", err)
	}
	if slot == nil {
		return entities.SlotAssignment{}, entities.ErrNoSlotsAvailable
	}

	if err := s.repo.ReserveSlot(ctx, slot.SlotID, now); err != nil {
		if errors.Is(err, entities.ErrSlotTaken) {
			return entities.SlotAssignment{}, entities.ErrNoSlotsAvailable
		}
		return entities.SlotAssignment{}, err
	}

	reserved := *slot
	reserved.CurrentUsage++
	return entities.SlotAssignment{Slot: reserved, Method: method}, nil
}
