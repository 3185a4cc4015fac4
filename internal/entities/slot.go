package entities

import (
	"errors"
	"time"
)

type DeliverySlot struct {
	SlotID       string
	StartTime    time.Time
	EndTime      time.Time
	IsActive     bool
	CurrentUsage int
	MaxCapacity  int
}

// AssignmentMethod фиксирует, каким способом слот попал в заказ.
// Тег не сохраняется в заказе, а прокидывается до уведомления.
type AssignmentMethod string

const (
	MethodUserSelected AssignmentMethod = "user_selected"
	MethodAutoAssigned AssignmentMethod = "auto_assigned"
	MethodFallback     AssignmentMethod = "fallback"
)

type SlotAssignment struct {
	Slot   DeliverySlot
	Method AssignmentMethod
}

var (
	ErrSlotNotFound = errors.New("slot not found")
	// ErrSlotTaken возвращается, если условный UPDATE не затронул ни одной
	// строки: слот заняли конкурентно, деактивировали или он уже начался
	ErrSlotTaken        = errors.New("slot capacity exhausted")
	ErrNoSlotsAvailable = errors.New("no slots available")
)
