package handler

import (
	"time"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
)

// CreateOrderRequest запрос на создание заказа
type CreateOrderRequest struct {
	UserID          string          `json:"user_id" validate:"required"`
	AddressID       string          `json:"address_id" validate:"required"`
	Items           []RequestedItem `json:"items" validate:"required,min=1,dive"`
	PreferredSlotID string          `json:"preferred_slot_id,omitempty"`
}

// RequestedItem позиция в запросе на создание заказа
type RequestedItem struct {
	SkuID string `json:"sku_id" validate:"required"`
	Qty   int    `json:"qty" validate:"required,gt=0"`
}

// Order представляет заказ со всеми связями
type Order struct {
	OrderID     string       `json:"order_id"`
	UserID      string       `json:"user_id"`
	AddressID   string       `json:"address_id"`
	TotalAmount int          `json:"total_amount"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	Items       []OrderItem  `json:"items,omitempty"`
	Slot        DeliverySlot `json:"slot"`
	User        User         `json:"user"`
}

// OrderItem позиция заказа
type OrderItem struct {
	ItemID    string `json:"item_id"`
	SkuID     string `json:"sku_id"`
	Qty       int    `json:"qty"`
	UnitPrice int    `json:"unit_price"`
	Discount  int    `json:"discount,omitempty"`
	Subtotal  int    `json:"subtotal"`
}

// DeliverySlot окно доставки
type DeliverySlot struct {
	SlotID    string    `json:"slot_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// User получатель заказа
type User struct {
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

func CreateOrderJSONToEntity(r CreateOrderRequest) entities.CreateOrderRequest {
	items := make([]entities.RequestedItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.RequestedItem{SkuID: it.SkuID, Qty: it.Qty})
	}

	return entities.CreateOrderRequest{
		UserID:          r.UserID,
		AddressID:       r.AddressID,
		Items:           items,
		PreferredSlotID: r.PreferredSlotID,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ItemID:    it.ItemID,
			SkuID:     it.SkuID,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
			Discount:  it.Discount,
			Subtotal:  it.Subtotal,
		})
	}

	return Order{
		OrderID:     o.OrderID,
		UserID:      o.UserID,
		AddressID:   o.AddressID,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		Items:       items,
		Slot: DeliverySlot{
			SlotID:    o.Slot.SlotID,
			StartTime: o.Slot.StartTime,
			EndTime:   o.Slot.EndTime,
		},
		User: User{
			UserID: o.User.UserID,
			Name:   o.User.Name,
			Email:  o.User.Email,
			Phone:  o.User.Phone,
		},
	}
}
