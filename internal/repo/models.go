package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
)

type Order struct {
	OrderID     string    `db:"order_id"`
	UserID      string    `db:"user_id"`
	AddressID   string    `db:"address_id"`
	SlotID      string    `db:"slot_id"`
	TotalAmount int       `db:"total_amount"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

type OrderItem struct {
	ItemID    string `db:"item_id"`
	OrderID   string `db:"order_id"`
	SkuID     string `db:"sku_id"`
	Qty       int    `db:"qty"`
	UnitPrice int    `db:"unit_price"`
	Discount  int    `db:"discount"`
	Subtotal  int    `db:"subtotal"`
}

type DeliverySlot struct {
	SlotID       string    `db:"slot_id"`
	StartTime    time.Time `db:"start_time"`
	EndTime      time.Time `db:"end_time"`
	IsActive     bool      `db:"is_active"`
	CurrentUsage int       `db:"current_usage"`
	MaxCapacity  int       `db:"max_capacity"`
}

type User struct {
	UserID string         `db:"user_id"`
	Name   string         `db:"name"`
	Email  sql.NullString `db:"email"`
	Phone  sql.NullString `db:"phone"`
}

type Notification struct {
	NotificationID string    `db:"notification_id"`
	UserID         string    `db:"user_id"`
	OrderID        string    `db:"order_id"`
	Type           string    `db:"type"`
	Title          string    `db:"title"`
	Content        string    `db:"content"`
	IsRead         bool      `db:"is_read"`
	CreatedAt      time.Time `db:"created_at"`
}

type Product struct {
	SkuID    string        `db:"sku_id"`
	Name     string        `db:"name"`
	Price    int           `db:"price"`
	Discount sql.NullInt32 `db:"discount"`
	Stock    int           `db:"stock"`
}

func SlotToEntity(s DeliverySlot) entities.DeliverySlot {
	return entities.DeliverySlot{
		SlotID:       s.SlotID,
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		IsActive:     s.IsActive,
		CurrentUsage: s.CurrentUsage,
		MaxCapacity:  s.MaxCapacity,
	}
}

func UserToEntity(u User) entities.User {
	return entities.User{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  nullStringToString(u.Email),
		Phone:  nullStringToString(u.Phone),
	}
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ItemID:    i.ItemID,
		SkuID:     i.SkuID,
		Qty:       i.Qty,
		UnitPrice: i.UnitPrice,
		Discount:  i.Discount,
		Subtotal:  i.Subtotal,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		SkuID:    p.SkuID,
		Name:     p.Name,
		Price:    p.Price,
		Discount: nullInt32ToInt(p.Discount),
		Stock:    p.Stock,
	}
}

func OrderToEntity(o Order, items []OrderItem, slot DeliverySlot, user User) entities.Order {
	order := entities.Order{
		OrderID:     o.OrderID,
		UserID:      o.UserID,
		AddressID:   o.AddressID,
		SlotID:      o.SlotID,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		Slot:        SlotToEntity(slot),
		User:        UserToEntity(user),
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullInt32ToInt(ni sql.NullInt32) int {
	if ni.Valid {
		return int(ni.Int32)
	}
	return 0
}
