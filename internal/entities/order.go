package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"strings"
	"time"
)

const OrderStatusPending = "pending"

// RequestedItem позиция заказа, как её прислал клиент
type RequestedItem struct {
	SkuID string
	Qty   int
}

type CreateOrderRequest struct {
	UserID          string
	AddressID       string
	Items           []RequestedItem
	PreferredSlotID string
}

// OrderItem хранит снапшот цены и скидки на момент создания заказа,
// позже они не пересчитываются
type OrderItem struct {
	ItemID    string
	SkuID     string
	Qty       int
	UnitPrice int
	Discount  int
	Subtotal  int
}

type Order struct {
	OrderID     string
	UserID      string
	AddressID   string
	SlotID      string
	TotalAmount int
	Status      string
	CreatedAt   time.Time

	Items []OrderItem
	Slot  DeliverySlot
	User  User
}

type PriceBreakdown struct {
	TotalAmount   int
	ItemPrices    map[string]int
	ItemDiscounts map[string]int
}

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidOrder  = errors.New("invalid order data")
)

// InventoryError содержит список причин, по которым заказ не прошел
// проверку остатков. Клиент может исправить позиции и повторить запрос.
type InventoryError struct {
	Reasons []string
}

func (e *InventoryError) Error() string {
	return "inventory invalid: " + strings.Join(e.Reasons, "; ")
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(DeliverySlot{})
	gob.Register(User{})
}
