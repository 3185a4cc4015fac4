package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	// Получаем заказ
	query, args := r.qb.Select(
		"order_id", "user_id", "address_id", "slot_id",
		"total_amount", "status", "created_at").
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	// Получаем позиции заказа
	query, args = r.qb.Select(
		"item_id", "order_id", "sku_id", "qty",
		"unit_price", "discount", "subtotal").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	// Получаем слот доставки
	query, args = r.qb.Select(
		"slot_id", "start_time", "end_time",
		"is_active", "current_usage", "max_capacity").
		From("delivery_slots").
		Where(sq.Eq{"slot_id": order.SlotID}).
		MustSql()

	var slot DeliverySlot
	if err := r.getContext(ctx, &slot, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get delivery slot: %w", err)
	}

	// Получаем пользователя
	query, args = r.qb.Select("user_id", "name", "email", "phone").
		From("users").
		Where(sq.Eq{"user_id": order.UserID}).
		MustSql()

	var user User
	if err := r.getContext(ctx, &user, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get user: %w", err)
	}

	return OrderToEntity(order, items, slot, user), nil
}

func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	// Получаем последние count заказов
	query, args := r.qb.Select(
		"order_id", "user_id", "address_id", "slot_id",
		"total_amount", "status", "created_at").
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	slotIDs := make([]string, len(orders))
	userIDs := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.OrderID
		slotIDs[i] = order.SlotID
		userIDs[i] = order.UserID
	}

	// Получаем позиции этих заказов
	query, args = r.qb.Select(
		"item_id", "order_id", "sku_id", "qty",
		"unit_price", "discount", "subtotal").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	// Получаем слоты доставки
	query, args = r.qb.Select(
		"slot_id", "start_time", "end_time",
		"is_active", "current_usage", "max_capacity").
		From("delivery_slots").
		Where(sq.Eq{"slot_id": slotIDs}).
		MustSql()

	var slots []DeliverySlot
	if err := r.selectContext(ctx, &slots, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select delivery slots: %w", err)
	}
	slotMap := make(map[string]DeliverySlot, len(slots))
	for _, slot := range slots {
		slotMap[slot.SlotID] = slot
	}

	// Получаем пользователей
	query, args = r.qb.Select("user_id", "name", "email", "phone").
		From("users").
		Where(sq.Eq{"user_id": userIDs}).
		MustSql()

	var users []User
	if err := r.selectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	userMap := make(map[string]User, len(users))
	for _, user := range users {
		userMap[user.UserID] = user
	}

	// Формируем ответ
	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(
			order, itemsMap[order.OrderID], slotMap[order.SlotID], userMap[order.UserID],
		))
	}

	return result, nil
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) (string, error) {
	query, args := r.qb.Insert("orders").
		Columns("user_id", "address_id", "slot_id", "total_amount", "status").
		Values(o.UserID, o.AddressID, o.SlotID, o.TotalAmount, o.Status).
		Suffix("RETURNING order_id").
		MustSql()

	var orderID string
	if err := r.getContext(ctx, &orderID, query, args...); err != nil {
		return "", fmt.Errorf("failed to save order: %w", err)
	}
	return orderID, nil
}

func (r *postgresRepo) SaveOrderItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "sku_id", "qty", "unit_price", "discount", "subtotal")

	for _, it := range items {
		q = q.Values(orderID, it.SkuID, it.Qty, it.UnitPrice, it.Discount, it.Subtotal)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetUser(ctx context.Context, userID string) (entities.User, error) {
	query, args := r.qb.Select("user_id", "name", "email", "phone").
		From("users").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(user), nil
}

func (r *postgresRepo) GetSlot(ctx context.Context, slotID string) (entities.DeliverySlot, error) {
	query, args := r.qb.Select(
		"slot_id", "start_time", "end_time",
		"is_active", "current_usage", "max_capacity").
		From("delivery_slots").
		Where(sq.Eq{"slot_id": slotID}).
		MustSql()

	var slot DeliverySlot
	err := r.getContext(ctx, &slot, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.DeliverySlot{}, entities.ErrSlotNotFound
	}
	if err != nil {
		return entities.DeliverySlot{}, fmt.Errorf("failed to get slot: %w", err)
	}
	return SlotToEntity(slot), nil
}

// ReserveSlot атомарно занимает место в слоте. Проверка вместимости и
// инкремент выполняются одним условным UPDATE, поэтому две конкурентные
// транзакции не могут занять последнее место одновременно.
func (r *postgresRepo) ReserveSlot(ctx context.Context, slotID string, now time.Time) error {
	query, args := r.qb.Update("delivery_slots").
		Set("current_usage", sq.Expr("current_usage + 1")).
		Where(sq.Eq{"slot_id": slotID, "is_active": true}).
		Where(sq.Expr("current_usage < max_capacity")).
		Where(sq.Gt{"start_time": now}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to reserve slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to reserve slot: %w", err)
	}
	if rows == 0 {
		return entities.ErrSlotTaken
	}
	return nil
}

func (r *postgresRepo) NextAvailableSlot(ctx context.Context, now time.Time) (*entities.DeliverySlot, error) {
	query, args := r.qb.Select(
		"slot_id", "start_time", "end_time",
		"is_active", "current_usage", "max_capacity").
		From("delivery_slots").
		Where(sq.Eq{"is_active": true}).
		Where(sq.Expr("current_usage < max_capacity")).
		Where(sq.Gt{"start_time": now}).
		OrderBy("start_time ASC").
		Limit(1).
		MustSql()

	var slot DeliverySlot
	err := r.getContext(ctx, &slot, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get next available slot: %w", err)
	}

	s := SlotToEntity(slot)
	return &s, nil
}

func (r *postgresRepo) GetOrderSlot(ctx context.Context, orderID string) (*entities.DeliverySlot, error) {
	query, args := r.qb.Select(
		"s.slot_id", "s.start_time", "s.end_time",
		"s.is_active", "s.current_usage", "s.max_capacity").
		From("delivery_slots s").
		Join("orders o ON o.slot_id = s.slot_id").
		Where(sq.Eq{"o.order_id": orderID}).
		MustSql()

	var slot DeliverySlot
	err := r.getContext(ctx, &slot, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order slot: %w", err)
	}

	s := SlotToEntity(slot)
	return &s, nil
}

func (r *postgresRepo) GetProductsBySKU(ctx context.Context, skuIDs []string) ([]entities.Product, error) {
	query, args := r.qb.Select("sku_id", "name", "price", "discount", "stock").
		From("products").
		Where(sq.Eq{"sku_id": skuIDs}).
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

func (r *postgresRepo) SaveNotification(ctx context.Context, n entities.Notification) (string, error) {
	query, args := r.qb.Insert("notifications").
		Columns("user_id", "order_id", "type", "title", "content", "is_read").
		Values(n.UserID, n.OrderID, n.Type, n.Title, n.Content, n.IsRead).
		Suffix("RETURNING notification_id").
		MustSql()

	var notificationID string
	if err := r.getContext(ctx, &notificationID, query, args...); err != nil {
		return "", fmt.Errorf("failed to save notification: %w", err)
	}
	return notificationID, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
