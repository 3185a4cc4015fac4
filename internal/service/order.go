package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/delivery-order-service/pkg/utils"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
	SaveOrder(ctx context.Context, o entities.Order) (string, error)
	SaveOrderItems(ctx context.Context, orderID string, items []entities.OrderItem) error
	GetUser(ctx context.Context, userID string) (entities.User, error)
}

type InventoryValidator interface {
	ValidateInventory(ctx context.Context, items []entities.RequestedItem) error
}

type PriceCalculator interface {
	CalculatePrice(ctx context.Context, items []entities.RequestedItem) (entities.PriceBreakdown, error)
}

type SlotAllocator interface {
	Allocate(ctx context.Context, preferredSlotID string) (entities.SlotAssignment, error)
}

type Notifier interface {
	Dispatch(ctx context.Context, in DispatchInput) (entities.Notification, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	inventory InventoryValidator
	pricing   PriceCalculator
	slots     SlotAllocator
	notifier  Notifier
	cache     Cache
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	inventory InventoryValidator,
	pricing PriceCalculator,
	slots SlotAllocator,
	notifier Notifier,
	cache Cache,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		inventory: inventory,
		pricing:   pricing,
		slots:     slots,
		notifier:  notifier,
		cache:     cache,
	}
}

// CreateOrder проводит создание заказа как одну транзакцию: проверка
// остатков, расчет цены, резервирование слота, запись заказа с позициями
// и уведомление. Любая ошибка откатывает все, включая инкремент слота -
// частично созданный заказ снаружи не виден.
func (s *orderService) CreateOrder(ctx context.Context, req entities.CreateOrderRequest) (entities.Order, error) {
	var orderID string
	var method entities.AssignmentMethod

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.inventory.ValidateInventory(ctx, req.Items); err != nil {
			return err
		}

		user, err := s.repo.GetUser(ctx, req.UserID)
		if err != nil {
			return err
		}

		breakdown, err := s.pricing.CalculatePrice(ctx, req.Items)
		if err != nil {
			return fmt.Errorf("failed to calculate price: %w", err)
		}

		assignment, err := s.slots.Allocate(ctx, req.PreferredSlotID)
		if err != nil {
			return err
		}
		method = assignment.Method

		orderID, err = s.repo.SaveOrder(ctx, entities.Order{
			UserID:      req.UserID,
			AddressID:   req.AddressID,
			SlotID:      assignment.Slot.SlotID,
			TotalAmount: breakdown.TotalAmount,
			Status:      entities.OrderStatusPending,
		})
		if err != nil {
			return err
		}

		if err := s.repo.SaveOrderItems(ctx, orderID, buildItems(req.Items, breakdown)); err != nil {
			return err
		}

		if _, err := s.notifier.Dispatch(ctx, DispatchInput{
			OrderID:    orderID,
			UserID:     user.UserID,
			Type:       entities.NotificationOrderCreated,
			Assignment: &assignment,
		}); err != nil {
			return err
		}

		s.logger.Debug("order created",
			slog.String("order_id", orderID),
			slog.String("method", string(assignment.Method)),
		)
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	ordersCreated.WithLabelValues(string(method)).Inc()

	// Перечитываем заказ уже после коммита, со всеми связями
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	if data, err := order.Marshal(); err == nil {
		s.cache.Set(order.OrderID, data)
	}
	return order, nil
}

// buildItems снимает снапшот цены и скидки из расчета. Отсутствие SKU в
// карте цен - не ошибка, цена и скидка в этом случае равны нулю.
func buildItems(requested []entities.RequestedItem, breakdown entities.PriceBreakdown) []entities.OrderItem {
	items := make([]entities.OrderItem, 0, len(requested))
	for _, req := range requested {
		price := breakdown.ItemPrices[req.SkuID]
		discount := breakdown.ItemDiscounts[req.SkuID]
		items = append(items, entities.OrderItem{
			SkuID:     req.SkuID,
			Qty:       req.Qty,
			UnitPrice: price,
			Discount:  discount,
			Subtotal:  (price - discount) * req.Qty,
		})
	}
	return items
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", orderID), slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(orderID, data)
	return order, nil
}

func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to warm up cache: %w", err)
	}

	for _, order := range orders {
		data, err := order.Marshal()
		if err != nil {
			s.logger.Error("failed to marshal order", slog.String("order_id", order.OrderID), slog.Any("error", err))
			continue
		}
		s.cache.Set(order.OrderID, data)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}
