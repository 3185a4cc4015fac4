package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
)

type NotificationRepo interface {
	SaveNotification(ctx context.Context, n entities.Notification) (string, error)
	GetOrderSlot(ctx context.Context, orderID string) (*entities.DeliverySlot, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, n entities.Notification) error
}

// DispatchInput - контекст уведомления. Вместо произвольного мешка
// ключей передается закрытая структура: способ назначения слота и его
// окно приходят типизированно, Extra остается только для скалярных
// подстановок в шаблон.
type DispatchInput struct {
	OrderID    string
	UserID     string
	Type       string
	Assignment *entities.SlotAssignment
	Extra      map[string]any
}

type notificationTemplate struct {
	title   string
	content string
}

var defaultTemplates = map[string]notificationTemplate{
	entities.NotificationOrderCreated: {
		title:   "Order confirmed",
		content: "Your order {orderId} has been placed successfully. {deliveryInfo}",
	},
}

type notificationService struct {
	logger    *slog.Logger
	repo      NotificationRepo
	publisher EventPublisher
	templates map[string]notificationTemplate
}

func NewNotificationService(logger *slog.Logger, repo NotificationRepo, publisher EventPublisher) *notificationService {
	templates := make(map[string]notificationTemplate, len(defaultTemplates))
	for typ, tpl := range defaultTemplates {
		templates[typ] = tpl
	}
	return &notificationService{
		logger:    logger.With(slog.String("service", "notification")),
		repo:      repo,
		publisher: publisher,
		templates: templates,
	}
}

// RegisterTemplate регистрирует шаблон для типа уведомления
func (s *notificationService) RegisterTemplate(typ, title, content string) {
	s.templates[typ] = notificationTemplate{title: title, content: content}
}

// Dispatch рендерит уведомление, сохраняет его непрочитанным и публикует
// событие для дальнейшей доставки. Сохранение идет в транзакции заказа,
// публикация - best-effort: ее сбой не откатывает заказ.
func (s *notificationService) Dispatch(ctx context.Context, in DispatchInput) (entities.Notification, error) {
	tpl, ok := s.templates[in.Type]
	if !ok {
		return entities.Notification{}, fmt.Errorf("%w: %s", entities.ErrUnknownNotificationType, in.Type)
	}

	fields := map[string]string{
		"orderId":      in.OrderID,
		"deliveryInfo": s.deliveryInfo(ctx, in),
	}
	for key, value := range in.Extra {
		// нескалярные значения в шаблон не подставляются
		if str, ok := scalarString(value); ok {
			fields[key] = str
		}
	}

	notification := entities.Notification{
		UserID:  in.UserID,
		OrderID: in.OrderID,
		Type:    in.Type,
		Title:   interpolate(tpl.title, fields),
		Content: interpolate(tpl.content, fields),
	}

	id, err := s.repo.SaveNotification(ctx, notification)
	if err != nil {
		return entities.Notification{}, err
	}
	notification.NotificationID = id

	if err := s.publisher.Publish(ctx, notification); err != nil {
		notificationsPublishFailed.Inc()
		s.logger.Error("failed to publish notification event",
			slog.String("notification_id", id),
			slog.Any("error", err),
		)
	}

	return notification, nil
}

func (s *notificationService) deliveryInfo(ctx context.Context, in DispatchInput) string {
	if in.Assignment != nil {
		window := formatWindow(in.Assignment.Slot)
		switch in.Assignment.Method {
		case entities.MethodUserSelected:
			return fmt.Sprintf("Your selected delivery time: %s.", window)
		case entities.MethodFallback:
			return fmt.Sprintf("Your preferred time slot was unavailable, so we assigned the next available slot: %s.", window)
		default:
			return fmt.Sprintf("Scheduled for %s.", window)
		}
	}

	slot, err := s.repo.GetOrderSlot(ctx, in.OrderID)
	if err != nil {
		s.logger.Error("failed to look up order slot", slog.String("order_id", in.OrderID), slog.Any("error", err))
	}
	if slot != nil {
		return fmt.Sprintf("Scheduled for %s.", formatWindow(*slot))
	}

	return "Delivery details will be provided soon."
}

// formatWindow рендерит окно доставки вида "Sunday 2:00 PM - 5:00 PM".
// Минуты не показываются: границы слотов всегда по целому часу.
func formatWindow(slot entities.DeliverySlot) string {
	return fmt.Sprintf("%s %s - %s",
		slot.StartTime.Weekday(),
		slot.StartTime.Format("3:00 PM"),
		slot.EndTime.Format("3:00 PM"),
	)
}

func interpolate(tpl string, fields map[string]string) string {
	pairs := make([]string, 0, len(fields)*2)
	for key, value := range fields {
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

func scalarString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case int:
		return strconv.Itoa(val), true
	case int32:
		return strconv.FormatInt(int64(val), 10), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	default:
		return "", false
	}
}
