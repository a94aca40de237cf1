package queue

import (
	"context"

	"github.com/aurea-shop/storefront-api/internal/logging"
	"github.com/aurea-shop/storefront-api/internal/usecase"
)

// OrderPlacedHandler reacts to order.placed events: it checks whether the
// store has order notifications enabled and hands the event to the notifier.
type OrderPlacedHandler struct {
	settings usecase.SettingsRepo
	notifier Notifier
}

// Notifier delivers an order notification to the shop operator. The default
// implementation just logs; an email or webhook sender slots in here later.
type Notifier interface {
	NotifyOrderPlaced(ctx context.Context, msg usecase.PlacedMsg) error
}

func NewOrderPlacedHandler(settings usecase.SettingsRepo, notifier Notifier) *OrderPlacedHandler {
	return &OrderPlacedHandler{settings: settings, notifier: notifier}
}

// HandlePlaced is intended to be used with the JSON adapter
// (queue.JSONHandler[usecase.PlacedMsg]).
func (h *OrderPlacedHandler) HandlePlaced(ctx context.Context, msg usecase.PlacedMsg) error {
	s, err := h.settings.Get(ctx)
	if err != nil {
		return err
	}
	if !s.OrderNotifications {
		return nil
	}
	return h.notifier.NotifyOrderPlaced(ctx, msg)
}

// LogNotifier records order notifications in the service log.
type LogNotifier struct{}

func (LogNotifier) NotifyOrderPlaced(ctx context.Context, msg usecase.PlacedMsg) error {
	logging.FromCtx(ctx).Info("order placed",
		"order_id", msg.OrderID,
		"order_number", msg.OrderNumber,
		"total", msg.Total,
		"items", msg.ItemCount,
		"city", msg.City,
	)
	return nil
}
