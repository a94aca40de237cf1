package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "github.com/aurea-shop/storefront-api/internal/entity"
	"github.com/aurea-shop/storefront-api/internal/logging"
)

var (
	// ErrCheckoutInFlight means a submission for the same session is already
	// being processed; the second call is rejected, not queued.
	ErrCheckoutInFlight = errors.New("checkout already in progress")

	// ErrOrderPersistence wraps order-store failures. The cart stays
	// populated so the shopper can retry without re-entering items.
	ErrOrderPersistence = errors.New("order could not be saved")
)

const checkoutScope = "checkout"

type PlaceOrderInput struct {
	SessionID     string
	Address       domain.Address
	PaymentMethod string
}

type PlaceOrderOutput struct {
	OrderID     string
	OrderNumber string
	Subtotal    int64
	Shipping    int64
	Total       int64
	Status      domain.Status
}

// PlaceOrder is the boundary operation between the cart engine and the order
// store: it snapshots the cart, recomputes totals from the live settings, and
// persists the order. The cart is cleared only after a successful write.
type PlaceOrder struct {
	carts    Carts
	orders   OrderRepo
	settings SettingsRepo
	guard    IdempotencyStore
	events   OrderEvents
	now      func() time.Time
}

func NewPlaceOrder(carts Carts, orders OrderRepo, settings SettingsRepo, guard IdempotencyStore, events OrderEvents) *PlaceOrder {
	return &PlaceOrder{
		carts:    carts,
		orders:   orders,
		settings: settings,
		guard:    guard,
		events:   events,
		now:      time.Now,
	}
}

func (uc *PlaceOrder) Execute(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	l := logging.FromCtx(ctx)

	if err := in.Address.Validate(); err != nil {
		return PlaceOrderOutput{}, err
	}

	// One submission per session at a time. A double-click gets a conflict,
	// not a duplicate order.
	ok, err := uc.guard.TryLock(ctx, checkoutScope, in.SessionID)
	if err != nil {
		return PlaceOrderOutput{}, fmt.Errorf("checkout guard: %w", err)
	}
	if !ok {
		return PlaceOrderOutput{}, ErrCheckoutInFlight
	}
	defer func() { _ = uc.guard.Release(ctx, checkoutScope, in.SessionID) }()

	c, err := uc.carts.Get(ctx, in.SessionID)
	if err != nil {
		return PlaceOrderOutput{}, fmt.Errorf("load cart: %w", err)
	}
	if c.IsEmpty() {
		return PlaceOrderOutput{}, domain.ErrEmptyCart
	}

	settings, err := uc.settings.Get(ctx)
	if err != nil {
		l.Warn("settings unavailable, using defaults", "err", err)
		settings = domain.DefaultSettings()
	}

	// Totals are recomputed here from the cart contents; a cached display
	// total is never trusted at submission time.
	subtotal := c.Subtotal()
	shipping := settings.ShippingPolicy().Shipping(subtotal)
	total := domain.Total(subtotal, shipping, 0)

	items := make([]domain.OrderItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.UnitPrice,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}

	method := in.PaymentMethod
	if method == "" {
		method = "cod"
	}

	now := uc.now()
	order := &domain.Order{
		ID:            uuid.NewString(),
		OrderNumber:   domain.NewOrderNumber(now),
		Items:         items,
		Subtotal:      subtotal,
		Shipping:      shipping,
		Tax:           0,
		Total:         total,
		Status:        domain.StatusPending,
		PaymentMethod: method,
		PaymentStatus: domain.PaymentPending,
		ShippingAddr:  in.Address,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.orders.Create(ctx, order); err != nil {
		return PlaceOrderOutput{}, fmt.Errorf("%w: %v", ErrOrderPersistence, err)
	}

	// Best effort from here on: the order exists, so later failures are
	// logged rather than surfaced as a checkout failure.
	if uc.events != nil {
		if err := uc.events.PublishPlaced(ctx, PlacedMsg{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			Total:       order.Total,
			ItemCount:   c.ItemCount(),
			City:        in.Address.City,
		}); err != nil {
			l.Warn("publish order.placed failed", "order_id", order.ID, "err", err)
		}
	}

	if err := uc.carts.Clear(ctx, in.SessionID); err != nil {
		l.Warn("cart clear failed after order creation", "order_id", order.ID, "err", err)
	}

	_ = uc.guard.Remember(ctx, checkoutScope, in.SessionID, order.ID)

	return PlaceOrderOutput{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Subtotal:    subtotal,
		Shipping:    shipping,
		Total:       total,
		Status:      order.Status,
	}, nil
}
