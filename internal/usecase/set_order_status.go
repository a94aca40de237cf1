package usecase

import (
	"context"

	domain "github.com/aurea-shop/storefront-api/internal/entity"
)

// SetOrderStatus is the admin-side status update. Any known status may be set
// from any other status; only unknown labels are rejected. The item snapshot
// and totals of an order are immutable, so this is the only mutation path.
type SetOrderStatus struct {
	orders OrderRepo
	cache  OrderCache // optional
}

func NewSetOrderStatus(orders OrderRepo, cache OrderCache) *SetOrderStatus {
	return &SetOrderStatus{orders: orders, cache: cache}
}

func (uc *SetOrderStatus) Execute(ctx context.Context, orderID string, to domain.Status) error {
	if !domain.KnownStatus(to) {
		return domain.ErrUnknownStatus
	}
	if err := uc.orders.UpdateStatus(ctx, orderID, to); err != nil {
		return err
	}
	if uc.cache != nil {
		_ = uc.cache.SetStatus(ctx, orderID, string(to))
	}
	return nil
}

// SetPaymentStatus updates paymentStatus only, leaving status untouched.
func (uc *SetOrderStatus) SetPaymentStatus(ctx context.Context, orderID string, to domain.PaymentStatus) error {
	if !domain.KnownPaymentStatus(to) {
		return domain.ErrUnknownStatus
	}
	return uc.orders.UpdatePaymentStatus(ctx, orderID, to)
}
