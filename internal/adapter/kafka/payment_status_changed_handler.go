package kafka

import (
	"context"

	domain "github.com/aurea-shop/storefront-api/internal/entity"
	"github.com/aurea-shop/storefront-api/internal/logging"
	"github.com/aurea-shop/storefront-api/internal/usecase"
)

// PaymentStatusChangedHandler applies payment pipeline events to the order
// row. Only paymentStatus moves; the order status stays under operator
// control.
type PaymentStatusChangedHandler struct {
	Repo  usecase.OrderRepo
	Cache usecase.OrderCache // optional
}

func NewPaymentStatusChangedHandler(repo usecase.OrderRepo, cache usecase.OrderCache) *PaymentStatusChangedHandler {
	return &PaymentStatusChangedHandler{Repo: repo, Cache: cache}
}

func (h *PaymentStatusChangedHandler) Handle(ctx context.Context, ev usecase.PaymentStatusChangedMsg) error {
	// Map external status -> internal. Labels we do not recognize are
	// skipped, not treated as failures, so the pipeline can add statuses
	// without corrupting payment state here.
	var to domain.PaymentStatus
	switch ev.Status {
	case "PAID", "SUCCESS":
		to = domain.PaymentPaid
	case "FAILED", "DECLINED", "CANCELLED", "TIMEOUT", "ERROR":
		to = domain.PaymentFailed
	default:
		logging.FromCtx(ctx).Warn("unknown payment status, skipping",
			"order_id", ev.OrderID, "status", ev.Status)
		return nil
	}

	if err := h.Repo.UpdatePaymentStatus(ctx, ev.OrderID, to); err != nil {
		return err
	}

	// Cache best-effort
	if h.Cache != nil {
		_ = h.Cache.SetStatus(ctx, ev.OrderID, "payment:"+string(to))
	}
	return nil
}
