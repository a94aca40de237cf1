package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/aurea-shop/storefront-api/internal/entity"
	"github.com/aurea-shop/storefront-api/internal/usecase"
)

type OrderHandler struct {
	place  *usecase.PlaceOrder
	status *usecase.SetOrderStatus
	query  usecase.OrderRepo
}

func NewOrderHandler(place *usecase.PlaceOrder, status *usecase.SetOrderStatus, query usecase.OrderRepo) *OrderHandler {
	return &OrderHandler{place: place, status: status, query: query}
}

type checkoutReq struct {
	Address       domain.Address `json:"shippingAddress" binding:"required"`
	PaymentMethod string         `json:"paymentMethod"`
}

type checkoutResp struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	Subtotal    int64  `json:"subtotal"`
	Shipping    int64  `json:"shipping"`
	Total       int64  `json:"total"`
	Status      string `json:"status"`
}

// Checkout handler: translate to use case input.
func (h *OrderHandler) Checkout(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := contextWithTimeout(c, 3*time.Second)
	defer cancel()

	out, err := h.place.Execute(ctx, usecase.PlaceOrderInput{
		SessionID:     sid,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		var addrErr *domain.InvalidAddressError
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "empty_cart"})
		case errors.As(err, &addrErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_address", "missing": addrErr.Missing})
		case errors.Is(err, usecase.ErrCheckoutInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "checkout_in_flight"})
		case errors.Is(err, usecase.ErrOrderPersistence):
			// Cart is preserved; the shopper can simply resubmit.
			c.JSON(http.StatusBadGateway, gin.H{"error": "order_not_saved", "retryable": true})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, checkoutResp{
		OrderID:     out.OrderID,
		OrderNumber: out.OrderNumber,
		Subtotal:    out.Subtotal,
		Shipping:    out.Shipping,
		Total:       out.Total,
		Status:      string(out.Status),
	})
}

func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, 2*time.Second)
	defer cancel()

	order, err := h.query.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query_failed"})
		return
	}
	c.JSON(http.StatusOK, orderJSON(order))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	status := domain.Status(c.Query("status"))
	if status != "" && !domain.KnownStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown_status"})
		return
	}
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := parsePositiveInt(raw); err == nil {
			limit = n
		}
	}

	ctx, cancel := contextWithTimeout(c, 3*time.Second)
	defer cancel()

	orders, err := h.query.List(ctx, status, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query_failed"})
		return
	}
	out := make([]gin.H, 0, len(orders))
	for i := range orders {
		out = append(out, orderJSON(&orders[i]))
	}
	c.JSON(http.StatusOK, gin.H{"orders": out, "count": len(out)})
}

type setStatusReq struct {
	Status        string `json:"status" binding:"required"`
	PaymentStatus string `json:"paymentStatus"`
}

// SetStatus is the admin update path: status always, paymentStatus only when
// explicitly provided.
func (h *OrderHandler) SetStatus(c *gin.Context) {
	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	// Both labels are checked before the first write so an invalid
	// paymentStatus cannot leave a half-applied update behind.
	if req.PaymentStatus != "" && !domain.KnownPaymentStatus(domain.PaymentStatus(req.PaymentStatus)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown_payment_status"})
		return
	}

	ctx, cancel := contextWithTimeout(c, 2*time.Second)
	defer cancel()

	id := c.Param("id")
	if err := h.status.Execute(ctx, id, domain.Status(req.Status)); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown_status"})
		case errors.Is(err, domain.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update_failed"})
		}
		return
	}

	if req.PaymentStatus != "" {
		if err := h.status.SetPaymentStatus(ctx, id, domain.PaymentStatus(req.PaymentStatus)); err != nil {
			if errors.Is(err, domain.ErrUnknownStatus) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown_payment_status"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update_failed"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func orderJSON(o *domain.Order) gin.H {
	return gin.H{
		"id":              o.ID,
		"orderNumber":     o.OrderNumber,
		"items":           o.Items,
		"subtotal":        o.Subtotal,
		"shipping":        o.Shipping,
		"tax":             o.Tax,
		"total":           o.Total,
		"status":          o.Status,
		"paymentMethod":   o.PaymentMethod,
		"paymentStatus":   o.PaymentStatus,
		"shippingAddress": o.ShippingAddr,
		"createdAt":       o.CreatedAt,
		"updatedAt":       o.UpdatedAt,
	}
}
