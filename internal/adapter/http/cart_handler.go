package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aurea-shop/storefront-api/internal/cart"
	domain "github.com/aurea-shop/storefront-api/internal/entity"
	"github.com/aurea-shop/storefront-api/internal/usecase"
)

const sessionHeader = "X-Session-Id"

// CartHandler exposes the cart engine to every storefront surface (home,
// shop listing, product page, cart page, sidebar, checkout).
type CartHandler struct {
	engine   *cart.Engine
	settings usecase.SettingsRepo
}

func NewCartHandler(engine *cart.Engine, settings usecase.SettingsRepo) *CartHandler {
	return &CartHandler{engine: engine, settings: settings}
}

func sessionID(c *gin.Context) (string, bool) {
	id := c.GetHeader(sessionHeader)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_session", "error_description": sessionHeader + " header required"})
		return "", false
	}
	return id, true
}

// cartView is what the rendering layer consumes: items plus derived totals,
// recomputed on every request.
type cartView struct {
	Items     []cart.LineItem `json:"items"`
	ItemCount int             `json:"itemCount"`
	Subtotal  int64           `json:"subtotal"`
	Shipping  int64           `json:"shipping"`
	Total     int64           `json:"total"`
}

func (h *CartHandler) view(c *gin.Context, crt cart.Cart) cartView {
	policy := domain.DefaultSettings().ShippingPolicy()
	if s, err := h.settings.Get(c.Request.Context()); err == nil {
		policy = s.ShippingPolicy()
	}

	subtotal := crt.Subtotal()
	shipping := policy.Shipping(subtotal)
	items := crt.Items
	if items == nil {
		items = []cart.LineItem{}
	}
	return cartView{
		Items:     items,
		ItemCount: crt.ItemCount(),
		Subtotal:  subtotal,
		Shipping:  shipping,
		Total:     domain.Total(subtotal, shipping, 0),
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	crt, err := h.engine.Get(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart_unavailable"})
		return
	}
	c.JSON(http.StatusOK, h.view(c, crt))
}

type addItemReq struct {
	ProductID string `json:"productId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Category  string `json:"category"`
	UnitPrice int64  `json:"unitPrice" binding:"min=0"`
	Image     string `json:"image"`
	// Pointer so an explicit 0 (rejected) is distinguishable from an
	// absent field (defaults to 1).
	Quantity *int `json:"quantity"`
}

func (h *CartHandler) AddItem(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	ctx, cancel := contextWithTimeout(c, 2*time.Second)
	defer cancel()

	crt, err := h.engine.AddItem(ctx, sid, cart.LineItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		Category:  req.Category,
		UnitPrice: req.UnitPrice,
		Image:     req.Image,
	}, qty)
	if err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_quantity"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart_unavailable"})
		return
	}
	c.JSON(http.StatusOK, h.view(c, crt))
}

type setQuantityReq struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) SetQuantity(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req setQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := contextWithTimeout(c, 2*time.Second)
	defer cancel()

	crt, err := h.engine.SetQuantity(ctx, sid, c.Param("productId"), req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart_unavailable"})
		return
	}
	c.JSON(http.StatusOK, h.view(c, crt))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	ctx, cancel := contextWithTimeout(c, 2*time.Second)
	defer cancel()

	crt, err := h.engine.RemoveItem(ctx, sid, c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart_unavailable"})
		return
	}
	c.JSON(http.StatusOK, h.view(c, crt))
}

func (h *CartHandler) Clear(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	ctx, cancel := contextWithTimeout(c, 2*time.Second)
	defer cancel()

	if err := h.engine.Clear(ctx, sid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart_unavailable"})
		return
	}
	c.JSON(http.StatusOK, h.view(c, cart.Cart{}))
}
