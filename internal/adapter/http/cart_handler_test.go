package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurea-shop/storefront-api/internal/cart"
	domain "github.com/aurea-shop/storefront-api/internal/entity"
)

func newCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := cart.NewEngine(cart.NewMemoryStore())
	h := NewCartHandler(engine, &stubSettings{s: domain.DefaultSettings()})

	r := gin.New()
	r.GET("/v1/cart", h.GetCart)
	r.POST("/v1/cart/items", h.AddItem)
	r.PUT("/v1/cart/items/:productId", h.SetQuantity)
	r.DELETE("/v1/cart/items/:productId", h.RemoveItem)
	r.DELETE("/v1/cart", h.Clear)
	return r
}

func doCart(r *gin.Engine, method, path, session string, body any) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if session != "" {
		req.Header.Set(sessionHeader, session)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartView {
	t.Helper()
	var v cartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestGetCartWithoutSessionHeader(t *testing.T) {
	r := newCartRouter(t)
	w := doCart(r, http.MethodGet, "/v1/cart", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_session")
}

func TestGetCartEmptySession(t *testing.T) {
	r := newCartRouter(t)
	w := doCart(r, http.MethodGet, "/v1/cart", "s1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	v := decodeCart(t, w)
	assert.Empty(t, v.Items)
	assert.Zero(t, v.ItemCount)
	assert.Zero(t, v.Subtotal)
	assert.Zero(t, v.Shipping)
	assert.Zero(t, v.Total)
}

func TestAddItemAccumulatesAndReturnsTotals(t *testing.T) {
	r := newCartRouter(t)
	item := gin.H{"productId": "p1", "name": "Amber Candle", "unitPrice": 1200, "quantity": 1}

	w := doCart(r, http.MethodPost, "/v1/cart/items", "s1", item)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	item["quantity"] = 2
	w = doCart(r, http.MethodPost, "/v1/cart/items", "s1", item)
	require.Equal(t, http.StatusOK, w.Code)

	v := decodeCart(t, w)
	require.Len(t, v.Items, 1)
	assert.Equal(t, 3, v.Items[0].Quantity)
	assert.Equal(t, 3, v.ItemCount)
	assert.Equal(t, int64(3600), v.Subtotal)
	assert.Equal(t, int64(250), v.Shipping)
	assert.Equal(t, int64(3850), v.Total)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	r := newCartRouter(t)
	w := doCart(r, http.MethodPost, "/v1/cart/items", "s1", gin.H{"productId": "p1", "name": "Candle", "unitPrice": 100})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decodeCart(t, w).ItemCount)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	r := newCartRouter(t)
	for _, qty := range []int{0, -2} {
		w := doCart(r, http.MethodPost, "/v1/cart/items", "s1", gin.H{"productId": "p1", "name": "Candle", "unitPrice": 100, "quantity": qty})
		assert.Equal(t, http.StatusBadRequest, w.Code, "quantity=%d", qty)
		assert.Contains(t, w.Body.String(), "invalid_quantity")
	}

	// an explicit zero must not be coerced into the missing-field default
	w := doCart(r, http.MethodGet, "/v1/cart", "s1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
}

func TestFreeShippingAtThreshold(t *testing.T) {
	r := newCartRouter(t)
	w := doCart(r, http.MethodPost, "/v1/cart/items", "s1", gin.H{"productId": "p1", "name": "Gift Set", "unitPrice": 5000, "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)

	v := decodeCart(t, w)
	assert.Equal(t, int64(5000), v.Subtotal)
	assert.Equal(t, int64(0), v.Shipping)
	assert.Equal(t, int64(5000), v.Total)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	r := newCartRouter(t)
	doCart(r, http.MethodPost, "/v1/cart/items", "s1", gin.H{"productId": "p1", "name": "Candle", "unitPrice": 100, "quantity": 2})

	w := doCart(r, http.MethodPut, "/v1/cart/items/p1", "s1", gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
}

func TestSetQuantityAbsentProductNoOp(t *testing.T) {
	r := newCartRouter(t)
	doCart(r, http.MethodPost, "/v1/cart/items", "s1", gin.H{"productId": "p1", "name": "Candle", "unitPrice": 100, "quantity": 1})

	w := doCart(r, http.MethodPut, "/v1/cart/items/ghost", "s1", gin.H{"quantity": 5})
	require.Equal(t, http.StatusOK, w.Code)

	v := decodeCart(t, w)
	require.Len(t, v.Items, 1)
	assert.Equal(t, "p1", v.Items[0].ProductID)
	assert.Equal(t, 1, v.Items[0].Quantity)
}

func TestRemoveItemAndClear(t *testing.T) {
	r := newCartRouter(t)
	doCart(r, http.MethodPost, "/v1/cart/items", "s1", gin.H{"productId": "p1", "name": "Candle", "unitPrice": 100, "quantity": 1})
	doCart(r, http.MethodPost, "/v1/cart/items", "s1", gin.H{"productId": "p2", "name": "Diffuser", "unitPrice": 200, "quantity": 1})

	w := doCart(r, http.MethodDelete, "/v1/cart/items/p1", "s1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	v := decodeCart(t, w)
	require.Len(t, v.Items, 1)
	assert.Equal(t, "p2", v.Items[0].ProductID)

	w = doCart(r, http.MethodDelete, "/v1/cart", "s1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
}

func TestSessionsAreIsolated(t *testing.T) {
	r := newCartRouter(t)
	doCart(r, http.MethodPost, "/v1/cart/items", "s1", gin.H{"productId": "p1", "name": "Candle", "unitPrice": 100, "quantity": 1})

	w := doCart(r, http.MethodGet, "/v1/cart", "s2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
}
