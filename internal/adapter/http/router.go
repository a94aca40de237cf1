package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aurea-shop/storefront-api/internal/adapter/http/middleware"
	"github.com/aurea-shop/storefront-api/internal/logging"
)

func NewRouter(ch *CartHandler, oh *OrderHandler, ph *ProductHandler, sh *SettingsHandler, ah *AnalyticsHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		// storefront
		v1.GET("/cart", ch.GetCart)
		v1.POST("/cart/items", ch.AddItem)
		v1.PUT("/cart/items/:productId", ch.SetQuantity)
		v1.DELETE("/cart/items/:productId", ch.RemoveItem)
		v1.DELETE("/cart", ch.Clear)
		v1.POST("/checkout", oh.Checkout)
		v1.GET("/products", ph.List)
		v1.GET("/products/:id", ph.GetByID)

		// back office
		v1.POST("/products", ph.Create)
		v1.PUT("/products/:id", ph.Update)
		v1.DELETE("/products/:id", ph.Delete)
		v1.GET("/orders", oh.ListOrders)
		v1.GET("/orders/:id", oh.GetOrderByID)
		v1.PUT("/orders/:id/status", oh.SetStatus)
		v1.GET("/settings", sh.Get)
		v1.PUT("/settings", sh.Update)
		v1.GET("/analytics/summary", ah.Summary)
	}

	return r
}
