package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/aurea-shop/storefront-api/internal/entity"
	"github.com/aurea-shop/storefront-api/internal/usecase"
)

type SettingsHandler struct {
	repo usecase.SettingsRepo
}

func NewSettingsHandler(repo usecase.SettingsRepo) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, 2*time.Second)
	defer cancel()

	s, err := h.repo.Get(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query_failed"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var s domain.StoreSettings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	if s.FreeShippingThreshold < 0 || s.StandardShippingCost < 0 || s.ExpressShippingCost < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "negative_shipping_values"})
		return
	}

	ctx, cancel := contextWithTimeout(c, 2*time.Second)
	defer cancel()

	if err := h.repo.Save(ctx, s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save_failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
