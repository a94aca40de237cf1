package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aurea-shop/storefront-api/internal/usecase"
)

type AnalyticsHandler struct {
	repo usecase.AnalyticsRepo
}

func NewAnalyticsHandler(repo usecase.AnalyticsRepo) *AnalyticsHandler {
	return &AnalyticsHandler{repo: repo}
}

func (h *AnalyticsHandler) Summary(c *gin.Context) {
	limit := 10
	if raw := c.Query("recent"); raw != "" {
		if n, err := parsePositiveInt(raw); err == nil {
			limit = n
		}
	}

	ctx, cancel := contextWithTimeout(c, 5*time.Second)
	defer cancel()

	s, err := h.repo.Summary(ctx, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query_failed"})
		return
	}
	c.JSON(http.StatusOK, s)
}
