package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/aurea-shop/storefront-api/internal/entity"
	"github.com/aurea-shop/storefront-api/internal/usecase"
)

type ProductHandler struct {
	repo usecase.ProductRepo
}

func NewProductHandler(repo usecase.ProductRepo) *ProductHandler {
	return &ProductHandler{repo: repo}
}

// List serves the shop grid. ?slug= keeps the original single-product lookup
// shape: the response is still a (zero- or one-element) product list.
func (h *ProductHandler) List(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, 3*time.Second)
	defer cancel()

	if slug := c.Query("slug"); slug != "" {
		p, err := h.repo.GetBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				c.JSON(http.StatusOK, gin.H{"products": []any{}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "query_failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": []any{productJSON(p)}})
		return
	}

	f := usecase.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("featured"); raw != "" {
		featured := raw == "true" || raw == "1"
		f.Featured = &featured
	}
	if raw := c.Query("limit"); raw != "" {
		if n, err := parsePositiveInt(raw); err == nil {
			f.Limit = n
		}
	}

	products, err := h.repo.List(ctx, f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query_failed"})
		return
	}
	out := make([]gin.H, 0, len(products))
	for i := range products {
		out = append(out, productJSON(&products[i]))
	}
	c.JSON(http.StatusOK, gin.H{"products": out})
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, 2*time.Second)
	defer cancel()

	p, err := h.repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query_failed"})
		return
	}
	c.JSON(http.StatusOK, productJSON(p))
}

type productReq struct {
	Name          string     `json:"name" binding:"required"`
	Slug          string     `json:"slug"`
	Description   string     `json:"description"`
	Price         int64      `json:"price" binding:"required,gt=0"`
	Category      string     `json:"category"`
	Images        []string   `json:"images"`
	InStock       *bool      `json:"inStock"`
	StockQuantity int        `json:"stockQuantity"`
	Featured      bool       `json:"featured"`
	Badge         string     `json:"badge"`
	SEO           domain.SEO `json:"seo"`
}

func (r productReq) toProduct(id string) *domain.Product {
	inStock := true
	if r.InStock != nil {
		inStock = *r.InStock
	}
	category := r.Category
	if category == "" {
		category = "candles"
	}
	return &domain.Product{
		ID:            id,
		Name:          r.Name,
		Slug:          r.Slug,
		Description:   r.Description,
		Price:         r.Price,
		Category:      category,
		Images:        r.Images,
		InStock:       inStock,
		StockQuantity: r.StockQuantity,
		Featured:      r.Featured,
		Badge:         r.Badge,
		SEO:           r.SEO,
	}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := contextWithTimeout(c, 3*time.Second)
	defer cancel()

	p := req.toProduct(uuid.NewString())
	if err := h.repo.Create(ctx, p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create_failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": p.ID, "seoScore": p.SEOScore})
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := contextWithTimeout(c, 3*time.Second)
	defer cancel()

	p := req.toProduct(c.Param("id"))
	if err := h.repo.Update(ctx, p); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update_failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "seoScore": p.SEOScore})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, 2*time.Second)
	defer cancel()

	if err := h.repo.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete_failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func productJSON(p *domain.Product) gin.H {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return gin.H{
		"id":            p.ID,
		"name":          p.Name,
		"slug":          p.Slug,
		"description":   p.Description,
		"price":         p.Price,
		"category":      p.Category,
		"images":        images,
		"inStock":       p.InStock,
		"stockQuantity": p.StockQuantity,
		"featured":      p.Featured,
		"badge":         p.Badge,
		"seo":           p.SEO,
		"seoScore":      p.SEOScore,
		"createdAt":     p.CreatedAt,
		"updatedAt":     p.UpdatedAt,
	}
}
