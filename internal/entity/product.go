package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// SEO is the per-product search metadata block edited in the admin UI.
type SEO struct {
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
	ImageAlt        string   `json:"imageAlt"`
	OGTitle         string   `json:"ogTitle"`
	OGDescription   string   `json:"ogDescription"`
	OGImage         string   `json:"ogImage"`
	CanonicalURL    string   `json:"canonicalUrl"`
	SchemaType      string   `json:"schemaType"`
}

type Product struct {
	ID            string
	Name          string
	Slug          string
	Description   string
	Price         int64
	Category      string
	Images        []string
	InStock       bool
	StockQuantity int
	Featured      bool
	Badge         string
	SEO           SEO
	SEOScore      int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SEO score weights. The meta description earns full weight only at 120+
// characters, half otherwise.
const (
	seoWeightName        = 5
	seoWeightDescription = 5
	seoWeightImages      = 5
	seoWeightMetaTitle   = 20
	seoWeightMetaDesc    = 20
	seoWeightMetaDescMin = 10
	seoWeightKeywords    = 15
	seoWeightImageAlt    = 10
	seoWeightOGTitle     = 8
	seoWeightOGDesc      = 7
	seoWeightOGImage     = 5
	seoWeightCanonical   = 5

	seoMetaDescFullLen = 120
)

// SEOScore computes the product's SEO completeness score in [0, 100] from a
// fixed weight table. Pure function of the product's fields.
func SEOScore(p Product) int {
	score := 0
	if p.Name != "" {
		score += seoWeightName
	}
	if p.Description != "" {
		score += seoWeightDescription
	}
	if len(p.Images) > 0 {
		score += seoWeightImages
	}
	if p.SEO.MetaTitle != "" {
		score += seoWeightMetaTitle
	}
	if p.SEO.MetaDescription != "" {
		if len(p.SEO.MetaDescription) >= seoMetaDescFullLen {
			score += seoWeightMetaDesc
		} else {
			score += seoWeightMetaDescMin
		}
	}
	if len(p.SEO.Keywords) > 0 {
		score += seoWeightKeywords
	}
	if p.SEO.ImageAlt != "" {
		score += seoWeightImageAlt
	}
	if p.SEO.OGTitle != "" {
		score += seoWeightOGTitle
	}
	if p.SEO.OGDescription != "" {
		score += seoWeightOGDesc
	}
	if p.SEO.OGImage != "" {
		score += seoWeightOGImage
	}
	if p.SEO.CanonicalURL != "" {
		score += seoWeightCanonical
	}
	if score > 100 {
		score = 100
	}
	return score
}
