package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSEOScoreEmptyProduct(t *testing.T) {
	assert.Equal(t, 0, SEOScore(Product{}))
}

func TestSEOScoreFullyOptimizedCapsAt100(t *testing.T) {
	p := Product{
		Name:        "Amber Glow Candle",
		Description: "Hand-poured soy candle",
		Images:      []string{"/img/amber-1.jpg"},
		SEO: SEO{
			MetaTitle:       "Amber Glow Candle | Aurea",
			MetaDescription: strings.Repeat("warm amber notes ", 10), // >= 120 chars
			Keywords:        []string{"candle", "amber"},
			ImageAlt:        "Amber Glow candle on a table",
			OGTitle:         "Amber Glow Candle",
			OGDescription:   "Hand-poured soy candle with amber notes",
			OGImage:         "/img/amber-og.jpg",
			CanonicalURL:    "https://aurea.pk/products/amber-glow",
		},
	}
	assert.Equal(t, 100, SEOScore(p))
}

func TestSEOScoreShortMetaDescriptionEarnsHalf(t *testing.T) {
	long := Product{SEO: SEO{MetaDescription: strings.Repeat("x", 120)}}
	short := Product{SEO: SEO{MetaDescription: "too short"}}

	assert.Equal(t, 20, SEOScore(long))
	assert.Equal(t, 10, SEOScore(short))
}

func TestSEOScorePartialFields(t *testing.T) {
	p := Product{
		Name:   "Candle",
		Images: []string{"/img/a.jpg"},
		SEO: SEO{
			MetaTitle: "Candle | Aurea",
			Keywords:  []string{"candle"},
		},
	}
	// name 5 + images 5 + metaTitle 20 + keywords 15
	assert.Equal(t, 45, SEOScore(p))
}
