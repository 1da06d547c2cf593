package outfit

import (
	"math"
	"strings"

	"github.com/jmylchreest/drape/internal/wardrobe"
)

// DefaultStyle is used when nothing about an item suggests a style.
const DefaultStyle = "casual"

// defaultStyleScore is used for style pairs missing from styleMatrix.
const defaultStyleScore = 50

// styleMatrix holds how well two styles sit together. Most pairs are stored
// once; lookups try both orders.
var styleMatrix = map[string]map[string]int{
	"casual": {
		"casual": 100, "sporty": 80, "streetwear": 85, "bohemian": 75, "minimalist": 80, "preppy": 70,
		"vintage": 70, "edgy": 65, "romantic": 60, "business": 45, "formal": 30, "elegant": 40,
	},
	"formal": {
		"formal": 100, "elegant": 95, "business": 85, "minimalist": 75, "romantic": 65, "vintage": 55,
		"preppy": 60, "edgy": 40, "sporty": 15, "streetwear": 20, "bohemian": 35,
	},
	"business": {
		"business": 100, "elegant": 85, "minimalist": 80, "preppy": 80, "vintage": 55, "romantic": 50,
		"edgy": 45, "sporty": 20, "streetwear": 30, "bohemian": 35,
	},
	"sporty": {
		"sporty": 100, "streetwear": 85, "minimalist": 60, "edgy": 55, "preppy": 50, "bohemian": 40,
		"vintage": 40, "romantic": 30, "elegant": 20,
	},
	"edgy": {
		"edgy": 100, "streetwear": 85, "vintage": 70, "minimalist": 65, "bohemian": 55, "romantic": 45,
		"elegant": 50, "preppy": 35,
	},
	"bohemian": {
		"bohemian": 100, "vintage": 85, "romantic": 80, "minimalist": 50, "streetwear": 55, "preppy": 40,
		"elegant": 55,
	},
	"minimalist": {
		"minimalist": 100, "elegant": 85, "preppy": 70, "streetwear": 70, "romantic": 60, "vintage": 60,
	},
	"romantic":   {"romantic": 100, "elegant": 85, "vintage": 80, "preppy": 65, "streetwear": 35},
	"streetwear": {"streetwear": 100, "vintage": 65, "preppy": 45, "elegant": 30},
	"preppy":     {"preppy": 100, "vintage": 65, "elegant": 70},
	"vintage":    {"vintage": 100, "elegant": 70},
	"elegant":    {"elegant": 100},
}

// Styles returns the styles the compatibility matrix knows about.
func Styles() []string {
	return []string{
		"casual", "formal", "business", "sporty", "edgy", "bohemian",
		"minimalist", "romantic", "streetwear", "preppy", "vintage", "elegant",
	}
}

// InferStyle returns the item's style, falling back to its category and then
// its material when none is set.
func InferStyle(item wardrobe.Item) string {
	if item.Style != nil {
		if s := strings.ToLower(strings.TrimSpace(*item.Style)); s != "" {
			return s
		}
	}

	switch item.Category {
	case wardrobe.Activewear:
		return "sporty"
	case wardrobe.Swimwear:
		return "casual"
	}

	if item.Material != nil {
		m := strings.ToLower(*item.Material)
		switch {
		case strings.Contains(m, "silk"), strings.Contains(m, "satin"):
			return "formal"
		case strings.Contains(m, "denim"):
			return "casual"
		case strings.Contains(m, "leather"):
			return "edgy"
		case strings.Contains(m, "linen"):
			return "casual"
		case strings.Contains(m, "wool") && (strings.Contains(m, "suit") || strings.Contains(strings.ToLower(item.Name), "suit")):
			return "business"
		}
	}

	return DefaultStyle
}

// StyleCompatibility looks up two styles in either order.
func StyleCompatibility(s1, s2 string) int {
	if v, ok := styleMatrix[s1][s2]; ok {
		return v
	}
	if v, ok := styleMatrix[s2][s1]; ok {
		return v
	}
	return defaultStyleScore
}

// StyleCoherence averages StyleCompatibility over every pair of items.
// A single item (or none) is perfectly coherent.
func StyleCoherence(items []wardrobe.Item) int {
	if len(items) <= 1 {
		return 100
	}

	styles := make([]string, len(items))
	for i, item := range items {
		styles[i] = InferStyle(item)
	}

	total, pairs := 0, 0
	for i := 0; i < len(styles); i++ {
		for j := i + 1; j < len(styles); j++ {
			total += StyleCompatibility(styles[i], styles[j])
			pairs++
		}
	}
	return int(math.Round(float64(total) / float64(pairs)))
}
