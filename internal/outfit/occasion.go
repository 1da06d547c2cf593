package outfit

import (
	"math"
	"slices"
	"strings"

	"github.com/jmylchreest/drape/internal/wardrobe"
)

const noOccasionData = 70

// occasionCategories lists the categories that suit each occasion.
var occasionCategories = map[string][]wardrobe.Category{
	"work":     {wardrobe.Tops, wardrobe.Bottoms, wardrobe.Shoes, wardrobe.Accessories, wardrobe.Outerwear},
	"everyday": {wardrobe.Tops, wardrobe.Bottoms, wardrobe.Shoes, wardrobe.Accessories, wardrobe.Outerwear, wardrobe.Activewear},
	"formal":   {wardrobe.Tops, wardrobe.Bottoms, wardrobe.Shoes, wardrobe.Accessories, wardrobe.Outerwear},
	"party":    {wardrobe.Tops, wardrobe.Bottoms, wardrobe.Shoes, wardrobe.Accessories},
	"date":     {wardrobe.Tops, wardrobe.Bottoms, wardrobe.Shoes, wardrobe.Accessories, wardrobe.Outerwear},
	"active":   {wardrobe.Activewear, wardrobe.Shoes, wardrobe.Accessories},
	"beach":    {wardrobe.Swimwear, wardrobe.Tops, wardrobe.Shoes, wardrobe.Accessories},
	"wedding":  {wardrobe.Tops, wardrobe.Bottoms, wardrobe.Shoes, wardrobe.Accessories, wardrobe.Outerwear},
	"travel":   {wardrobe.Tops, wardrobe.Bottoms, wardrobe.Shoes, wardrobe.Outerwear, wardrobe.Accessories, wardrobe.Activewear},
}

// Occasions returns the occasions with category rules, sorted.
func Occasions() []string {
	out := make([]string, 0, len(occasionCategories))
	for o := range occasionCategories {
		out = append(out, o)
	}
	slices.Sort(out)
	return out
}

func normaliseTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// itemTags returns the item's normalised tags without duplicates.
func itemTags(item wardrobe.Item) []string {
	tags := make([]string, 0, len(item.OccasionTags))
	for _, t := range item.OccasionTags {
		if n := normaliseTag(t); n != "" && !slices.Contains(tags, n) {
			tags = append(tags, n)
		}
	}
	return tags
}

// OccasionScore rates how well items suit an occasion.
//
// Without a target it measures agreement: the share of items carrying the most
// common tag. With a target each item earns a point for a suitable category and
// a point for carrying the tag.
func OccasionScore(items []wardrobe.Item, target string) int {
	if len(items) == 0 {
		return noOccasionData
	}

	target = normaliseTag(target)
	if target == "" {
		counts := make(map[string]int)
		maxOverlap := 0
		for _, item := range items {
			for _, tag := range itemTags(item) {
				counts[tag]++
				maxOverlap = max(maxOverlap, counts[tag])
			}
		}
		if maxOverlap == 0 {
			return noOccasionData
		}
		return int(math.Round(50 + float64(maxOverlap)/float64(len(items))*50))
	}

	allowed := occasionCategories[target]
	matches := 0
	for _, item := range items {
		if slices.Contains(allowed, item.Category) {
			matches++
		}
		if slices.Contains(itemTags(item), target) {
			matches++
		}
	}
	return min(100, int(math.Round(float64(matches)/float64(len(items)*2)*100)))
}
