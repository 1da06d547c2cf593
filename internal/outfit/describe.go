package outfit

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/drape/internal/wardrobe"
)

var styleAdjectives = map[string][]string{
	"casual":     {"relaxed", "laid-back", "comfortable"},
	"formal":     {"polished", "refined", "sophisticated"},
	"business":   {"sharp", "professional", "tailored"},
	"sporty":     {"dynamic", "sleek", "functional"},
	"edgy":       {"bold", "daring", "striking"},
	"bohemian":   {"free-spirited", "breezy", "flowing"},
	"minimalist": {"clean", "streamlined", "pared-back"},
	"romantic":   {"soft", "dreamy", "graceful"},
	"streetwear": {"cool", "street-ready", "bold"},
	"preppy":     {"crisp", "classic", "smart"},
	"vintage":    {"retro", "timeless", "nostalgic"},
	"elegant":    {"graceful", "chic", "luxurious"},
}

var fallbackAdjectives = []string{"stylish", "well-balanced", "coordinated"}

// DominantStyle returns the most common inferred style, earliest first on
// ties, or DefaultStyle for no items.
func DominantStyle(items []wardrobe.Item) string {
	styles := make([]string, len(items))
	for i, item := range items {
		styles[i] = InferStyle(item)
	}
	if s := mostCommon(styles); s != "" {
		return s
	}
	return DefaultStyle
}

// DominantOccasion returns the most common occasion tag. Without tags it
// derives one from the style.
func DominantOccasion(items []wardrobe.Item, style string) string {
	var tags []string
	for _, item := range items {
		tags = append(tags, itemTags(item)...)
	}
	if o := mostCommon(tags); o != "" {
		return o
	}

	switch style {
	case "formal", "business":
		return "work"
	case "sporty":
		return "active"
	default:
		return "everyday"
	}
}

func mostCommon(values []string) string {
	counts := make(map[string]int, len(values))
	best, bestCount := "", 0
	for _, v := range values {
		counts[v]++
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

// distinctColours returns normalised colour names in order of appearance.
func distinctColours(items []wardrobe.Item) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, item := range items {
		for _, c := range item.Colors {
			n := strings.ToLower(strings.TrimSpace(c))
			if n == "" {
				continue
			}
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				out = append(out, n)
			}
		}
	}
	return out
}

// describe builds "A {adjective} {style} look{colours} for {occasion}". The
// colour clause appears only for one- or two-colour outfits.
func describe(items []wardrobe.Item, style, occasion string, rnd RandomSource) string {
	adjectives, ok := styleAdjectives[style]
	if !ok {
		adjectives = fallbackAdjectives
	}
	adjective := adjectives[rnd.pick(len(adjectives))]

	var clause string
	switch colours := distinctColours(items); len(colours) {
	case 1:
		clause = " in " + colours[0]
	case 2:
		clause = fmt.Sprintf(" in %s and %s", colours[0], colours[1])
	}

	return fmt.Sprintf("A %s %s look%s for %s", adjective, style, clause, occasion)
}
