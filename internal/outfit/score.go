// Package outfit scores garment combinations and assembles outfit
// suggestions from a wardrobe.
package outfit

import (
	"math"

	"github.com/jmylchreest/drape/internal/colour"
	"github.com/jmylchreest/drape/internal/wardrobe"
)

// Axis weights of the overall score, in percent. They sum to 100.
const (
	WeightColour   = 35
	WeightStyle    = 30
	WeightOccasion = 20
	WeightCategory = 15
)

// minViableSlots is how many slots make a wearable outfit.
const minViableSlots = 3

// Options are optional caller hints.
type Options struct {
	// Style labels the suggestions; it does not change scores.
	Style string `json:"style,omitempty"`

	// Occasion is the target occasion used by the occasion axis.
	Occasion string `json:"occasion,omitempty"`
}

// Breakdown is a 0-100 score per axis plus the weighted overall score.
type Breakdown struct {
	ColorHarmony    int `json:"colorHarmony"`
	StyleCoherence  int `json:"styleCoherence"`
	OccasionMatch   int `json:"occasionMatch"`
	CategoryBalance int `json:"categoryBalance"`
	Overall         int `json:"overall"`
}

// newBreakdown fills Overall from the four axes.
func newBreakdown(colourScore, style, occasion, category int) Breakdown {
	return Breakdown{
		ColorHarmony:    colourScore,
		StyleCoherence:  style,
		OccasionMatch:   occasion,
		CategoryBalance: category,
		Overall:         Overall(colourScore, style, occasion, category),
	}
}

// Overall combines the axes as round(0.35c + 0.30s + 0.20o + 0.15b), rounding
// halves up. Integer arithmetic keeps the rounding exact.
func Overall(colourScore, style, occasion, category int) int {
	sum := WeightColour*colourScore + WeightStyle*style + WeightOccasion*occasion + WeightCategory*category
	return (sum + 50) / 100
}

// CategoryBalance rewards covering the outfit slots. Three filled slots score
// 70 and all four score 100; fewer scale linearly towards zero.
func CategoryBalance(items []wardrobe.Item) int {
	filled := 0
	for _, ok := range wardrobe.FilledSlots(items) {
		if ok {
			filled++
		}
	}

	total := len(wardrobe.Slots)
	if filled >= minViableSlots {
		return 70 + int(math.Round(float64(filled-minViableSlots)/float64(total-minViableSlots)*30))
	}
	return int(math.Round(float64(filled) / minViableSlots * 70))
}

// MatchScore rates adding candidate to selected. Colour harmony compares the
// selection's colours with the candidate's; the other axes look at the
// combined set. It is a pure function of its inputs.
func MatchScore(selected []wardrobe.Item, candidate wardrobe.Item, opts Options) Breakdown {
	combined := make([]wardrobe.Item, 0, len(selected)+1)
	combined = append(combined, selected...)
	combined = append(combined, candidate)

	var selectedColours []string
	for _, item := range selected {
		selectedColours = append(selectedColours, item.Colors...)
	}

	return newBreakdown(
		colour.HarmonyScore(selectedColours, candidate.Colors),
		StyleCoherence(combined),
		OccasionScore(combined, opts.Occasion),
		CategoryBalance(combined),
	)
}

// ScoreOutfit rates a finished outfit, using whole-outfit colour harmony.
func ScoreOutfit(items []wardrobe.Item, opts Options) Breakdown {
	colourLists := make([][]string, len(items))
	for i, item := range items {
		colourLists[i] = item.Colors
	}

	return newBreakdown(
		colour.OutfitHarmony(colourLists),
		StyleCoherence(items),
		OccasionScore(items, opts.Occasion),
		CategoryBalance(items),
	)
}
