package colour

import (
	"math"
	"strings"
)

// Scores returned by PairScore, in precedence order.
const (
	ScoreSameFamily    = 90
	ScoreClassic       = 95
	ScoreNeutral       = 85
	ScoreComplementary = 80
	ScoreAnalogous     = 85
	ScoreTriadic       = 70
	ScoreUnknown       = 60
	ScoreAwkward       = 45
	ScoreOther         = 55

	// ScoreNoData is returned when there is nothing to compare.
	ScoreNoData = 70
	// ScoreAllNeutral is returned by HarmonyScore when every colour is neutral.
	ScoreAllNeutral = 90

	paletteBonus      = 5
	maxPaletteColours = 3
)

// neutralFallbacks classify names that are not in the dictionary.
var neutralFallbacks = []string{
	"black", "white", "gray", "grey", "beige", "cream",
	"tan", "khaki", "ivory", "taupe", "charcoal", "silver",
}

// classicPairs are combinations stylists treat as safe. Matched by substring
// containment in either order.
var classicPairs = [][2]string{
	{"black", "white"},
	{"navy", "white"},
	{"navy", "cream"},
	{"navy", "beige"},
	{"olive", "beige"},
	{"olive", "cream"},
	{"camel", "black"},
	{"camel", "navy"},
	{"gray", "pink"},
	{"brown", "cream"},
	{"brown", "blue"},
	{"burgundy", "gray"},
	{"burgundy", "navy"},
	{"khaki", "navy"},
	{"denim", "white"},
	{"red", "black"},
	{"emerald", "gold"},
	{"blush", "gray"},
	{"tan", "white"},
}

func normalise(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Resolve maps a colour name to its approximate HSL value.
// Exact dictionary names win, then the first dictionary name that contains
// or is contained by the input, then "#rgb"/"#rrggbb" hex strings.
func Resolve(name string) (HSL, bool) {
	n := normalise(name)
	if n == "" {
		return HSL{}, false
	}

	for _, c := range namedColours {
		if c.Name == n {
			return c.HSL, true
		}
	}
	for _, c := range namedColours {
		if strings.Contains(n, c.Name) || strings.Contains(c.Name, n) {
			return c.HSL, true
		}
	}

	if rgb, ok := parseHex(n); ok {
		h, s, l := rgbToHSL(rgb)
		return HSL{H: h, S: s * 100, L: l * 100}, true
	}
	return HSL{}, false
}

// IsNeutral reports whether a colour reads as a neutral: low saturation or
// near black/white. Unknown names fall back to a keyword check.
func IsNeutral(name string) bool {
	if hsl, ok := Resolve(name); ok {
		return hsl.S < 20 || hsl.L < 15 || hsl.L > 85
	}
	n := normalise(name)
	for _, kw := range neutralFallbacks {
		if strings.Contains(n, kw) {
			return true
		}
	}
	return false
}

// PairScore rates two colours on a 0-100 scale. Rules are checked in order
// and the first match wins.
func PairScore(c1, c2 string) int {
	n1, n2 := normalise(c1), normalise(c2)

	if n1 == n2 || strings.Contains(n1, n2) || strings.Contains(n2, n1) {
		return ScoreSameFamily
	}

	if isClassicPair(n1, n2) {
		return ScoreClassic
	}

	if IsNeutral(n1) || IsNeutral(n2) {
		return ScoreNeutral
	}

	hsl1, ok1 := Resolve(n1)
	hsl2, ok2 := Resolve(n2)
	if ok1 && ok2 {
		d := HueDistance(hsl1.H, hsl2.H)
		switch {
		case d >= 150 && d <= 180:
			return ScoreComplementary
		case d <= 60:
			return ScoreAnalogous
		case d >= 100 && d <= 140:
			return ScoreTriadic
		}
	}

	if !ok1 || !ok2 {
		return ScoreUnknown
	}

	d := HueDistance(hsl1.H, hsl2.H)
	if d > 60 && d < 100 {
		return ScoreAwkward
	}
	return ScoreOther
}

func isClassicPair(n1, n2 string) bool {
	for _, p := range classicPairs {
		if strings.Contains(n1, p[0]) && strings.Contains(n2, p[1]) {
			return true
		}
		if strings.Contains(n1, p[1]) && strings.Contains(n2, p[0]) {
			return true
		}
	}
	return false
}

// HarmonyScore rates how well two colour sets work together, typically the
// colours already worn against a candidate garment.
//
// An empty side scores ScoreNoData and an all-neutral union scores
// ScoreAllNeutral. Otherwise it is the mean PairScore over every cross pair,
// plus a small bonus when the union has at most three non-neutral colours.
func HarmonyScore(colours1, colours2 []string) int {
	colours1, colours2 = clean(colours1), clean(colours2)
	if len(colours1) == 0 || len(colours2) == 0 {
		return ScoreNoData
	}

	union := make([]string, 0, len(colours1)+len(colours2))
	union = append(union, colours1...)
	union = append(union, colours2...)

	allNeutral := true
	accents := make(map[string]struct{})
	for _, c := range union {
		if !IsNeutral(c) {
			allNeutral = false
			accents[normalise(c)] = struct{}{}
		}
	}
	if allNeutral {
		return ScoreAllNeutral
	}

	total := 0
	for _, a := range colours1 {
		for _, b := range colours2 {
			total += PairScore(a, b)
		}
	}
	score := int(math.Round(float64(total) / float64(len(colours1)*len(colours2))))

	if len(accents) <= maxPaletteColours {
		score += paletteBonus
	}
	return min(score, 100)
}

// OutfitHarmony rates every colour in a finished outfit against every other.
// It is a plain mean of PairScore over unordered pairs: no neutral shortcut
// and no palette bonus, unlike HarmonyScore.
func OutfitHarmony(itemColours [][]string) int {
	var all []string
	for _, cs := range itemColours {
		all = append(all, clean(cs)...)
	}
	if len(all) < 2 {
		return ScoreNoData
	}

	total, pairs := 0, 0
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			total += PairScore(all[i], all[j])
			pairs++
		}
	}
	return int(math.Round(float64(total) / float64(pairs)))
}

// clean drops blank entries, which would otherwise match every colour as
// the same family.
func clean(colours []string) []string {
	out := make([]string, 0, len(colours))
	for _, c := range colours {
		if normalise(c) != "" {
			out = append(out, c)
		}
	}
	return out
}
