package outfit

import "github.com/jmylchreest/drape/internal/wardrobe"

func ptr(s string) *string { return &s }

func item(id string, category wardrobe.Category, colours ...string) wardrobe.Item {
	return wardrobe.Item{ID: id, Category: category, Colors: colours}
}

func tagged(it wardrobe.Item, tags ...string) wardrobe.Item {
	it.OccasionTags = tags
	return it
}

func styled(it wardrobe.Item, style string) wardrobe.Item {
	it.Style = ptr(style)
	return it
}

func constant(v float64) RandomSource {
	return func() float64 { return v }
}
