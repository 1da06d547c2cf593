// Package wardrobe defines the garment model the matching engine reads and
// loads wardrobes from JSON or YAML sources.
package wardrobe

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownItem is returned when an item id is not in the wardrobe.
var ErrUnknownItem = errors.New("unknown item")

// Category is the closed set of garment categories.
type Category string

const (
	Tops        Category = "tops"
	Bottoms     Category = "bottoms"
	Shoes       Category = "shoes"
	Accessories Category = "accessories"
	Outerwear   Category = "outerwear"
	Swimwear    Category = "swimwear"
	Activewear  Category = "activewear"
	Other       Category = "other"
)

// Categories returns every valid category in display order.
func Categories() []Category {
	return []Category{Tops, Bottoms, Shoes, Accessories, Outerwear, Swimwear, Activewear, Other}
}

var categoryAliases = map[string]Category{
	"top":       Tops,
	"bottom":    Bottoms,
	"shoe":      Shoes,
	"accessory": Accessories,
}

// ParseCategory converts a string to a Category. Singular forms are accepted.
func ParseCategory(s string) (Category, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	if c := Category(n); slices.Contains(Categories(), c) {
		return c, nil
	}
	if c, ok := categoryAliases[n]; ok {
		return c, nil
	}
	return "", fmt.Errorf("invalid category: %s (valid: tops, bottoms, shoes, accessories, outerwear, swimwear, activewear, other)", s)
}

// Item is a single garment. The engine only reads items; it never modifies them.
type Item struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name,omitempty" yaml:"name,omitempty"`
	Category     Category `json:"category" yaml:"category"`
	Colors       []string `json:"colors" yaml:"colors"`
	Style        *string  `json:"style,omitempty" yaml:"style,omitempty"`
	Material     *string  `json:"material,omitempty" yaml:"material,omitempty"`
	OccasionTags []string `json:"occasion_tags" yaml:"occasion_tags"`
}

// Label returns the item name, or its id when it has none.
func (i Item) Label() string {
	if i.Name != "" {
		return i.Name
	}
	return i.ID
}

// Slot is one position in a complete outfit.
type Slot struct {
	Name       string
	Categories []Category
}

// Accepts reports whether an item of category c fills the slot.
func (s Slot) Accepts(c Category) bool {
	return slices.Contains(s.Categories, c)
}

// Slots are the four positions of a complete outfit. Three filled slots make
// a wearable outfit; accessories complete it.
var Slots = []Slot{
	{Name: "top", Categories: []Category{Tops, Outerwear}},
	{Name: "bottom", Categories: []Category{Bottoms}},
	{Name: "shoes", Categories: []Category{Shoes}},
	{Name: "accessories", Categories: []Category{Accessories}},
}

// FilledSlots reports, per entry of Slots, whether any item fills it.
func FilledSlots(items []Item) []bool {
	filled := make([]bool, len(Slots))
	for i, slot := range Slots {
		for _, item := range items {
			if slot.Accepts(item.Category) {
				filled[i] = true
				break
			}
		}
	}
	return filled
}

// Wardrobe is an ordered collection of items with unique ids.
type Wardrobe struct {
	Items []Item `json:"items" yaml:"items"`
}

// Get returns the item with the given id.
func (w *Wardrobe) Get(id string) (Item, error) {
	for _, item := range w.Items {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, fmt.Errorf("%w: %s", ErrUnknownItem, id)
}

// Lookup returns the items for ids in the order given.
func (w *Wardrobe) Lookup(ids []string) ([]Item, error) {
	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		item, err := w.Get(id)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
