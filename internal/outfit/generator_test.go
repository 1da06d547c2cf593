package outfit

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/jmylchreest/drape/internal/wardrobe"
)

func sampleWardrobe() []wardrobe.Item {
	return []wardrobe.Item{
		tagged(item("top-1", wardrobe.Tops, "white"), "work"),
		item("top-2", wardrobe.Tops, "navy"),
		item("top-3", wardrobe.Tops, "red"),
		styled(item("top-4", wardrobe.Tops, "olive"), "bohemian"),
		item("coat-1", wardrobe.Outerwear, "camel"),
		tagged(item("bottom-1", wardrobe.Bottoms, "beige"), "work"),
		item("bottom-2", wardrobe.Bottoms, "denim"),
		item("bottom-3", wardrobe.Bottoms, "black"),
		item("bottom-4", wardrobe.Bottoms, "lime"),
		item("shoes-1", wardrobe.Shoes, "brown"),
		item("shoes-2", wardrobe.Shoes, "white"),
		item("shoes-3", wardrobe.Shoes, "pink"),
		item("shoes-4", wardrobe.Shoes, "black"),
		item("bag-1", wardrobe.Accessories, "gold"),
		item("bag-2", wardrobe.Accessories, "silver"),
		item("bag-3", wardrobe.Accessories, "tan"),
		item("swim-1", wardrobe.Swimwear, "coral"),
	}
}

func assertUniqueIDs(t *testing.T, suggestions []Suggestion) {
	t.Helper()
	for i, s := range suggestions {
		seen := make(map[string]bool)
		for _, it := range s.Items {
			if seen[it.ID] {
				t.Errorf("suggestion %d repeats item %s", i, it.ID)
			}
			seen[it.ID] = true
		}
	}
}

func assertSorted(t *testing.T, suggestions []Suggestion) {
	t.Helper()
	for i := 1; i < len(suggestions); i++ {
		if suggestions[i].MatchScore > suggestions[i-1].MatchScore {
			t.Errorf("suggestions not sorted at %d: %d > %d", i, suggestions[i].MatchScore, suggestions[i-1].MatchScore)
		}
	}
}

func TestGenerateClassicCombination(t *testing.T) {
	all := []wardrobe.Item{
		item("1", wardrobe.Tops, "navy"),
		item("2", wardrobe.Bottoms, "cream"),
		item("3", wardrobe.Shoes, "brown"),
	}

	got := NewComposer(WithRandom(NewSeededRandom(1))).GenerateFallbackOutfits(nil, all, 6, Options{})
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}

	s := got[0]
	if len(s.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(s.Items))
	}
	if s.Breakdown.ColorHarmony < 90 {
		t.Errorf("ColorHarmony = %d, want >= 90", s.Breakdown.ColorHarmony)
	}
	if s.MatchScore != 86 || s.MatchScore != s.Breakdown.Overall {
		t.Errorf("MatchScore = %d, breakdown %+v", s.MatchScore, s.Breakdown)
	}
	if s.Style != "casual" || s.Occasion != "everyday" {
		t.Errorf("Style, Occasion = %q, %q", s.Style, s.Occasion)
	}
	if !strings.HasPrefix(s.Description, "A ") || !strings.HasSuffix(s.Description, " casual look for everyday") {
		t.Errorf("Description = %q", s.Description)
	}
}

func TestGenerateRespectsLimit(t *testing.T) {
	all := sampleWardrobe()
	for _, limit := range []int{1, 2, 4, 6} {
		t.Run(fmt.Sprintf("limit %d", limit), func(t *testing.T) {
			got := NewComposer(WithRandom(NewSeededRandom(int64(limit)))).GenerateFallbackOutfits(nil, all, limit, Options{})
			if len(got) == 0 || len(got) > limit {
				t.Fatalf("got %d suggestions, want 1..%d", len(got), limit)
			}
			assertUniqueIDs(t, got)
			assertSorted(t, got)

			keys := make(map[string]bool)
			for _, s := range got {
				key := combinationKey(s.Items)
				if keys[key] {
					t.Errorf("combination %s returned twice", key)
				}
				keys[key] = true
			}
		})
	}
}

func TestGenerateDefaultLimit(t *testing.T) {
	got := NewComposer(WithRandom(NewSeededRandom(3))).GenerateFallbackOutfits(nil, sampleWardrobe(), 0, Options{})
	if len(got) > DefaultLimit {
		t.Errorf("got %d suggestions, want at most %d", len(got), DefaultLimit)
	}
}

func TestGenerateKeepsSelection(t *testing.T) {
	all := sampleWardrobe()
	selected := []wardrobe.Item{all[1]}

	got := NewComposer(WithRandom(NewSeededRandom(5))).GenerateFallbackOutfits(selected, all, 4, Options{})
	if len(got) == 0 {
		t.Fatal("no suggestions")
	}
	for _, s := range got {
		if s.Items[0].ID != "top-2" {
			t.Errorf("selection not first: %s", s.Items[0].ID)
		}
		counts := make(map[wardrobe.Category]int)
		for _, it := range s.Items {
			counts[it.Category]++
		}
		if counts[wardrobe.Tops]+counts[wardrobe.Outerwear] != 1 {
			t.Errorf("filled top slot was filled again: %+v", s.Items)
		}
		if counts[wardrobe.Bottoms] != 1 || counts[wardrobe.Shoes] != 1 || counts[wardrobe.Accessories] != 1 {
			t.Errorf("open slots not filled once each: %+v", counts)
		}
		if counts[wardrobe.Swimwear] != 0 {
			t.Error("swimwear does not belong to any slot")
		}
	}
	assertUniqueIDs(t, got)
}

func TestGenerateIsReproducibleWithSeed(t *testing.T) {
	all := sampleWardrobe()
	a := NewComposer(WithRandom(NewSeededRandom(42))).GenerateFallbackOutfits(nil, all, 6, Options{Occasion: "work"})
	b := NewComposer(WithRandom(NewSeededRandom(42))).GenerateFallbackOutfits(nil, all, 6, Options{Occasion: "work"})
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different suggestions")
	}
}

func TestGenerateDeduplicatesCombinations(t *testing.T) {
	all := sampleWardrobe()
	for _, v := range []float64{0, 0.999} {
		got := NewComposer(WithRandom(constant(v))).GenerateFallbackOutfits(nil, all, 6, Options{})
		if len(got) != 1 {
			t.Errorf("random %v: got %d suggestions, want 1", v, len(got))
		}
	}
}

func TestGeneratePicksFromTopCandidates(t *testing.T) {
	all := []wardrobe.Item{
		item("top", wardrobe.Tops, "navy"),
		item("b1", wardrobe.Bottoms, "cream"),
		item("b2", wardrobe.Bottoms, "white"),
		item("b3", wardrobe.Bottoms, "beige"),
		item("b4", wardrobe.Bottoms, "lime"),
	}
	selected := all[:1]

	ranked := rank(selected, all[1:], Options{})
	worst := ranked[len(ranked)-1].item.ID
	if worst != "b4" {
		t.Fatalf("expected lime bottoms to rank last, got %s", worst)
	}

	got := NewComposer(WithRandom(NewSeededRandom(9))).GenerateFallbackOutfits(selected, all, 6, Options{})
	if len(got) > 3 {
		t.Errorf("got %d suggestions, only 3 top candidates exist", len(got))
	}
	for _, s := range got {
		for _, it := range s.Items {
			if it.ID == worst {
				t.Errorf("picked %s from outside the top candidates", worst)
			}
		}
	}
}

func TestGeneratePartialWardrobe(t *testing.T) {
	all := []wardrobe.Item{
		item("s1", wardrobe.Shoes, "black"),
		item("s2", wardrobe.Shoes, "white"),
		item("w1", wardrobe.Swimwear, "coral"),
	}

	got := NewComposer(WithRandom(NewSeededRandom(2))).GenerateFallbackOutfits(nil, all, 6, Options{})
	if len(got) == 0 || len(got) > 2 {
		t.Fatalf("got %d suggestions, want 1 or 2", len(got))
	}
	for _, s := range got {
		if len(s.Items) != 1 || s.Items[0].Category != wardrobe.Shoes {
			t.Errorf("unexpected items: %+v", s.Items)
		}
	}
}

func TestGenerateNoCandidates(t *testing.T) {
	c := NewComposer()
	if got := c.GenerateFallbackOutfits(nil, nil, 6, Options{}); len(got) != 0 {
		t.Errorf("empty wardrobe: got %d suggestions", len(got))
	}

	swim := []wardrobe.Item{item("w1", wardrobe.Swimwear, "coral")}
	if got := c.GenerateFallbackOutfits(nil, swim, 6, Options{}); len(got) != 0 {
		t.Errorf("no slot candidates: got %d suggestions", len(got))
	}

	selected := []wardrobe.Item{item("t", wardrobe.Tops), item("b", wardrobe.Bottoms), item("s", wardrobe.Shoes), item("a", wardrobe.Accessories)}
	if got := c.GenerateFallbackOutfits(selected, selected, 6, Options{}); len(got) != 0 {
		t.Errorf("complete outfit without spare accessories: got %d suggestions", len(got))
	}
}

func TestGenerateAccessorisesCompleteOutfit(t *testing.T) {
	selected := []wardrobe.Item{
		item("t", wardrobe.Tops, "navy"),
		item("b", wardrobe.Bottoms, "cream"),
		item("s", wardrobe.Shoes, "brown"),
		item("a", wardrobe.Accessories, "gold"),
	}
	all := append([]wardrobe.Item{
		item("a2", wardrobe.Accessories, "lime"),
		item("a3", wardrobe.Accessories, "camel"),
		item("a4", wardrobe.Accessories, "silver"),
		item("x", wardrobe.Tops, "red"),
	}, selected...)

	got := NewComposer().GenerateFallbackOutfits(selected, all, 2, Options{})
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(got))
	}
	assertSorted(t, got)
	assertUniqueIDs(t, got)
	for _, s := range got {
		if len(s.Items) != 5 {
			t.Fatalf("got %d items, want 5", len(s.Items))
		}
		extra := s.Items[4]
		if extra.Category != wardrobe.Accessories {
			t.Errorf("added %s, want an accessory", extra.Category)
		}
		if want := MatchScore(selected, extra, Options{}).Overall; s.MatchScore != want {
			t.Errorf("MatchScore = %d, want %d", s.MatchScore, want)
		}
	}
}

func TestGenerateUsesHints(t *testing.T) {
	all := []wardrobe.Item{
		item("1", wardrobe.Tops, "navy"),
		item("2", wardrobe.Bottoms, "navy"),
	}

	got := NewComposer(WithRandom(constant(0))).GenerateFallbackOutfits(nil, all, 6, Options{Style: "Business", Occasion: " Work"})
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	s := got[0]
	if s.Style != "business" || s.Occasion != "work" {
		t.Errorf("Style, Occasion = %q, %q", s.Style, s.Occasion)
	}
	if want := "A sharp business look in navy for work"; s.Description != want {
		t.Errorf("Description = %q, want %q", s.Description, want)
	}
}

func TestAvailableItems(t *testing.T) {
	selected := []wardrobe.Item{item("a", wardrobe.Tops)}
	all := []wardrobe.Item{item("a", wardrobe.Tops), item("b", wardrobe.Shoes), item("b", wardrobe.Bottoms), item("c", wardrobe.Shoes)}

	got := availableItems(selected, all)
	if len(got) != 2 || got[0].ID != "b" || got[0].Category != wardrobe.Shoes || got[1].ID != "c" {
		t.Errorf("availableItems() = %+v", got)
	}
}
