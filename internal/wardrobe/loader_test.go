package wardrobe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const wardrobeYAML = `
items:
  - id: shirt
    name: Oxford shirt
    category: top
    colors: [white]
    material: cotton
    occasion_tags: [work]
  - id: chinos
    category: bottoms
    colors: [khaki]
    style: "  "
  - category: Shoes
    colors: [brown]
    style: Preppy
  - id: cape
    category: cloak
`

func TestParseYAML(t *testing.T) {
	w, err := Parse([]byte(wardrobeYAML), FormatYAML, nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(w.Items) != 4 {
		t.Fatalf("got %d items, want 4", len(w.Items))
	}

	shirt := w.Items[0]
	if shirt.Category != Tops {
		t.Errorf("singular category not normalised: got %q", shirt.Category)
	}
	if shirt.Material == nil || *shirt.Material != "cotton" {
		t.Errorf("material = %v, want cotton", shirt.Material)
	}
	if shirt.Label() != "Oxford shirt" {
		t.Errorf("Label() = %q", shirt.Label())
	}

	if w.Items[1].Style != nil {
		t.Errorf("blank style should be absent, got %q", *w.Items[1].Style)
	}
	if w.Items[1].Label() != "chinos" {
		t.Errorf("Label() without name = %q, want id", w.Items[1].Label())
	}

	shoes := w.Items[2]
	if shoes.ID == "" {
		t.Error("item without id was not assigned one")
	}
	if shoes.Category != Shoes {
		t.Errorf("category = %q, want shoes", shoes.Category)
	}
	if shoes.Style == nil || *shoes.Style != "Preppy" {
		t.Errorf("style = %v, want Preppy", shoes.Style)
	}

	if w.Items[3].Category != Other {
		t.Errorf("unknown category = %q, want other", w.Items[3].Category)
	}
}

func TestParseBareList(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"json", `[{"id":"a","category":"tops","colors":["red"]}]`, FormatJSON},
		{"yaml", "- id: a\n  category: tops\n  colors: [red]\n", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Parse([]byte(tt.data), tt.format, nil)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(w.Items) != 1 || w.Items[0].ID != "a" || w.Items[0].Colors[0] != "red" {
				t.Errorf("unexpected items: %+v", w.Items)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte(`{"items":[{"id":"a"},{"id":"a"}]}`), FormatJSON, nil); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate ids: got %v, want ErrDuplicateID", err)
	}
	if _, err := Parse([]byte(`{`), FormatJSON, nil); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := Parse([]byte(`x`), Format("toml"), nil); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("got %v, want ErrUnsupportedFormat", err)
	}
}

func TestParseEmptyYAML(t *testing.T) {
	w, err := Parse([]byte(""), FormatYAML, nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(w.Items) != 0 {
		t.Errorf("got %d items, want 0", len(w.Items))
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wardrobe.yml")
	if err := os.WriteFile(path, []byte(wardrobeYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := Load(context.Background(), path, LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(w.Items) != 4 {
		t.Errorf("got %d items, want 4", len(w.Items))
	}

	if _, err := Load(context.Background(), filepath.Join(dir, "wardrobe.txt"), LoadOptions{}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("got %v, want ErrUnsupportedFormat", err)
	}
	if _, err := Load(context.Background(), filepath.Join(dir, "missing.json"), LoadOptions{}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("User-Agent"), "drape/") {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		switch r.URL.Path {
		case "/wardrobe.yaml":
			_, _ = w.Write([]byte(wardrobeYAML))
		case "/api/items":
			_, _ = w.Write([]byte(`{"items":[{"id":"x","category":"shoes","colors":["black"]}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	w, err := Load(context.Background(), srv.URL+"/wardrobe.yaml", LoadOptions{})
	if err != nil {
		t.Fatalf("Load(yaml) error = %v", err)
	}
	if len(w.Items) != 4 {
		t.Errorf("got %d items, want 4", len(w.Items))
	}

	w, err = Load(context.Background(), srv.URL+"/api/items", LoadOptions{})
	if err != nil {
		t.Fatalf("Load(json) error = %v", err)
	}
	if len(w.Items) != 1 || w.Items[0].Category != Shoes {
		t.Errorf("unexpected items: %+v", w.Items)
	}

	if _, err := Load(context.Background(), srv.URL+"/missing", LoadOptions{}); err == nil {
		t.Error("expected error for 404")
	}
}

func TestWardrobeLookup(t *testing.T) {
	w := &Wardrobe{Items: []Item{{ID: "a", Category: Tops}, {ID: "b", Category: Shoes}}}

	items, err := w.Lookup([]string{"b", "a"})
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if items[0].ID != "b" || items[1].ID != "a" {
		t.Errorf("Lookup() did not keep order: %+v", items)
	}

	if _, err := w.Lookup([]string{"a", "zzz"}); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("got %v, want ErrUnknownItem", err)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"tops", Tops, false},
		{" Accessory ", Accessories, false},
		{"shoe", Shoes, false},
		{"OUTERWEAR", Outerwear, false},
		{"hat", "", true},
	}

	for _, tt := range tests {
		got, err := ParseCategory(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, %v", tt.input, got, err)
		}
	}
}

func TestFilledSlots(t *testing.T) {
	items := []Item{{ID: "1", Category: Outerwear}, {ID: "2", Category: Shoes}, {ID: "3", Category: Swimwear}}
	got := FilledSlots(items)
	want := []bool{true, false, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %s filled = %v, want %v", Slots[i].Name, got[i], want[i])
		}
	}
}
