package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/drape/internal/colour"
	"github.com/jmylchreest/drape/internal/wardrobe"
)

// Output formats.
const (
	formatTable = "table"
	formatJSON  = "json"
)

// categoryList is a repeatable, comma-separated flag of wardrobe categories.
type categoryList []wardrobe.Category

var _ pflag.Value = (*categoryList)(nil)

func (c *categoryList) String() string {
	parts := make([]string, len(*c))
	for i, cat := range *c {
		parts[i] = string(cat)
	}
	return strings.Join(parts, ",")
}

func (c *categoryList) Set(value string) error {
	for part := range strings.SplitSeq(value, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		cat, err := wardrobe.ParseCategory(part)
		if err != nil {
			return err
		}
		if !slices.Contains(*c, cat) {
			*c = append(*c, cat)
		}
	}
	return nil
}

func (c *categoryList) Type() string {
	return "categories"
}

// filter drops items in any of the listed categories.
func (c categoryList) filter(items []wardrobe.Item) []wardrobe.Item {
	if len(c) == 0 {
		return items
	}
	out := make([]wardrobe.Item, 0, len(items))
	for _, item := range items {
		if !slices.Contains(c, item.Category) {
			out = append(out, item)
		}
	}
	return out
}

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid: %s, %s)", format, formatTable, formatJSON)
	}
}

// swatches reports whether w is a terminal that can show colour previews.
func swatches(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && colour.SupportsANSIColours(f)
}

// splitColours turns "navy, cream" into ["navy", "cream"].
func splitColours(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
