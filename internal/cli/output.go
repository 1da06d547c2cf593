package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/drape/internal/outfit"
	"github.com/jmylchreest/drape/internal/wardrobe"
)

const wardrobeTimeout = 30 * time.Second

// wardrobeFlags are shared by commands that read a wardrobe.
type wardrobeFlags struct {
	source   string
	style    string
	occasion string
	format   string
}

func (f *wardrobeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.source, "wardrobe", "w", "", "wardrobe file or URL (JSON or YAML)")
	cmd.Flags().StringVar(&f.style, "style", "", "style hint ("+strings.Join(outfit.Styles(), ", ")+")")
	cmd.Flags().StringVar(&f.occasion, "occasion", "", "target occasion ("+strings.Join(outfit.Occasions(), ", ")+")")
	cmd.Flags().StringVarP(&f.format, "format", "f", formatTable, "output format (table, json)")
}

func (f *wardrobeFlags) options() outfit.Options {
	return outfit.Options{Style: f.style, Occasion: f.occasion}
}

// load reads the wardrobe named by the flag, falling back to the config.
func (f *wardrobeFlags) load(ctx context.Context, a *app) (*wardrobe.Wardrobe, error) {
	if err := validateFormat(f.format); err != nil {
		return nil, err
	}
	source := f.source
	if source == "" {
		source = a.config.Wardrobe
	}
	if source == "" {
		return nil, fmt.Errorf("no wardrobe given: use --wardrobe or set DRAPE_WARDROBE")
	}

	w, err := wardrobe.Load(ctx, source, wardrobe.LoadOptions{
		Logger:  a.logger.Named("wardrobe"),
		Timeout: wardrobeTimeout,
	})
	if err != nil {
		return nil, err
	}
	a.logger.Debug("wardrobe loaded", "source", source, "items", len(w.Items))
	return w, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func itemLabels(items []wardrobe.Item) string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = fmt.Sprintf("%s (%s)", item.Label(), item.Category)
	}
	return strings.Join(labels, ", ")
}

func renderBreakdown(w io.Writer, b outfit.Breakdown) error {
	table := NewTable([]string{"Axis", "Weight", "Score"})
	table.AddRow([]string{"colour harmony", weight(outfit.WeightColour), strconv.Itoa(b.ColorHarmony)})
	table.AddRow([]string{"style coherence", weight(outfit.WeightStyle), strconv.Itoa(b.StyleCoherence)})
	table.AddRow([]string{"occasion match", weight(outfit.WeightOccasion), strconv.Itoa(b.OccasionMatch)})
	table.AddRow([]string{"category balance", weight(outfit.WeightCategory), strconv.Itoa(b.CategoryBalance)})
	table.AddRow([]string{"overall", "", strconv.Itoa(b.Overall)})
	_, err := fmt.Fprint(w, table.Render())
	return err
}

func weight(w int) string {
	return strconv.Itoa(w) + "%"
}

func renderSuggestions(w io.Writer, suggestions []outfit.Suggestion) error {
	if len(suggestions) == 0 {
		_, err := fmt.Fprintln(w, "No outfits could be built from this wardrobe.")
		return err
	}

	table := NewTable([]string{"#", "Score", "Style", "Occasion", "Items", "Description"})
	table.SetColumnMaxWidth(4, 48)
	table.SetColumnMaxWidth(5, 40)
	for i, s := range suggestions {
		table.AddRow([]string{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.MatchScore),
			s.Style,
			s.Occasion,
			itemLabels(s.Items),
			s.Description,
		})
	}
	_, err := fmt.Fprint(w, table.Render())
	return err
}
