package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/drape/internal/colour"
)

type colourRow struct {
	Name     string  `json:"name"`
	Resolved bool    `json:"resolved"`
	H        float64 `json:"h"`
	S        float64 `json:"s"`
	L        float64 `json:"l"`
	Hex      string  `json:"hex,omitempty"`
	Neutral  bool    `json:"neutral"`
}

func newColoursCmd(a *app) *cobra.Command {
	var (
		format       string
		neutralsOnly bool
	)

	cmd := &cobra.Command{
		Use:     "colours [name...]",
		Aliases: []string{"colors"},
		Short:   "List known colours or resolve colour names",
		Long: `List the named colour dictionary, or resolve the given names.

Names are matched exactly, then by substring in dictionary order. Hex
values such as #1e3a5f are also accepted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			var rows []colourRow
			if len(args) == 0 {
				for _, nc := range colour.NamedColours() {
					rows = append(rows, newColourRow(nc.Name))
				}
			} else {
				for _, name := range args {
					rows = append(rows, newColourRow(name))
				}
			}
			if neutralsOnly {
				filtered := rows[:0]
				for _, r := range rows {
					if r.Neutral {
						filtered = append(filtered, r)
					}
				}
				rows = filtered
			}
			a.logger.Debug("listing colours", "count", len(rows))

			out := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(out, rows)
			}
			return renderColours(out, rows, swatches(out))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format (table, json)")
	cmd.Flags().BoolVar(&neutralsOnly, "neutrals", false, "only list neutral colours")
	return cmd
}

func newColourRow(name string) colourRow {
	row := colourRow{Name: name, Neutral: colour.IsNeutral(name)}
	if hsl, ok := colour.Resolve(name); ok {
		row.Resolved = true
		row.H, row.S, row.L = hsl.H, hsl.S, hsl.L
		row.Hex = hsl.RGB().Hex()
	}
	return row
}

func renderColours(w io.Writer, rows []colourRow, preview bool) error {
	headers := []string{"Name", "HSL", "Hex", "Neutral"}
	if preview {
		headers = append([]string{""}, headers...)
	}
	table := NewTable(headers)

	for _, r := range rows {
		hsl, hex := "-", "-"
		if r.Resolved {
			hsl = colour.HSL{H: r.H, S: r.S, L: r.L}.String()
			hex = r.Hex
		}
		neutral := "no"
		if r.Neutral {
			neutral = "yes"
		}
		row := []string{r.Name, hsl, hex, neutral}
		if preview {
			row = append([]string{colour.Swatch(r.Name, 4)}, row...)
		}
		table.AddRow(row)
	}

	_, err := fmt.Fprint(w, table.Render())
	return err
}
