package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/drape/internal/colour"
)

type pairResult struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Score int    `json:"score"`
}

type harmonyResult struct {
	Mode  string       `json:"mode"`
	Score int          `json:"score"`
	Pairs []pairResult `json:"pairs"`
}

func newHarmonyCmd(a *app) *cobra.Command {
	var (
		format string
		outfit bool
	)

	cmd := &cobra.Command{
		Use:   "harmony COLOURS COLOURS [COLOURS...]",
		Short: "Score how well colours go together",
		Long: `Score colour harmony on a 0-100 scale.

Each argument is a comma-separated colour list. With two arguments the
lists are compared as sets. With --outfit every argument is one item's
colours and all colours are scored pairwise as a single outfit.`,
		Example: `  drape harmony navy cream,white
  drape harmony --outfit navy cream brown`,
		Args: func(cmd *cobra.Command, args []string) error {
			if outfit {
				return cobra.MinimumNArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			lists := make([][]string, len(args))
			for i, arg := range args {
				lists[i] = splitColours(arg)
			}

			var result harmonyResult
			if outfit {
				result = outfitHarmony(lists)
			} else {
				result = setHarmony(lists[0], lists[1])
			}
			a.logger.Debug("harmony scored", "mode", result.Mode, "score", result.Score, "pairs", len(result.Pairs))

			out := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(out, result)
			}

			table := NewTable([]string{"Colour", "Colour", "Score"})
			for _, p := range result.Pairs {
				table.AddRow([]string{p.A, p.B, strconv.Itoa(p.Score)})
			}
			_, err := fmt.Fprintf(out, "%s\n%s harmony: %d\n", table.Render(), result.Mode, result.Score)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format (table, json)")
	cmd.Flags().BoolVar(&outfit, "outfit", false, "treat each argument as one item of an outfit")
	return cmd
}

func setHarmony(c1, c2 []string) harmonyResult {
	result := harmonyResult{Mode: "set", Score: colour.HarmonyScore(c1, c2)}
	for _, a := range c1 {
		for _, b := range c2 {
			result.Pairs = append(result.Pairs, pairResult{A: a, B: b, Score: colour.PairScore(a, b)})
		}
	}
	return result
}

func outfitHarmony(lists [][]string) harmonyResult {
	result := harmonyResult{Mode: "outfit", Score: colour.OutfitHarmony(lists)}
	var flat []string
	for _, l := range lists {
		flat = append(flat, l...)
	}
	for i := range flat {
		for j := i + 1; j < len(flat); j++ {
			result.Pairs = append(result.Pairs, pairResult{A: flat[i], B: flat[j], Score: colour.PairScore(flat[i], flat[j])})
		}
	}
	return result
}
