package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/drape/internal/outfit"
	"github.com/jmylchreest/drape/internal/wardrobe"
)

type scoreResult struct {
	Items     []wardrobe.Item  `json:"items"`
	Candidate *wardrobe.Item   `json:"candidate,omitempty"`
	Options   outfit.Options   `json:"options"`
	Breakdown outfit.Breakdown `json:"breakdown"`
}

func newScoreCmd(a *app) *cobra.Command {
	var (
		flags     wardrobeFlags
		candidate string
	)

	cmd := &cobra.Command{
		Use:   "score ITEM_ID...",
		Short: "Score an outfit or a candidate item",
		Long: `Score the given wardrobe items as a complete outfit.

With --candidate the given items are treated as the current selection and
the candidate is scored as an addition to it.`,
		Example: `  drape score -w wardrobe.yaml navy-blazer chinos loafers
  drape score -w wardrobe.yaml navy-blazer --candidate chinos --occasion work`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && candidate == "" {
				return fmt.Errorf("at least one item id or --candidate is required")
			}

			w, err := flags.load(cmd.Context(), a)
			if err != nil {
				return err
			}
			items, err := w.Lookup(args)
			if err != nil {
				return err
			}

			result := scoreResult{Items: items, Options: flags.options()}
			if candidate != "" {
				c, err := w.Get(candidate)
				if err != nil {
					return err
				}
				result.Candidate = &c
				result.Breakdown = outfit.MatchScore(items, c, result.Options)
			} else {
				result.Breakdown = outfit.ScoreOutfit(items, result.Options)
			}
			a.logger.Debug("scored", "items", len(items), "candidate", candidate, "overall", result.Breakdown.Overall)

			out := cmd.OutOrStdout()
			if flags.format == formatJSON {
				return writeJSON(out, result)
			}

			if len(items) > 0 {
				if _, err := fmt.Fprintf(out, "Outfit: %s\n", itemLabels(items)); err != nil {
					return err
				}
			}
			if result.Candidate != nil {
				if _, err := fmt.Fprintf(out, "Candidate: %s\n", itemLabels([]wardrobe.Item{*result.Candidate})); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
			return renderBreakdown(out, result.Breakdown)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&candidate, "candidate", "", "item id to score against the given items")
	return cmd
}
