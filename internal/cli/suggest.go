package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/drape/internal/outfit"
	"github.com/jmylchreest/drape/internal/seed"
	"github.com/jmylchreest/drape/internal/suggest"
)

func newSuggestCmd(a *app) *cobra.Command {
	var (
		flags     wardrobeFlags
		exclude   categoryList
		suggester string
		limit     int
		seedMode  string
		seedValue int64
	)

	cmd := &cobra.Command{
		Use:   "suggest [ITEM_ID...]",
		Short: "Suggest complete outfits",
		Long: `Suggest complete outfits from the wardrobe.

Given item ids are kept in every suggestion and the empty slots (top or
outerwear, bottoms, shoes, accessories) are filled with the best matching
items. When the selection already fills every slot, accessories are
suggested instead.

Suggesters:
  local         heuristic colour, style and occasion matching (default)
  google-genai  asks a Gemini model, falling back to local on failure`,
		Example: `  drape suggest -w wardrobe.yaml
  drape suggest -w wardrobe.yaml navy-blazer --occasion work --limit 3
  drape suggest -w wardrobe.yaml --seed-mode manual --seed-value 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("suggester") {
				a.config.Suggester = suggester
			}
			if cmd.Flags().Changed("limit") {
				a.config.Limit = limit
			}
			if cmd.Flags().Changed("seed-mode") {
				a.config.SeedMode = seedMode
			}
			if a.config.Limit < 0 {
				return fmt.Errorf("limit must not be negative: %d", a.config.Limit)
			}

			mode, err := seed.ParseMode(a.config.SeedMode)
			if err != nil {
				return err
			}
			seedConfig := seed.Config{Mode: mode}
			if cmd.Flags().Changed("seed-value") {
				seedConfig.Value = &seedValue
			}

			w, err := flags.load(cmd.Context(), a)
			if err != nil {
				return err
			}
			selected, err := w.Lookup(args)
			if err != nil {
				return err
			}
			pool := exclude.filter(w.Items)

			seedVal, err := seed.Calculate(pool, selected, seedConfig)
			if err != nil {
				return fmt.Errorf("failed to calculate seed: %w", err)
			}
			a.logger.Debug("seed", "mode", mode, "value", seedVal)

			composer := outfit.NewComposer(
				outfit.WithRandom(outfit.NewSeededRandom(seedVal)),
				outfit.WithLogger(a.logger.Named("composer")),
			)
			registry := newRegistry(a, composer)
			s, err := registry.Get(a.config.Suggester)
			if err != nil {
				return err
			}

			suggestions, err := s.Suggest(cmd.Context(), suggest.Request{
				Selected: selected,
				Wardrobe: pool,
				Limit:    a.config.Limit,
				Options:  flags.options(),
			})
			if err != nil {
				return fmt.Errorf("%s suggester failed: %w", s.Name(), err)
			}
			a.logger.Info("suggestions ready", "suggester", s.Name(), "count", len(suggestions))

			if flags.format == formatJSON {
				if suggestions == nil {
					suggestions = []outfit.Suggestion{}
				}
				return writeJSON(cmd.OutOrStdout(), suggestions)
			}
			return renderSuggestions(cmd.OutOrStdout(), suggestions)
		},
	}

	flags.register(cmd)
	cmd.Flags().Var(&exclude, "exclude", "categories to leave out of suggestions (comma-separated)")
	cmd.Flags().StringVarP(&suggester, "suggester", "s", suggest.LocalName, "suggester to use (local, google-genai)")
	cmd.Flags().IntVarP(&limit, "limit", "n", outfit.DefaultLimit, "maximum number of suggestions")
	cmd.Flags().StringVar(&seedMode, "seed-mode", string(seed.ModeRandom), "seed mode (content, manual, random)")
	cmd.Flags().Int64Var(&seedValue, "seed-value", 0, "seed value for manual seed mode")
	return cmd
}

// newRegistry registers the built-in suggesters around one composer.
func newRegistry(a *app, composer *outfit.Composer) *suggest.Registry {
	registry := suggest.NewRegistry()
	local := suggest.NewLocal(composer)
	registry.Register(local)
	registry.Register(suggest.NewGenAI(suggest.GenAIConfig{
		Model:   a.config.GenAI.Model,
		Backend: a.config.GenAI.Backend,
		APIKey:  a.config.GenAI.APIKey,
		Logger:  a.logger,
	}, composer, local))
	return registry
}
