// Package cli provides the command-line interface for drape.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/drape/internal/config"
	"github.com/jmylchreest/drape/internal/version"
)

// app carries state shared by every command of one root command.
type app struct {
	configPath string
	verbose    bool
	quiet      bool

	config config.Config
	logger hclog.Logger
}

// NewRootCmd builds the drape command tree. Each call returns an independent
// tree so tests can execute commands side by side.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "drape",
		Short: "Outfit suggestions from your wardrobe",
		Long: `Drape scores and suggests outfits from a wardrobe file.

Colour harmony, style coherence, occasion fit and category balance are
combined into a single match score used to rank complete looks.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/drape/config.yaml)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newColoursCmd(a),
		newHarmonyCmd(a),
		newScoreCmd(a),
		newSuggestCmd(a),
	)

	return rootCmd
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.config = cfg
	a.logger = newLogger(stderr, a.verbose, a.quiet, cfg.LogLevel)
	a.logger.Debug("config loaded", "suggester", cfg.Suggester, "limit", cfg.Limit, "seed_mode", cfg.SeedMode)
	return nil
}

// newLogger returns the CLI logger. An explicit level wins over the flags.
func newLogger(w io.Writer, verbose, quiet bool, level string) hclog.Logger {
	l := hclog.Warn
	switch {
	case verbose:
		l = hclog.Debug
	case quiet:
		l = hclog.Error
	}
	if level != "" {
		if parsed := hclog.LevelFromString(level); parsed != hclog.NoLevel {
			l = parsed
		}
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "drape",
		Output: w,
		Level:  l,
	})
}
