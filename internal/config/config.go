// Package config loads drape settings from an optional YAML file and DRAPE_*
// environment variables. Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/drape/internal/outfit"
	"github.com/jmylchreest/drape/internal/seed"
	"github.com/jmylchreest/drape/internal/suggest"
)

// Environment variables read by ApplyEnv.
const (
	EnvWardrobe     = "DRAPE_WARDROBE"
	EnvSuggester    = "DRAPE_SUGGESTER"
	EnvLimit        = "DRAPE_LIMIT"
	EnvSeedMode     = "DRAPE_SEED_MODE"
	EnvLogLevel     = "DRAPE_LOG_LEVEL"
	EnvGenAIModel   = "DRAPE_GENAI_MODEL"
	EnvGenAIBackend = "DRAPE_GENAI_BACKEND"
	EnvAPIKey       = "GOOGLE_API_KEY"
)

// Config holds the resolved settings.
type Config struct {
	Wardrobe  string `yaml:"wardrobe"`
	Suggester string `yaml:"suggester"`
	Limit     int    `yaml:"limit"`
	SeedMode  string `yaml:"seed_mode"`
	LogLevel  string `yaml:"log_level"`
	GenAI     GenAI  `yaml:"genai"`
}

// GenAI holds the Gemini suggester settings. The API key is only read from
// the environment.
type GenAI struct {
	Model   string `yaml:"model"`
	Backend string `yaml:"backend"`
	APIKey  string `yaml:"-"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Suggester: suggest.LocalName,
		Limit:     outfit.DefaultLimit,
		SeedMode:  string(seed.ModeRandom),
		GenAI: GenAI{
			Model:   suggest.DefaultModel,
			Backend: suggest.BackendGemini,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/drape/config.yaml, or "" when the
// config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "drape", "config.yaml")
}

// Load returns the defaults overlaid with the config file and the environment.
// An empty path means DefaultPath, which may be missing; an explicit path
// must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- user-specified config path
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings from environment variables that are set and
// non-empty.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvWardrobe); ok {
		c.Wardrobe = v
	}
	if v, ok := get(EnvSuggester); ok {
		c.Suggester = v
	}
	if v, ok := get(EnvLimit); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvLimit, err)
		}
		c.Limit = n
	}
	if v, ok := get(EnvSeedMode); ok {
		c.SeedMode = v
	}
	if v, ok := get(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := get(EnvGenAIModel); ok {
		c.GenAI.Model = v
	}
	if v, ok := get(EnvGenAIBackend); ok {
		c.GenAI.Backend = v
	}
	if v, ok := get(EnvAPIKey); ok {
		c.GenAI.APIKey = v
	}
	return nil
}

// Validate checks the settings that have a closed set of values.
func (c Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative: %d", c.Limit)
	}
	if _, err := seed.ParseMode(c.SeedMode); err != nil {
		return err
	}
	if c.LogLevel != "" && hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	switch c.GenAI.Backend {
	case suggest.BackendGemini, suggest.BackendVertexAI:
	default:
		return fmt.Errorf("invalid genai backend: %s (valid: %s, %s)", c.GenAI.Backend, suggest.BackendGemini, suggest.BackendVertexAI)
	}
	return nil
}
