package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points the config directory at a temp dir and clears DRAPE_* vars.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{EnvWardrobe, EnvSuggester, EnvLimit, EnvSeedMode, EnvLogLevel, EnvGenAIModel, EnvGenAIBackend, EnvAPIKey} {
		t.Setenv(key, "")
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	got, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", got, Default())
	}
}

func TestLoadDefaultPathFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "drape", "config.yaml"), "wardrobe: ~/closet.yaml\nlimit: 3\n")

	got, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Wardrobe != "~/closet.yaml" || got.Limit != 3 {
		t.Errorf("Load() = %+v", got)
	}
	if got.Suggester != "local" || got.GenAI.Model != Default().GenAI.Model {
		t.Error("file overlay cleared unrelated defaults")
	}
}

func TestLoadExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, `
suggester: google-genai
seed_mode: content
log_level: debug
genai:
  model: gemini-2.5-pro
  backend: vertex-ai
`)

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Suggester != "google-genai" || got.SeedMode != "content" || got.LogLevel != "debug" {
		t.Errorf("Load() = %+v", got)
	}
	if got.GenAI.Model != "gemini-2.5-pro" || got.GenAI.Backend != "vertex-ai" {
		t.Errorf("GenAI = %+v", got.GenAI)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing explicit config file should fail")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "limit: 3\nsuggester: local\n")

	t.Setenv(EnvLimit, "9")
	t.Setenv(EnvSuggester, "google-genai")
	t.Setenv(EnvAPIKey, "secret")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Limit != 9 || got.Suggester != "google-genai" || got.GenAI.APIKey != "secret" {
		t.Errorf("Load() = %+v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{"bad yaml", "limit: [", nil},
		{"bad limit env", "", map[string]string{EnvLimit: "many"}},
		{"negative limit", "limit: -1", nil},
		{"bad seed mode", "seed_mode: filepath", nil},
		{"bad log level", "", map[string]string{EnvLogLevel: "loud"}},
		{"bad backend", "genai:\n  backend: openai", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "config.yaml")
			writeFile(t, path, tt.file)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() succeeded, want error")
			}
		})
	}
}

func TestApplyEnvIgnoresBlank(t *testing.T) {
	cfg := Default()
	env := map[string]string{EnvSuggester: "  ", EnvWardrobe: " w.json "}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatal(err)
	}
	if cfg.Suggester != "local" || cfg.Wardrobe != "w.json" {
		t.Errorf("ApplyEnv() = %+v", cfg)
	}
}
