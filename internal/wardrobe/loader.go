package wardrobe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	httputil "github.com/jmylchreest/drape/internal/util/http"
)

var (
	// ErrUnsupportedFormat is returned for sources that are neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported wardrobe format")

	// ErrDuplicateID is returned when two items share an id.
	ErrDuplicateID = errors.New("duplicate item id")
)

// Format is a wardrobe encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadOptions configures Load.
type LoadOptions struct {
	// Logger receives warnings about normalised items. Defaults to a null logger.
	Logger hclog.Logger

	// Timeout bounds remote fetches.
	Timeout time.Duration
}

// rawItem is the on-disk shape. Category is free text until normalised.
type rawItem struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Category     string   `json:"category" yaml:"category"`
	Colors       []string `json:"colors" yaml:"colors"`
	Style        string   `json:"style" yaml:"style"`
	Material     string   `json:"material" yaml:"material"`
	OccasionTags []string `json:"occasion_tags" yaml:"occasion_tags"`
}

type rawWardrobe struct {
	Items []rawItem `json:"items" yaml:"items"`
}

// Load reads a wardrobe from a local path or an http(s) URL.
// Remote sources default to JSON unless the URL path ends in .yaml or .yml.
func Load(ctx context.Context, source string, opts LoadOptions) (*Wardrobe, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if isURL(source) {
		format := FormatJSON
		if u, err := url.Parse(source); err == nil {
			if f, err := FormatFromPath(u.Path); err == nil {
				format = f
			}
		}
		logger.Debug("fetching wardrobe", "url", source, "format", format)
		data, err := httputil.Fetch(ctx, source, httputil.FetchOptions{
			Timeout: opts.Timeout,
			Headers: map[string]string{"Accept": "application/json, application/yaml"},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch wardrobe: %w", err)
		}
		return Parse(data, format, logger)
	}

	format, err := FormatFromPath(source)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read wardrobe: %w", err)
	}
	logger.Debug("loaded wardrobe file", "path", source, "bytes", len(data))
	return Parse(data, format, logger)
}

// Parse decodes a wardrobe document. Both {"items": [...]} and a bare list are
// accepted. Items without an id receive a random UUID, unknown categories
// become Other and blank style or material are treated as absent.
func Parse(data []byte, format Format, logger hclog.Logger) (*Wardrobe, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	raw, err := decode(data, format)
	if err != nil {
		return nil, err
	}

	w := &Wardrobe{Items: make([]Item, 0, len(raw))}
	seen := make(map[string]struct{}, len(raw))
	for i, r := range raw {
		item := Item{
			ID:           strings.TrimSpace(r.ID),
			Name:         strings.TrimSpace(r.Name),
			Colors:       r.Colors,
			Style:        optional(r.Style),
			Material:     optional(r.Material),
			OccasionTags: r.OccasionTags,
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
			logger.Debug("assigned item id", "index", i, "id", item.ID)
		}
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, item.ID)
		}
		seen[item.ID] = struct{}{}

		category, err := ParseCategory(r.Category)
		if err != nil {
			logger.Warn("unknown category, using other", "id", item.ID, "category", r.Category)
			category = Other
		}
		item.Category = category

		w.Items = append(w.Items, item)
	}
	return w, nil
}

func decode(data []byte, format Format) ([]rawItem, error) {
	switch format {
	case FormatJSON:
		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
			var items []rawItem
			if err := json.Unmarshal(trimmed, &items); err != nil {
				return nil, fmt.Errorf("failed to parse wardrobe JSON: %w", err)
			}
			return items, nil
		}
		var doc rawWardrobe
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse wardrobe JSON: %w", err)
		}
		return doc.Items, nil
	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, fmt.Errorf("failed to parse wardrobe YAML: %w", err)
		}
		if len(node.Content) == 0 {
			return nil, nil
		}
		if node.Content[0].Kind == yaml.SequenceNode {
			var items []rawItem
			if err := node.Decode(&items); err != nil {
				return nil, fmt.Errorf("failed to parse wardrobe YAML: %w", err)
			}
			return items, nil
		}
		var doc rawWardrobe
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse wardrobe YAML: %w", err)
		}
		return doc.Items, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// isURL checks if a path is an HTTP/HTTPS URL.
func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
