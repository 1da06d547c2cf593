// Package suggest provides the interface and registry for outfit suggesters.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jmylchreest/drape/internal/outfit"
	"github.com/jmylchreest/drape/internal/wardrobe"
)

var (
	// ErrUnknownSuggester is returned when no suggester is registered under a name.
	ErrUnknownSuggester = errors.New("unknown suggester")

	// ErrNoAPIKey is returned when a hosted suggester has no credentials.
	ErrNoAPIKey = errors.New("GOOGLE_API_KEY environment variable is required")
)

// Request is one suggestion query.
type Request struct {
	// Selected items are kept in every suggestion.
	Selected []wardrobe.Item

	// Wardrobe is every item available to complete the look.
	Wardrobe []wardrobe.Item

	// Limit caps the number of suggestions. Zero means outfit.DefaultLimit.
	Limit int

	// Options carries the style and occasion hints.
	Options outfit.Options
}

func (r Request) limit() int {
	if r.Limit <= 0 {
		return outfit.DefaultLimit
	}
	return r.Limit
}

// Suggester produces ranked outfit suggestions.
type Suggester interface {
	// Name returns the suggester's name (e.g., "local", "google-genai").
	Name() string

	// Description returns a human-readable description of the suggester.
	Description() string

	// Suggest returns suggestions ordered best first.
	Suggest(ctx context.Context, req Request) ([]outfit.Suggestion, error)
}

// Registry holds all registered suggesters.
type Registry struct {
	suggesters map[string]Suggester
}

// NewRegistry creates a new suggester registry.
func NewRegistry() *Registry {
	return &Registry{
		suggesters: make(map[string]Suggester),
	}
}

// Register adds a suggester to the registry.
func (r *Registry) Register(s Suggester) {
	r.suggesters[s.Name()] = s
}

// Get retrieves a suggester by name.
func (r *Registry) Get(name string) (Suggester, error) {
	s, ok := r.suggesters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownSuggester, name, r.List())
	}
	return s, nil
}

// List returns all registered suggester names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.suggesters))
	for name := range r.suggesters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
