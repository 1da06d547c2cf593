package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
	"google.golang.org/genai"

	"github.com/jmylchreest/drape/internal/outfit"
	"github.com/jmylchreest/drape/internal/wardrobe"
)

const (
	// GenAIName is the name of the Gemini-backed suggester.
	GenAIName = "google-genai"

	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-2.5-flash"

	// BackendGemini and BackendVertexAI select the Gen AI backend.
	BackendGemini   = "gemini"
	BackendVertexAI = "vertex-ai"

	systemInstruction = "You are a fashion stylist. Build complete outfits only from the wardrobe items provided, " +
		"referring to them by id. Every outfit must keep the selected items and add a top or outerwear, " +
		"bottoms, shoes and optionally accessories when the wardrobe has them. " +
		`Reply with JSON only: {"outfits":[{"item_ids":["..."],"description":"..."}]}.`
)

// contentGenerator is the part of the Gen AI client the suggester uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GenAIConfig configures the Gemini-backed suggester.
type GenAIConfig struct {
	Model   string
	Backend string
	APIKey  string
	Logger  hclog.Logger
}

// GenAI asks a Gemini model for outfits and scores them with the composer.
// Any failure, or a reply with no usable outfit, falls back to another
// suggester.
type GenAI struct {
	config    GenAIConfig
	composer  *outfit.Composer
	fallback  Suggester
	generator contentGenerator
	logger    hclog.Logger
}

// NewGenAI creates the Gemini-backed suggester. The client is created on
// first use.
func NewGenAI(config GenAIConfig, composer *outfit.Composer, fallback Suggester) *GenAI {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Backend == "" {
		config.Backend = BackendGemini
	}
	if composer == nil {
		composer = outfit.NewComposer()
	}
	if fallback == nil {
		fallback = NewLocal(composer)
	}
	logger := config.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &GenAI{
		config:   config,
		composer: composer,
		fallback: fallback,
		logger:   logger.Named(GenAIName),
	}
}

// Name returns the suggester name.
func (g *GenAI) Name() string {
	return GenAIName
}

// Description returns the suggester description.
func (g *GenAI) Description() string {
	return fmt.Sprintf("Google Gen AI (%s), falls back to %s", g.config.Model, g.fallback.Name())
}

// Suggest asks the model for outfits. The result is scored the same way as
// the local composer so match scores stay comparable.
func (g *GenAI) Suggest(ctx context.Context, req Request) ([]outfit.Suggestion, error) {
	suggestions, err := g.suggest(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		g.logger.Warn("falling back", "suggester", g.fallback.Name(), "error", err)
		return g.fallback.Suggest(ctx, req)
	}
	if len(suggestions) == 0 {
		g.logger.Warn("model returned no usable outfits, falling back", "suggester", g.fallback.Name())
		return g.fallback.Suggest(ctx, req)
	}
	return suggestions, nil
}

func (g *GenAI) suggest(ctx context.Context, req Request) ([]outfit.Suggestion, error) {
	generator, err := g.client(ctx)
	if err != nil {
		return nil, err
	}

	prompt, err := buildPrompt(req)
	if err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	}

	g.logger.Debug("calling GenerateContent", "model", g.config.Model, "items", len(req.Wardrobe))
	response, err := generator.GenerateContent(ctx, g.config.Model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("outfit generation failed: %w", err)
	}

	text := responseText(response)
	if text == "" {
		return nil, fmt.Errorf("no text in response")
	}

	var reply modelReply
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &reply); err != nil {
		return nil, fmt.Errorf("failed to parse model reply: %w", err)
	}
	g.logger.Debug("model replied", "outfits", len(reply.Outfits))

	return g.buildSuggestions(req, reply), nil
}

// client returns the content generator, creating the Gen AI client once.
func (g *GenAI) client(ctx context.Context) (contentGenerator, error) {
	if g.generator != nil {
		return g.generator, nil
	}

	clientConfig := &genai.ClientConfig{}
	if g.config.Backend == BackendVertexAI {
		clientConfig.Backend = genai.BackendVertexAI
	} else {
		clientConfig.Backend = genai.BackendGeminiAPI
		if g.config.APIKey == "" {
			return nil, ErrNoAPIKey
		}
		clientConfig.APIKey = g.config.APIKey
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gen AI client: %w", err)
	}

	backendName := "Gemini API"
	if client.ClientConfig().Backend == genai.BackendVertexAI {
		backendName = "Vertex AI"
	}
	g.logger.Debug("using backend", "backend", backendName)

	g.generator = client.Models
	return g.generator, nil
}

type promptItem struct {
	ID           string            `json:"id"`
	Name         string            `json:"name,omitempty"`
	Category     wardrobe.Category `json:"category"`
	Colors       []string          `json:"colors,omitempty"`
	Style        string            `json:"style"`
	OccasionTags []string          `json:"occasion_tags,omitempty"`
}

type promptBody struct {
	Wardrobe []promptItem `json:"wardrobe"`
	Selected []string     `json:"selected_item_ids"`
	Outfits  int          `json:"outfits"`
	Style    string       `json:"style,omitempty"`
	Occasion string       `json:"occasion,omitempty"`
}

type modelReply struct {
	Outfits []struct {
		ItemIDs     []string `json:"item_ids"`
		Description string   `json:"description"`
	} `json:"outfits"`
}

func buildPrompt(req Request) (string, error) {
	body := promptBody{
		Wardrobe: make([]promptItem, 0, len(req.Wardrobe)+len(req.Selected)),
		Selected: make([]string, 0, len(req.Selected)),
		Outfits:  req.limit(),
		Style:    req.Options.Style,
		Occasion: req.Options.Occasion,
	}

	seen := make(map[string]struct{})
	for _, item := range slices.Concat(req.Selected, req.Wardrobe) {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		body.Wardrobe = append(body.Wardrobe, promptItem{
			ID:           item.ID,
			Name:         item.Name,
			Category:     item.Category,
			Colors:       item.Colors,
			Style:        outfit.InferStyle(item),
			OccasionTags: item.OccasionTags,
		})
	}
	for _, item := range req.Selected {
		body.Selected = append(body.Selected, item.ID)
	}

	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode prompt: %w", err)
	}
	return "Suggest outfits for this wardrobe:\n" + string(data), nil
}

func responseText(response *genai.GenerateContentResponse) string {
	if response == nil || len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}

// stripCodeFence removes a markdown code fence some models wrap JSON in.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// buildSuggestions keeps only ids from the wardrobe, drops repeats and
// selected items, and rescores each outfit.
func (g *GenAI) buildSuggestions(req Request, reply modelReply) []outfit.Suggestion {
	index := make(map[string]wardrobe.Item, len(req.Wardrobe))
	for _, item := range req.Wardrobe {
		if _, ok := index[item.ID]; !ok {
			index[item.ID] = item
		}
	}

	var suggestions []outfit.Suggestion
	combinations := make(map[string]struct{})
	for _, o := range reply.Outfits {
		items := slices.Clone(req.Selected)
		used := make(map[string]struct{}, len(items)+len(o.ItemIDs))
		for _, item := range items {
			used[item.ID] = struct{}{}
		}

		var added []string
		for _, id := range o.ItemIDs {
			item, ok := index[id]
			if !ok {
				g.logger.Debug("ignoring unknown item", "id", id)
				continue
			}
			if _, dup := used[id]; dup {
				continue
			}
			used[id] = struct{}{}
			items = append(items, item)
			added = append(added, id)
		}
		if len(added) == 0 {
			continue
		}

		slices.Sort(added)
		key := strings.Join(added, ",")
		if _, dup := combinations[key]; dup {
			continue
		}
		combinations[key] = struct{}{}

		s := g.composer.Compose(items, req.Options)
		if d := strings.TrimSpace(o.Description); d != "" {
			s.Description = d
		}
		suggestions = append(suggestions, s)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MatchScore > suggestions[j].MatchScore
	})
	if limit := req.limit(); len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
