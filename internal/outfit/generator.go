package outfit

import (
	"slices"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/drape/internal/wardrobe"
)

const (
	// DefaultLimit is the number of suggestions returned when none is given.
	DefaultLimit = 6

	// topCandidates is how many of the best-ranked items a slot picks from.
	topCandidates = 3

	// attemptsPerSuggestion bounds the search at limit*attemptsPerSuggestion.
	attemptsPerSuggestion = 3
)

// Suggestion is a complete look built from the wardrobe.
type Suggestion struct {
	Items       []wardrobe.Item `json:"items"`
	MatchScore  int             `json:"match_score"`
	Description string          `json:"description"`
	Style       string          `json:"style"`
	Occasion    string          `json:"occasion"`
	Breakdown   Breakdown       `json:"breakdown"`
}

// Composer assembles outfit suggestions. Scoring is deterministic; slot
// picks and description wording draw from the random source.
type Composer struct {
	random RandomSource
	logger hclog.Logger
}

// Option configures a Composer.
type Option func(*Composer)

// WithRandom sets the random source. Use NewSeededRandom for reproducible output.
func WithRandom(r RandomSource) Option {
	return func(c *Composer) {
		if r != nil {
			c.random = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l hclog.Logger) Option {
	return func(c *Composer) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewComposer creates a Composer using DefaultRandom and a null logger unless
// overridden.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{
		random: DefaultRandom,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenerateFallbackOutfits fills the slots the selection leaves empty with
// well-matched wardrobe items and returns at most limit suggestions, best
// first. When the selection already fills every slot each suggestion adds one
// accessory instead. A limit of zero or less means DefaultLimit.
//
// Each slot picks randomly among its three best-ranked candidates so repeated
// calls vary; identical combinations are returned once.
func (c *Composer) GenerateFallbackOutfits(selected, all []wardrobe.Item, limit int, opts Options) []Suggestion {
	if limit <= 0 {
		limit = DefaultLimit
	}

	available := availableItems(selected, all)
	filled := wardrobe.FilledSlots(selected)

	var pools [][]wardrobe.Item
	allFilled := true
	for i, slot := range wardrobe.Slots {
		if filled[i] {
			continue
		}
		allFilled = false
		var pool []wardrobe.Item
		for _, item := range available {
			if slot.Accepts(item.Category) {
				pool = append(pool, item)
			}
		}
		c.logger.Trace("open slot", "slot", slot.Name, "candidates", len(pool))
		if len(pool) > 0 {
			pools = append(pools, pool)
		}
	}

	var suggestions []Suggestion
	if allFilled {
		suggestions = c.accessorise(selected, available, limit, opts)
	} else {
		suggestions = c.fillSlots(selected, pools, limit, opts)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MatchScore > suggestions[j].MatchScore
	})
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// accessorise appends each of the best-matching accessories to a selection
// that already covers every slot.
func (c *Composer) accessorise(selected, available []wardrobe.Item, limit int, opts Options) []Suggestion {
	var accessories []wardrobe.Item
	for _, item := range available {
		if item.Category == wardrobe.Accessories {
			accessories = append(accessories, item)
		}
	}

	ranked := rank(selected, accessories, opts)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	suggestions := make([]Suggestion, 0, len(ranked))
	for _, r := range ranked {
		items := append(slices.Clone(selected), r.item)
		suggestions = append(suggestions, c.newSuggestion(items, r.score, opts))
	}
	return suggestions
}

// fillSlots searches for distinct combinations, one item per open slot.
func (c *Composer) fillSlots(selected []wardrobe.Item, pools [][]wardrobe.Item, limit int, opts Options) []Suggestion {
	if len(pools) == 0 {
		c.logger.Debug("no candidates for any open slot")
		return nil
	}

	var suggestions []Suggestion
	seen := make(map[string]struct{})
	budget := limit * attemptsPerSuggestion

	attempt := 0
	for ; attempt < budget && len(suggestions) < limit; attempt++ {
		outfit := slices.Clone(selected)
		added := make([]wardrobe.Item, 0, len(pools))

		for _, pool := range pools {
			ranked := rank(outfit, pool, opts)
			top := ranked[:min(topCandidates, len(ranked))]
			choice := top[c.random.pick(len(top))].item
			outfit = append(outfit, choice)
			added = append(added, choice)
		}

		key := combinationKey(added)
		if _, dup := seen[key]; dup {
			c.logger.Trace("skipping repeated combination", "items", key)
			continue
		}
		seen[key] = struct{}{}

		suggestions = append(suggestions, c.newSuggestion(outfit, ScoreOutfit(outfit, opts), opts))
	}

	if len(suggestions) < limit {
		c.logger.Debug("attempt budget exhausted", "attempts", attempt, "unique", len(suggestions), "limit", limit)
	}
	return suggestions
}

// Compose scores a finished combination and wraps it as a Suggestion.
func (c *Composer) Compose(items []wardrobe.Item, opts Options) Suggestion {
	return c.newSuggestion(items, ScoreOutfit(items, opts), opts)
}

func (c *Composer) newSuggestion(items []wardrobe.Item, score Breakdown, opts Options) Suggestion {
	style := strings.ToLower(strings.TrimSpace(opts.Style))
	if style == "" {
		style = DominantStyle(items)
	}
	occasion := normaliseTag(opts.Occasion)
	if occasion == "" {
		occasion = DominantOccasion(items, style)
	}

	return Suggestion{
		Items:       items,
		MatchScore:  score.Overall,
		Description: describe(items, style, occasion, c.random),
		Style:       style,
		Occasion:    occasion,
		Breakdown:   score,
	}
}

type rankedItem struct {
	item  wardrobe.Item
	score Breakdown
}

// rank orders candidates by how well each completes outfit, best first.
// Equal scores keep wardrobe order.
func rank(outfit, candidates []wardrobe.Item, opts Options) []rankedItem {
	ranked := make([]rankedItem, len(candidates))
	for i, item := range candidates {
		ranked[i] = rankedItem{item: item, score: MatchScore(outfit, item, opts)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score.Overall > ranked[j].score.Overall
	})
	return ranked
}

// availableItems drops selected items and repeated ids, keeping wardrobe order.
func availableItems(selected, all []wardrobe.Item) []wardrobe.Item {
	taken := make(map[string]struct{}, len(selected)+len(all))
	for _, item := range selected {
		taken[item.ID] = struct{}{}
	}

	out := make([]wardrobe.Item, 0, len(all))
	for _, item := range all {
		if _, ok := taken[item.ID]; ok {
			continue
		}
		taken[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}

func combinationKey(items []wardrobe.Item) string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	slices.Sort(ids)
	return strings.Join(ids, ",")
}
