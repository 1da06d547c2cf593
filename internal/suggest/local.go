package suggest

import (
	"context"

	"github.com/jmylchreest/drape/internal/outfit"
)

// LocalName is the name of the heuristic suggester.
const LocalName = "local"

// Local suggests outfits with the heuristic composer. It needs no network.
type Local struct {
	composer *outfit.Composer
}

// NewLocal creates a Local suggester. A nil composer uses outfit defaults.
func NewLocal(composer *outfit.Composer) *Local {
	if composer == nil {
		composer = outfit.NewComposer()
	}
	return &Local{composer: composer}
}

// Name returns the suggester name.
func (l *Local) Name() string {
	return LocalName
}

// Description returns the suggester description.
func (l *Local) Description() string {
	return "Heuristic colour, style and occasion matching"
}

// Suggest fills the open outfit slots from the wardrobe.
func (l *Local) Suggest(ctx context.Context, req Request) ([]outfit.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return l.composer.GenerateFallbackOutfits(req.Selected, req.Wardrobe, req.limit(), req.Options), nil
}
