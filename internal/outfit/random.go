package outfit

import "math/rand"

// RandomSource returns values in [0, 1).
type RandomSource func() float64

// DefaultRandom draws from the shared math/rand source and is safe for
// concurrent use.
var DefaultRandom RandomSource = rand.Float64

// NewSeededRandom returns a reproducible source. It is not safe for
// concurrent use.
func NewSeededRandom(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed)).Float64 // #nosec G404 -- outfit variety, not security
}

// pick returns an index in [0, n).
func (r RandomSource) pick(n int) int {
	if n <= 1 {
		return 0
	}
	i := int(r() * float64(n))
	return min(max(i, 0), n-1)
}
