// Package seed provides deterministic seed generation for outfit suggestions.
// A seeded composer picks the same combinations for the same inputs.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/jmylchreest/drape/internal/wardrobe"
)

// Mode determines how the random seed for outfit generation is chosen.
type Mode string

const (
	// ModeContent derives the seed from the wardrobe and selection.
	ModeContent Mode = "content"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
	// ModeRandom uses a non-deterministic seed (varies each run).
	ModeRandom Mode = "random"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
}

// Calculate determines the seed value based on the seed mode.
func Calculate(all, selected []wardrobe.Item, config Config) (int64, error) {
	switch config.Mode {
	case ModeContent:
		return ContentSeed(all, selected), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeRandom, "":
		return RandomSeed(), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// ContentSeed hashes the wardrobe and selection ids. The wardrobe part is
// order independent so reordering a wardrobe file keeps the seed.
func ContentSeed(all, selected []wardrobe.Item) int64 {
	ids := make([]string, len(all))
	for i, item := range all {
		ids[i] = item.ID
	}
	slices.Sort(ids)

	hasher := sha256.New()
	for _, id := range ids {
		hasher.Write([]byte(id))
		hasher.Write([]byte{0})
	}
	// Separates the wardrobe from the selection.
	hasher.Write([]byte{0xff})
	for _, item := range selected {
		hasher.Write([]byte(item.ID))
		hasher.Write([]byte{0})
	}

	hash := hasher.Sum(nil)
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// RandomSeed generates a non-deterministic random seed.
func RandomSeed() int64 {
	// #nosec G404 -- Random seed generation is intentionally non-deterministic
	return time.Now().UnixNano() + int64(rand.Intn(1000000))
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeContent, ModeManual, ModeRandom}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: content, manual, random)", s)
}
