package rng

import (
	crand "crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
)

// SeedBytes is the seed length: 32 bytes = 256 bits of entropy.
const SeedBytes = 32

// NewSeed draws a fresh high-entropy seed. One seed is generated per fresh
// spin and never reused.
func NewSeed() ([]byte, error) {
	seed := make([]byte, SeedBytes)
	if _, err := crand.Read(seed); err != nil {
		return nil, fmt.Errorf("failed to generate seed: %w", err)
	}
	return seed, nil
}

// EncodeSeed returns the hex transport form of a seed.
func EncodeSeed(seed []byte) string {
	return hex.EncodeToString(seed)
}

// DecodeSeed parses a hex-encoded seed and checks it carries enough entropy.
func DecodeSeed(encoded string) ([]byte, error) {
	seed, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSeed, err)
	}
	if len(seed) < SeedBytes {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", domain.ErrInvalidSeed, SeedBytes, len(seed))
	}
	return seed, nil
}
