// Package rng provides the seeded random source behind every spin.
//
// The construction is deliberately a keyed-hash counter stream rather than a
// general-purpose PRNG: each draw is HMAC-SHA256(seed, counter), so outputs
// are unpredictable without the seed, bias-free, and exactly replayable from
// the seed alone for audit.
package rng

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
)

// mantissaBits is the number of digest bits used per draw. 53 bits is the
// float64 mantissa width, giving a uniform value in [0,1) with no rounding
// bias.
const mantissaBits = 53

// Source is a deterministic stream of uniform values derived from a seed.
// It is not safe for concurrent use; each spin owns its own Source.
type Source struct {
	mac     []byte // seed bytes, the HMAC key
	counter uint64
}

// NewSource creates a Source keyed on the given seed bytes.
func NewSource(seed []byte) *Source {
	key := make([]byte, len(seed))
	copy(key, seed)
	return &Source{mac: key}
}

// Next returns the next value in [0,1) and advances the counter.
func (s *Source) Next() float64 {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], s.counter)
	s.counter++

	h := hmac.New(sha256.New, s.mac)
	h.Write(msg[:])
	digest := h.Sum(nil)

	u := binary.BigEndian.Uint64(digest[:8]) >> (64 - mantissaBits)
	return float64(u) / (1 << mantissaBits)
}

// Position returns the number of draws made so far.
func (s *Source) Position() uint64 {
	return s.counter
}
