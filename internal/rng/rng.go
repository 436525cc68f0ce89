// Package rng provides random sources for the wand engine.
//
// Seeds come from crypto/rand so fresh generators are high-entropy, while
// sources themselves are deterministic math/rand generators so any draw can
// be reproduced from its seed.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a high-entropy seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewSource creates a deterministic random source from seed. The same seed
// always reproduces the same draw sequence.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
