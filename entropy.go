// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bip39

import (
	"crypto/rand"
	"fmt"
)

const (
	// MinEntropyBits is the smallest entropy size the standard allows.
	MinEntropyBits = 128

	// MaxEntropyBits is the largest entropy size the standard allows.
	MaxEntropyBits = 256

	// entropyStepBits is the granularity of legal entropy sizes. One
	// checksum bit is produced per step, so it also fixes the checksum
	// width as entropy bits / entropyStepBits.
	entropyStepBits = 32
)

// validateEntropy checks that the entropy buffer has one of the sizes the
// standard permits: 128 to 256 bits in steps of 32. A nil or empty buffer
// fails the same way. This runs before any bit manipulation; everything
// downstream assumes a legal size.
func validateEntropy(entropy []byte) error {
	return validateEntropyBits(len(entropy) * 8)
}

func validateEntropyBits(bits int) error {
	if bits < MinEntropyBits || bits > MaxEntropyBits || bits%entropyStepBits != 0 {
		return ErrInvalidEntropy
	}
	return nil
}

// NewEntropy returns bits/8 bytes of cryptographically secure random
// entropy, suitable as input to Mnemonic or Words. The bit size must be one
// of 128, 160, 192, 224, or 256.
//
// Generation is deliberately separate from encoding: Mnemonic and Words
// never draw randomness themselves, so callers that bring their own entropy
// stay fully deterministic.
func NewEntropy(bits int) ([]byte, error) {
	if err := validateEntropyBits(bits); err != nil {
		return nil, err
	}
	entropy := make([]byte, bits/8)
	if _, err := rand.Read(entropy); err != nil {
		return nil, fmt.Errorf("could not read random entropy: %w", err)
	}
	return entropy, nil
}

// EntropySize returns the entropy size in bits that encodes to a phrase of
// the given word count. Valid word counts are 12, 15, 18, 21, and 24,
// corresponding to 128, 160, 192, 224, and 256 bits.
func EntropySize(wordCount int) (int, error) {
	if wordCount < 12 || wordCount > 24 || wordCount%3 != 0 {
		return 0, fmt.Errorf("invalid word count: %d (must be 12, 15, 18, 21, or 24)", wordCount)
	}
	// Each word carries 11 bits and one checksum bit is added per 32
	// entropy bits: bits + bits/32 == 11 * words.
	return wordCount * 32 / 3, nil
}
