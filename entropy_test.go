// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bip39

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/matryer/is"
)

// TestValidateEntropy_LegalSizes verifies that every entropy size the
// standard permits passes validation.
func TestValidateEntropy_LegalSizes(t *testing.T) {
	for _, size := range []int{16, 20, 24, 28, 32} {
		t.Run(fmt.Sprintf("%d bytes", size), func(t *testing.T) {
			is := is.New(t)
			is.NoErr(validateEntropy(make([]byte, size)))
		})
	}
}

// TestValidateEntropy_IllegalSizes verifies that absent entropy and entropy
// outside 128-256 bits, or off the 32-bit grid, fail with ErrInvalidEntropy.
func TestValidateEntropy_IllegalSizes(t *testing.T) {
	is := is.New(t)

	is.True(errors.Is(validateEntropy(nil), ErrInvalidEntropy))

	for _, size := range []int{1, 12, 15, 17, 21, 33, 36, 64} {
		t.Run(fmt.Sprintf("%d bytes", size), func(t *testing.T) {
			is := is.New(t)
			err := validateEntropy(make([]byte, size))
			is.True(errors.Is(err, ErrInvalidEntropy))
		})
	}
}

// TestNewEntropy_Sizes verifies that NewEntropy returns buffers of the
// requested size for every legal bit count.
func TestNewEntropy_Sizes(t *testing.T) {
	for _, bits := range []int{128, 160, 192, 224, 256} {
		t.Run(fmt.Sprintf("%d bits", bits), func(t *testing.T) {
			is := is.New(t)
			entropy, err := NewEntropy(bits)
			is.NoErr(err)
			is.Equal(len(entropy), bits/8)
		})
	}
}

// TestNewEntropy_InvalidSizes verifies that bit counts the standard forbids
// are rejected before any randomness is drawn.
func TestNewEntropy_InvalidSizes(t *testing.T) {
	for _, bits := range []int{0, 64, 100, 129, 150, 288, 512} {
		t.Run(fmt.Sprintf("%d bits", bits), func(t *testing.T) {
			is := is.New(t)
			_, err := NewEntropy(bits)
			is.True(errors.Is(err, ErrInvalidEntropy))
		})
	}
}

// TestNewEntropy_Unique verifies that two entropy draws differ; a collision
// of 256-bit buffers means the random source is broken.
func TestNewEntropy_Unique(t *testing.T) {
	is := is.New(t)

	e1, err := NewEntropy(256)
	is.NoErr(err)
	e2, err := NewEntropy(256)
	is.NoErr(err)
	is.True(!bytes.Equal(e1, e2))
}

// TestEntropySize verifies the word count to entropy bits mapping.
func TestEntropySize(t *testing.T) {
	is := is.New(t)

	sizes := map[int]int{
		12: 128,
		15: 160,
		18: 192,
		21: 224,
		24: 256,
	}
	for words, bits := range sizes {
		got, err := EntropySize(words)
		is.NoErr(err)
		is.Equal(got, bits)
	}
}

// TestEntropySize_InvalidCounts verifies that word counts outside the
// standard's five lengths are rejected, including 16: the 16-word format
// belongs to polyseed, not to this encoding.
func TestEntropySize_InvalidCounts(t *testing.T) {
	for _, words := range []int{0, 3, 9, 11, 13, 14, 16, 17, 20, 23, 25, 27} {
		t.Run(fmt.Sprintf("%d words", words), func(t *testing.T) {
			is := is.New(t)
			_, err := EntropySize(words)
			is.True(err != nil)
		})
	}
}
