// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bip39

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"testing"

	"github.com/matryer/is"
)

// TestComputeChecksum_LeadingDigestBits verifies, for every legal entropy
// size, that the checksum is exactly the leading ENT/32 bits of the first
// byte of SHA-256(entropy). No other digest byte may influence it.
func TestComputeChecksum_LeadingDigestBits(t *testing.T) {
	for _, size := range []int{16, 20, 24, 28, 32} {
		t.Run(fmt.Sprintf("%d-byte entropy", size), func(t *testing.T) {
			is := is.New(t)

			entropy := make([]byte, size)
			_, err := rand.Read(entropy)
			is.NoErr(err)

			cs := computeChecksum(entropy)
			width := size * 8 / 32
			is.Equal(cs.width, width)

			digest := sha256.Sum256(entropy)
			is.Equal(cs.value, digest[0]>>uint(8-width))
		})
	}
}

// TestComputeChecksum_FullFirstByte verifies that 256-bit entropy yields an
// 8-bit checksum equal to the whole first digest byte.
func TestComputeChecksum_FullFirstByte(t *testing.T) {
	is := is.New(t)

	entropy := make([]byte, 32)
	_, err := rand.Read(entropy)
	is.NoErr(err)

	cs := computeChecksum(entropy)
	digest := sha256.Sum256(entropy)
	is.Equal(cs.width, 8)
	is.Equal(cs.value, digest[0])
}

// TestComputeChecksum_ZeroEntropyVector pins the checksum of the all-zero
// 128-bit reference entropy: its published mnemonic ends in "about" (index
// 3), which fixes the 4-bit checksum to 0011.
func TestComputeChecksum_ZeroEntropyVector(t *testing.T) {
	is := is.New(t)

	cs := computeChecksum(make([]byte, 16))
	is.Equal(cs.width, 4)
	is.Equal(cs.value, byte(0x3))
}
