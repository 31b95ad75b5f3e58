// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bip39

import "crypto/sha256"

// checksum holds the leading bits of SHA-256 over the entropy. Its width is
// entropy bits / 32, which the legal entropy sizes cap at 8, so the value
// always comes from the first digest byte alone. Reading any further digest
// byte, or taking the bits in another order, would be a different (broken)
// encoding.
type checksum struct {
	value byte // leading digest bits, right-aligned
	width int  // significant bit count, 4 to 8
}

// computeChecksum derives the checksum for an already validated entropy
// buffer: the top len(entropy)*8/32 bits of SHA-256(entropy)'s first byte,
// most significant first.
func computeChecksum(entropy []byte) checksum {
	digest := sha256.Sum256(entropy)
	width := len(entropy) * 8 / entropyStepBits
	return checksum{
		value: digest[0] >> uint(8-width),
		width: width,
	}
}
