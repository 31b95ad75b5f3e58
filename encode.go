// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bip39

import "fmt"

// wordBits is the number of bits each mnemonic word encodes. The word list
// size is 1<<wordBits.
const wordBits = 11

// concatenate builds the full bit string for a validated entropy buffer:
// every entropy byte most significant bit first, in byte order, followed by
// the checksum bits, most significant first. For the legal entropy sizes the
// total length is always a multiple of 11 (132, 165, 198, 231, or 264 bits).
func concatenate(entropy []byte, cs checksum) *bitWriter {
	w := &bitWriter{}
	for _, b := range entropy {
		w.writeBits(uint16(b), 8)
	}
	w.writeBits(uint16(cs.value), cs.width)
	return w
}

// mapWords splits the bit string into consecutive 11-bit groups, reads each
// group as an unsigned integer with its first bit most significant, and
// resolves it against the word list, preserving group order. An index beyond
// the list can only mean a malformed list, which NewGenerator already
// rejects; the check stays because the contract of this step is defined even
// for lists that bypassed construction.
func mapWords(bits *bitWriter, list []string) ([]string, error) {
	r := newBitReader(bits)
	words := make([]string, 0, r.remaining()/wordBits)
	for r.remaining() >= wordBits {
		index := r.readBits(wordBits)
		if int(index) >= len(list) {
			return nil, fmt.Errorf("%w: index %d, list of %d", ErrWordIndex, index, len(list))
		}
		words = append(words, list[index])
	}
	return words, nil
}
