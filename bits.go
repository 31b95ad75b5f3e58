// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bip39

// The encoding side of BIP-39 is defined on a flat bit string: entropy bits
// followed by checksum bits, later re-read in 11-bit groups. Both directions
// use a single bit order, most significant bit first, within source bytes and
// within groups. bitWriter and bitReader below are the only places in the
// package that touch individual bits.

// bitWriter packs bits into a byte buffer, most significant bit first.
// The zero value is an empty writer ready for use.
type bitWriter struct {
	buf []byte
	n   int // bits written so far
}

// writeBits appends the width low-order bits of v to the buffer, most
// significant of those bits first. Width may be 0 to 16.
func (w *bitWriter) writeBits(v uint16, width int) {
	for i := width - 1; i >= 0; i-- {
		if w.n&7 == 0 {
			w.buf = append(w.buf, 0)
		}
		if v&(1<<uint(i)) != 0 {
			w.buf[w.n>>3] |= 0x80 >> uint(w.n&7)
		}
		w.n++
	}
}

// bits returns the number of bits written.
func (w *bitWriter) bits() int {
	return w.n
}

// bitReader consumes a packed bit buffer in order, most significant bit of
// each byte first.
type bitReader struct {
	buf []byte
	n   int // total bits available
	pos int // bits consumed so far
}

// newBitReader returns a reader positioned at the first bit written to w.
func newBitReader(w *bitWriter) *bitReader {
	return &bitReader{buf: w.buf, n: w.n}
}

// readBits returns the next width bits as an unsigned integer with the first
// bit read in the most significant position. It must not be called with
// width greater than remaining().
func (r *bitReader) readBits(width int) uint16 {
	var v uint16
	for i := 0; i < width; i++ {
		v <<= 1
		if r.buf[r.pos>>3]&(0x80>>uint(r.pos&7)) != 0 {
			v |= 1
		}
		r.pos++
	}
	return v
}

// remaining returns the number of unread bits.
func (r *bitReader) remaining() int {
	return r.n - r.pos
}
