// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bip39

import (
	"crypto/sha512"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// SeedSize is the length of a derived seed in bytes (512 bits).
	SeedSize = 64

	// seedIterations is the PBKDF2 iteration count the standard fixes.
	seedIterations = 2048

	// saltPrefix is prepended to the passphrase to form the PBKDF2 salt.
	saltPrefix = "mnemonic"
)

// NewSeed derives the 64-byte seed for a mnemonic sentence and an optional
// passphrase (pass "" for none). The derivation is
// PBKDF2-HMAC-SHA512(password, "mnemonic"+passphrase, 2048 iterations) with
// both password and salt normalized to Unicode NFKD before use, as the
// standard requires. Skipping the normalization goes unnoticed on ASCII
// input and silently derives a different seed on anything else, so it is
// applied unconditionally here rather than left to callers.
//
// Fails with ErrEmptyMnemonic when the mnemonic is empty or only whitespace.
// The sentence is otherwise taken as given: no word, word-count, or checksum
// validation is performed, matching the standard's seed derivation, which is
// defined on the sentence text alone. Identical inputs always derive
// identical seeds.
func NewSeed(mnemonic, passphrase string) ([]byte, error) {
	if strings.TrimSpace(mnemonic) == "" {
		return nil, ErrEmptyMnemonic
	}
	password := norm.NFKD.String(mnemonic)
	salt := norm.NFKD.String(saltPrefix + passphrase)
	return pbkdf2.Key([]byte(password), []byte(salt), seedIterations, SeedSize, sha512.New), nil
}
