// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package bip39 implements the BIP-39 mnemonic code standard: it encodes a
// caller-supplied entropy buffer into a sentence of common words, and
// derives a 512-bit seed from a mnemonic sentence plus an optional
// passphrase.
//
// The encoding is bit-exact against the published standard and its test
// vectors. Entropy of 128 to 256 bits (in 32-bit steps) is extended with a
// SHA-256 checksum and split into 11-bit groups, each group selecting one
// word of a fixed 2048-word list; the seed is PBKDF2-HMAC-SHA512 over the
// NFKD-normalized sentence with 2048 iterations.
//
// Every operation is a pure function of its arguments and the immutable
// word list, so values returned by this package may be computed from
// multiple goroutines without locking. The package does not decode
// mnemonics back to entropy and does not verify checksums of existing
// sentences; it is an encoder and seed deriver only.
package bip39

import (
	"errors"
	"strings"
)

// Errors reported by this package. They are sentinel values so callers can
// classify failures with errors.Is.
var (
	// ErrInvalidEntropy rejects entropy that is absent, shorter than 128
	// bits, longer than 256 bits, or not a multiple of 32 bits.
	ErrInvalidEntropy = errors.New("entropy must be 128, 160, 192, 224, or 256 bits")

	// ErrEmptyMnemonic rejects a mnemonic that is absent or blank after
	// trimming whitespace.
	ErrEmptyMnemonic = errors.New("mnemonic must not be empty")

	// ErrWordIndex reports an 11-bit group value with no entry in the word
	// list. It cannot occur with a list that passed NewGenerator.
	ErrWordIndex = errors.New("word index out of range of the word list")
)

// Generator encodes entropy into mnemonic sentences using an injected word
// list. It is immutable after construction and safe for concurrent use.
type Generator struct {
	words []string
}

// NewGenerator returns a Generator over the given word list. The list must
// contain exactly 2048 unique words, ordered as published for its language;
// it is copied, so later changes to the caller's slice do not reach the
// Generator.
//
// Most callers want the package-level NewMnemonic and Words functions, which
// use the standard English list. NewGenerator exists for callers that inject
// the table themselves, for example to pin an audited copy.
func NewGenerator(words []string) (*Generator, error) {
	if err := validateWordList(words); err != nil {
		return nil, err
	}
	list := make([]string, len(words))
	copy(list, words)
	return &Generator{words: list}, nil
}

// Words encodes entropy into its mnemonic word sequence: 12, 15, 18, 21, or
// 24 words for 128, 160, 192, 224, or 256 entropy bits. The same entropy
// always encodes to the same words. Fails with ErrInvalidEntropy for entropy
// of any other size.
func (g *Generator) Words(entropy []byte) ([]string, error) {
	if err := validateEntropy(entropy); err != nil {
		return nil, err
	}
	cs := computeChecksum(entropy)
	bits := concatenate(entropy, cs)
	return mapWords(bits, g.words)
}

// Mnemonic encodes entropy like Words and joins the result into a single
// sentence with one space between words.
func (g *Generator) Mnemonic(entropy []byte) (string, error) {
	words, err := g.Words(entropy)
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

// Words encodes entropy with the standard English word list. See
// Generator.Words.
func Words(entropy []byte) ([]string, error) {
	return english().Words(entropy)
}

// NewMnemonic encodes entropy into an English mnemonic sentence. See
// Generator.Mnemonic.
func NewMnemonic(entropy []byte) (string, error) {
	return english().Mnemonic(entropy)
}
