// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bip39

import (
	"fmt"
	"sync"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// wordListSize is the number of entries a word list must have: one for every
// possible 11-bit group value.
const wordListSize = 1 << wordBits

// validateWordList checks the shape the encoding relies on: exactly 2048
// entries with no duplicates. A list failing either check is a configuration
// error and is rejected before any mnemonic is produced from it.
func validateWordList(words []string) error {
	if len(words) != wordListSize {
		return fmt.Errorf("word list must have %d words, got %d", wordListSize, len(words))
	}
	seen := make(map[string]struct{}, wordListSize)
	for i, word := range words {
		if _, dup := seen[word]; dup {
			return fmt.Errorf("word list has duplicate word %q at index %d", word, i)
		}
		seen[word] = struct{}{}
	}
	return nil
}

// english returns the process-wide generator backed by the standard English
// word list. It is built once, on first use, and never mutated afterwards;
// every caller shares the same read-only instance. The list data itself is
// external: the wordlists package ships the published 2048-word table.
var english = sync.OnceValue(func() *Generator {
	g, err := NewGenerator(wordlists.English)
	if err != nil {
		panic("bip39: English word list is malformed: " + err.Error())
	}
	return g
})
