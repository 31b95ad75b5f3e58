// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bip39

import (
	"fmt"
	"testing"

	"github.com/matryer/is"
	"github.com/tyler-smith/go-bip39/wordlists"
)

// TestValidateWordList_English verifies that the published English list has
// the shape the encoding relies on.
func TestValidateWordList_English(t *testing.T) {
	is := is.New(t)
	is.NoErr(validateWordList(wordlists.English))
}

// TestValidateWordList_WrongSize verifies that lists with anything other
// than 2048 entries are rejected.
func TestValidateWordList_WrongSize(t *testing.T) {
	for _, size := range []int{0, 1, 2047, 2049, 4096} {
		t.Run(fmt.Sprintf("%d words", size), func(t *testing.T) {
			is := is.New(t)
			words := make([]string, size)
			for i := range words {
				words[i] = fmt.Sprintf("word%04d", i)
			}
			is.True(validateWordList(words) != nil)
		})
	}
}

// TestValidateWordList_Duplicate verifies that a duplicated entry is caught:
// two indexes mapping to the same word would make the encoding ambiguous.
func TestValidateWordList_Duplicate(t *testing.T) {
	is := is.New(t)

	words := make([]string, wordListSize)
	for i := range words {
		words[i] = fmt.Sprintf("word%04d", i)
	}
	words[1500] = words[3]
	is.True(validateWordList(words) != nil)
}

// TestNewGenerator_RejectsBadList verifies that the constructor refuses a
// malformed list instead of producing mnemonics from it.
func TestNewGenerator_RejectsBadList(t *testing.T) {
	is := is.New(t)

	_, err := NewGenerator(nil)
	is.True(err != nil)

	_, err = NewGenerator([]string{"abandon", "ability"})
	is.True(err != nil)
}

// TestNewGenerator_CopiesList verifies that the generator is insulated from
// later mutation of the caller's slice.
func TestNewGenerator_CopiesList(t *testing.T) {
	is := is.New(t)

	words := make([]string, wordListSize)
	copy(words, wordlists.English)
	g, err := NewGenerator(words)
	is.NoErr(err)

	words[0] = "tampered"

	got, err := g.Words(make([]byte, 16))
	is.NoErr(err)
	is.Equal(got[0], "abandon") // index 0 must still map to the original word
}

// TestEnglish_SharedInstance verifies that the default generator is built
// once and shared between callers.
func TestEnglish_SharedInstance(t *testing.T) {
	is := is.New(t)
	is.True(english() == english())
}
