// vectors prints conformance rows for hex entropy inputs for checking this
// implementation against the published reference vectors.
//
// Usage:
//
//	go run ./scripts/vectors 00000000000000000000000000000000
//
// Or with stdin, one entropy value per line:
//
//	printf '%s\n' 00000000000000000000000000000000 ffffffffffffffffffffffffffffffff | go run ./scripts/vectors
//
// Each row is the entropy, the mnemonic, and the seed separated by tabs.
// Seeds are derived with the fixed passphrase "TREZOR", the passphrase the
// published vectors use.
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	bip39 "github.com/complex-gh/bip39_go"
)

func main() {
	var inputs []string

	if len(os.Args) > 1 {
		inputs = os.Args[1:]
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				inputs = append(inputs, line)
			}
		}
	}

	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: vectors <hex-entropy> [<hex-entropy> ...]")
		fmt.Fprintf(os.Stderr, "   or: printf '%%s\\n' <hex-entropy> ... | vectors\n")
		os.Exit(1)
	}

	for _, input := range inputs {
		entropy, err := hex.DecodeString(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		mnemonic, err := bip39.NewMnemonic(entropy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		seed, err := bip39.NewSeed(mnemonic, "TREZOR")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%x\t%s\t%x\n", entropy, mnemonic, seed)
	}
}
