// Package main provides the bip39 CLI tool for generating mnemonic seed
// phrases and deriving the seeds they encode.
package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	bip39 "github.com/complex-gh/bip39_go"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	maxWidth = 72
)

var (
	baseStyle  = lipgloss.NewStyle().Margin(0, 0, 1, 2) //nolint:mnd
	red        = lipgloss.Color(completeColor("#FF4444", "196", "9"))
	errorStyle = baseStyle.
			Foreground(red).
			Background(lipgloss.AdaptiveColor{Light: completeColor("#FFEBEB", "255", "7"), Dark: completeColor("#2B1A1A", "235", "8")}).
			Padding(1, 2) //nolint:mnd

	wordCountStr     string
	entropyHex       string
	showSeed         bool
	seedPassphrase   string
	promptPassphrase bool

	rootCmd = &cobra.Command{
		Use:   "bip39",
		Short: "Generate mnemonic seed phrases from random or supplied entropy",
		Long: `Generate mnemonic seed phrases from random or supplied entropy.

Valid word counts are: 12, 15, 18, 21, or 24. Without --entropy each
phrase is drawn from the operating system's random source; with
--entropy (or entropy piped on stdin) the phrase encodes exactly the
bytes you supply, so the word count is fixed by the input size:
128 bits make 12 words, 160 make 15, 192 make 18, 224 make 21, and
256 make 24.

SECURITY TIP: Add a space before the command to prevent it from being
saved in your shell history when passing --passphrase or --entropy.
Most shells (bash, zsh) are configured to ignore commands that start
with a space. Check your HISTCONTROL or HIST_IGNORE_SPACE settings.`,
		Example: `  bip39
  bip39 --words 12
  bip39 --words 12,24
  bip39 --words 24 --seed
  bip39 --entropy 000102030405060708090a0b0c0d0e0f
  bip39 --entropy - < entropy.hex
  head -c 32 /dev/urandom | xxd -p -c 64 | bip39
  bip39 seed "legal winner thank year wave sausage worth useful legal winner thank yellow"
  echo "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong" | bip39 seed --passphrase-prompt`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			passphrase, err := resolvePassphrase()
			if err != nil {
				return err
			}

			// Entropy may arrive through the flag or piped on stdin. The
			// flag wins when both are present.
			entropyArg := entropyHex
			if entropyArg == "" {
				if fi, _ := os.Stdin.Stat(); (fi.Mode() & os.ModeNamedPipe) != 0 {
					entropyArg = "-"
				}
			}

			if entropyArg != "" {
				return generateFromEntropy(entropyArg, passphrase)
			}
			return generateFresh(passphrase)
		},
	}

	// seedCmd derives the 64-byte seed a mnemonic encodes. The mnemonic is
	// treated as opaque text: its words are not checked against the word
	// list, matching wallets that accept pre-standard or foreign phrases.
	seedCmd = &cobra.Command{
		Use:   "seed [mnemonic]",
		Short: "Derive the 64-byte seed from a mnemonic",
		Long: `Derive the 64-byte seed a mnemonic encodes.

The mnemonic and the optional passphrase are normalized to NFKD and
stretched with PBKDF2-HMAC-SHA512 over 2048 iterations, with the
passphrase appended to the salt. The seed is printed as 128 hex
characters. Words are not checked against the word list; any
non-empty text derives a seed.`,
		Example: `  bip39 seed "legal winner thank year wave sausage worth useful legal winner thank yellow"
  bip39 seed legal winner thank year wave sausage worth useful legal winner thank yellow
  echo "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong" | bip39 seed
  bip39 seed --passphrase "TREZOR" "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			passphrase, err := resolvePassphrase()
			if err != nil {
				return err
			}

			mnemonic, err := readMnemonic(args)
			if err != nil {
				return err
			}

			seed, err := bip39.NewSeed(mnemonic, passphrase)
			if err != nil {
				return formatStyledError(err)
			}

			fmt.Printf("%x\n", seed)
			return nil
		},
	}

	manCmd = &cobra.Command{
		Use:          "man",
		Args:         cobra.NoArgs,
		Short:        "generate man pages",
		Hidden:       true,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			manPage, err := mcobra.NewManPage(1, rootCmd)
			if err != nil {
				//nolint: wrapcheck
				return err
			}
			manPage = manPage.WithSection("Copyright", "(C) 2026 complex (complex@ft.hn)\n"+
				"Released under MIT license.")
			fmt.Println(manPage.Build(roff.NewDocument()))
			return nil
		},
	}

	// completionCmd generates shell completion scripts for bash, zsh, fish, and powershell.
	completionCmd = &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for bip39.

To load completions:

Bash:
  $ source <(bip39 completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ bip39 completion bash > /etc/bash_completion.d/bip39
  # macOS:
  $ bip39 completion bash > $(brew --prefix)/etc/bash_completion.d/bip39

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ bip39 completion zsh > "${fpath[1]}/_bip39"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ bip39 completion fish | source

  # To load completions for each session, execute once:
  $ bip39 completion fish > ~/.config/fish/completions/bip39.fish

PowerShell:
  PS> bip39 completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> bip39 completion powershell > bip39.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		SilenceUsage:          true,
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unknown shell: %s", args[0])
			}
		},
	}
)

func init() {
	rootCmd.Flags().StringVarP(&wordCountStr, "words", "w", "", "Word counts to generate (comma-separated: 12,15,18,21,24)")
	rootCmd.Flags().StringVarP(&entropyHex, "entropy", "e", "", "Hex-encoded entropy to encode instead of drawing random bytes (\"-\" reads stdin)")
	rootCmd.Flags().BoolVar(&showSeed, "seed", false, "Also derive and print the 64-byte seed for each phrase")
	rootCmd.PersistentFlags().StringVar(&seedPassphrase, "passphrase", "", "Passphrase to combine with the mnemonic when deriving the seed")
	rootCmd.PersistentFlags().BoolVar(&promptPassphrase, "passphrase-prompt", false, "Prompt for the seed passphrase instead of passing it on the command line")
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// generateFresh draws fresh entropy for every requested word count and
// prints one phrase per count. Each phrase is independent: drawing 12 and 24
// words in one run gives two unrelated secrets, not one truncated one.
func generateFresh(passphrase string) error {
	wordCounts, err := parseWordCounts(wordCountStr)
	if err != nil {
		return fmt.Errorf("invalid word counts: %w", err)
	}

	for i, count := range wordCounts {
		bits, err := bip39.EntropySize(count)
		if err != nil {
			return fmt.Errorf("could not size entropy for %d words: %w", count, err)
		}

		entropy, err := bip39.NewEntropy(bits)
		if err != nil {
			return fmt.Errorf("could not draw entropy: %w", err)
		}

		mnemonic, err := bip39.NewMnemonic(entropy)
		if err != nil {
			return formatStyledError(err)
		}

		if err := printPhrase(count, mnemonic, passphrase); err != nil {
			return err
		}

		// Blank line between word counts (except after the last one)
		if i < len(wordCounts)-1 {
			fmt.Println()
		}
	}

	return nil
}

// generateFromEntropy encodes caller-supplied entropy into its phrase. The
// entropy size fixes the word count, so --words may only confirm it.
func generateFromEntropy(entropyArg, passphrase string) error {
	entropy, err := readEntropy(entropyArg)
	if err != nil {
		return err
	}

	words, err := bip39.Words(entropy)
	if err != nil {
		return formatStyledError(err)
	}

	if wordCountStr != "" {
		wordCounts, err := parseWordCounts(wordCountStr)
		if err != nil {
			return fmt.Errorf("invalid word counts: %w", err)
		}
		for _, count := range wordCounts {
			if count != len(words) {
				return fmt.Errorf("%d bits of entropy encode a %d word phrase, not %d words", len(entropy)*8, len(words), count)
			}
		}
	}

	return printPhrase(len(words), strings.Join(words, " "), passphrase)
}

// printPhrase displays one phrase section, and its seed section when --seed
// was given.
func printPhrase(count int, mnemonic, passphrase string) error {
	fmt.Printf("[%d word seed phrase]\n", count)
	fmt.Println()
	fmt.Println(mnemonic)
	fmt.Println()

	if !showSeed {
		return nil
	}

	seed, err := bip39.NewSeed(mnemonic, passphrase)
	if err != nil {
		return fmt.Errorf("could not derive seed from %d word phrase: %w", count, err)
	}

	fmt.Printf("[seed from %d word phrase]\n", count)
	fmt.Println()
	fmt.Printf("%x\n", seed)
	fmt.Println()

	return nil
}

// readEntropy decodes the hex entropy from the flag value, or from stdin
// when the value is "-".
func readEntropy(arg string) ([]byte, error) {
	raw := arg
	if arg == "-" {
		bts, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("could not read entropy from stdin: %w", err)
		}
		raw = string(bts)
	}

	entropy, err := hex.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("could not decode entropy hex: %w", err)
	}
	return entropy, nil
}

// readMnemonic joins the command arguments into the mnemonic, or reads one
// line from stdin when no arguments were given. Quoting the phrase is
// optional: unquoted words arrive as separate arguments and join the same.
func readMnemonic(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("could not read mnemonic from stdin: %w", err)
	}
	return "", nil
}

// parseWordCounts parses a comma-separated string of word counts and validates them.
// Valid word counts are: 12, 15, 18, 21, or 24.
func parseWordCounts(wordCountStr string) ([]int, error) {
	if wordCountStr == "" {
		return []int{12, 15, 18, 21, 24}, nil
	}

	validCounts := map[int]bool{12: true, 15: true, 18: true, 21: true, 24: true}
	parts := strings.Split(wordCountStr, ",")
	wordCounts := make([]int, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		count, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid word count %q: %w", part, err)
		}

		if !validCounts[count] {
			return nil, fmt.Errorf("invalid word count: %d (must be 12, 15, 18, 21, or 24)", count)
		}

		wordCounts = append(wordCounts, count)
	}

	if len(wordCounts) == 0 {
		return []int{12, 15, 18, 21, 24}, nil
	}

	return wordCounts, nil
}

// resolvePassphrase returns the seed passphrase from the flag, or prompts
// for it on the terminal when --passphrase-prompt was given. The two are
// mutually exclusive.
func resolvePassphrase() (string, error) {
	if seedPassphrase != "" && promptPassphrase {
		return "", fmt.Errorf("cannot use --passphrase and --passphrase-prompt together")
	}
	if !promptPassphrase {
		return seedPassphrase, nil
	}

	pass, err := askSeedPassphrase()
	if err != nil {
		return "", err
	}
	return string(pass), nil
}

func askSeedPassphrase() ([]byte, error) {
	defer fmt.Fprintf(os.Stderr, "\n")
	return readPassword("Enter the seed passphrase: ")
}

func readPassword(msg string) ([]byte, error) {
	_, _ = fmt.Fprint(os.Stderr, msg)
	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open tty: %w", err)
	}
	defer t.Close()                                     //nolint: errcheck
	pass, err := term.ReadPassword(int(t.Input().Fd())) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("could not read passphrase: %w", err)
	}
	return pass, nil
}

func getWidth(maxw int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint: gosec
	if err != nil || w > maxw {
		return maxWidth
	}
	return w
}

func renderBlock(w io.Writer, s lipgloss.Style, width int, str string) {
	_, _ = io.WriteString(w, s.Width(width).Render(str))
	_, _ = io.WriteString(w, "\n")
}

// formatStyledError displays validation failures in a styled block when
// stdout is a terminal, and returns the error so the command exits with a
// non-zero code. Only the library's own rejections get the block; plumbing
// errors stay plain.
func formatStyledError(err error) error {
	if !errors.Is(err, bip39.ErrInvalidEntropy) && !errors.Is(err, bip39.ErrEmptyMnemonic) {
		return err
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		b := strings.Builder{}
		w := getWidth(maxWidth)

		b.WriteRune('\n')
		renderBlock(&b, errorStyle, w, err.Error())
		b.WriteRune('\n')

		fmt.Print(b.String())
	}
	return err
}

func completeColor(truecolor, ansi256, ansi string) string {
	//nolint: exhaustive
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return truecolor
	case termenv.ANSI256:
		return ansi256
	}
	return ansi
}
