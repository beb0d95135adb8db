// Command rightmost parses substrings of a text into their rightmost LZ77
// phrase sequence. The text comes from --text, --file, or an interactive
// prompt; query indices are 1-based on the command line.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lzindex/rightmost"
)

var (
	textFlag string
	fileFlag string

	literalColor = color.New(color.FgGreen)
	copyColor    = color.New(color.FgCyan)

	stdin = bufio.NewReader(os.Stdin)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rightmost",
		Short:         "Rightmost LZ77 parsing of substrings via right-closed repeats",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&textFlag, "text", "", "text to index")
	root.PersistentFlags().StringVar(&fileFlag, "file", "", "read the text from a file")
	root.AddCommand(newParseCmd(), newRepeatsCmd())
	return root
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [i] [ell]",
		Short: "Parse the substring of length ell starting at 1-based index i",
		Args:  cobra.RangeArgs(0, 2),
		RunE:  runParse,
	}
}

func newRepeatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repeats",
		Short: "Print the right-closed repeat index of the text",
		Args:  cobra.NoArgs,
		RunE:  runRepeats,
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	idx, err := buildIndex()
	if err != nil {
		return err
	}

	var start, length int
	if len(args) == 2 {
		if start, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("invalid index %q: %w", args[0], err)
		}
		if length, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("invalid length %q: %w", args[1], err)
		}
	} else {
		fmt.Println("Enter the query substring indices (i and length ell):")
		if start, err = promptInt("i = "); err != nil {
			return err
		}
		if length, err = promptInt("ell = "); err != nil {
			return err
		}
	}
	start-- // command line is 1-based

	phrases, err := idx.Parse(start, length)
	if errors.Is(err, rightmost.ErrOutOfRange) {
		fmt.Println("Invalid indices")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println("Rightmost LZ77 parsing:")
	for _, p := range phrases {
		if p.IsLiteral() {
			literalColor.Println(p)
		} else {
			copyColor.Println(p)
		}
	}
	return nil
}

func runRepeats(cmd *cobra.Command, args []string) error {
	idx, err := buildIndex()
	if err != nil {
		return err
	}
	for pos := 0; pos < idx.Len(); pos++ {
		repeats := idx.Repeats(pos)
		if len(repeats) == 0 {
			continue
		}
		fmt.Printf("pos=%d:", pos)
		for _, r := range repeats {
			fmt.Printf(" (prev=%d, len=%d)", r.Prev, r.Length)
		}
		fmt.Println()
	}
	return nil
}

func buildIndex() (*rightmost.Index, error) {
	text, err := loadText()
	if err != nil {
		return nil, err
	}
	return rightmost.NewBuilder(text).Build()
}

func loadText() (string, error) {
	if textFlag != "" {
		return textFlag, nil
	}
	if fileFlag != "" {
		data, err := os.ReadFile(fileFlag)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	fmt.Print("Enter the string: ")
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func promptInt(label string) (int, error) {
	fmt.Print(label)
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(line))
}
