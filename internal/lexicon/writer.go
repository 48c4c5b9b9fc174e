package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultSeparator separates source and target on each output line.
const DefaultSeparator = "\t"

// WriteOptions controls the lexicon text format.
type WriteOptions struct {
	Separator string
	// Inline writes multiple targets comma-joined on one line instead of
	// one line per target.
	Inline bool
}

// Write writes lex as delimited text.
//
// Example (Inline false):
//
//	hello	hallo
//	train	Zug
//	train	trainieren
//
// Example (Inline true):
//
//	hello	hallo
//	train	Zug,trainieren
func Write(w io.Writer, lex *Lexicon, opts WriteOptions) error {
	sep := opts.Separator
	if sep == "" {
		sep = DefaultSeparator
	}

	bw := bufio.NewWriter(w)
	for _, e := range lex.Entries() {
		switch {
		case len(e.Targets) == 0:
			continue
		case len(e.Targets) == 1 || opts.Inline:
			fmt.Fprintf(bw, "%s%s%s\n", e.Source, sep, strings.Join(e.Targets, ","))
		default:
			for _, target := range e.Targets {
				fmt.Fprintf(bw, "%s%s%s\n", e.Source, sep, target)
			}
		}
	}
	return bw.Flush()
}

// WriteFile writes lex to path, replacing any existing file.
func WriteFile(path string, lex *Lexicon, opts WriteOptions) error {
	return writeFile(path, func(w io.Writer) error {
		return Write(w, lex, opts)
	})
}

// WritePairs writes one source<sep>target line per pair.
func WritePairs(w io.Writer, pairs []Pair, sep string) error {
	if sep == "" {
		sep = DefaultSeparator
	}

	bw := bufio.NewWriter(w)
	for _, p := range pairs {
		fmt.Fprintf(bw, "%s%s%s\n", p.Source, sep, p.Target)
	}
	return bw.Flush()
}

// WritePairsFile writes pairs to path, replacing any existing file.
func WritePairsFile(path string, pairs []Pair, sep string) error {
	return writeFile(path, func(w io.Writer) error {
		return WritePairs(w, pairs, sep)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create lexicon file: %w", err)
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write lexicon file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close lexicon file: %w", err)
	}
	return nil
}
