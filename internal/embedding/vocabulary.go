package embedding

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultTopTokens is how many tokens are read from each embedding file.
const DefaultTopTokens = 50_000

// maxLineSize bounds a single embedding line (token plus vector).
const maxLineSize = 4 * 1024 * 1024

// ReadOptions controls ReadVocabulary.
type ReadOptions struct {
	// TopTokens is the exact number of tokens to read.
	TopTokens int
	// SkipHeader skips the "<count> <dim>" first line.
	SkipHeader bool
}

// DefaultReadOptions returns the options for standard word2vec text files.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{TopTokens: DefaultTopTokens, SkipHeader: true}
}

// ShortVocabularyError reports an embedding file with fewer tokens than
// requested.
type ShortVocabularyError struct {
	Path string
	Want int
	Got  int
}

func (e *ShortVocabularyError) Error() string {
	return fmt.Sprintf("embedding %s: want %d tokens, file has %d", e.Path, e.Want, e.Got)
}

// ReadVocabulary returns the first opts.TopTokens tokens of a word2vec text
// file in file order. Only the token, the first space-delimited field of a
// line, is kept.
func ReadVocabulary(path string, opts ReadOptions) ([]string, error) {
	if opts.TopTokens <= 0 {
		return nil, fmt.Errorf("embedding %s: top tokens must be positive, got %d", path, opts.TopTokens)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open embeddings: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	if opts.SkipHeader && !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read embeddings header: %w", err)
		}
		return nil, &ShortVocabularyError{Path: path, Want: opts.TopTokens}
	}

	tokens := make([]string, 0, opts.TopTokens)
	for len(tokens) < opts.TopTokens && scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		token, _, _ := strings.Cut(line, " ")
		tokens = append(tokens, token)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read embeddings: %w", err)
	}

	if len(tokens) != opts.TopTokens {
		return nil, &ShortVocabularyError{Path: path, Want: opts.TopTokens, Got: len(tokens)}
	}
	return tokens, nil
}
