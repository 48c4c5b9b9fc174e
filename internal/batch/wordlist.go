package batch

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadWordList reads a UTF-8 word list with one token per line.
// Surrounding whitespace is trimmed and blank lines are skipped.
//
// Example file:
//
//	house
//	play
//	train
func ReadWordList(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan word list: %w", err)
	}

	return words, nil
}
