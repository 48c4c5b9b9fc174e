package stopwords

import (
	_ "embed"
	"fmt"
	"strings"

	"codeberg.org/snonux/panlexicon/internal/batch"
)

//go:embed english.txt
var englishList string

// Set is a set of stopwords matched exactly.
type Set map[string]struct{}

// English returns the NLTK English stopword list.
func English() Set {
	return newSet(strings.Fields(englishList))
}

// Load reads a custom stopword list with one word per line.
func Load(path string) (Set, error) {
	words, err := batch.ReadWordList(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load stopwords: %w", err)
	}
	return newSet(words), nil
}

func newSet(words []string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
