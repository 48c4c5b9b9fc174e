package embedding

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Index maps lowercased tokens to their spelling in the vocabulary.
// When several tokens lowercase to the same key, the earliest one wins, so a
// frequency-sorted vocabulary resolves to its most frequent casing.
//
// Keys are plain lowercase, not case folded or normalized: "ß" does not
// match "ss", and precomposed and decomposed accents stay distinct.
type Index struct {
	forms map[string]string
}

// NewIndex indexes tokens in order.
func NewIndex(tokens []string) *Index {
	idx := &Index{forms: make(map[string]string, len(tokens))}
	for _, tok := range tokens {
		key := lowerKey(tok)
		if _, seen := idx.forms[key]; !seen {
			idx.forms[key] = tok
		}
	}
	return idx
}

// Lookup returns the vocabulary spelling of word, matched case-insensitively.
func (idx *Index) Lookup(word string) (string, bool) {
	form, ok := idx.forms[lowerKey(word)]
	return form, ok
}

// Len returns the number of distinct lowercased keys.
func (idx *Index) Len() int {
	return len(idx.forms)
}

func lowerKey(s string) string {
	return cases.Lower(language.Und).String(s)
}
