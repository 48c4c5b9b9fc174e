package lexicon

import "unicode/utf8"

// Dictionary is a lexicon in which every source word has exactly one target.
type Dictionary []Pair

// NewDictionary converts lex into a single-target dictionary. It fails with a
// *ValidationError on the first entry that does not have exactly one target.
func NewDictionary(lex *Lexicon) (Dictionary, error) {
	entries := lex.Entries()
	d := make(Dictionary, 0, len(entries))
	for _, e := range entries {
		if len(e.Targets) != 1 {
			return nil, &ValidationError{Source: e.Source, Count: len(e.Targets)}
		}
		d = append(d, Pair{Source: e.Source, Target: e.Targets[0]})
	}
	return d, nil
}

// Vocabulary resolves a word to the form a vocabulary knows it by.
type Vocabulary interface {
	Lookup(word string) (string, bool)
}

// Intersect keeps the pairs whose source is known to src and whose target is
// known to trg, rewritten to the vocabularies' own spelling. onMiss, if not
// nil, is called for every dropped pair.
func Intersect(d Dictionary, src, trg Vocabulary, onMiss func(Pair)) []Pair {
	out := make([]Pair, 0, len(d))
	for _, p := range d {
		s, okSrc := src.Lookup(p.Source)
		t, okTrg := trg.Lookup(p.Target)
		if !okSrc || !okTrg {
			if onMiss != nil {
				onMiss(p)
			}
			continue
		}
		out = append(out, Pair{Source: s, Target: t})
	}
	return out
}

// FilterOptions selects which pairs FilterPairs drops.
type FilterOptions struct {
	// Stopwords are matched exactly against the source word.
	Stopwords map[string]struct{}
	// MinCharLen drops sources with at most this many characters.
	MinCharLen int
}

// FilterPairs drops pairs whose source is a stopword or too short. With no
// stopwords and a zero MinCharLen the input is returned unchanged.
func FilterPairs(pairs []Pair, opts FilterOptions) []Pair {
	if len(opts.Stopwords) == 0 && opts.MinCharLen == 0 {
		return pairs
	}

	out := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if _, stop := opts.Stopwords[p.Source]; stop {
			continue
		}
		if utf8.RuneCountInString(p.Source) <= opts.MinCharLen {
			continue
		}
		out = append(out, p)
	}
	return out
}
