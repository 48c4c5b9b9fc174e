package lexicon

// Entry is one source word with its target translations.
type Entry struct {
	Source  string
	Targets []string
}

// Lexicon is an insertion-ordered mapping from source word to targets.
// The zero value is an empty lexicon.
type Lexicon struct {
	entries []Entry
	index   map[string]int
}

// Set stores targets for source. Setting an existing source replaces its
// targets and keeps its position.
func (l *Lexicon) Set(source string, targets []string) {
	if l.index == nil {
		l.index = make(map[string]int)
	}
	if i, ok := l.index[source]; ok {
		l.entries[i].Targets = targets
		return
	}
	l.index[source] = len(l.entries)
	l.entries = append(l.entries, Entry{Source: source, Targets: targets})
}

// Get returns the targets of source.
func (l *Lexicon) Get(source string) ([]string, bool) {
	i, ok := l.index[source]
	if !ok {
		return nil, false
	}
	return l.entries[i].Targets, true
}

// Entries returns the entries in insertion order.
func (l *Lexicon) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of source words.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Pair is a single source/target translation.
type Pair struct {
	Source string
	Target string
}
