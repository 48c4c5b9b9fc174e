package batch

import (
	"strings"
	"unicode/utf8"
)

// symbols are single-character tokens PanLex rejects inside a txt query.
const symbols = "!\"#$%&()*+,-./:;<=>?@[\\]^_`{|}~\t\n"

// CleanSymbols drops tokens that consist of exactly one symbol character and
// tokens that are not valid UTF-8. Order of the remaining tokens is kept.
func CleanSymbols(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if isSymbol(w) || !utf8.ValidString(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func isSymbol(w string) bool {
	return len(w) == 1 && strings.Contains(symbols, w)
}
