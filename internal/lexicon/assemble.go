package lexicon

import "codeberg.org/snonux/panlexicon/internal/panlex"

// Assemble joins filtered translations back to their source words. Entries
// follow the order in which expressions were resolved; expressions without
// translations are left out.
func Assemble(exprs *panlex.Expressions, filtered map[panlex.ExprID][]string) (*Lexicon, error) {
	for id := range filtered {
		if _, ok := exprs.Text(id); !ok {
			return nil, &UnresolvedExprError{ID: id}
		}
	}

	lex := &Lexicon{}
	for _, e := range exprs.List() {
		targets := filtered[e.ID]
		if len(targets) == 0 {
			continue
		}
		lex.Set(e.Text, targets)
	}

	return lex, nil
}
