package lexicon

import (
	"fmt"

	"codeberg.org/snonux/panlexicon/internal/panlex"
)

// ValidationError reports a lexicon entry that does not carry exactly one
// target where a single-target dictionary is required.
type ValidationError struct {
	Source string
	Count  int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("lexicon: %q has %d translations, want exactly 1", e.Source, e.Count)
}

// UnresolvedExprError reports translations for an expression id that was
// never resolved from a source word.
type UnresolvedExprError struct {
	ID panlex.ExprID
}

func (e *UnresolvedExprError) Error() string {
	return fmt.Sprintf("lexicon: expression %d has translations but no source word", e.ID)
}
