package lexicon

import (
	"slices"

	"codeberg.org/snonux/panlexicon/internal/panlex"
)

// TopK keeps at most k translations per expression, ranked by descending
// translation quality.
//
// Whole quality tiers are taken from the best down until k candidates are
// collected. If the last tier overshoots, its surplus is cut in the order
// PanLex returned it; candidates within a tier are not re-ranked.
func TopK(tr panlex.Translations, k int) map[panlex.ExprID][]string {
	out := make(map[panlex.ExprID][]string, len(tr))

	for id, byQuality := range tr {
		scores := make([]int, 0, len(byQuality))
		for score := range byQuality {
			scores = append(scores, score)
		}
		slices.Sort(scores)

		var picked []string
		for len(scores) > 0 && len(picked) < k {
			best := scores[len(scores)-1]
			scores = scores[:len(scores)-1]
			picked = append(picked, byQuality[best]...)
		}
		if len(picked) > k {
			picked = picked[:k]
		}
		out[id] = picked
	}

	return out
}
