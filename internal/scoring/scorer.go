// Package scoring turns a completed answer set into per-group raw and
// normalized scores. Scoring is pure and deterministic: the same
// answers always produce the same scores.
package scoring

import (
	"github.com/innerlens/innerlens/internal/answers"
	"github.com/innerlens/innerlens/internal/itembank"
)

// Score is one group's result. Raw is the sum of adjusted values;
// Normalized rescales Raw to [0,100] against the group's theoretical
// maximum of 7 per item.
type Score struct {
	Group      string  `json:"group"`
	Raw        int     `json:"raw"`
	Normalized float64 `json:"normalized"`
}

// ScoreGroup scores one group's items against the answer store.
// Reversed items contribute 8 - value; unanswered items contribute 0.
// The completion gate should prevent unanswered items from reaching
// here, but scoring degrades to partial sums rather than failing.
func ScoreGroup(group string, items []itembank.Item, st *answers.Store) Score {
	raw := 0
	for _, it := range items {
		v, ok := st.Get(it.ID)
		if !ok {
			continue
		}
		if it.Reversed {
			v = answers.MaxValue + answers.MinValue - v
		}
		raw += v
	}

	s := Score{Group: group, Raw: raw}
	if len(items) == 0 {
		return s
	}
	max := float64(len(items) * answers.MaxValue)
	s.Normalized = clamp(float64(raw)/max*100, 0, 100)
	return s
}

// ScoreAll scores every group in bank order, always returning one
// score per group regardless of how many items were answered.
func ScoreAll(items []itembank.Item, groups []string, st *answers.Store) []Score {
	byGroup := make(map[string][]itembank.Item, len(groups))
	for _, it := range items {
		byGroup[it.Group] = append(byGroup[it.Group], it)
	}

	out := make([]Score, 0, len(groups))
	for _, g := range groups {
		out = append(out, ScoreGroup(g, byGroup[g], st))
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
