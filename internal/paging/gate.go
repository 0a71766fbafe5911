package paging

import (
	"github.com/innerlens/innerlens/internal/answers"
	"github.com/innerlens/innerlens/internal/itembank"
)

// IsFamilyComplete reports whether every given item has an answer.
func IsFamilyComplete(items []itembank.Item, st *answers.Store) bool {
	for _, it := range items {
		if !st.Has(it.ID) {
			return false
		}
	}
	return true
}

// IsPageComplete reports whether every item on the page is answered.
// Trait and state items are interleaved on each page, and the
// respondent must finish both families before advancing, so the page
// only counts as complete when both are fully answered.
func IsPageComplete(pageIndex int, trait, state *answers.Store) bool {
	p := PageFor(pageIndex)
	return IsFamilyComplete(p.TraitItems, trait) && IsFamilyComplete(p.StateItems, state)
}
