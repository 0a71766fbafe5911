// Package paging slices the item banks into the fixed page layout the
// assessment presents: 12 trait items followed by 3 state items per
// page, 12 pages in total.
package paging

import "github.com/innerlens/innerlens/internal/itembank"

// Page layout. TotalPages is a consequence of the bank sizes
// (144/12 and 36/3 both equal 12), not a tunable.
const (
	TraitPerPage = 12
	StatePerPage = 3
	ItemsPerPage = TraitPerPage + StatePerPage
	TotalPages   = itembank.TraitItemCount / TraitPerPage
)

// Page is the set of items presented together on one page.
type Page struct {
	TraitItems []itembank.Item
	StateItems []itembank.Item
}

// PageFor returns the items for pageIndex. An out-of-range index
// yields empty slices; callers must not advance past TotalPages-1.
func PageFor(pageIndex int) Page {
	return Page{
		TraitItems: slicePage(itembank.TraitItems(), pageIndex, TraitPerPage),
		StateItems: slicePage(itembank.StateItems(), pageIndex, StatePerPage),
	}
}

func slicePage(items []itembank.Item, pageIndex, perPage int) []itembank.Item {
	start := pageIndex * perPage
	if pageIndex < 0 || start >= len(items) {
		return nil
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
