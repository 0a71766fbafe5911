package paging

import (
	"testing"

	"github.com/innerlens/innerlens/internal/itembank"
)

func TestTotalPagesIsTwelve(t *testing.T) {
	if TotalPages != 12 {
		t.Fatalf("TotalPages = %d, want 12", TotalPages)
	}
	// Both families must exhaust on the same page count.
	if itembank.StateItemCount/StatePerPage != TotalPages {
		t.Fatalf("state bank exhausts in %d pages, want %d", itembank.StateItemCount/StatePerPage, TotalPages)
	}
}

func TestEveryPageIsFull(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < TotalPages; i++ {
		p := PageFor(i)
		if len(p.TraitItems) != TraitPerPage {
			t.Errorf("page %d: %d trait items, want %d", i, len(p.TraitItems), TraitPerPage)
		}
		if len(p.StateItems) != StatePerPage {
			t.Errorf("page %d: %d state items, want %d", i, len(p.StateItems), StatePerPage)
		}
		for _, it := range append(p.TraitItems, p.StateItems...) {
			if seen[it.ID] {
				t.Errorf("item %q appears on more than one page", it.ID)
			}
			seen[it.ID] = true
		}
	}
	if len(seen) != itembank.TraitItemCount+itembank.StateItemCount {
		t.Errorf("pagination covered %d items, want %d", len(seen), itembank.TraitItemCount+itembank.StateItemCount)
	}
}

func TestOutOfRangePageIsEmpty(t *testing.T) {
	for _, idx := range []int{-1, TotalPages, TotalPages + 5} {
		p := PageFor(idx)
		if len(p.TraitItems) != 0 || len(p.StateItems) != 0 {
			t.Errorf("PageFor(%d) returned items, want empty slices", idx)
		}
	}
}

func TestPagesAreContiguousSlices(t *testing.T) {
	traits := itembank.TraitItems()
	p := PageFor(1)
	for i, it := range p.TraitItems {
		if it.ID != traits[TraitPerPage+i].ID {
			t.Errorf("page 1 trait item %d = %q, want %q", i, it.ID, traits[TraitPerPage+i].ID)
		}
	}
}
