package itembank

import (
	"fmt"
	"strings"
)

// validateBank performs the structural checks on a parsed bank file.
// Returns a combined error describing all problems found, or nil.
func validateBank(f *bankFile) error {
	var errs []string

	if len(f.TraitItems) != TraitItemCount {
		errs = append(errs, fmt.Sprintf("trait bank has %d items, want %d", len(f.TraitItems), TraitItemCount))
	}
	if len(f.StateItems) != StateItemCount {
		errs = append(errs, fmt.Sprintf("state bank has %d items, want %d", len(f.StateItems), StateItemCount))
	}

	// Item ids must be unique across both families.
	idSet := make(map[string]bool, len(f.TraitItems)+len(f.StateItems))
	for _, it := range append(append([]Item{}, f.TraitItems...), f.StateItems...) {
		if idSet[it.ID] {
			errs = append(errs, fmt.Sprintf("duplicate item id: %q", it.ID))
		}
		idSet[it.ID] = true
	}

	errs = append(errs, checkGroups("trait", f.TraitGroups, f.TraitItems, TraitGroupSize)...)
	errs = append(errs, checkGroups("state", f.StateGroups, f.StateItems, StateGroupSize)...)

	if len(errs) > 0 {
		return fmt.Errorf("bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// checkGroups verifies every declared group holds exactly want items
// and no item references an undeclared group.
func checkGroups(family string, groups []string, items []Item, want int) []string {
	var errs []string

	declared := make(map[string]bool, len(groups))
	seen := make(map[string]bool, len(groups))
	for _, g := range groups {
		if seen[g] {
			errs = append(errs, fmt.Sprintf("duplicate %s group: %q", family, g))
		}
		seen[g] = true
		declared[g] = true
	}

	counts := make(map[string]int, len(groups))
	for _, it := range items {
		if !declared[it.Group] {
			errs = append(errs, fmt.Sprintf("%s item %q references undeclared group %q", family, it.ID, it.Group))
			continue
		}
		counts[it.Group]++
	}
	for _, g := range groups {
		if counts[g] != want {
			errs = append(errs, fmt.Sprintf("%s group %q has %d items, want %d", family, g, counts[g], want))
		}
	}
	return errs
}
