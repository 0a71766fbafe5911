// Package itembank holds the static Likert item bank for the
// assessment: 144 trait items (12 groups of 12) and 36 emotional-state
// items (12 ordered levels of 3). The bank is loaded and verified once
// at process start; a bank that fails verification is a build defect,
// so loading panics rather than returning an error.
package itembank

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/items.json
var bankJSON []byte

// bank holds the parsed item sets with precomputed indices.
type bank struct {
	traitGroups []string
	stateGroups []string
	traitItems  []Item
	stateItems  []Item
	byID        map[string]indexed
}

type indexed struct {
	item   Item
	family Family
	pos    int // index within the family's bank order
}

// b is the package-level bank singleton.
var b *bank

func init() {
	loaded, err := loadBank(bankJSON)
	if err != nil {
		panic(fmt.Sprintf("itembank: %v", err))
	}
	b = loaded
}

// bankFile mirrors the embedded JSON layout.
type bankFile struct {
	TraitGroups []string `json:"trait_groups"`
	StateGroups []string `json:"state_groups"`
	TraitItems  []Item   `json:"trait_items"`
	StateItems  []Item   `json:"state_items"`
}

// loadBank parses raw bank JSON, checks it against the bank schema and
// the structural invariants, and builds the id index.
func loadBank(raw []byte) (*bank, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var f bankFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}

	if err := validateBank(&f); err != nil {
		return nil, err
	}

	bk := &bank{
		traitGroups: f.TraitGroups,
		stateGroups: f.StateGroups,
		traitItems:  f.TraitItems,
		stateItems:  f.StateItems,
		byID:        make(map[string]indexed, len(f.TraitItems)+len(f.StateItems)),
	}
	for i, it := range bk.traitItems {
		bk.byID[it.ID] = indexed{item: it, family: FamilyTrait, pos: i}
	}
	for i, it := range bk.stateItems {
		bk.byID[it.ID] = indexed{item: it, family: FamilyState, pos: i}
	}
	return bk, nil
}

// validateSchema checks raw JSON against bankSchema.
func validateSchema(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid bank JSON: %w", err)
	}

	defBytes, err := json.Marshal(bankSchema)
	if err != nil {
		return fmt.Errorf("marshal bank schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return fmt.Errorf("parse bank schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://itembank.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return fmt.Errorf("add bank schema: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("bank schema validation failed: %w", err)
	}
	return nil
}

// TraitItems returns all 144 trait items in bank order.
func TraitItems() []Item {
	out := make([]Item, len(b.traitItems))
	copy(out, b.traitItems)
	return out
}

// StateItems returns all 36 emotional-state items in bank order.
func StateItems() []Item {
	out := make([]Item, len(b.stateItems))
	copy(out, b.stateItems)
	return out
}

// TraitGroups returns the 12 trait group ids in bank order.
func TraitGroups() []string {
	out := make([]string, len(b.traitGroups))
	copy(out, b.traitGroups)
	return out
}

// StateGroups returns the 12 state group ids ordered from the lowest
// emotional-state level to the highest.
func StateGroups() []string {
	out := make([]string, len(b.stateGroups))
	copy(out, b.stateGroups)
	return out
}

// StateLevel returns the 1-based level of a state group, or 0 if the
// group is not part of the state bank.
func StateLevel(group string) int {
	for i, g := range b.stateGroups {
		if g == group {
			return i + 1
		}
	}
	return 0
}

// Lookup resolves an item id to its item and owning family in O(1).
func Lookup(itemID string) (Item, Family, bool) {
	ix, ok := b.byID[itemID]
	if !ok {
		return Item{}, "", false
	}
	return ix.item, ix.family, true
}

// Position returns an item's index within its family's bank order.
func Position(itemID string) (int, Family, bool) {
	ix, ok := b.byID[itemID]
	if !ok {
		return 0, "", false
	}
	return ix.pos, ix.family, true
}

// GroupItems returns the items of one group, in bank order, from the
// given family's bank.
func GroupItems(family Family, group string) []Item {
	var src []Item
	if family == FamilyTrait {
		src = b.traitItems
	} else {
		src = b.stateItems
	}
	var out []Item
	for _, it := range src {
		if it.Group == group {
			out = append(out, it)
		}
	}
	return out
}
