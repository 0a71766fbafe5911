package itembank

// Family identifies which item bank an item belongs to.
type Family string

const (
	FamilyTrait Family = "trait"
	FamilyState Family = "state"
)

// Expected bank dimensions. The assessment presents 12 pages of
// 12 trait + 3 state items, so both banks exhaust in exactly 12 pages.
const (
	GroupCount     = 12
	TraitGroupSize = 12
	StateGroupSize = 3
	TraitItemCount = GroupCount * TraitGroupSize
	StateItemCount = GroupCount * StateGroupSize
)

// Item is a single Likert statement in the bank. Reversed items are
// scored as 8 - response because agreement indicates the opposite of
// the group's trait.
type Item struct {
	ID       string `json:"id"`
	Group    string `json:"group"`
	Text     string `json:"text"`
	Reversed bool   `json:"reversed,omitempty"`
}
