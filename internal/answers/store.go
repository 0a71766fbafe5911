// Package answers holds a respondent's Likert responses for one item
// family during an assessment session.
package answers

import "fmt"

// Likert response bounds.
const (
	MinValue = 1
	MaxValue = 7
)

// ErrInvalidValue reports a response outside the Likert range.
type ErrInvalidValue struct {
	ItemID string
	Value  int
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("answer %d for item %q outside range [%d,%d]", e.Value, e.ItemID, MinValue, MaxValue)
}

// Answer is a single recorded response.
type Answer struct {
	ItemID string `json:"item_id"`
	Value  int    `json:"value"`
}

// Store collects answers keyed by item id. Re-answering an item
// overwrites the previous value; an item never has two answers.
// A Store is owned by a single session and is not safe for concurrent use.
type Store struct {
	values map[string]int
	order  []string // insertion order, for stable All()
}

// NewStore returns an empty answer store.
func NewStore() *Store {
	return &Store{values: make(map[string]int)}
}

// Upsert records value for itemID, inserting or overwriting.
// Returns *ErrInvalidValue if value is outside [1,7].
func (s *Store) Upsert(itemID string, value int) error {
	if value < MinValue || value > MaxValue {
		return &ErrInvalidValue{ItemID: itemID, Value: value}
	}
	if _, exists := s.values[itemID]; !exists {
		s.order = append(s.order, itemID)
	}
	s.values[itemID] = value
	return nil
}

// Get returns the recorded value for itemID.
func (s *Store) Get(itemID string) (int, bool) {
	v, ok := s.values[itemID]
	return v, ok
}

// Has reports whether itemID has been answered.
func (s *Store) Has(itemID string) bool {
	_, ok := s.values[itemID]
	return ok
}

// Len returns the number of answered items.
func (s *Store) Len() int {
	return len(s.values)
}

// All returns every answer in first-answered order.
func (s *Store) All() []Answer {
	out := make([]Answer, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, Answer{ItemID: id, Value: s.values[id]})
	}
	return out
}
