// Package session drives a respondent's progression through the
// assessment: it routes answers to the owning item family, gates page
// advancement on completion, and emits the scored outcome when the
// last page is done. A session is owned by one respondent flow and is
// not shared across goroutines.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/innerlens/innerlens/internal/answers"
	"github.com/innerlens/innerlens/internal/itembank"
	"github.com/innerlens/innerlens/internal/paging"
	"github.com/innerlens/innerlens/internal/scoring"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseInProgress Phase = iota
	PhaseCompleted
)

// Session tracks one in-flight assessment run. PageIndex is monotonic;
// there is no back transition.
type Session struct {
	ID           string
	RespondentID string
	PageIndex    int
	Phase        Phase
	StartedAt    time.Time

	trait *answers.Store
	state *answers.Store
}

// Outcome is the terminal scoring payload emitted when the last page
// completes. The persistence collaborator owns everything beyond this
// shape (ids, versioning, storage).
type Outcome struct {
	TraitScores []scoring.Score `json:"trait_scores"`
	StateScores []scoring.Score `json:"state_scores"`
	CompletedAt time.Time       `json:"completed_at"`
}

// PageView is the presentation payload for the current page.
type PageView struct {
	TraitItems []itembank.Item
	StateItems []itembank.Item
	PageNumber int // 1-based
	TotalPages int
}

// New starts a session at the first page.
func New(respondentID string) *Session {
	return &Session{
		ID:           uuid.New().String(),
		RespondentID: respondentID,
		StartedAt:    time.Now(),
		trait:        answers.NewStore(),
		state:        answers.NewStore(),
	}
}

// SubmitAnswer records value for itemID in the owning family's store.
// It never moves the page index. Returns *ErrUnknownItem when the id
// is in neither bank, *answers.ErrInvalidValue when value is outside
// [1,7], and *ErrCompleted once the session has finished.
func (s *Session) SubmitAnswer(itemID string, value int) error {
	if s.Phase == PhaseCompleted {
		return &ErrCompleted{SessionID: s.ID}
	}
	_, family, ok := itembank.Lookup(itemID)
	if !ok {
		return &ErrUnknownItem{ItemID: itemID}
	}
	if family == itembank.FamilyTrait {
		return s.trait.Upsert(itemID, value)
	}
	return s.state.Upsert(itemID, value)
}

// CanAdvance reports whether the current page is fully answered in
// both families.
func (s *Session) CanAdvance() bool {
	if s.Phase == PhaseCompleted {
		return false
	}
	return paging.IsPageComplete(s.PageIndex, s.trait, s.state)
}

// Advance moves to the next page, or scores the assessment when the
// last page completes. If the gate is not satisfied it returns
// *ErrNotReady and leaves the session untouched; it never skips or
// partially advances. The Outcome is non-nil only on completion.
func (s *Session) Advance() (*Outcome, error) {
	if s.Phase == PhaseCompleted {
		return nil, &ErrCompleted{SessionID: s.ID}
	}
	if !paging.IsPageComplete(s.PageIndex, s.trait, s.state) {
		return nil, &ErrNotReady{PageIndex: s.PageIndex}
	}

	if s.PageIndex < paging.TotalPages-1 {
		s.PageIndex++
		return nil, nil
	}

	s.Phase = PhaseCompleted
	return &Outcome{
		TraitScores: scoring.ScoreAll(itembank.TraitItems(), itembank.TraitGroups(), s.trait),
		StateScores: scoring.ScoreAll(itembank.StateItems(), itembank.StateGroups(), s.state),
		CompletedAt: time.Now().UTC(),
	}, nil
}

// CurrentPage returns the items to present for the current page.
func (s *Session) CurrentPage() PageView {
	p := paging.PageFor(s.PageIndex)
	return PageView{
		TraitItems: p.TraitItems,
		StateItems: p.StateItems,
		PageNumber: s.PageIndex + 1,
		TotalPages: paging.TotalPages,
	}
}

// QuestionNumber returns the global 1-based number of an item as it
// is presented: trait items come before state items on each page, so
// page p carries trait questions p*15+1..p*15+12 followed by state
// questions p*15+13..p*15+15.
func (s *Session) QuestionNumber(itemID string) (int, error) {
	pos, family, ok := itembank.Position(itemID)
	if !ok {
		return 0, &ErrUnknownItem{ItemID: itemID}
	}
	if family == itembank.FamilyTrait {
		page, idx := pos/paging.TraitPerPage, pos%paging.TraitPerPage
		return page*paging.ItemsPerPage + idx + 1, nil
	}
	page, idx := pos/paging.StatePerPage, pos%paging.StatePerPage
	return page*paging.ItemsPerPage + paging.TraitPerPage + idx + 1, nil
}

// Answer returns the recorded response for an item, if any.
func (s *Session) Answer(itemID string) (int, bool) {
	_, family, ok := itembank.Lookup(itemID)
	if !ok {
		return 0, false
	}
	if family == itembank.FamilyTrait {
		return s.trait.Get(itemID)
	}
	return s.state.Get(itemID)
}

// AnsweredCount returns how many items have been answered in each
// family, for progress reporting.
func (s *Session) AnsweredCount() (trait, state int) {
	return s.trait.Len(), s.state.Len()
}
