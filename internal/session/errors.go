package session

import "fmt"

// ErrUnknownItem reports a submitted item id that belongs to neither
// item bank.
type ErrUnknownItem struct {
	ItemID string
}

func (e *ErrUnknownItem) Error() string {
	return fmt.Sprintf("item %q is not in the item bank", e.ItemID)
}

// ErrNotReady reports an advance attempt before the current page was
// fully answered.
type ErrNotReady struct {
	PageIndex int
}

func (e *ErrNotReady) Error() string {
	return fmt.Sprintf("page %d is not fully answered", e.PageIndex+1)
}

// ErrCompleted reports an operation on a session that already emitted
// its result.
type ErrCompleted struct {
	SessionID string
}

func (e *ErrCompleted) Error() string {
	return fmt.Sprintf("session %s is already completed", e.SessionID)
}
