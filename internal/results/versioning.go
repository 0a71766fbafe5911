// Package results implements the result-versioning chain and the
// retake cooldown policy. Everything here is pure computation over
// prior-result metadata supplied by the persistence layer; no I/O.
package results

import (
	"fmt"
	"time"
)

// ErrInvalidPriorResult reports malformed prior-result metadata. A
// prior record that exists but is missing its completion time or chain
// head indicates store corruption, not a first-time respondent, so the
// policy refuses to guess.
type ErrInvalidPriorResult struct {
	Reason string
}

func (e *ErrInvalidPriorResult) Error() string {
	return fmt.Sprintf("invalid prior result: %s", e.Reason)
}

// PriorMeta is what the persistence layer knows about a respondent's
// history before a new completion is chained in.
type PriorMeta struct {
	// EarliestResultID is the id of the respondent's first-ever result.
	EarliestResultID string
	// LatestCompletedAt is when the most recent result completed.
	LatestCompletedAt time.Time
	// TotalAssessments counts completions so far.
	TotalAssessments int
	// RetakeCount counts completions beyond the first.
	RetakeCount int
}

// Versioning is the chain metadata assigned to a freshly completed
// result, plus the respondent counters after this completion.
type Versioning struct {
	Version          int
	OriginalResultID string     // empty for a first result
	RetakenAt        *time.Time // nil for a first result
	TotalAssessments int
	RetakeCount      int
}

// Chain computes the versioning fields for a new completion at now.
// A nil prior means this is the respondent's first result.
func Chain(prior *PriorMeta, now time.Time) (Versioning, error) {
	if prior == nil {
		return Versioning{
			Version:          1,
			TotalAssessments: 1,
		}, nil
	}

	if prior.LatestCompletedAt.IsZero() {
		return Versioning{}, &ErrInvalidPriorResult{Reason: "missing completedAt"}
	}
	if prior.EarliestResultID == "" {
		return Versioning{}, &ErrInvalidPriorResult{Reason: "missing earliest result id"}
	}
	if prior.TotalAssessments < 1 {
		return Versioning{}, &ErrInvalidPriorResult{Reason: fmt.Sprintf("totalAssessments %d < 1", prior.TotalAssessments)}
	}

	retakenAt := now
	return Versioning{
		Version:          prior.TotalAssessments + 1,
		OriginalResultID: prior.EarliestResultID,
		RetakenAt:        &retakenAt,
		TotalAssessments: prior.TotalAssessments + 1,
		RetakeCount:      prior.RetakeCount + 1,
	}, nil
}
