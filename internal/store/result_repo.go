package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/innerlens/innerlens/internal/results"
	"github.com/innerlens/innerlens/internal/scoring"
	"github.com/innerlens/innerlens/internal/session"
)

// StoredResult is a persisted, versioned assessment result.
type StoredResult struct {
	ID               string          `json:"id"`
	RespondentID     string          `json:"respondent_id"`
	Version          int             `json:"version"`
	OriginalResultID string          `json:"original_result_id,omitempty"`
	TraitScores      []scoring.Score `json:"trait_scores"`
	StateScores      []scoring.Score `json:"state_scores"`
	CompletedAt      time.Time       `json:"completed_at"`
	RetakenAt        *time.Time      `json:"retaken_at,omitempty"`
}

// ResultRepo is the engine's contract with result persistence.
// Read methods return (nil, nil) when the respondent has no history.
type ResultRepo interface {
	LatestResult(ctx context.Context, respondentID string) (*StoredResult, error)
	PriorMeta(ctx context.Context, respondentID string) (*results.PriorMeta, error)
	ListResults(ctx context.Context, respondentID string) ([]StoredResult, error)
	SaveResult(ctx context.Context, respondentID string, out *session.Outcome) (*StoredResult, error)
}

// SQLRepo persists results in the results/respondents tables.
type SQLRepo struct {
	db *sql.DB
}

// NewSQLRepo returns a ResultRepo backed by db.
func NewSQLRepo(db *sql.DB) *SQLRepo {
	return &SQLRepo{db: db}
}

const resultColumns = `id, respondent_id, version, original_result_id,
	trait_scores_json, state_scores_json, completed_at, retaken_at`

// LatestResult returns the respondent's most recent result, or nil.
func (r *SQLRepo) LatestResult(ctx context.Context, respondentID string) (*StoredResult, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+resultColumns+`
		FROM results WHERE respondent_id = $1
		ORDER BY completed_at DESC, version DESC LIMIT 1`, respondentID)
	res, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// PriorMeta returns the versioning inputs for the respondent's next
// completion, or nil when no results exist yet.
func (r *SQLRepo) PriorMeta(ctx context.Context, respondentID string) (*results.PriorMeta, error) {
	return priorMeta(ctx, r.db, respondentID)
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func priorMeta(ctx context.Context, q querier, respondentID string) (*results.PriorMeta, error) {
	var meta results.PriorMeta
	var latest int64
	err := q.QueryRowContext(ctx, `SELECT r.first_result_id, r.total_assessments, r.retake_count,
			(SELECT MAX(completed_at) FROM results WHERE respondent_id = r.id)
		FROM respondents r WHERE r.id = $1`, respondentID).
		Scan(&meta.EarliestResultID, &meta.TotalAssessments, &meta.RetakeCount, &latest)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	meta.LatestCompletedAt = time.Unix(0, latest).UTC()
	return &meta, nil
}

// ListResults returns the respondent's full history, newest first.
func (r *SQLRepo) ListResults(ctx context.Context, respondentID string) ([]StoredResult, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+resultColumns+`
		FROM results WHERE respondent_id = $1
		ORDER BY completed_at DESC, version DESC`, respondentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StoredResult
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	return out, rows.Err()
}

// SaveResult chains the outcome onto the respondent's history and
// persists it. The prior-meta read, version assignment, result insert
// and counter upsert happen in one transaction.
func (r *SQLRepo) SaveResult(ctx context.Context, respondentID string, out *session.Outcome) (*StoredResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	prior, err := priorMeta(ctx, tx, respondentID)
	if err != nil {
		return nil, err
	}
	ver, err := results.Chain(prior, out.CompletedAt)
	if err != nil {
		return nil, err
	}

	stored := &StoredResult{
		ID:               uuid.New().String(),
		RespondentID:     respondentID,
		Version:          ver.Version,
		OriginalResultID: ver.OriginalResultID,
		TraitScores:      out.TraitScores,
		StateScores:      out.StateScores,
		CompletedAt:      out.CompletedAt.UTC(),
		RetakenAt:        ver.RetakenAt,
	}

	traitJSON, err := json.Marshal(stored.TraitScores)
	if err != nil {
		return nil, err
	}
	stateJSON, err := json.Marshal(stored.StateScores)
	if err != nil {
		return nil, err
	}
	var retakenAt *int64
	if stored.RetakenAt != nil {
		v := stored.RetakenAt.UnixNano()
		retakenAt = &v
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO results
		(id, respondent_id, version, original_result_id, trait_scores_json, state_scores_json, completed_at, retaken_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		stored.ID, respondentID, stored.Version, stored.OriginalResultID,
		string(traitJSON), string(stateJSON), stored.CompletedAt.UnixNano(), retakenAt)
	if err != nil {
		return nil, err
	}

	firstID := ver.OriginalResultID
	if firstID == "" {
		firstID = stored.ID
	}
	_, err = tx.ExecContext(ctx, `INSERT INTO respondents (id, first_result_id, total_assessments, retake_count)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET total_assessments = $3, retake_count = $4`,
		respondentID, firstID, ver.TotalAssessments, ver.RetakeCount)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return stored, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (*StoredResult, error) {
	var res StoredResult
	var traitJSON, stateJSON string
	var completed int64
	var retaken *int64
	if err := row.Scan(&res.ID, &res.RespondentID, &res.Version, &res.OriginalResultID,
		&traitJSON, &stateJSON, &completed, &retaken); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(traitJSON), &res.TraitScores); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(stateJSON), &res.StateScores); err != nil {
		return nil, err
	}
	res.CompletedAt = time.Unix(0, completed).UTC()
	if retaken != nil {
		t := time.Unix(0, *retaken).UTC()
		res.RetakenAt = &t
	}
	return &res, nil
}
