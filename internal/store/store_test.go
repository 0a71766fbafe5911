package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/innerlens/innerlens/internal/scoring"
	"github.com/innerlens/innerlens/internal/session"
)

func openTestRepo(t *testing.T) *SQLRepo {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	db, err := Open(context.Background(), DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLRepo(db)
}

func testOutcome(completedAt time.Time) *session.Outcome {
	return &session.Outcome{
		TraitScores: []scoring.Score{{Group: "resilience", Raw: 84, Normalized: 100}},
		StateScores: []scoring.Score{{Group: "serenity", Raw: 21, Normalized: 100}},
		CompletedAt: completedAt,
	}
}

func TestSaveFirstResult(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	stored, err := repo.SaveResult(ctx, "resp-1", testOutcome(time.Now()))
	require.NoError(t, err)
	require.NotEmpty(t, stored.ID)
	require.Equal(t, 1, stored.Version)
	require.Empty(t, stored.OriginalResultID)
	require.Nil(t, stored.RetakenAt)

	latest, err := repo.LatestResult(ctx, "resp-1")
	require.NoError(t, err)
	require.Equal(t, stored.ID, latest.ID)
	require.Equal(t, stored.TraitScores, latest.TraitScores)
	require.Equal(t, stored.StateScores, latest.StateScores)
}

func TestVersioningChainAcrossSaves(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	first, err := repo.SaveResult(ctx, "resp-1", testOutcome(base))
	require.NoError(t, err)

	second, err := repo.SaveResult(ctx, "resp-1", testOutcome(base.Add(8*24*time.Hour)))
	require.NoError(t, err)
	require.Equal(t, 2, second.Version)
	require.Equal(t, first.ID, second.OriginalResultID)
	require.NotNil(t, second.RetakenAt)

	third, err := repo.SaveResult(ctx, "resp-1", testOutcome(base.Add(16*24*time.Hour)))
	require.NoError(t, err)
	require.Equal(t, 3, third.Version)
	require.Equal(t, first.ID, third.OriginalResultID, "chain head must stay the earliest result")

	meta, err := repo.PriorMeta(ctx, "resp-1")
	require.NoError(t, err)
	require.Equal(t, 3, meta.TotalAssessments)
	require.Equal(t, 2, meta.RetakeCount)
	require.Equal(t, first.ID, meta.EarliestResultID)
	require.Equal(t, third.CompletedAt, meta.LatestCompletedAt)
}

func TestCompletedAtKeepsSubSecondPrecision(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 4, 2, 8, 30, 15, 123456789, time.UTC)

	stored, err := repo.SaveResult(ctx, "resp-1", testOutcome(at))
	require.NoError(t, err)
	require.Equal(t, at, stored.CompletedAt)

	latest, err := repo.LatestResult(ctx, "resp-1")
	require.NoError(t, err)
	require.Equal(t, at, latest.CompletedAt)

	meta, err := repo.PriorMeta(ctx, "resp-1")
	require.NoError(t, err)
	require.Equal(t, at, meta.LatestCompletedAt)
}

func TestReadsForUnknownRespondent(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	latest, err := repo.LatestResult(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, latest)

	meta, err := repo.PriorMeta(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, meta)

	list, err := repo.ListResults(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestListResultsNewestFirst(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := repo.SaveResult(ctx, "resp-1", testOutcome(base.Add(time.Duration(i)*10*24*time.Hour)))
		require.NoError(t, err)
	}

	list, err := repo.ListResults(ctx, "resp-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, 3, list[0].Version)
	require.Equal(t, 1, list[2].Version)

	// Histories are per respondent.
	_, err = repo.SaveResult(ctx, "resp-2", testOutcome(base))
	require.NoError(t, err)
	list2, err := repo.ListResults(ctx, "resp-2")
	require.NoError(t, err)
	require.Len(t, list2, 1)
	require.Equal(t, 1, list2[0].Version)
}
