package store

import (
	"context"
	"errors"
	"time"

	"github.com/innerlens/innerlens/internal/results"
	"github.com/innerlens/innerlens/internal/session"
)

// RetryConfig controls read retries against the backing store.
type RetryConfig struct {
	// MaxRetries is the number of retries after the initial call, so a
	// persistently failing read is attempted 1 + MaxRetries times.
	MaxRetries int
	// BaseWait is the unit delay; retry n waits n * BaseWait before
	// running (1x, 2x, 3x ...).
	BaseWait time.Duration
}

// DefaultRetryConfig matches the collaborator contract: up to three
// retries with a linearly increasing delay.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{MaxRetries: 3, BaseWait: 250 * time.Millisecond}
}

// RetryRepo is a decorator that retries transient read failures.
// Writes are not retried: SaveResult is transactional and the caller
// decides whether to resubmit.
type RetryRepo struct {
	inner  ResultRepo
	config RetryConfig
}

// WithRetry wraps a ResultRepo with read retry logic.
func WithRetry(repo ResultRepo, cfg RetryConfig) *RetryRepo {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	return &RetryRepo{inner: repo, config: cfg}
}

func (r *RetryRepo) LatestResult(ctx context.Context, respondentID string) (*StoredResult, error) {
	var res *StoredResult
	err := r.retry(ctx, func() error {
		var err error
		res, err = r.inner.LatestResult(ctx, respondentID)
		return err
	})
	return res, err
}

func (r *RetryRepo) PriorMeta(ctx context.Context, respondentID string) (*results.PriorMeta, error) {
	var meta *results.PriorMeta
	err := r.retry(ctx, func() error {
		var err error
		meta, err = r.inner.PriorMeta(ctx, respondentID)
		return err
	})
	return meta, err
}

func (r *RetryRepo) ListResults(ctx context.Context, respondentID string) ([]StoredResult, error) {
	var list []StoredResult
	err := r.retry(ctx, func() error {
		var err error
		list, err = r.inner.ListResults(ctx, respondentID)
		return err
	})
	return list, err
}

func (r *RetryRepo) SaveResult(ctx context.Context, respondentID string, out *session.Outcome) (*StoredResult, error) {
	return r.inner.SaveResult(ctx, respondentID, out)
}

// retry runs fn once plus up to MaxRetries retries, waiting
// retry * BaseWait before each retry. Context errors are never
// retried.
func (r *RetryRepo) retry(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if attempt > 0 {
			wait := time.Duration(attempt) * r.config.BaseWait
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
	}
	return lastErr
}
