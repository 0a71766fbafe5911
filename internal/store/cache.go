package store

import (
	"context"
	"sync"

	"github.com/innerlens/innerlens/internal/results"
	"github.com/innerlens/innerlens/internal/session"
)

// CacheRepo is a decorator that caches successful reads per
// respondent, so a session does not hit the store repeatedly for the
// same history. A respondent's entries are evicted when a new result
// is saved for them.
type CacheRepo struct {
	inner ResultRepo

	mu     sync.Mutex
	latest map[string]*StoredResult
	meta   map[string]*results.PriorMeta
}

// WithCache wraps a ResultRepo with a per-respondent read cache.
func WithCache(repo ResultRepo) *CacheRepo {
	return &CacheRepo{
		inner:  repo,
		latest: make(map[string]*StoredResult),
		meta:   make(map[string]*results.PriorMeta),
	}
}

func (c *CacheRepo) LatestResult(ctx context.Context, respondentID string) (*StoredResult, error) {
	c.mu.Lock()
	cached, ok := c.latest[respondentID]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	res, err := c.inner.LatestResult(ctx, respondentID)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.latest[respondentID] = res
	c.mu.Unlock()
	return res, nil
}

func (c *CacheRepo) PriorMeta(ctx context.Context, respondentID string) (*results.PriorMeta, error) {
	c.mu.Lock()
	cached, ok := c.meta[respondentID]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	meta, err := c.inner.PriorMeta(ctx, respondentID)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.meta[respondentID] = meta
	c.mu.Unlock()
	return meta, nil
}

// ListResults is not cached: history listings are rare and must be
// fresh for dashboards.
func (c *CacheRepo) ListResults(ctx context.Context, respondentID string) ([]StoredResult, error) {
	return c.inner.ListResults(ctx, respondentID)
}

// SaveResult writes through and evicts the respondent's cached reads.
func (c *CacheRepo) SaveResult(ctx context.Context, respondentID string, out *session.Outcome) (*StoredResult, error) {
	stored, err := c.inner.SaveResult(ctx, respondentID, out)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	delete(c.latest, respondentID)
	delete(c.meta, respondentID)
	c.mu.Unlock()
	return stored, nil
}
