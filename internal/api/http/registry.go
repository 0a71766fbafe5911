package http

import (
	"sync"

	"github.com/innerlens/innerlens/internal/session"
)

// LiveSession pairs a session with the mutex serializing the HTTP
// requests that touch it. The engine itself is single-writer; the
// registry is where concurrent tabs or devices meet.
//
// Pending holds the terminal outcome while its persistence is still
// owed: it is set when the last page completes and cleared only once
// the result is stored, so a failed save can be retried by advancing
// again instead of stranding the completed run.
type LiveSession struct {
	mu      sync.Mutex
	S       *session.Session
	Pending *session.Outcome
}

// Lock serializes access to the underlying session.
func (l *LiveSession) Lock() { l.mu.Lock() }

// Unlock releases the session.
func (l *LiveSession) Unlock() { l.mu.Unlock() }

// Registry tracks live sessions. Sessions are keyed both by session id
// and by respondent id: a respondent has at most one active session,
// so a second start from another tab or device joins the live session
// instead of forking a parallel one.
type Registry struct {
	mu           sync.Mutex
	byID         map[string]*LiveSession
	byRespondent map[string]*LiveSession
}

// NewRegistry returns an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:         make(map[string]*LiveSession),
		byRespondent: make(map[string]*LiveSession),
	}
}

// Start returns the respondent's live session, creating one if none
// exists. The second return reports whether a new session was created.
func (r *Registry) Start(respondentID string) (*LiveSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ls, ok := r.byRespondent[respondentID]; ok {
		return ls, false
	}
	ls := &LiveSession{S: session.New(respondentID)}
	r.byID[ls.S.ID] = ls
	r.byRespondent[respondentID] = ls
	return ls, true
}

// Get returns a live session by id.
func (r *Registry) Get(sessionID string) (*LiveSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ls, ok := r.byID[sessionID]
	return ls, ok
}

// Remove discards a session, releasing the respondent for a future
// start. Called once the terminal result has been persisted.
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ls, ok := r.byID[sessionID]; ok {
		delete(r.byRespondent, ls.S.RespondentID)
		delete(r.byID, sessionID)
	}
}
