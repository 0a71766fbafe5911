// Package http exposes the assessment engine to the web frontend.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/innerlens/innerlens/internal/answers"
	"github.com/innerlens/innerlens/internal/itembank"
	"github.com/innerlens/innerlens/internal/results"
	"github.com/innerlens/innerlens/internal/session"
	"github.com/innerlens/innerlens/internal/store"
)

// Error codes surfaced to the frontend.
const (
	codeInvalidValue     = "invalid_value"
	codeUnknownItem      = "unknown_item"
	codeNotReady         = "not_ready"
	codeSessionCompleted = "session_completed"
	codeRetakeCooldown   = "retake_cooldown"
	codeUnknownSession   = "unknown_session"
	codeBadRequest       = "bad_request"
	codeStoreError       = "store_error"
	codeInternalError    = "internal_error"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorBody{Error: msg, Code: code})
}

type sessionBody struct {
	SessionID    string `json:"session_id"`
	RespondentID string `json:"respondent_id"`
	PageNumber   int    `json:"page_number"`
	TotalPages   int    `json:"total_pages"`
}

func sessionResponse(s *session.Session) sessionBody {
	pv := s.CurrentPage()
	return sessionBody{
		SessionID:    s.ID,
		RespondentID: s.RespondentID,
		PageNumber:   pv.PageNumber,
		TotalPages:   pv.TotalPages,
	}
}

// StartSessionHandler starts (or rejoins) the respondent's assessment
// session. A respondent inside the retake cooldown is refused.
func StartSessionHandler(reg *Registry, repo store.ResultRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondentID := chi.URLParam(r, "respondentID")
		if respondentID == "" {
			writeError(w, http.StatusBadRequest, codeBadRequest, "respondentID required")
			return
		}

		latest, err := repo.LatestResult(r.Context(), respondentID)
		if err != nil {
			writeError(w, http.StatusBadGateway, codeStoreError, err.Error())
			return
		}
		var completedAt *time.Time
		if latest != nil {
			completedAt = &latest.CompletedAt
		}
		elig := results.RetakeEligibility(completedAt, time.Now())
		if !elig.CanRetake {
			writeJSON(w, http.StatusForbidden, struct {
				errorBody
				NextRetakeDate *time.Time `json:"next_retake_date"`
			}{
				errorBody:      errorBody{Error: "retake cooldown in effect", Code: codeRetakeCooldown},
				NextRetakeDate: elig.NextRetakeDate,
			})
			return
		}

		ls, created := reg.Start(respondentID)
		ls.Lock()
		body := sessionResponse(ls.S)
		ls.Unlock()

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeJSON(w, status, body)
	}
}

type pageItem struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Number int    `json:"number"`
	Value  *int   `json:"value,omitempty"` // previously recorded answer
}

type pageBody struct {
	PageNumber int        `json:"page_number"`
	TotalPages int        `json:"total_pages"`
	TraitItems []pageItem `json:"trait_items"`
	StateItems []pageItem `json:"state_items"`
	CanAdvance bool       `json:"can_advance"`
}

func pageResponse(s *session.Session) pageBody {
	pv := s.CurrentPage()
	body := pageBody{
		PageNumber: pv.PageNumber,
		TotalPages: pv.TotalPages,
		CanAdvance: s.CanAdvance(),
	}
	body.TraitItems = pageItems(s, pv.TraitItems)
	body.StateItems = pageItems(s, pv.StateItems)
	return body
}

func pageItems(s *session.Session, items []itembank.Item) []pageItem {
	out := make([]pageItem, 0, len(items))
	for _, it := range items {
		n, _ := s.QuestionNumber(it.ID)
		pi := pageItem{ID: it.ID, Text: it.Text, Number: n}
		if v, ok := s.Answer(it.ID); ok {
			pi.Value = &v
		}
		out = append(out, pi)
	}
	return out
}

// CurrentPageHandler returns the items of the session's current page.
func CurrentPageHandler(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ls, ok := reg.Get(chi.URLParam(r, "sessionID"))
		if !ok {
			writeError(w, http.StatusNotFound, codeUnknownSession, "no such session")
			return
		}
		ls.Lock()
		body := pageResponse(ls.S)
		ls.Unlock()
		writeJSON(w, http.StatusOK, body)
	}
}

// SubmitAnswerHandler records one Likert response.
func SubmitAnswerHandler(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ls, ok := reg.Get(chi.URLParam(r, "sessionID"))
		if !ok {
			writeError(w, http.StatusNotFound, codeUnknownSession, "no such session")
			return
		}

		var req struct {
			ItemID string `json:"item_id"`
			Value  int    `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "bad json")
			return
		}

		ls.Lock()
		err := ls.S.SubmitAnswer(req.ItemID, req.Value)
		ls.Unlock()

		var invalid *answers.ErrInvalidValue
		var unknown *session.ErrUnknownItem
		var done *session.ErrCompleted
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.As(err, &invalid):
			writeError(w, http.StatusUnprocessableEntity, codeInvalidValue, err.Error())
		case errors.As(err, &unknown):
			writeError(w, http.StatusUnprocessableEntity, codeUnknownItem, err.Error())
		case errors.As(err, &done):
			writeError(w, http.StatusConflict, codeSessionCompleted, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, codeInternalError, err.Error())
		}
	}
}

// AdvanceHandler moves the session to the next page. When the last
// page completes it persists the result, discards the session, and
// returns the stored result. A failed save leaves the outcome pending
// on the live session, so advancing again re-attempts persistence
// instead of losing the completed run.
func AdvanceHandler(reg *Registry, repo store.ResultRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "sessionID")
		ls, ok := reg.Get(sessionID)
		if !ok {
			writeError(w, http.StatusNotFound, codeUnknownSession, "no such session")
			return
		}

		ls.Lock()
		defer ls.Unlock()

		outcome := ls.Pending
		if outcome == nil {
			var err error
			outcome, err = ls.S.Advance()
			var notReady *session.ErrNotReady
			var done *session.ErrCompleted
			switch {
			case errors.As(err, &notReady):
				writeError(w, http.StatusConflict, codeNotReady, err.Error())
				return
			case errors.As(err, &done):
				writeError(w, http.StatusConflict, codeSessionCompleted, err.Error())
				return
			case err != nil:
				writeError(w, http.StatusInternalServerError, codeInternalError, err.Error())
				return
			}

			if outcome == nil {
				writeJSON(w, http.StatusOK, pageResponse(ls.S))
				return
			}
			ls.Pending = outcome
		}

		stored, err := repo.SaveResult(r.Context(), ls.S.RespondentID, outcome)
		if err != nil {
			writeError(w, http.StatusBadGateway, codeStoreError, err.Error())
			return
		}
		ls.Pending = nil
		reg.Remove(sessionID)
		writeJSON(w, http.StatusOK, struct {
			Completed bool                `json:"completed"`
			Result    *store.StoredResult `json:"result"`
		}{Completed: true, Result: stored})
	}
}

// ListResultsHandler returns the respondent's result history plus
// their current retake eligibility.
func ListResultsHandler(repo store.ResultRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondentID := chi.URLParam(r, "respondentID")
		list, err := repo.ListResults(r.Context(), respondentID)
		if err != nil {
			writeError(w, http.StatusBadGateway, codeStoreError, err.Error())
			return
		}

		var completedAt *time.Time
		if len(list) > 0 {
			completedAt = &list[0].CompletedAt
		}
		writeJSON(w, http.StatusOK, struct {
			Results     []store.StoredResult `json:"results"`
			Eligibility results.Eligibility  `json:"eligibility"`
		}{Results: list, Eligibility: results.RetakeEligibility(completedAt, time.Now())})
	}
}
