package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nanosensei/backend/internal/server/models"
)

type createSessionRequest struct {
	UserID    int64   `json:"user_id"`
	SkillType string  `json:"skill_type"`
	Score     int     `json:"score"`
	Feedback  string  `json:"feedback"`
	Metadata  *string `json:"metadata"`
}

func (s *HTTPServer) createSession(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	if detail := validateBody(createSessionSchema, body); detail != "" {
		respondError(w, detail, http.StatusUnprocessableEntity)
		return
	}

	var req createSessionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondError(w, "invalid JSON body", http.StatusUnprocessableEntity)
		return
	}

	session, err := s.sessions.Create(r.Context(), req.UserID, req.SkillType, req.Score, req.Feedback, req.Metadata)
	if err != nil {
		s.respondServiceError(w, r, err, "User not found")
		return
	}

	respondJSON(w, session, http.StatusCreated)
}

func (s *HTTPServer) getSession(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, "session id must be an integer", http.StatusUnprocessableEntity)
		return
	}

	session, err := s.sessions.Get(r.Context(), id)
	if err != nil {
		s.respondServiceError(w, r, err, "Session not found")
		return
	}

	respondJSON(w, session, http.StatusOK)
}

// listSessions applies the optional user_id and skill_type query filters.
// A parameter that is absent does not constrain the result.
func (s *HTTPServer) listSessions(w http.ResponseWriter, r *http.Request) {
	filter := models.SessionFilter{}
	q := r.URL.Query()

	if raw := q.Get("user_id"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, "user_id must be an integer", http.StatusUnprocessableEntity)
			return
		}
		filter.UserID = &userID
	}
	if q.Has("skill_type") {
		skillType := q.Get("skill_type")
		filter.SkillType = &skillType
	}

	sessions, err := s.sessions.List(r.Context(), filter)
	if err != nil {
		s.respondServiceError(w, r, err, "Session not found")
		return
	}

	respondJSON(w, sessions, http.StatusOK)
}

func (s *HTTPServer) getSessionSummary(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		respondError(w, "user_id query parameter is required", http.StatusUnprocessableEntity)
		return
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(w, "user_id must be an integer", http.StatusUnprocessableEntity)
		return
	}

	summary, err := s.sessions.Summary(r.Context(), userID)
	if err != nil {
		s.respondServiceError(w, r, err, "User not found")
		return
	}

	respondJSON(w, summary, http.StatusOK)
}
