package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type createUserRequest struct {
	Username string  `json:"username"`
	Email    *string `json:"email"`
}

func (s *HTTPServer) createUser(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	if detail := validateBody(createUserSchema, body); detail != "" {
		respondError(w, detail, http.StatusUnprocessableEntity)
		return
	}

	var req createUserRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondError(w, "invalid JSON body", http.StatusUnprocessableEntity)
		return
	}

	user, err := s.users.Create(r.Context(), req.Username, req.Email)
	if err != nil {
		s.respondServiceError(w, r, err, "User not found")
		return
	}

	respondJSON(w, user, http.StatusCreated)
}

func (s *HTTPServer) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, "user id must be an integer", http.StatusUnprocessableEntity)
		return
	}

	user, err := s.users.Get(r.Context(), id)
	if err != nil {
		s.respondServiceError(w, r, err, "User not found")
		return
	}

	respondJSON(w, user, http.StatusOK)
}

func (s *HTTPServer) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.respondServiceError(w, r, err, "User not found")
		return
	}

	respondJSON(w, users, http.StatusOK)
}
