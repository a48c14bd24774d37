package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nanosensei/backend/internal/common"
)

func respondJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, detail string, status int) {
	respondJSON(w, map[string]string{"detail": detail}, status)
}

// respondServiceError translates sentinel errors into the boundary's status
// codes; anything unmatched is an internal error with a generic body.
// notFoundDetail names the entity the 404 refers to.
func (s *HTTPServer) respondServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundDetail string) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		respondError(w, notFoundDetail, http.StatusNotFound)
	case errors.Is(err, common.ErrorAlreadyExists):
		respondError(w, "Username already exists", http.StatusBadRequest)
	case errors.Is(err, common.ErrorInvalidScore):
		respondError(w, "Score must be between 0 and 100", http.StatusBadRequest)
	default:
		s.logger.Error(r.Context(), "request failed", "error", err.Error())
		respondError(w, "Internal server error", http.StatusInternalServerError)
	}
}
