package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/freeeve/grid-getters/internal/model"
	"github.com/freeeve/grid-getters/internal/session"
	"github.com/freeeve/grid-getters/pkg/hexwar"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Error encoding response")
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

// decodeJSON reads and decodes JSON from a request body.
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// errorResponse maps a session or engine error to a status and body.
func errorResponse(err error) (int, model.ErrorResponse) {
	var rej *hexwar.RejectionError
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound, model.ErrorResponse{Error: "game not found"}
	case errors.As(err, &rej):
		return http.StatusUnprocessableEntity, model.ErrorResponse{Error: "command rejected", Reason: rej.Err.Error()}
	case errors.Is(err, session.ErrInvariant):
		return http.StatusInternalServerError, model.ErrorResponse{Error: "game engine error"}
	default:
		return http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()}
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	status, body := errorResponse(err)
	writeJSON(w, status, body)
}
