package handler

import (
	"net/http"

	"github.com/freeeve/grid-getters/internal/logger"
	"github.com/freeeve/grid-getters/internal/model"
	"github.com/freeeve/grid-getters/internal/session"
)

// GameHandler serves the hot-seat game endpoints.
type GameHandler struct {
	sessions *session.Manager
}

// NewGameHandler creates a GameHandler.
func NewGameHandler(sessions *session.Manager) *GameHandler {
	return &GameHandler{sessions: sessions}
}

// CreateGame handles POST /api/v1/games
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	id, snap, err := h.sessions.Create(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, model.GameResponse{ID: id, State: snap})
}

// ListGames handles GET /api/v1/games
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.sessions.List(r.Context()))
}

// GetGame handles GET /api/v1/games/{id}
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	snap, err := h.sessions.Snapshot(r.Context(), gameID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.GameResponse{ID: gameID, State: snap})
}

// DeleteGame handles DELETE /api/v1/games/{id}
func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ApplyCommand handles POST /api/v1/games/{id}/commands
func (h *GameHandler) ApplyCommand(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	ctx := logger.WithSessionID(r.Context(), gameID)

	var req model.CommandRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := model.Validate(req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid command", Reason: err.Error()})
		return
	}

	res, err := h.sessions.Apply(ctx, gameID, req.Command())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
