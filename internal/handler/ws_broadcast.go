package handler

import "github.com/freeeve/grid-getters/internal/session"

// BroadcastGameEvent implements session.Broadcaster using the WebSocket hub.
// A deleted game also loses its subscribers once the event is queued.
func (h *Hub) BroadcastGameEvent(gameID string, eventType string, data any) {
	h.BroadcastToGame(gameID, WSEvent{
		Type:   eventType,
		GameID: gameID,
		Data:   data,
	})
	if eventType == session.EventGameDeleted {
		h.DropGame(gameID)
	}
}
