package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/freeeve/grid-getters/internal/logger"
	"github.com/freeeve/grid-getters/internal/model"
	"github.com/freeeve/grid-getters/internal/session"
)

const (
	writeWait   = 10 * time.Second
	pongWait    = 60 * time.Second
	pingPeriod  = 54 * time.Second // Must be less than pongWait
	maxMsgSize  = 4096
	sendBufSize = 256
)

// EventError is sent to a single connection whose message could not be handled.
const EventError = "error"

// WSHandler handles WebSocket connections.
type WSHandler struct {
	hub      *Hub
	sessions *session.Manager
	upgrader websocket.Upgrader
}

// NewWSHandler creates a WSHandler. allowedOrigins of ["*"] accepts any origin.
func NewWSHandler(hub *Hub, sessions *session.Manager, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		hub:      hub,
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

// ServeWS handles GET /api/v1/ws and upgrades to WebSocket. An optional
// ?game_id= subscribes the connection straight away.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	client := &WSConn{
		conn: conn,
		id:   uuid.NewString(),
		send: make(chan []byte, sendBufSize),
	}
	h.hub.Register(client)

	gameID := r.URL.Query().Get("game_id")
	if gameID != "" {
		h.hub.Subscribe(client, gameID)
	}
	// Welcome message so the client can confirm the connection is live.
	h.hub.SendTo(client, WSEvent{
		Type:   session.EventConnected,
		GameID: gameID,
		Data:   map[string]string{"conn_id": client.id},
	})

	go h.writePump(client)
	go h.readPump(client)

	log.Info().Str("connId", client.id).Int("total", h.hub.ConnectionCount()).Msg("WebSocket client connected")
}

// readPump reads messages from the WebSocket connection.
func (h *WSHandler) readPump(c *WSConn) {
	defer func() {
		h.hub.Unregister(c)
		c.conn.Close()
		log.Info().Str("connId", c.id).Msg("WebSocket client disconnected")
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("connId", c.id).Msg("WebSocket unexpected close")
			}
			break
		}
		h.handleMessage(c, message)
	}
}

// handleMessage dispatches one client message.
func (h *WSHandler) handleMessage(c *WSConn, message []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		h.sendError(c, "", model.ErrorResponse{Error: "invalid message"})
		return
	}
	if err := model.Validate(msg); err != nil {
		h.sendError(c, msg.GameID, model.ErrorResponse{Error: "invalid message", Reason: err.Error()})
		return
	}

	switch msg.Action {
	case "subscribe":
		h.hub.Subscribe(c, msg.GameID)
	case "unsubscribe":
		h.hub.Unsubscribe(c, msg.GameID)
	case "command":
		ctx := logger.WithRequestID(context.Background(), logger.NewRequestID())
		if _, err := h.sessions.Apply(ctx, msg.GameID, msg.Command.Command()); err != nil {
			_, body := errorResponse(err)
			h.sendError(c, msg.GameID, body)
		}
	}
}

func (h *WSHandler) sendError(c *WSConn, gameID string, body model.ErrorResponse) {
	h.hub.SendTo(c, WSEvent{Type: EventError, GameID: gameID, Data: body})
}

// writePump writes messages to the WebSocket connection.
func (h *WSHandler) writePump(c *WSConn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			// One frame per event so clients can parse each as JSON.
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
