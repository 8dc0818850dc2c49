package handler

import "net/http"

// Routes registers the game API and WebSocket endpoints on mux.
func Routes(mux *http.ServeMux, games *GameHandler, ws *WSHandler) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	api := http.NewServeMux()
	api.HandleFunc("POST /games", games.CreateGame)
	api.HandleFunc("GET /games", games.ListGames)
	api.HandleFunc("GET /games/{id}", games.GetGame)
	api.HandleFunc("DELETE /games/{id}", games.DeleteGame)
	api.HandleFunc("POST /games/{id}/commands", games.ApplyCommand)
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", api))

	if ws != nil {
		mux.HandleFunc("GET /api/v1/ws", ws.ServeWS)
	}
}
