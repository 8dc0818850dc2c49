package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/freeeve/grid-getters/internal/config"
	"github.com/freeeve/grid-getters/internal/handler"
	"github.com/freeeve/grid-getters/internal/logger"
	"github.com/freeeve/grid-getters/internal/middleware"
	"github.com/freeeve/grid-getters/internal/session"
	"github.com/freeeve/grid-getters/pkg/hexwar"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info")
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	logger.Init(cfg.LogLevel)
	log.Info().
		Int("width", cfg.BoardWidth).
		Int("height", cfg.BoardHeight).
		Int("reinforcements", cfg.ReinforcementsPerTurn).
		Str("startingPlayer", cfg.StartingPlayer).
		Msg("Config loaded")

	// Every session gets its own die. A fixed DIE_SEED makes each new game
	// roll the same sequence.
	newDie := func() hexwar.Die { return hexwar.NewRandDie(cfg.DieSeed) }

	wsHub := handler.NewHub()
	sessions := session.NewManager(cfg.Setup(), newDie, wsHub)

	gameHandler := handler.NewGameHandler(sessions)
	wsHandler := handler.NewWSHandler(wsHub, sessions, cfg.AllowedOrigins)

	mux := http.NewServeMux()
	handler.Routes(mux, gameHandler, wsHandler)

	root := middleware.Chain(mux,
		middleware.Recover,
		middleware.Logger,
		middleware.CORS(cfg.AllowedOrigins),
		middleware.JSON,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown error")
	}
	log.Info().Int("games", len(sessions.List(context.Background()))).Msg("Server stopped")
}
