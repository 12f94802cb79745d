package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"stopgame/internal/config"
	"stopgame/internal/handlers"
	"stopgame/internal/session"
	"stopgame/internal/store"
	"stopgame/internal/ws"
)

func main() {
	cfg := config.Load()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	roomStore := store.NewRoomStore()
	hub := ws.NewHub(roomStore, logger)
	coordinator := session.NewCoordinator(roomStore, hub, logger)
	hub.SetCoordinator(coordinator)

	h := &handlers.Handler{
		Store:  roomStore,
		Hub:    hub,
		Logger: logger,
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("server listening", "addr", addr)
	if err := http.ListenAndServe(addr, h.Routes()); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
