package main

import (
	"fmt"
	"log/slog"
	"os"

	"techfix/internal/config"
	"techfix/internal/database"
	"techfix/internal/logging"
	"techfix/internal/server"
	"techfix/internal/store"
)

func main() {
	logging.Setup()

	cfg := config.Load()

	db, err := database.Connect(cfg.DBDSN)
	if err != nil {
		slog.Error("database init failed", "err", err)
		os.Exit(1)
	}
	database.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword)

	r := server.NewRouter(cfg, store.New(db))

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	slog.Info("starting server", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}
