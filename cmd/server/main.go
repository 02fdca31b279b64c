package main

import (
	"errors"
	"net/http"

	"github.com/ghost-console/ghost/internal/api"
	"github.com/ghost-console/ghost/internal/infrastructure/config"
	"github.com/ghost-console/ghost/internal/infrastructure/store"
	"github.com/ghost-console/ghost/internal/infrastructure/wol"
	"github.com/ghost-console/ghost/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	configStore := store.NewFileStore(cfg.ConfigFile)
	sender := wol.NewSender(cfg.WOLBroadcastAddr)

	e := api.NewRouter(configStore, sender, cfg.JWTSecret, cfg.TokenTTL, log)

	log.Info().
		Str("port", cfg.Port).
		Str("config_file", cfg.ConfigFile).
		Str("broadcast", cfg.WOLBroadcastAddr).
		Msg("starting ghost console")

	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
