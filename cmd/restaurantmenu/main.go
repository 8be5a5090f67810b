package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/vbonduro/restaurantmenu/internal/config"
	"github.com/vbonduro/restaurantmenu/internal/db"
	"github.com/vbonduro/restaurantmenu/internal/flash"
	"github.com/vbonduro/restaurantmenu/internal/logging"
	"github.com/vbonduro/restaurantmenu/internal/service"
	"github.com/vbonduro/restaurantmenu/internal/store"
	"github.com/vbonduro/restaurantmenu/internal/web"
	"github.com/vbonduro/restaurantmenu/internal/web/templates"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.DBPath, "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	restaurantService := service.NewRestaurantService(store.New(database), logger)
	server := web.NewServer(restaurantService, templates.FS, flash.New(cfg.SecretKey), logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx, cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
