package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"hydromon/internal/alert"
	"hydromon/internal/bot"
	"hydromon/internal/config"
	"hydromon/internal/feed"
	"hydromon/internal/hub"
	"hydromon/internal/identity"
	"hydromon/internal/logging"
	"hydromon/internal/server"
	"hydromon/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, "hydromon")
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	settings, err := config.LoadAlertSettings(cfg.SettingsFile)
	if err != nil {
		logger.Fatal("load alert settings", zap.Error(err))
	}

	st, err := store.Open(cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}

	idc := identity.New(cfg.SupabaseURL, cfg.ServiceKey, logger)
	tg := bot.NewTelegram(cfg.BotToken, cfg.BotChatID, logger)
	h := hub.New(logger)
	srv := server.New(st, idc, tg, h, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The change feed needs the managed database; under sqlite the server
	// runs without live alerts and dashboard pushes.
	if cfg.DBDriver == "postgres" {
		listener, err := feed.NewListener(cfg.DatabaseURL, logger)
		if err != nil {
			logger.Fatal("subscribe to change feed", zap.Error(err))
		}
		dispatcher := alert.NewDispatcher(tg, st, settings, logger)

		go listener.Run(ctx)
		go func() {
			for r := range listener.Readings() {
				h.Broadcast(r)
				dispatcher.HandleReading(ctx, r)
			}
		}()
	} else {
		logger.Warn("change feed disabled", zap.String("db_driver", cfg.DBDriver))
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: srv.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.Int("port", cfg.Port))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("http server", zap.Error(err))
	}

	logger.Info("shutdown complete")
}
