package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/moneybridge/backend/internal/config"
	"github.com/moneybridge/backend/internal/server"
	mongostore "github.com/moneybridge/backend/internal/storage/mongo"
)

func main() {
	loadLocalEnv()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	log := setupLogger(cfg.Env)
	if cfg.InsecureSecret() {
		log.Warn("SECRET_KEY is not set; running on the built-in fallback secret. Do not use in production.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := mongostore.New(ctx, cfg.MongoURL, cfg.MongoDatabase)
	cancel()
	if err != nil {
		log.Error("init document store", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctxClose, cancelClose := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelClose()
		if err := store.Close(ctxClose); err != nil {
			log.Error("close document store", "error", err)
		}
	}()

	srv := server.New(cfg, store, store, log)

	go func() {
		log.Info("moneybridge backend listening", slog.String("addr", cfg.HTTPAddress()), slog.String("env", cfg.Env))
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Error("graceful shutdown error", "error", err)
	}
}

func setupLogger(env string) *slog.Logger {
	if env == "local" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found; relying on existing environment")
	}
}
