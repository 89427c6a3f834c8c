package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dennoAiden/swiper-venture/internal/config"
	"github.com/dennoAiden/swiper-venture/internal/handlers"
	"github.com/dennoAiden/swiper-venture/internal/static"
	"github.com/dennoAiden/swiper-venture/pkg/logger"
)

func main() {
	_ = godotenv.Load(".env")

	log := logger.NewLogger().With(logger.Scope("website"))

	cfg, err := config.LoadWebsite()
	if err != nil {
		log.Error("load config", logger.Error(err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handlers.NewRouter(handlers.NewPages(cfg, log), static.FS),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("website starting", slog.String("address", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", logger.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", logger.Error(err))
	}
}
