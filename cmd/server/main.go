// Package main runs the contact form API.
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/dennoAiden/swiper-venture/domain/contact"
	"github.com/dennoAiden/swiper-venture/domain/email"
	"github.com/dennoAiden/swiper-venture/domain/health"
	"github.com/dennoAiden/swiper-venture/domain/tracing"
	"github.com/dennoAiden/swiper-venture/internal/config"
	"github.com/dennoAiden/swiper-venture/internal/database"
	"github.com/dennoAiden/swiper-venture/internal/migrate"
	"github.com/dennoAiden/swiper-venture/internal/server"
	"github.com/dennoAiden/swiper-venture/pkg/logger"
)

func main() {
	// Load() won't overwrite existing vars, Overload() will
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		database.Module,
		migrate.Module,
		server.Module,
		tracing.Module,

		// Domain modules
		health.Module,
		email.Module,
		contact.Module,
	).Run()
}
