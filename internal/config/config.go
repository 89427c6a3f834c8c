package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds the API server configuration.
type Config struct {
	ServerPort    int    `env:"SERVER_PORT" envDefault:"5000"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`

	Database DatabaseConfig
	Email    EmailConfig
	Contact  ContactConfig
	Otel     OtelConfig

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// DatabaseConfig holds PostgreSQL connection settings.
// DATABASE_URL, when set, wins over the discrete POSTGRES_* values.
type DatabaseConfig struct {
	URL          string        `env:"DATABASE_URL"`
	Host         string        `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port         int           `env:"POSTGRES_PORT" envDefault:"5432"`
	User         string        `env:"POSTGRES_USER" envDefault:"swiper"`
	Password     string        `env:"POSTGRES_PASSWORD" envDefault:""`
	Database     string        `env:"POSTGRES_DB" envDefault:"swiper"`
	SSLMode      string        `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	MaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"2"`
	MaxIdleTime  time.Duration `env:"DB_MAX_IDLE_TIME" envDefault:"5m"`
	QueryDebug   bool          `env:"DB_QUERY_DEBUG" envDefault:"false"`
	AutoMigrate  bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`
}

// DSN returns the PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Database, d.SSLMode,
	)
}

// EmailConfig holds notification email settings.
type EmailConfig struct {
	Enabled       bool   `env:"EMAIL_ENABLED" envDefault:"false"`
	MailgunDomain string `env:"MAILGUN_DOMAIN" envDefault:""`
	MailgunAPIKey string `env:"MAILGUN_API_KEY" envDefault:""`
	FromEmail     string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@example.com"`
	FromName      string `env:"EMAIL_FROM_NAME" envDefault:"Swiper Venture"`
	// SendTimeout bounds a single delivery attempt.
	SendTimeout time.Duration `env:"EMAIL_SEND_TIMEOUT" envDefault:"30s"`
}

// IsConfigured returns true if Mailgun is configured
func (e *EmailConfig) IsConfigured() bool {
	return e.MailgunDomain != "" && e.MailgunAPIKey != ""
}

// ContactConfig holds contact form settings.
type ContactConfig struct {
	// AdminEmail receives one notification per submission.
	AdminEmail string `env:"ADMIN_EMAIL" envDefault:""`
	// RateLimit is the sustained per-IP submission rate, in requests per second.
	RateLimit float64 `env:"CONTACT_RATE_LIMIT" envDefault:"0.2"`
	RateBurst int     `env:"CONTACT_RATE_BURST" envDefault:"3"`
	// AllowedOrigins for CORS on /api/*; "*" allows any origin.
	AllowedOrigins []string `env:"CONTACT_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("db_host", cfg.Database.Host),
		slog.Bool("email_enabled", cfg.Email.Enabled),
	)

	return cfg, nil
}
