package email

import (
	"log/slog"

	"go.uber.org/fx"
)

var Module = fx.Module("email",
	fx.Provide(
		NewConfig,
		NewTemplateService,
		NewSender,
	),
)

// NewSender uses Mailgun when configured and enabled, otherwise a no-op sender.
func NewSender(log *slog.Logger, cfg *Config) Sender {
	if cfg.IsConfigured() && cfg.Enabled {
		if s := NewMailgunSender(cfg, log); s != nil {
			log.Info("using Mailgun sender",
				slog.String("domain", cfg.MailgunDomain),
				slog.String("from", cfg.FromEmail))
			return s
		}
	}

	log.Info("using no-op email sender (Mailgun not configured or email disabled)")
	return newNoOpSender(log)
}
