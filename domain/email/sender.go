package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dennoAiden/swiper-venture/pkg/logger"
)

// Sender delivers a single rendered message.
type Sender interface {
	Send(ctx context.Context, opts SendOptions) (*SendResult, error)
}

// SendOptions contains options for sending an email
type SendOptions struct {
	To      string
	ToName  string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// SendResult contains the result of sending an email
type SendResult struct {
	Success   bool
	MessageID string
	Error     string
}

// Err converts an unsuccessful result into an error.
func (r *SendResult) Err() error {
	if r == nil {
		return fmt.Errorf("email not sent")
	}
	if r.Success {
		return nil
	}
	return fmt.Errorf("email not sent: %s", r.Error)
}

// noOpSender logs instead of delivering; used when Mailgun is not configured.
type noOpSender struct {
	log *slog.Logger
}

func newNoOpSender(log *slog.Logger) *noOpSender {
	return &noOpSender{log: log.With(logger.Scope("email.noop"))}
}

func (s *noOpSender) Send(ctx context.Context, opts SendOptions) (*SendResult, error) {
	s.log.Info("email send (no-op)",
		slog.String("to", opts.To),
		slog.String("reply_to", opts.ReplyTo),
		slog.String("subject", opts.Subject))

	return &SendResult{
		Success:   true,
		MessageID: "noop-" + opts.To,
	}, nil
}
