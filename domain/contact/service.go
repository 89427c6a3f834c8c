package contact

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/dennoAiden/swiper-venture/domain/email"
	"github.com/dennoAiden/swiper-venture/internal/config"
	"github.com/dennoAiden/swiper-venture/pkg/apperror"
	"github.com/dennoAiden/swiper-venture/pkg/logger"
	"github.com/dennoAiden/swiper-venture/pkg/tracing"
)

const (
	notificationTemplate = "contact_notification"
	notificationLayout   = "default"
	subjectPrefix        = "New Contact Form Message: "
)

// Renderer renders a named email template.
type Renderer interface {
	Render(templateName string, data email.TemplateContext, layoutName string) (*email.TemplateRenderResult, error)
}

// Service validates, stores and forwards contact submissions.
type Service struct {
	store      Store
	sender     email.Sender
	templates  Renderer
	adminEmail string
	siteName   string
	log        *slog.Logger
}

func NewService(store Store, sender email.Sender, templates Renderer, cfg *config.Config, log *slog.Logger) *Service {
	return &Service{
		store:      store,
		sender:     sender,
		templates:  templates,
		adminEmail: cfg.Contact.AdminEmail,
		siteName:   cfg.Email.FromName,
		log:        log.With(logger.Scope("contact.svc")),
	}
}

// Submit stores req and notifies the site admin. A stored submission is
// kept even when the notification fails.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*ContactSubmission, error) {
	ctx, span := tracing.Start(ctx, "contact.submit")
	defer span.End()

	req.Normalize()
	if err := req.Validate(); err != nil {
		record(span, resultInvalid)
		return nil, err
	}

	sub := req.Submission()
	if err := s.store.Create(ctx, sub); err != nil {
		record(span, resultStoreFailed)
		span.RecordError(err)
		if appErr, ok := apperror.As(err); ok {
			return nil, appErr.WithMessage("Failed to save message")
		}
		return nil, apperror.ErrDatabase.WithMessage("Failed to save message").WithInternal(err)
	}
	span.SetAttributes(attribute.Int64("contact.submission_id", sub.ID))

	if err := s.notify(ctx, sub); err != nil {
		record(span, resultNotifyFailed)
		span.RecordError(err)
		s.log.Error("contact notification failed",
			slog.Int64("submission_id", sub.ID),
			logger.Error(err))
		return nil, apperror.ErrDelivery.WithMessage(err.Error()).WithInternal(err)
	}

	record(span, resultAccepted)
	s.log.Info("contact submission accepted", slog.Int64("submission_id", sub.ID))
	return sub, nil
}

func (s *Service) notify(ctx context.Context, sub *ContactSubmission) error {
	if s.adminEmail == "" {
		s.log.Warn("ADMIN_EMAIL not set, skipping notification", slog.Int64("submission_id", sub.ID))
		return nil
	}

	subject := subjectPrefix + sub.Subject
	body, err := s.templates.Render(notificationTemplate, email.TemplateContext{
		"name":     sub.Name,
		"email":    sub.Email,
		"phone":    sub.Phone,
		"subject":  sub.Subject,
		"message":  sub.Message,
		"siteName": s.siteName,
	}, notificationLayout)
	if err != nil {
		return err
	}

	res, err := s.sender.Send(ctx, email.SendOptions{
		To:      s.adminEmail,
		ReplyTo: sub.Email,
		Subject: subject,
		HTML:    body.HTML,
		Text:    body.Text,
	})
	if err != nil {
		return err
	}
	return res.Err()
}
