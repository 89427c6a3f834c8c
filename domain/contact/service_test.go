package contact

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/dennoAiden/swiper-venture/domain/email"
	"github.com/dennoAiden/swiper-venture/internal/config"
	"github.com/dennoAiden/swiper-venture/pkg/apperror"
)

type fakeStore struct {
	mu      sync.Mutex
	err     error
	created []*ContactSubmission
}

func (f *fakeStore) Create(_ context.Context, s *ContactSubmission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	s.ID = int64(len(f.created) + 1)
	s.CreatedAt = time.Now()
	f.created = append(f.created, s)
	return nil
}

type fakeSender struct {
	mu     sync.Mutex
	result *email.SendResult
	err    error
	sent   []email.SendOptions
}

func (f *fakeSender) Send(_ context.Context, opts email.SendOptions) (*email.SendResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, opts)
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &email.SendResult{Success: true, MessageID: "test"}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Email: config.EmailConfig{FromName: "Swiper Venture"},
		Contact: config.ContactConfig{
			AdminEmail:     "admin@example.com",
			RateLimit:      0.2,
			RateBurst:      3,
			AllowedOrigins: []string{"*"},
		},
	}
}

func newTestService(store Store, sender email.Sender, cfg *config.Config) *Service {
	log := discardLogger()
	return NewService(store, sender, email.NewTemplateService(log), cfg, log)
}

func counter(result string) float64 {
	return promtest.ToFloat64(submissionsTotal.WithLabelValues(result))
}

func TestService_Submit(t *testing.T) {
	store := &fakeStore{}
	sender := &fakeSender{}
	svc := newTestService(store, sender, testConfig())
	before := counter(resultAccepted)

	req := validRequest()
	req.Name = "  Ada Lovelace  "

	sub, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sub.ID)
	assert.Equal(t, "Ada Lovelace", sub.Name)

	require.Len(t, store.created, 1)
	require.Len(t, sender.sent, 1)

	sent := sender.sent[0]
	assert.Equal(t, "admin@example.com", sent.To)
	assert.Equal(t, "ada@example.com", sent.ReplyTo)
	assert.Equal(t, "New Contact Form Message: Warehouse quote", sent.Subject)
	assert.Contains(t, sent.HTML, "Ada Lovelace")
	assert.Contains(t, sent.Text, "Message:\nWe need a 2,000 sqm warehouse.")

	assert.Equal(t, before+1, counter(resultAccepted))
}

func TestService_Submit_Invalid(t *testing.T) {
	store := &fakeStore{}
	sender := &fakeSender{}
	svc := newTestService(store, sender, testConfig())
	before := counter(resultInvalid)

	req := validRequest()
	req.Phone = "   "

	_, err := svc.Submit(context.Background(), req)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "All fields required", appErr.Message)

	assert.Empty(t, store.created)
	assert.Empty(t, sender.sent)
	assert.Equal(t, before+1, counter(resultInvalid))
}

func TestService_Submit_StoreFailure(t *testing.T) {
	store := &fakeStore{err: apperror.ErrDatabase.WithInternal(errors.New("connection reset"))}
	sender := &fakeSender{}
	svc := newTestService(store, sender, testConfig())
	before := counter(resultStoreFailed)

	_, err := svc.Submit(context.Background(), validRequest())
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	assert.Equal(t, "Failed to save message", appErr.Message)
	assert.ErrorContains(t, appErr, "connection reset")

	assert.Empty(t, sender.sent)
	assert.Equal(t, before+1, counter(resultStoreFailed))
}

func TestService_Submit_NotifyFailure(t *testing.T) {
	tests := []struct {
		name    string
		sender  *fakeSender
		wantMsg string
	}{
		{
			name:    "sender error",
			sender:  &fakeSender{err: errors.New("dial tcp: timeout")},
			wantMsg: "dial tcp: timeout",
		},
		{
			name:    "unsuccessful result",
			sender:  &fakeSender{result: &email.SendResult{Error: "Email sending is disabled"}},
			wantMsg: "email not sent: Email sending is disabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			svc := newTestService(store, tt.sender, testConfig())
			before := counter(resultNotifyFailed)

			_, err := svc.Submit(context.Background(), validRequest())
			appErr, ok := apperror.As(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
			assert.Equal(t, tt.wantMsg, appErr.Message)

			assert.Len(t, store.created, 1, "submission stays stored")
			assert.Equal(t, before+1, counter(resultNotifyFailed))
		})
	}
}

func TestService_Submit_NoAdminEmail(t *testing.T) {
	cfg := testConfig()
	cfg.Contact.AdminEmail = ""

	store := &fakeStore{}
	sender := &fakeSender{}
	svc := newTestService(store, sender, cfg)

	_, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, store.created, 1)
	assert.Empty(t, sender.sent)
}

func TestService_Submit_Span(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	svc := newTestService(&fakeStore{}, &fakeSender{}, testConfig())
	_, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "contact.submit", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("contact.result", resultAccepted))
	assert.Contains(t, spans[0].Attributes(), attribute.Int64("contact.submission_id", 1))
}
