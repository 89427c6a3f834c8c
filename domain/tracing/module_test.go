package tracing

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/dennoAiden/swiper-venture/internal/config"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	tp, err := NewTracerProvider(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	assert.Nil(t, tp)
	_, isNoop := otel.GetTracerProvider().(noop.TracerProvider)
	assert.True(t, isNoop)
}

func TestNewTracerProvider_Enabled(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	cfg := &config.Config{Otel: config.OtelConfig{
		ExporterEndpoint: "http://localhost:4318",
		ServiceName:      "swiper-venture-test",
		SamplingRate:     0.5,
	}}

	tp, err := NewTracerProvider(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NotNil(t, tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
}

func TestRegisterEchoMiddleware(t *testing.T) {
	cfg := &config.Config{Otel: config.OtelConfig{
		ExporterEndpoint: "http://localhost:4318",
		ServiceName:      "swiper-venture-test",
	}}

	e := echo.New()
	RegisterEchoMiddleware(e, cfg)
	e.GET("/api/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestSampler(t *testing.T) {
	assert.Equal(t, "AlwaysOnSampler", sampler(1).Description())
	assert.Contains(t, sampler(0.25).Description(), "TraceIDRatioBased")
}
