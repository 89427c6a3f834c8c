package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler handles health check requests
type Handler struct {
	db      Pinger
	system  func(ctx context.Context) Check
	startAt time.Time
}

func NewHandler(pool *pgxpool.Pool) *Handler {
	return newHandler(pool)
}

func newHandler(db Pinger) *Handler {
	return &Handler{db: db, system: systemCheck, startAt: time.Now()}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health reports overall status including database connectivity.
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	db := Check{Status: "healthy"}
	if err := h.db.Ping(ctx); err != nil {
		db = Check{Status: "unhealthy", Message: err.Error()}
	}

	resp := HealthResponse{
		Status:    db.Status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).Round(time.Second).String(),
		Checks: map[string]Check{
			"database": db,
			"system":   h.system(ctx),
		},
	}

	code := http.StatusOK
	if db.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, resp)
}

// Healthz is a liveness probe; it never touches dependencies.
func (h *Handler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// systemCheck reports host memory and load. It is informational and never
// marks the service unhealthy.
func systemCheck(ctx context.Context) Check {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Check{Status: "unknown", Message: err.Error()}
	}

	msg := fmt.Sprintf("memory %.1f%% used", vm.UsedPercent)
	if avg, err := load.AvgWithContext(ctx); err == nil {
		msg += fmt.Sprintf(", load %.2f %.2f %.2f", avg.Load1, avg.Load5, avg.Load15)
	}
	return Check{Status: "healthy", Message: msg}
}
