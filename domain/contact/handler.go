package contact

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"

	"github.com/dennoAiden/swiper-venture/pkg/apperror"
)

const messageSent = "Message sent!"

// Handler serves the contact form API.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Submit accepts a contact form submission. The body is read as JSON
// whatever the Content-Type, so text/plain posts work without a preflight.
// POST /api/contact
func (h *Handler) Submit(c echo.Context) error {
	var req SubmitRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		record(trace.SpanFromContext(c.Request().Context()), resultInvalid)
		return c.JSON(http.StatusBadRequest, Response{Message: "Invalid request body"})
	}

	if _, err := h.svc.Submit(c.Request().Context(), req); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Response{Success: true, Message: messageSent})
}

// Preflight answers a bare OPTIONS request
// OPTIONS /api/contact
func (h *Handler) Preflight(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// respondError keeps the contact API's {"success","message"} shape.
func respondError(c echo.Context, err error) error {
	appErr, ok := apperror.As(err)
	if !ok {
		appErr = apperror.NewInternal("Internal server error", err)
	}
	return c.JSON(appErr.HTTPStatus, Response{Message: appErr.Message})
}
