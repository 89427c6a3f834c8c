package apperror

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dennoAiden/swiper-venture/pkg/logger"
)

var statusCodes = map[int]string{
	http.StatusBadRequest:            "bad_request",
	http.StatusNotFound:              "not_found",
	http.StatusMethodNotAllowed:      "method_not_allowed",
	http.StatusConflict:              "conflict",
	http.StatusRequestEntityTooLarge: "payload_too_large",
	http.StatusUnprocessableEntity:   "validation_error",
	http.StatusTooManyRequests:       "too_many_requests",
}

// HTTPErrorHandler renders every error as {"error":{"code","message"}}.
// 5xx responses are logged at error level.
func HTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	log = log.With(logger.Scope("http.error"))

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := ToHTTPError(err)

		var he *echo.HTTPError
		if _, ok := As(err); !ok && errors.As(err, &he) {
			code = he.Code
			errorObj := map[string]any{
				"code":    ErrInternal.Code,
				"message": http.StatusText(code),
			}
			if msg, ok := he.Message.(string); ok {
				errorObj["message"] = msg
			}
			if name, ok := statusCodes[code]; ok {
				errorObj["code"] = name
			}
			body = map[string]any{"error": errorObj}
		}

		if code >= 500 {
			log.Error("request error",
				slog.Int("status", code),
				slog.String("path", c.Request().URL.Path),
				logger.Error(err),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}
