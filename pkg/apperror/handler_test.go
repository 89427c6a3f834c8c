package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runHandler(t *testing.T, method string, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, "/api/contact", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	HTTPErrorHandler(slog.Default())(err, c)

	if rec.Body.Len() == 0 {
		return rec, nil
	}
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	errObj, ok := resp["error"].(map[string]any)
	require.True(t, ok, "response should carry an error object")
	return rec, errObj
}

func TestHTTPErrorHandler_AppError(t *testing.T) {
	rec, errObj := runHandler(t, http.MethodPost, NewBadRequest("invalid input"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", errObj["code"])
	assert.Equal(t, "invalid input", errObj["message"])
}

func TestHTTPErrorHandler_WrappedAppError(t *testing.T) {
	err := fmt.Errorf("save submission: %w", ErrDatabase.WithInternal(errors.New("connection reset")))

	rec, errObj := runHandler(t, http.MethodPost, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "database_error", errObj["code"])
	assert.Equal(t, "Database operation failed", errObj["message"])
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	tests := []struct {
		status int
		code   string
	}{
		{http.StatusNotFound, "not_found"},
		{http.StatusMethodNotAllowed, "method_not_allowed"},
		{http.StatusTooManyRequests, "too_many_requests"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec, errObj := runHandler(t, http.MethodGet, echo.NewHTTPError(tt.status, "nope"))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, errObj["code"])
			assert.Equal(t, "nope", errObj["message"])
		})
	}
}

func TestHTTPErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	rec, errObj := runHandler(t, http.MethodGet, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", errObj["code"])
	assert.Equal(t, "An internal error occurred", errObj["message"])
}

func TestHTTPErrorHandler_HeadHasNoBody(t *testing.T) {
	rec, errObj := runHandler(t, http.MethodHead, ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Nil(t, errObj)
}
