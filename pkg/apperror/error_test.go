package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	assert.Equal(t, "bad_request: Invalid request", ErrBadRequest.Error())

	withCause := ErrDatabase.WithInternal(errors.New("timeout"))
	assert.Equal(t, "database_error: Database operation failed (timeout)", withCause.Error())
}

func TestError_CopiesDoNotMutateCanonical(t *testing.T) {
	custom := ErrBadRequest.WithMessage("All fields required").WithDetails(map[string]any{"field": "email"})

	assert.Equal(t, "All fields required", custom.Message)
	assert.Equal(t, "Invalid request", ErrBadRequest.Message)
	assert.Nil(t, ErrBadRequest.Details)
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewInternal("store failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
}

func TestToHTTPError(t *testing.T) {
	status, body := ToHTTPError(NewNotFound("section", "pricing"))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, map[string]any{"error": map[string]any{
		"code":    "not_found",
		"message": "section 'pricing' not found",
	}}, body)

	status, body = ToHTTPError(errors.New("secret detail"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal_error", body["error"].(map[string]any)["code"])
}
