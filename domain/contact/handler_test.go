package contact

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dennoAiden/swiper-venture/internal/config"
	"github.com/dennoAiden/swiper-venture/internal/server"
)

func newTestEcho(store Store, sender *fakeSender, cfg *config.Config) *echo.Echo {
	e := echo.New()
	RegisterRoutes(e, NewHandler(newTestService(store, sender, cfg)), cfg)
	return e
}

func post(e *echo.Echo, body string) (*httptest.ResponseRecorder, Response) {
	return postAs(e, echo.MIMEApplicationJSON, body)
}

func postAs(e *echo.Echo, contentType, body string) (*httptest.ResponseRecorder, Response) {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp Response
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func TestHandler_Submit(t *testing.T) {
	sender := &fakeSender{}
	e := newTestEcho(&fakeStore{}, sender, testConfig())

	rec, resp := post(e, `{"name":"Ada","email":"ada@example.com","phone":"555","subject":"Hi","message":"Hello"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Message sent!"}`, rec.Body.String())
	assert.True(t, resp.Success)
	assert.Len(t, sender.sent, 1)
}

func TestHandler_Submit_AnyContentType(t *testing.T) {
	body := `{"name":"Ada","email":"ada@example.com","phone":"555","subject":"Hi","message":"Hello"}`

	for _, ct := range []string{"text/plain;charset=UTF-8", "", echo.MIMEApplicationForm} {
		t.Run(ct, func(t *testing.T) {
			store := &fakeStore{}
			rec, resp := postAs(newTestEcho(store, &fakeSender{}, testConfig()), ct, body)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, resp.Success)
			require.Len(t, store.created, 1)
			assert.Equal(t, "ada@example.com", store.created[0].Email)
		})
	}
}

func TestHandler_Submit_NumericPhone(t *testing.T) {
	store := &fakeStore{}
	e := newTestEcho(store, &fakeSender{}, testConfig())

	rec, resp := post(e, `{"name":"Ada","email":"ada@example.com","phone":5550100,"subject":"Hi","message":"Hello"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	require.Len(t, store.created, 1)
	assert.Equal(t, "5550100", store.created[0].Phone)
}

func TestHandler_Submit_Errors(t *testing.T) {
	tests := []struct {
		name       string
		store      *fakeStore
		sender     *fakeSender
		body       string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "malformed json",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request body",
		},
		{
			name:       "empty body",
			body:       ``,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request body",
		},
		{
			name:       "object field",
			body:       `{"name":{"first":"Ada"},"email":"ada@example.com","phone":"555","subject":"Hi","message":"Hello"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request body",
		},
		{
			name:       "zero phone",
			body:       `{"name":"Ada","email":"ada@example.com","phone":0,"subject":"Hi","message":"Hello"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "All fields required",
		},
		{
			name:       "missing field",
			body:       `{"name":"Ada","email":"ada@example.com","phone":"555","subject":"Hi"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "All fields required",
		},
		{
			name:       "empty object",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "All fields required",
		},
		{
			name:       "invalid email",
			body:       `{"name":"Ada","email":"nope","phone":"555","subject":"Hi","message":"Hello"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "email is invalid",
		},
		{
			name:       "store failure",
			store:      &fakeStore{err: assert.AnError},
			body:       `{"name":"Ada","email":"ada@example.com","phone":"555","subject":"Hi","message":"Hello"}`,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Failed to save message",
		},
		{
			name:       "send failure",
			sender:     &fakeSender{err: assert.AnError},
			body:       `{"name":"Ada","email":"ada@example.com","phone":"555","subject":"Hi","message":"Hello"}`,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    assert.AnError.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tt.store
			if store == nil {
				store = &fakeStore{}
			}
			sender := tt.sender
			if sender == nil {
				sender = &fakeSender{}
			}

			rec, resp := post(newTestEcho(store, sender, testConfig()), tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestHandler_Preflight(t *testing.T) {
	e := newTestEcho(&fakeStore{}, &fakeSender{}, testConfig())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/contact", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandler_PreflightThroughServer(t *testing.T) {
	cfg := testConfig()
	e := server.NewEcho(cfg, discardLogger())
	RegisterRoutes(e, NewHandler(newTestService(&fakeStore{}, &fakeSender{}, cfg)), cfg)

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set(echo.HeaderOrigin, "https://swiperventure.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestHandler_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Contact.RateLimit = 0.001
	cfg.Contact.RateBurst = 2

	store := &fakeStore{}
	e := newTestEcho(store, &fakeSender{}, cfg)
	body := `{"name":"Ada","email":"ada@example.com","phone":"555","subject":"Hi","message":"Hello"}`

	for i := 0; i < cfg.Contact.RateBurst; i++ {
		rec, _ := post(e, body)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec, resp := post(e, body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.False(t, resp.Success)
	assert.Len(t, store.created, cfg.Contact.RateBurst)
}
