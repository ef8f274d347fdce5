// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice-dashboard/internal/app"
	"github.com/MKhiriev/go-invoice-dashboard/internal/service"
	"github.com/MKhiriev/go-invoice-dashboard/internal/utils"
	"github.com/MKhiriev/go-invoice-dashboard/models"
)

func newHandlerWithAuth(auth *mockAuthService) *Handler {
	services := newTestServices()
	services.AuthService = auth
	return newTestHandler(services)
}

func issuedToken(signed string) models.Token {
	return models.Token{
		SignedString:     signed,
		UserID:           "user-1",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success_SetsSessionAndRedirects(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, provider string, creds models.Credentials) (models.Token, error) {
			assert.Equal(t, service.ProviderCredentials, provider)
			assert.Equal(t, models.Credentials{Email: "user@nextmail.com", Password: "123456"}, creds)
			return issuedToken("signed.jwt.token"), nil
		},
	}
	h := newHandlerWithAuth(auth)

	form := url.Values{"email": {"user@nextmail.com"}, "password": {"123456"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, dashboardPath, rec.Header().Get("Location"))
	assert.Equal(t, "Bearer signed.jwt.token", rec.Header().Get("Authorization"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Equal(t, "signed.jwt.token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestLogin_JSONBodyWithProvider(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, provider string, creds models.Credentials) (models.Token, error) {
			assert.Equal(t, "github", provider)
			assert.Equal(t, "user@nextmail.com", creds.Email)
			return models.Token{}, service.ErrAuthFailed
		},
	}
	h := newHandlerWithAuth(auth)

	body := `{"provider":"github","email":"user@nextmail.com","password":"123456"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgSomethingWentWrong, decodeError(t, rec))
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "invalid credentials", err: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantMsg: app.MsgInvalidCredentials},
		{name: "auth failed", err: service.ErrAuthFailed, wantStatus: http.StatusInternalServerError, wantMsg: app.MsgSomethingWentWrong},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMsg: app.MsgSomethingWentWrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(&mockAuthService{
				authenticateFn: func(context.Context, string, models.Credentials) (models.Token, error) {
					return models.Token{}, tt.err
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@b.co","password":"x"}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			h.login(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestLogin_MalformedBody(t *testing.T) {
	h := newHandlerWithAuth(&mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeError(t, rec))
}

func TestLogin_UnsupportedContentType(t *testing.T) {
	h := newHandlerWithAuth(&mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=a"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestLogout_ClearsCookie(t *testing.T) {
	h := newTestHandler(newTestServices())

	rec := httptest.NewRecorder()
	h.logout(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestSetSessionCookie_Secure(t *testing.T) {
	h := newTestHandler(newTestServices())
	h.secureCookies = true

	rec := httptest.NewRecorder()
	h.setSessionCookie(rec, "token", time.Now().Add(time.Hour))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

// ─────────────────────────────────────────────
// auth middleware
// ─────────────────────────────────────────────

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		cookie     string
		header     string
		wantStatus int
	}{
		{name: "session cookie", cookie: testSessionToken, wantStatus: http.StatusOK},
		{name: "bearer header", header: "Bearer " + testSessionToken, wantStatus: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + testSessionToken, wantStatus: http.StatusOK},
		{name: "no session", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", header: "Token", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", cookie: "forged", wantStatus: http.StatusUnauthorized},
		{name: "empty cookie falls back to header", cookie: "", header: "Bearer " + testSessionToken, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(newTestServices())

			var gotUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "user-1", gotUserID)
			} else {
				assert.Equal(t, app.MsgUnauthorized, decodeError(t, rec))
			}
		})
	}
}

func TestSessionToken_Errors(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := sessionToken(req)
	assert.ErrorIs(t, err, ErrNoSession)

	req.Header.Set("Authorization", "Basic abc def")
	_, err = sessionToken(req)
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
}
