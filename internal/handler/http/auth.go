// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-invoice-dashboard/internal/app"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/internal/service"
	"github.com/MKhiriev/go-invoice-dashboard/internal/utils"
	"github.com/MKhiriev/go-invoice-dashboard/models"
)

const (
	sessionCookieName = "session"

	// dashboardPath is where a successful sign-in lands.
	dashboardPath = "/dashboard"
)

// loginRequest is the sign-in payload. Provider defaults to
// [service.ProviderCredentials] when omitted.
type loginRequest struct {
	Provider string `json:"provider"`
	models.Credentials
}

// login authenticates the posted credentials. On success it sets the
// session cookie, mirrors the token in the "Authorization" header and
// redirects to the dashboard. Failures answer one of two fixed messages.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fields, err := decodeForm(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid sign-in payload")
		utils.WriteError(w, app.MsgInvalidDataProvided, statusFromError(err))
		return
	}

	req := loginRequest{
		Provider: fields["provider"],
		Credentials: models.Credentials{
			Email:    fields["email"],
			Password: fields["password"],
		},
	}
	if req.Provider == "" {
		req.Provider = service.ProviderCredentials
	}

	token, err := h.services.AuthService.Authenticate(ctx, req.Provider, req.Credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			utils.WriteError(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
		default:
			log.Err(err).Str("func", "*Handler.login").Msg("sign-in failed")
			utils.WriteError(w, app.MsgSomethingWentWrong, http.StatusInternalServerError)
		}
		return
	}

	h.setSessionCookie(w, token.SignedString, tokenExpiry(token))
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
}

// logout clears the session cookie.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.setSessionCookie(w, "", time.Unix(0, 0))
	utils.WriteJSON(w, map[string]string{"message": app.MsgLoggedOut}, http.StatusOK)
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, value string, expires time.Time) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		cookie.MaxAge = -1
	}

	http.SetCookie(w, cookie)
}

func tokenExpiry(token models.Token) time.Time {
	if token.ExpiresAt == nil {
		return time.Time{}
	}
	return token.ExpiresAt.Time
}
