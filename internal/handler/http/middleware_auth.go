package http

import (
	"net/http"

	"github.com/MKhiriev/go-invoice-dashboard/internal/app"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/internal/utils"
)

// auth is an HTTP middleware that enforces the dashboard session.
//
// The session token is taken from the session cookie or, for API clients,
// from an "Authorization: Bearer <token>" header. It is validated via
// [service.AuthService.ParseToken] and on success the user ID is stored in
// the request context with [utils.WithUserID].
//
// Requests without a valid session are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := sessionToken(r)
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.auth").Msg("request without session")
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx = log.WithUserID(token.UserID).WithContext(ctx)
		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

// sessionToken prefers the session cookie and falls back to the
// "Authorization" header.
func sessionToken(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSession
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
