package http

import (
	"net/http"

	"github.com/hcorbage/corb3d/internal/app"
	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/utils"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces cookie-based session authentication.
//
// It reads the session cookie, resolves it through
// [service.AuthService.Authenticate] and, on success, stores the session in
// the request context with [utils.WithSession] before delegating to the next
// handler. The request logger is enriched with the caller's user id.
//
// The middleware rejects requests with HTTP 401 and the JSON message envelope
// when the cookie is absent or empty, or when the token or the session behind
// it is invalid or expired.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := h.sessionToken(r)
		if err != nil {
			log.Debug().Err(err).Msg("request without session cookie")
			utils.WriteMessage(w, app.MsgNotAuthenticated, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("session rejected")
			utils.WriteMessage(w, app.MsgNotAuthenticated, http.StatusUnauthorized)
			return
		}

		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", session.UserID)
		})
		ctx = l.WithContext(utils.WithSession(ctx, session))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionToken extracts the signed token from the session cookie.
//
// It returns [ErrMissingSessionCookie] when the cookie is absent and
// [ErrEmptySessionToken] when it is present without a value.
func (h *Handler) sessionToken(r *http.Request) (string, error) {
	cookie, err := r.Cookie(h.cookie.name)
	if err != nil {
		return "", ErrMissingSessionCookie
	}
	if cookie.Value == "" {
		return "", ErrEmptySessionToken
	}
	return cookie.Value, nil
}

// setSessionCookie writes the session cookie for a freshly issued token.
func (h *Handler) setSessionCookie(w http.ResponseWriter, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie in the browser.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	h.setSessionCookie(w, "", -1)
}
