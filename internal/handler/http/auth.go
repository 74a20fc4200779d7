package http

import (
	"net/http"
	"time"

	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/utils"
	"github.com/hcorbage/corb3d/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := h.decode(w, r, &credentials, false); err != nil {
		writeError(w, r, err)
		return
	}

	result, token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	maxAge := int(h.cookie.ttl.Seconds())
	if token.ExpiresAt != nil {
		maxAge = int(time.Until(token.ExpiresAt.Time).Seconds())
	}
	h.setSessionCookie(w, token.SignedString, maxAge)

	log.Info().Str("user_id", result.ID).Msg("user logged in")
	utils.WriteJSON(w, result, http.StatusOK)
}

// logout always succeeds: an unknown or expired cookie is simply cleared.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if tokenString, err := h.sessionToken(r); err == nil {
		session, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err == nil {
			if err = h.services.AuthService.Logout(ctx, session.ID); err != nil {
				log.Err(err).Msg("error deleting session on logout")
			}
		}
	}

	h.clearSessionCookie(w)
	writeOK(w)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	_, session, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, session.CurrentUser(), http.StatusOK)
}

func (h *Handler) checkAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.UsernameRequest
	if err := h.decode(w, r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	isAdmin, err := h.services.AuthService.CheckAdmin(r.Context(), req.Username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AdminCheckResponse{IsAdmin: isAdmin}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := h.decode(w, r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.ResetPassword(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) forceChangePassword(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ForceChangePasswordRequest
	if err = h.decode(w, r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.ForceChangePassword(r.Context(), p, req.NewPassword); err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w)
}

func (h *Handler) passwordHint(w http.ResponseWriter, r *http.Request) {
	var req models.UsernameRequest
	if err := h.decode(w, r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	hint, err := h.services.AuthService.PasswordHint(r.Context(), req.Username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PasswordHintResponse{Hint: hint}, http.StatusOK)
}

func (h *Handler) adminWhatsApp(w http.ResponseWriter, r *http.Request) {
	var req models.UsernameRequest
	if err := h.decode(w, r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	phone, err := h.services.AuthService.AdminContact(r.Context(), req.Username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AdminContactResponse{WhatsApp: phone}, http.StatusOK)
}
