package http

import (
	"errors"
	"net/http"

	"github.com/hcorbage/corb3d/internal/app"
	"github.com/hcorbage/corb3d/internal/service"
	"github.com/hcorbage/corb3d/internal/utils"
	"github.com/hcorbage/corb3d/models"
)

// writeUserError narrows the generic forbidden message: user management is
// reserved to the master admin.
func writeUserError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrForbidden) {
		utils.WriteMessage(w, app.MsgMasterAdminOnly, http.StatusForbidden)
		return
	}
	writeError(w, r, err)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	users, err := h.services.UserService.ListUsers(r.Context(), p)
	if err != nil {
		writeUserError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CreateUserRequest
	if err = h.decode(w, r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), p, req)
	if err != nil {
		writeUserError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ChangePasswordRequest
	if err = h.decode(w, r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.ChangePassword(r.Context(), p, idParam(r), req); err != nil {
		writeUserError(w, r, err)
		return
	}

	writeOK(w)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), p, idParam(r)); err != nil {
		writeUserError(w, r, err)
		return
	}

	writeOK(w)
}
