package http

import (
	"net/http"

	"github.com/hcorbage/corb3d/internal/utils"
	"github.com/hcorbage/corb3d/models"
)

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	clients, err := h.services.ClientService.ListClients(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, clients, http.StatusOK)
}

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var client models.Client
	if err = h.decode(w, r, &client, true); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.ClientService.CreateClient(r.Context(), p, client)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) updateClient(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ClientUpdate
	if err = h.decode(w, r, &update, true); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.ClientService.UpdateClient(r.Context(), p, idParam(r), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ClientService.DeleteClient(r.Context(), p, idParam(r)); err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w)
}
