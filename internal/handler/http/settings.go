package http

import (
	"net/http"

	"github.com/hcorbage/corb3d/internal/utils"
	"github.com/hcorbage/corb3d/models"
)

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	settings, err := h.services.SettingsService.GetSettings(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

// updateSettings applies a partial update: absent fields keep their value.
func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.SettingsUpdate
	if err = h.decode(w, r, &update, true); err != nil {
		writeError(w, r, err)
		return
	}

	settings, err := h.services.SettingsService.UpdateSettings(r.Context(), p, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}
