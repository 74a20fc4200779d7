package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hcorbage/corb3d/internal/utils"
)

func (h *Handler) lookupPostalCode(w http.ResponseWriter, r *http.Request) {
	address, err := h.services.PostalCodeService.Lookup(r.Context(), chi.URLParam(r, "cep"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, address, http.StatusOK)
}
