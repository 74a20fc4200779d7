package http

import (
	"net/http"

	"github.com/hcorbage/corb3d/internal/utils"
	"github.com/hcorbage/corb3d/models"
)

func (h *Handler) listMaterials(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	materials, err := h.services.MaterialService.ListMaterials(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, materials, http.StatusOK)
}

func (h *Handler) createMaterial(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var material models.Material
	if err = h.decode(w, r, &material, true); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.MaterialService.CreateMaterial(r.Context(), p, material)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) updateMaterial(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.MaterialUpdate
	if err = h.decode(w, r, &update, true); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.MaterialService.UpdateMaterial(r.Context(), p, idParam(r), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteMaterial(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.MaterialService.DeleteMaterial(r.Context(), p, idParam(r)); err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w)
}

func (h *Handler) listStockItems(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.services.StockItemService.ListStockItems(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createStockItem(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var item models.StockItem
	if err = h.decode(w, r, &item, true); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.StockItemService.CreateStockItem(r.Context(), p, item)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) updateStockItem(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.StockItemUpdate
	if err = h.decode(w, r, &update, true); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.StockItemService.UpdateStockItem(r.Context(), p, idParam(r), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteStockItem(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.StockItemService.DeleteStockItem(r.Context(), p, idParam(r)); err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w)
}
