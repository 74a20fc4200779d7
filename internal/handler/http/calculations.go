package http

import (
	"net/http"

	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/service"
	"github.com/hcorbage/corb3d/internal/utils"
	"github.com/hcorbage/corb3d/models"
)

func (h *Handler) listCalculations(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	quotes, err := h.services.QuoteService.ListQuotes(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, quotes, http.StatusOK)
}

// previewCalculation prices a draft without saving it or touching stock.
func (h *Handler) previewCalculation(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.QuoteRequest
	if err = h.decode(w, r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}
	// drafts may lack a project name; only the numeric inputs are checked
	if req.ProfitMarginPercent != nil && *req.ProfitMarginPercent < 0 {
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}
	for i := range req.Lines {
		if err = h.validator.Validate(r.Context(), &req.Lines[i]); err != nil {
			writeError(w, r, err)
			return
		}
	}

	breakdown, err := h.services.QuoteService.PreviewQuote(r.Context(), p, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, breakdown, http.StatusOK)
}

func (h *Handler) createCalculation(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.QuoteRequest
	if err = h.decode(w, r, &req, true); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.QuoteService.CreateQuote(r.Context(), p, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if len(created.LowStock) > 0 {
		logger.FromRequest(r).Info().
			Str("quote_id", created.Calculation.ID).
			Int("low_stock", len(created.LowStock)).
			Msg("quote left stock items low")
	}
	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) updateCalculation(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.QuoteRequest
	if err = h.decode(w, r, &req, true); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.QuoteService.UpdateQuote(r.Context(), p, idParam(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) setCalculationStatus(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.StatusRequest
	if err = h.decode(w, r, &req, true); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.QuoteService.SetStatus(r.Context(), p, idParam(r), req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCalculation(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.QuoteService.DeleteQuote(r.Context(), p, idParam(r)); err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w)
}
