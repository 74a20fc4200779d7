package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/hcorbage/corb3d/internal/service"
	"github.com/hcorbage/corb3d/internal/utils"
)

// commissions serves the monthly report. Missing year or month default to the
// current server month.
func (h *Handler) commissions(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	now := time.Now()
	year, err := intQuery(r, "year", now.Year())
	if err != nil {
		writeError(w, r, err)
		return
	}
	month, err := intQuery(r, "month", int(now.Month()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	report, err := h.services.CommissionService.MonthlyReport(r.Context(), p, year, month)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func intQuery(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", service.ErrInvalidPeriod, key, raw)
	}
	return v, nil
}
