package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hcorbage/corb3d/internal/utils"
	"github.com/hcorbage/corb3d/models"
)

func (h *Handler) exportBackup(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	backup, err := h.services.BackupService.Export(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	filename := fmt.Sprintf("corb3d-backup-%s.json", time.Now().Format(time.DateOnly))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	utils.WriteJSON(w, backup, http.StatusOK)
}

func (h *Handler) importBackup(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var backup models.Backup
	if err = h.decodeLimited(w, r, &backup, false, maxBackupBodyBytes); err != nil {
		writeError(w, r, err)
		return
	}

	summary, err := h.services.BackupService.Import(r.Context(), p, backup)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
