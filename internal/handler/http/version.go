package http

import (
	"net/http"

	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/utils"
	"github.com/hcorbage/corb3d/models"
)

type versionResponse struct {
	models.VersionResponse
	Uptime string `json:"uptime"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	info := h.services.AppInfoService

	utils.WriteJSON(w, versionResponse{
		VersionResponse: info.BuildInfo(ctx).Response(),
		Uptime:          info.Uptime(ctx).String(),
	}, http.StatusOK)
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
}

// readyz reports 503 until the database answers a ping.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Pinger.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("database is not reachable")
		utils.WriteJSON(w, healthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
}
