package http

import (
	"net/http"

	"github.com/MKhiriev/finance-flow/internal/app"
	"github.com/MKhiriev/finance-flow/internal/utils"
	"github.com/MKhiriev/finance-flow/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	if _, err := utils.WriteText(w, serverVersion, http.StatusOK); err != nil {
		h.logger.Err(err).Str("func", "getServerVersion").Msg("error writing response")
	}
}

// health reports 200 with the build info while the storage backend answers
// pings, 503 otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			h.logger.Err(err).Str("func", "health").Msg("storage is unreachable")
			utils.WriteJSON(w, models.Response{Message: app.MsgStorageUnreachable}, http.StatusServiceUnavailable)
			return
		}
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgHealthy, h.services.AppInfoService.GetBuildInfo(r.Context()))
}
