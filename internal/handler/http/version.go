package http

import (
	"net/http"

	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/internal/utils"
)

// getServerVersion answers the release version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}

func (h *Handler) getBuildInfo(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getBuildInfo").Msg("error writing build info")
	}
}
