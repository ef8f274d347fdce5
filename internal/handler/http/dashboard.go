package http

import (
	"net/http"

	"github.com/MKhiriev/go-invoice-dashboard/internal/app"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/internal/utils"
)

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.DashboardService.FetchDashboardPage(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getDashboard").Msg("failed to fetch dashboard")
		utils.WriteError(w, app.MsgInternalServerError, statusFromError(err))
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getCustomers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	customers, err := h.services.CustomerService.FetchFilteredCustomers(r.Context(), query)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getCustomers").Msg("failed to fetch customers")
		utils.WriteError(w, app.MsgInternalServerError, statusFromError(err))
		return
	}

	utils.WriteJSON(w, customers, http.StatusOK)
}
