package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-invoice-dashboard/internal/app"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/internal/service"
	"github.com/MKhiriev/go-invoice-dashboard/internal/utils"
	"github.com/MKhiriev/go-invoice-dashboard/internal/validators"
	"github.com/MKhiriev/go-invoice-dashboard/models"
)

// getInvoices answers one page of the invoice table. The page defaults to
// 1 when absent or not a number.
func (h *Handler) getInvoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.InvoiceFilter{
		Query: r.URL.Query().Get("query"),
		Page:  1,
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		filter.Page = page
	}

	if err := h.validator.Validate(ctx, filter); err != nil {
		log.Err(err).Str("func", "*Handler.getInvoices").Msg("invalid invoice filter")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	page, err := h.services.InvoiceService.FetchInvoicesPage(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getInvoices").Msg("failed to fetch invoices")
		utils.WriteError(w, app.MsgInternalServerError, statusFromError(err))
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getCreateInvoicePage(w http.ResponseWriter, r *http.Request) {
	customers, err := h.services.CustomerService.FetchCustomers(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getCreateInvoicePage").Msg("failed to fetch customers")
		utils.WriteError(w, app.MsgInternalServerError, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.EditInvoicePage{Customers: customers}, http.StatusOK)
}

func (h *Handler) getEditInvoicePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := h.invoiceID(w, r)
	if !ok {
		return
	}

	page, err := h.services.InvoiceService.FetchEditInvoicePage(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			utils.WriteError(w, app.MsgInvoiceNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.getEditInvoicePage").Str("invoice_id", id).Msg("failed to fetch invoice")
		utils.WriteError(w, app.MsgInternalServerError, statusFromError(err))
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) createInvoice(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeForm(w, r)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createInvoice").Msg("failed to read invoice form")
		utils.WriteError(w, app.MsgInvalidDataProvided, statusFromError(err))
		return
	}

	state, err := h.services.InvoiceService.CreateInvoice(r.Context(), invoiceForm(fields))
	h.writeFormResult(w, r, state, err)
}

func (h *Handler) updateInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := h.invoiceID(w, r)
	if !ok {
		return
	}

	fields, err := decodeForm(w, r)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateInvoice").Msg("failed to read invoice form")
		utils.WriteError(w, app.MsgInvalidDataProvided, statusFromError(err))
		return
	}

	state, err := h.services.InvoiceService.UpdateInvoice(r.Context(), id, invoiceForm(fields))
	h.writeFormResult(w, r, state, err)
}

func (h *Handler) deleteInvoice(w http.ResponseWriter, r *http.Request) {
	err := h.services.InvoiceService.DeleteInvoice(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, service.ErrOperationNotImplemented) {
		utils.WriteError(w, app.MsgDeleteNotImplemented, http.StatusNotImplemented)
		return
	}
	if err != nil {
		utils.WriteError(w, app.MsgInternalServerError, statusFromError(err))
		return
	}

	http.Redirect(w, r, service.InvoicesPath, http.StatusSeeOther)
}

// writeFormResult answers a form action: 303 to the invoice list on
// success, otherwise the form state with the status mapped from err.
func (h *Handler) writeFormResult(w http.ResponseWriter, r *http.Request, state models.FormState, err error) {
	if err == nil {
		http.Redirect(w, r, service.InvoicesPath, http.StatusSeeOther)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeFormResult").Msg("invoice form action failed")
	}

	utils.WriteJSON(w, state, status)
}

// invoiceID reads and validates the {id} URL parameter. Malformed ids are
// answered as unknown invoices.
func (h *Handler) invoiceID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if err := h.validator.Validate(r.Context(), validators.InvoiceID(id)); err != nil {
		utils.WriteError(w, app.MsgInvoiceNotFound, http.StatusNotFound)
		return "", false
	}
	return id, true
}
