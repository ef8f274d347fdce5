package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-invoice-dashboard/internal/service"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/build", h.getBuildInfo)
	})

	// dashboard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/dashboard", h.getDashboard)
		r.Get("/dashboard/customers", h.getCustomers)

		r.With(h.withPageCache(service.InvoicesPath)).Get("/dashboard/invoices", h.getInvoices)
		r.Post("/dashboard/invoices", h.createInvoice)
		r.Get("/dashboard/invoices/create", h.getCreateInvoicePage)
		r.Get("/dashboard/invoices/{id}/edit", h.getEditInvoicePage)
		r.Post("/dashboard/invoices/{id}", h.updateInvoice)
		r.Put("/dashboard/invoices/{id}", h.updateInvoice)
		r.Post("/dashboard/invoices/{id}/delete", h.deleteInvoice)
		r.Delete("/dashboard/invoices/{id}", h.deleteInvoice)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
