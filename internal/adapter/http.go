package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-invoice-dashboard/internal/config"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/internal/utils"
	"github.com/MKhiriev/go-invoice-dashboard/models"
	"github.com/go-resty/resty/v2"
)

const sessionCookieName = "session"

type httpDashboardAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPDashboardAdapter builds the resty based [DashboardAdapter] for the
// server at cfg.HTTPAddress. An address without a scheme is treated as
// plain http.
//
// Returns an error if the address is empty or cannot be parsed.
func NewHTTPDashboardAdapter(cfg config.ClientAdapter, logger *logger.Logger) (DashboardAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpDashboardAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpDashboardAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpDashboardAdapter) Token() string {
	return h.token
}

// Login implements [DashboardAdapter]. It POSTs the credentials to /login and
// expects 303 See Other. The token is read from the session cookie and, if
// the cookie is missing, from the Authorization header.
func (h *httpDashboardAdapter) Login(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"provider": "credentials",
			"email":    credentials.Email,
			"password": credentials.Password,
		}).
		Post("/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if resp.StatusCode() != http.StatusSeeOther {
		return mapHTTPError(resp)
	}

	token, err := sessionToken(resp)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("func", "*httpDashboardAdapter.Login").Str("redirect", resp.Header().Get("Location")).Msg("signed in")
	return nil
}

func sessionToken(resp *resty.Response) (string, error) {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookieName && cookie.Value != "" {
			return cookie.Value, nil
		}
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", ErrNoSessionToken
	}
	return token, nil
}

// Logout implements [DashboardAdapter]. The local token is dropped even
// when the request fails.
func (h *httpDashboardAdapter) Logout(ctx context.Context) error {
	defer h.SetToken("")

	resp, err := h.authedRequest(ctx).Post("/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapHTTPError(resp)
}

// CreateInvoice implements [DashboardAdapter]. Only the fields that are set
// on form are sent, so an absent field reaches the server as absent.
func (h *httpDashboardAdapter) CreateInvoice(ctx context.Context, form models.InvoiceForm) (models.FormState, error) {
	values := map[string]string{}
	if form.CustomerID != nil {
		values["customerId"] = *form.CustomerID
	}
	if form.Amount != nil {
		values["amount"] = *form.Amount
	}
	if form.Status != nil {
		values["status"] = *form.Status
	}

	resp, err := h.authedRequest(ctx).
		SetFormData(values).
		Post("/dashboard/invoices")
	if err != nil {
		return models.FormState{}, fmt.Errorf("create invoice request: %w", err)
	}
	if resp.StatusCode() == http.StatusSeeOther {
		return models.FormState{}, nil
	}

	var state models.FormState
	if resp.StatusCode() == http.StatusUnprocessableEntity || resp.StatusCode() == http.StatusInternalServerError {
		if decodeErr := json.Unmarshal(resp.Body(), &state); decodeErr != nil {
			h.logger.Err(decodeErr).Str("func", "*httpDashboardAdapter.CreateInvoice").Msg("form state could not be decoded")
		}
	}

	if err = mapHTTPError(resp); err == nil {
		err = fmt.Errorf("http %d: unexpected answer to invoice form", resp.StatusCode())
	}
	return state, err
}

// ListInvoices implements [DashboardAdapter]. A zero page is left to the
// server, which treats it as the first page.
func (h *httpDashboardAdapter) ListInvoices(ctx context.Context, filter models.InvoiceFilter) (models.InvoicesPage, error) {
	req := h.authedRequest(ctx)
	if filter.Query != "" {
		req.SetQueryParam("query", filter.Query)
	}
	if filter.Page > 0 {
		req.SetQueryParam("page", strconv.Itoa(filter.Page))
	}

	var page models.InvoicesPage
	if err := h.getJSON(req, "/dashboard/invoices", &page); err != nil {
		return models.InvoicesPage{}, fmt.Errorf("list invoices: %w", err)
	}
	return page, nil
}

func (h *httpDashboardAdapter) Dashboard(ctx context.Context) (models.DashboardPage, error) {
	var page models.DashboardPage
	if err := h.getJSON(h.authedRequest(ctx), "/dashboard", &page); err != nil {
		return models.DashboardPage{}, fmt.Errorf("dashboard: %w", err)
	}
	return page, nil
}

func (h *httpDashboardAdapter) getJSON(req *resty.Request, path string, dst any) error {
	resp, err := req.Get(path)
	if err != nil {
		return err
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (h *httpDashboardAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
