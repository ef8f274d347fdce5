package http

import (
	"github.com/MKhiriev/go-invoice-dashboard/internal/cache"
	"github.com/MKhiriev/go-invoice-dashboard/internal/config"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/internal/service"
	"github.com/MKhiriev/go-invoice-dashboard/internal/validators"
)

type Handler struct {
	services  *service.Services
	pageCache cache.PageCache
	validator validators.Validator

	secureCookies bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, pageCache cache.PageCache, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		pageCache:     pageCache,
		validator:     validators.NewRequestValidator(),
		secureCookies: cfg.SecureCookies,
		logger:        logger,
	}
}
