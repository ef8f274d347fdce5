package service

import (
	"github.com/MKhiriev/go-invoice-dashboard/internal/cache"
	"github.com/MKhiriev/go-invoice-dashboard/internal/config"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/internal/store"
	"github.com/MKhiriev/go-invoice-dashboard/models"
)

type Services struct {
	AuthService      AuthService
	InvoiceService   InvoiceService
	CustomerService  CustomerService
	DashboardService DashboardService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, pageCache cache.PageCache, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		InvoiceService:   NewInvoiceService(storages, pageCache, logger),
		CustomerService:  NewCustomerService(storages.CustomerRepository, logger),
		DashboardService: NewDashboardService(storages, logger),
		AppInfoService:   appInfoService,
	}, nil
}
