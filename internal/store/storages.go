package store

import "github.com/MKhiriev/go-invoice-dashboard/internal/logger"

// Storages bundles every repository backed by a single [DB].
type Storages struct {
	InvoiceRepository  InvoiceRepository
	CustomerRepository CustomerRepository
	UserRepository     UserRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		InvoiceRepository:  NewInvoiceRepository(db, log),
		CustomerRepository: NewCustomerRepository(db, log),
		UserRepository:     NewUserRepository(db, log),
	}
}
