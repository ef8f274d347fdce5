package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-invoice-dashboard/internal/service"
	"github.com/MKhiriev/go-invoice-dashboard/internal/store"
	"github.com/MKhiriev/go-invoice-dashboard/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidInvoiceForm:      http.StatusUnprocessableEntity,
	service.ErrPersistenceFailed:       http.StatusInternalServerError,
	service.ErrOperationNotImplemented: http.StatusNotImplemented,
	service.ErrInvoiceNotFound:         http.StatusNotFound,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrAuthFailed:              http.StatusInternalServerError,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrFetchFailed:             http.StatusInternalServerError,

	validators.ErrInvalidPage:  http.StatusBadRequest,
	validators.ErrQueryTooLong: http.StatusBadRequest,
	validators.ErrInvalidID:    http.StatusNotFound,

	ErrUnsupportedContentType: http.StatusUnsupportedMediaType,
	ErrMalformedForm:          http.StatusBadRequest,

	store.ErrInvoiceNotFound:  http.StatusNotFound,
	store.ErrCustomerNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
