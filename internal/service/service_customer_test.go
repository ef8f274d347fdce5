package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/internal/mock"
	"github.com/MKhiriev/go-invoice-dashboard/models"
)

func TestCustomerService_FetchCustomers(t *testing.T) {
	ctrl := gomock.NewController(t)
	customers := mock.NewMockCustomerRepository(ctrl)
	svc := NewCustomerService(customers, logger.Nop())

	want := []models.CustomerField{{ID: "1", Name: "Amy Burns"}, {ID: "2", Name: "Balazs Orban"}}
	customers.EXPECT().GetAll(gomock.Any()).Return(want, nil)

	got, err := svc.FetchCustomers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCustomerService_FetchCustomers_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	customers := mock.NewMockCustomerRepository(ctrl)
	svc := NewCustomerService(customers, logger.Nop())

	customers.EXPECT().GetAll(gomock.Any()).Return(nil, errDatabase)

	got, err := svc.FetchCustomers(context.Background())

	require.ErrorIs(t, err, ErrFetchFailed)
	require.ErrorIs(t, err, errDatabase)
	assert.Nil(t, got)
}

func TestCustomerService_FetchFilteredCustomers(t *testing.T) {
	ctrl := gomock.NewController(t)
	customers := mock.NewMockCustomerRepository(ctrl)
	svc := NewCustomerService(customers, logger.Nop())

	rows := []models.CustomersTableRow{{ID: "1", Name: "Amy Burns", TotalInvoices: 2, TotalPaid: 500}}
	customers.EXPECT().GetFiltered(gomock.Any(), "amy").Return(rows, nil)

	got, err := svc.FetchFilteredCustomers(context.Background(), "amy")

	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestCustomerService_FetchFilteredCustomers_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	customers := mock.NewMockCustomerRepository(ctrl)
	svc := NewCustomerService(customers, logger.Nop())

	customers.EXPECT().GetFiltered(gomock.Any(), "").Return(nil, errDatabase)

	_, err := svc.FetchFilteredCustomers(context.Background(), "")

	require.ErrorIs(t, err, ErrFetchFailed)
}
