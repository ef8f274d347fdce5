package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice-dashboard/internal/cache"
	"github.com/MKhiriev/go-invoice-dashboard/internal/config"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/internal/service"
)

func TestNewHandlers(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, cache.NewMemoryCache(time.Minute), config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, nil, config.Server{}, logger.Nop())

	assert.Nil(t, h)
	require.ErrorIs(t, err, errNoHandlersAreCreated)
}
