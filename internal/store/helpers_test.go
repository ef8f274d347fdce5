// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice-dashboard/internal/config"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
)

func newTestDB(t *testing.T, driver string) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, driver, logger.Nop()), mock
}

func newPostgresTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	return newTestDB(t, config.DriverPostgres)
}

func testCtx() context.Context {
	return zerolog.Nop().WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testDate() time.Time {
	return time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
}
