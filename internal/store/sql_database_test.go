// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice-dashboard/internal/config"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
)

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	db, err := NewConnect(context.Background(), config.DB{Driver: "mysql"}, logger.Nop())
	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewDB_PicksDriverSpecifics(t *testing.T) {
	pg, _ := newTestDB(t, config.DriverPostgres)
	assert.IsType(t, &PostgresErrorClassifier{}, pg.errorClassificator)
	query, _, err := pg.builder.Select("id").From("users").Where("email = ?", "x").ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "$1")

	lite, _ := newTestDB(t, config.DriverSQLite)
	assert.IsType(t, &SQLiteErrorClassifier{}, lite.errorClassificator)
	query, _, err = lite.builder.Select("id").From("users").Where("email = ?", "x").ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "?")
}

func TestWithRetry_StopsAfterMaxAttempts(t *testing.T) {
	db, _ := newPostgresTestDB(t)

	calls := 0
	err := db.withRetry(testCtx(), "test", func(context.Context) error {
		calls++
		return pgError(pgerrcode.DeadlockDetected)
	})
	require.Error(t, err)
	assert.Equal(t, maxWriteAttempts, calls)
}

func TestWithRetry_PermanentErrorIsNotRetried(t *testing.T) {
	db, _ := newPostgresTestDB(t)

	calls := 0
	err := db.withRetry(testCtx(), "test", func(context.Context) error {
		calls++
		return errors.New("syntax")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	db, _ := newPostgresTestDB(t)
	ctx, cancel := context.WithTimeout(testCtx(), 10*time.Millisecond)
	defer cancel()

	calls := 0
	err := db.withRetry(ctx, "test", func(context.Context) error {
		calls++
		return pgError(pgerrcode.ConnectionFailure)
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, calls)
}

func TestPostgresErrorClassifier(t *testing.T) {
	tests := []struct {
		code string
		want ErrorClassification
	}{
		{pgerrcode.ConnectionFailure, Retryable},
		{pgerrcode.SerializationFailure, Retryable},
		{pgerrcode.DeadlockDetected, Retryable},
		{pgerrcode.CannotConnectNow, Retryable},
		{pgerrcode.TooManyConnections, Retryable},
		{pgerrcode.UniqueViolation, NonRetryable},
		{pgerrcode.ForeignKeyViolation, NonRetryable},
		{pgerrcode.SyntaxError, NonRetryable},
		{"XX000", NonRetryable},
	}

	classifier := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(pgError(tt.code)))
		})
	}

	assert.Equal(t, NonRetryable, classifier.Classify(nil))
	assert.Equal(t, NonRetryable, classifier.Classify(errors.New("plain")))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, classifier.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, classifier.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, classifier.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, classifier.Classify(errors.New("plain")))
}

func TestConstraintViolations(t *testing.T) {
	assert.True(t, isForeignKeyViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.True(t, isForeignKeyViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}))
	assert.False(t, isForeignKeyViolation(pgError(pgerrcode.UniqueViolation)))

	assert.True(t, isUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.True(t, isUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.True(t, isUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}))
	assert.False(t, isUniqueViolation(errors.New("plain")))
}
