// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newPostgresTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := models.User{ID: "u-1", Name: "User", Email: "user@nextmail.com", Password: "$2a$10$hash"}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Name, user.Email, user.Password).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateUser(testCtx(), user))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.CreateUser(testCtx(), models.User{Email: "user@nextmail.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("disk full"))

	err := repo.CreateUser(testCtx(), models.User{})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password"}).
		AddRow("u-1", "User", "user@nextmail.com", "$2a$10$hash")
	mock.ExpectQuery("SELECT id, name, email, password FROM users WHERE email =").
		WithArgs("user@nextmail.com").
		WillReturnRows(rows)

	user, err := repo.FindUserByEmail(testCtx(), "user@nextmail.com")
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: "u-1", Name: "User", Email: "user@nextmail.com", Password: "$2a$10$hash"}, user)
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password"}))

	_, err := repo.FindUserByEmail(testCtx(), "nobody@nextmail.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
