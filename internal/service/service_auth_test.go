package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-invoice-dashboard/internal/config"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/internal/mock"
	"github.com/MKhiriev/go-invoice-dashboard/internal/store"
	"github.com/MKhiriev/go-invoice-dashboard/internal/utils"
	"github.com/MKhiriev/go-invoice-dashboard/models"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "go-invoice-dashboard",
	TokenDuration: time.Hour,
	Version:       "test",
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(users, testAppConfig, logger.Nop()).(*authService)
	svc.idGenerator = fixedIDGenerator("user-1")
	return svc, users
}

func storedUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return models.User{ID: "user-1", Name: "User", Email: "user@nextmail.com", Password: string(hash)}
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(gomock.Any(), "user@nextmail.com").Return(storedUser(t, "123456"), nil)

	token, err := svc.Authenticate(ctx, ProviderCredentials, models.Credentials{Email: "user@nextmail.com", Password: "123456"})

	require.NoError(t, err)
	assert.Equal(t, "user-1", token.UserID)
	assert.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
	assert.Equal(t, testAppConfig.TokenIssuer, parsed.Issuer)
}

func TestAuthService_Authenticate_Failures(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		creds    models.Credentials
		setup    func(t *testing.T, users *mock.MockUserRepository)
		wantErr  error
	}{
		{
			name:     "unknown provider",
			provider: "github",
			creds:    models.Credentials{Email: "user@nextmail.com", Password: "123456"},
			wantErr:  ErrAuthFailed,
		},
		{
			name:     "malformed email",
			provider: ProviderCredentials,
			creds:    models.Credentials{Email: "not-an-email", Password: "123456"},
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "short password",
			provider: ProviderCredentials,
			creds:    models.Credentials{Email: "user@nextmail.com", Password: "123"},
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			provider: ProviderCredentials,
			creds:    models.Credentials{Email: "ghost@nextmail.com", Password: "123456"},
			setup: func(_ *testing.T, users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), "ghost@nextmail.com").Return(models.User{}, store.ErrUserNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			provider: ProviderCredentials,
			creds:    models.Credentials{Email: "user@nextmail.com", Password: "654321"},
			setup: func(t *testing.T, users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), "user@nextmail.com").Return(storedUser(t, "123456"), nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "lookup fails",
			provider: ProviderCredentials,
			creds:    models.Credentials{Email: "user@nextmail.com", Password: "123456"},
			setup: func(_ *testing.T, users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, errDatabase)
			},
			wantErr: ErrAuthFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, users := newTestAuthSvc(t, ctrl)
			if tt.setup != nil {
				tt.setup(t, users)
			}

			token, err := svc.Authenticate(context.Background(), tt.provider, tt.creds)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, token.SignedString)
		})
	}
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users := newTestAuthSvc(t, ctrl)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) error {
			assert.Equal(t, "user-1", u.ID)
			assert.NotEqual(t, "123456", u.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("123456")))
			return nil
		},
	)

	user, err := svc.RegisterUser(context.Background(), models.User{Name: "User", Email: "user@nextmail.com", Password: "123456"})

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestAuthService_RegisterUser_KeepsGivenID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users := newTestAuthSvc(t, ctrl)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)

	user, err := svc.RegisterUser(context.Background(), models.User{ID: "fixed", Name: "User", Email: "user@nextmail.com", Password: "123456"})

	require.NoError(t, err)
	assert.Equal(t, "fixed", user.ID)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "user@nextmail.com"})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users := newTestAuthSvc(t, ctrl)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Name: "User", Email: "user@nextmail.com", Password: "123456"})

	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── ParseToken ───────────────────────────────────────────────────────────────

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not.a.jwt")

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	token, err := utils.GenerateJWTToken("someone-else", "user-1", time.Hour, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	token, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, "user-1", time.Hour, "another-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
