package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-invoice-dashboard/internal/config"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/internal/store"
	"github.com/MKhiriev/go-invoice-dashboard/internal/utils"
	"github.com/MKhiriev/go-invoice-dashboard/internal/validators"
	"github.com/MKhiriev/go-invoice-dashboard/models"
)

// ProviderCredentials is the only sign-in provider the dashboard accepts.
const ProviderCredentials = "credentials"

// authService is the concrete implementation of AuthService.
// It checks e-mail and password credentials against bcrypt hashes kept by
// the UserRepository and issues HS256 signed JWT session tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks the shape of credentials before any lookup happens.
	validator validators.Validator

	// idGenerator assigns identifiers to registered users.
	idGenerator idGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewRequestValidator(),
		idGenerator:    utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Authenticate signs a user in.
//
// Credentials that fail validation, an unknown e-mail and a wrong password
// all produce ErrInvalidCredentials. An unknown provider and every other
// failure (lookup, token signing) produce ErrAuthFailed.
func (a *authService) Authenticate(ctx context.Context, provider string, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if provider != ProviderCredentials {
		log.Warn().Str("func", "*authService.Authenticate").Str("provider", provider).Msg("unsupported sign-in provider")
		return models.Token{}, ErrAuthFailed
	}

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Authenticate").Msg("malformed credentials")
		return models.Token{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("func", "*authService.Authenticate").Msg("unknown user")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("user lookup failed")
		return models.Token{}, ErrAuthFailed
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		log.Debug().Str("func", "*authService.Authenticate").Str("user_id", user.ID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Str("user_id", user.ID).Msg("token creation failed")
		return models.Token{}, ErrAuthFailed
	}

	log.Info().Str("func", "*authService.Authenticate").Str("user_id", user.ID).Msg("user signed in")
	return token, nil
}

// RegisterUser stores a new user with a bcrypt hash of its plain-text
// password. It is used by the seeding tool.
//
// Returns the persisted user (with an assigned ID and the hashed password) or:
//   - ErrInvalidDataProvided if e-mail, name or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. e-mail
//     already taken, see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Name == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if user.ID == "" {
		user.ID = a.idGenerator.Generate()
	}
	user.Password = string(hash)

	if err = a.userRepository.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
