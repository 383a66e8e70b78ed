package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/metrics"
	"github.com/MKhiriev/go-story-nook/internal/store"
	"github.com/MKhiriev/go-story-nook/internal/utils"
	"github.com/MKhiriev/go-story-nook/internal/validators"
	"github.com/MKhiriev/go-story-nook/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt digests and sessions are HS256 JWTs.
type authService struct {
	userRepository store.UserRepository

	hasher    *utils.PasswordHasher
	validator validators.Validator
	clock     utils.Clock
	metrics   metrics.Recorder

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	// dummyDigest is compared against on unknown emails so that both login
	// failures cost one bcrypt comparison.
	dummyDigest string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, validator validators.Validator,
	clock utils.Clock, recorder metrics.Recorder, logger *logger.Logger) AuthService {
	hasher := utils.NewPasswordHasher(cfg.BcryptCost)

	dummyDigest, err := hasher.Hash("story-nook-dummy-password")
	if err != nil {
		logger.Err(err).Str("func", "NewAuthService").Msg("error preparing dummy digest")
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		clock:          clock,
		metrics:        recorder,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		dummyDigest:    dummyDigest,
		logger:         logger,
	}
}

// Register validates the credentials, stores the bcrypt digest of the
// password and issues a session token for the new account.
//
// Returns a [*validators.ValidationError] for bad input and an error wrapping
// [store.ErrEmailAlreadyExists] when the email is taken; the existing account
// is left untouched.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials, validators.FieldEmail, validators.FieldPassword); err != nil {
		return models.User{}, models.Token{}, err
	}

	digest, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, models.Token{}, fmt.Errorf("error hashing password: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{Email: credentials.Email, PasswordHash: digest})
	if err != nil {
		if !errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		}
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.CreateToken(ctx, identityOf(registeredUser))
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	a.metrics.RecordRegistration()
	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")

	return registeredUser, token, nil
}

// Login authenticates an existing user.
//
// Malformed input, an unknown email and a wrong password all yield
// [ErrInvalidCredentials]. Only a failure of the hashing primitive itself or
// of storage surfaces as a different error.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials, validators.FieldEmail, validators.FieldPasswordPresent); err != nil {
		a.metrics.RecordLogin(metrics.LoginFailure)
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			if a.dummyDigest != "" {
				_, _ = a.hasher.Verify(credentials.Password, a.dummyDigest)
			}
			a.metrics.RecordLogin(metrics.LoginFailure)
			return models.User{}, models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	match, err := a.hasher.Verify(credentials.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("error verifying password")
		return models.User{}, models.Token{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !match {
		a.metrics.RecordLogin(metrics.LoginFailure)
		log.Info().Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, identityOf(foundUser))
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	a.metrics.RecordLogin(metrics.LoginSuccess)
	return foundUser, token, nil
}

// CreateToken issues a signed JWT for identity, valid for the configured
// token duration from now.
func (a *authService) CreateToken(ctx context.Context, identity models.Identity) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, identity, a.tokenDuration, a.tokenSignKey, a.clock.Now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("error creating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong algorithm, bad
// signature, malformed) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.clock.Now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) Authenticate(ctx context.Context, authorizationHeader string) (models.Identity, error) {
	tokenString, err := utils.ParseBearerToken(authorizationHeader)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	return token.Identity(), nil
}

func identityOf(user models.User) models.Identity {
	return models.Identity{UserID: user.UserID, Email: user.Email}
}
