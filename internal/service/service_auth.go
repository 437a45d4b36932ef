package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/finance-flow/internal/config"
	"github.com/MKhiriev/finance-flow/internal/logger"
	"github.com/MKhiriev/finance-flow/internal/ratelimit"
	"github.com/MKhiriev/finance-flow/internal/store"
	"github.com/MKhiriev/finance-flow/internal/token"
	"github.com/MKhiriev/finance-flow/models"
)

// loginKeyPrefix namespaces login attempt counters in the rate limiter.
const loginKeyPrefix = "login:"

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; tokens are issued and verified by
// a token.Codec over the configured secret.
type authService struct {
	userRepository store.UserRepository

	codec      *token.Codec
	tokenTTL   time.Duration
	bcryptCost int

	limiter       ratelimit.RateLimiter
	loginAttempts int
	loginWindow   time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. It fails when the token secret
// is empty.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	limiter ratelimit.RateLimiter,
	authCfg config.Auth,
	limitCfg config.RateLimit,
	logger *logger.Logger,
) (AuthService, error) {
	codec, err := token.NewCodec([]byte(authCfg.Secret))
	if err != nil {
		return nil, err
	}

	return &authService{
		userRepository: userRepository,
		codec:          codec,
		tokenTTL:       authCfg.TokenTTL(),
		bcryptCost:     authCfg.BcryptCost,
		limiter:        limiter,
		loginAttempts:  limitCfg.LoginAttempts,
		loginWindow:    limitCfg.Window,
		logger:         logger,
	}, nil
}

// Register hashes the password, stores the user and issues a token.
//
// Returns:
//   - ErrInvalidDataProvided if e-mail or password is empty, or the password
//     is longer than bcrypt accepts.
//   - a wrapped store.ErrEmailAlreadyExists if the e-mail is taken.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Str("email", credentials.Email).Msg("invalid user data provided")
		return models.AuthResult{}, ErrInvalidDataProvided
	}

	hash, err := a.hashPassword(credentials.Password)
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("error hashing password")
		return models.AuthResult{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        credentials.Email,
		Username:     credentials.Username,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.authResult(user)
}

// Login checks the credentials and issues a token.
//
// Attempts are counted per e-mail before the lookup and forgotten after a
// successful login. Returns:
//   - ratelimit.ErrRateLimitExceeded once the attempts of the window are used up.
//   - ErrWrongCredentials for an unknown e-mail or a wrong password.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := a.checkLoginAttempts(ctx, credentials.Email); err != nil {
		return models.AuthResult{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("email", credentials.Email).Msg("login with unknown email")
		return models.AuthResult{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Info().Int64("id", user.ID).Msg("wrong password")
		return models.AuthResult{}, ErrWrongCredentials
	}

	a.resetLoginAttempts(ctx, credentials.Email)

	return a.authResult(user)
}

func (a *authService) Me(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// ChangePassword replaces the password after checking the current one.
// A wrong current password yields ErrWrongCurrentPassword.
func (a *authService) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, change.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", change.UserID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(change.CurrentPassword)); err != nil {
		log.Info().Int64("user_id", change.UserID).Msg("wrong current password")
		return ErrWrongCurrentPassword
	}

	hash, err := a.hashPassword(change.NewPassword)
	if err != nil {
		return err
	}

	if err = a.userRepository.UpdatePassword(ctx, change.UserID, hash); err != nil {
		log.Err(err).Int64("user_id", change.UserID).Msg("error updating password")
		return fmt.Errorf("error updating password: %w", err)
	}

	return nil
}

// Authenticate verifies tokenString and returns its subject. Errors are the
// token package sentinels, unwrapped, so callers can tell them apart.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (int64, error) {
	claims, err := a.codec.Verify(tokenString)
	if err != nil {
		return 0, err
	}

	return token.UserID(claims)
}

// checkLoginAttempts fails with ratelimit.ErrRateLimitExceeded when the
// e-mail used up its attempts. A limiter outage lets the attempt through.
func (a *authService) checkLoginAttempts(ctx context.Context, email string) error {
	if a.limiter == nil {
		return nil
	}

	err := a.limiter.CheckAndIncrement(ctx, loginKey(email), a.loginAttempts, a.loginWindow)
	switch {
	case errors.Is(err, ratelimit.ErrRateLimitExceeded):
		logger.FromContext(ctx).Warn().Str("email", email).Msg("too many login attempts")
		return err
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("email", email).Msg("rate limiter unavailable")
	}
	return nil
}

func (a *authService) resetLoginAttempts(ctx context.Context, email string) {
	if a.limiter == nil {
		return
	}
	if err := a.limiter.Reset(ctx, loginKey(email)); err != nil {
		logger.FromContext(ctx).Err(err).Str("email", email).Msg("login attempts reset failed")
	}
}

func loginKey(email string) string {
	return loginKeyPrefix + strings.ToLower(email)
}

func (a *authService) authResult(user models.User) (models.AuthResult, error) {
	signed, err := a.codec.Issue(jwt.MapClaims{
		token.ClaimUserID: user.ID,
		token.ClaimEmail:  user.Email,
	}, a.tokenTTL)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	user.PasswordHash = ""
	return models.AuthResult{Token: signed, User: user}, nil
}

func (a *authService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}
