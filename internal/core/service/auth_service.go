package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

const minAccountPasswordLen = 8

// LoginThrottle counts failed logins per email. Implementations must treat
// their own failures as non-fatal for the caller.
type LoginThrottle interface {
	Allowed(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

type nopThrottle struct{}

func (nopThrottle) Allowed(context.Context, string) (bool, error) { return true, nil }
func (nopThrottle) RecordFailure(context.Context, string) error  { return nil }
func (nopThrottle) Reset(context.Context, string) error          { return nil }

// AuthService implements login and account creation.
type AuthService struct {
	creds    *CredentialStore
	users    ports.UserRepository
	tokens   ports.TokenIssuer
	throttle LoginThrottle
	log      zerolog.Logger
	now      func() time.Time
}

// NewAuthService wires the auth flow. A nil throttle disables throttling.
func NewAuthService(creds *CredentialStore, users ports.UserRepository, tokens ports.TokenIssuer, throttle LoginThrottle, log zerolog.Logger) *AuthService {
	if throttle == nil {
		throttle = nopThrottle{}
	}
	return &AuthService{
		creds:    creds,
		users:    users,
		tokens:   tokens,
		throttle: throttle,
		log:      log,
		now:      time.Now,
	}
}

var _ ports.AuthService = (*AuthService)(nil)

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AccessToken, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	allowed, err := s.throttle.Allowed(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Msg("login throttle unavailable")
	} else if !allowed {
		return nil, domain.ErrTooManyAttempts
	}

	user, ok := s.creds.Verify(ctx, email, password)
	if !ok {
		if err := s.throttle.RecordFailure(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("record failed login")
		}
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.throttle.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("reset login throttle")
	}

	token, exp, err := s.tokens.Issue(user.Email, 0)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return &ports.AccessToken{Token: token, TokenType: "bearer", ExpiresAt: exp}, nil
}

func (s *AuthService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	email := domain.NormalizeEmail(in.Email)
	if email == "" || in.Name == "" {
		return nil, domain.Invalid("name and email are required")
	}
	if len(in.Password) < minAccountPasswordLen {
		return nil, domain.Invalid("password must be at least %d characters", minAccountPasswordLen)
	}
	if !in.Role.Valid() {
		return nil, domain.Invalid("unknown role %q", in.Role)
	}

	hash, err := s.creds.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.Conflict("Email already registered")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}
