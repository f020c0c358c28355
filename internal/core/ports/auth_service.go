package ports

import (
	"context"
	"time"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

type AccessToken struct {
	Token     string
	TokenType string
	ExpiresAt time.Time
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*AccessToken, error)
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error)
}

// TokenClaims are the verified contents of an access token.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

type TokenIssuer interface {
	// Issue signs a token for subject. A non-positive ttl selects the
	// configured default.
	Issue(subject string, ttl time.Duration) (string, time.Time, error)
}

type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// IdentityResolver turns a bearer token into the calling principal.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Principal, error)
}
