package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

// IdentityResolver maps a bearer token to the stored user it names.
type IdentityResolver struct {
	tokens ports.TokenVerifier
	users  ports.UserRepository
	log    zerolog.Logger
}

func NewIdentityResolver(tokens ports.TokenVerifier, users ports.UserRepository, log zerolog.Logger) *IdentityResolver {
	return &IdentityResolver{tokens: tokens, users: users, log: log}
}

var _ ports.IdentityResolver = (*IdentityResolver)(nil)

// Resolve fails with domain.ErrUnauthenticated when the token does not
// verify or its subject no longer exists. Store failures are returned as is.
func (r *IdentityResolver) Resolve(ctx context.Context, token string) (*domain.Principal, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	claims, err := r.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := r.users.FindByEmail(ctx, domain.NormalizeEmail(claims.Subject))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.log.Debug().Msg("token subject no longer resolves")
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("resolve identity: %w", err)
	}

	return domain.NewPrincipal(user), nil
}
