package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/policy"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

const minPasswordChangeLen = 12

type UserService struct {
	users ports.UserRepository
	creds *CredentialStore
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, creds *CredentialStore, log zerolog.Logger) *UserService {
	return &UserService{users: users, creds: creds, log: log}
}

var _ ports.UserService = (*UserService)(nil)

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, p *domain.Principal, id string) (*domain.User, error) {
	if err := policy.CanViewUser(p, id); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

// Update loads the target first so a missing user reports 404 ahead of the
// ownership decision.
func (s *UserService) Update(ctx context.Context, p *domain.Principal, id string, patch domain.UserPatch) (*domain.User, error) {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := policy.CanUpdateUser(p, id, patch); err != nil {
		return nil, err
	}
	if patch.Role != nil && !patch.Role.Valid() {
		return nil, domain.Invalid("unknown role %q", *patch.Role)
	}

	updated, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}
	if patch.Role != nil {
		s.log.Info().Str("user_id", id).Str("role", string(*patch.Role)).Str("by", p.UserID).Msg("role changed")
	}
	return updated, nil
}

func (s *UserService) ChangePassword(ctx context.Context, p *domain.Principal, id, password string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	if err := policy.CanChangePassword(p, id); err != nil {
		return err
	}
	if len(password) < minPasswordChangeLen {
		return domain.Invalid("password must be at least %d characters", minPasswordChangeLen)
	}

	hash, err := s.creds.Hash(password)
	if err != nil {
		return err
	}
	if err := s.users.SetPasswordHash(ctx, id, hash); err != nil {
		return fmt.Errorf("set password %s: %w", id, err)
	}
	s.log.Info().Str("user_id", id).Str("by", p.UserID).Msg("password changed")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
