package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

// PasswordHasher is a one-way salted password hash.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) bool
}

// BcryptHasher hashes with bcrypt at the given cost.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(plaintext string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domain.Invalid("password must be at most 72 bytes")
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func (BcryptHasher) Compare(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// CredentialStore verifies email/password pairs against stored hashes.
type CredentialStore struct {
	users  ports.UserRepository
	hasher PasswordHasher
	log    zerolog.Logger
	// decoy is compared when no user matches so that a miss costs the same
	// as a wrong password.
	decoy string
}

func NewCredentialStore(users ports.UserRepository, hasher PasswordHasher, log zerolog.Logger) (*CredentialStore, error) {
	decoy, err := hasher.Hash("decoy-password-never-matches")
	if err != nil {
		return nil, err
	}
	return &CredentialStore{users: users, hasher: hasher, log: log, decoy: decoy}, nil
}

func (s *CredentialStore) Hash(plaintext string) (string, error) {
	return s.hasher.Hash(plaintext)
}

// Verify returns the matching user, or false. Unknown email, wrong password
// and lookup failures are indistinguishable to the caller.
func (s *CredentialStore) Verify(ctx context.Context, email, plaintext string) (*domain.User, bool) {
	user, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Error().Err(err).Msg("credential lookup failed")
		}
		s.hasher.Compare(s.decoy, plaintext)
		return nil, false
	}
	if !s.hasher.Compare(user.PasswordHash, plaintext) {
		return nil, false
	}
	return user, true
}
