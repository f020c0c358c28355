package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/infrastructure/db/memory"
)

// ---------------------------------------------------------------------------
// Shared fixtures
// ---------------------------------------------------------------------------

var fastHasher = BcryptHasher{Cost: bcrypt.MinCost}

func newTestCreds(t *testing.T, st *memory.Store) *CredentialStore {
	t.Helper()
	creds, err := NewCredentialStore(st.Users, fastHasher, zerolog.Nop())
	require.NoError(t, err)
	return creds
}

func seedUser(t *testing.T, st *memory.Store, creds *CredentialStore, email, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := creds.Hash(password)
	require.NoError(t, err)
	u, err := st.Users.Create(context.Background(), &domain.User{Name: email, Email: email, PasswordHash: hash, Role: role})
	require.NoError(t, err)
	return u
}

func ptr[T any](v T) *T { return &v }
