package main

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wfl/dashboard-api/internal/app"
	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
	"github.com/wfl/dashboard-api/internal/core/service"
	"github.com/wfl/dashboard-api/internal/infrastructure/db/memory"
)

func newSeeder(store *memory.Store) seeder {
	return seeder{
		repos:  app.MemoryRepositories(store),
		hasher: service.BcryptHasher{Cost: bcrypt.MinCost},
		now:    time.Date(2030, 6, 1, 8, 0, 0, 0, time.UTC),
		log:    zerolog.Nop(),
	}
}

func TestSeed_PopulatesEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, newSeeder(store).run(ctx, "admin-password", "user-password"))

	users, err := store.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)

	admin, err := store.Users.FindByEmail(ctx, adminEmail)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin-password")))

	projects, err := store.Projects.List(ctx, ports.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "Sommerfest", projects[0].Title)

	statuses, err := store.SystemStatus.List(ctx)
	require.NoError(t, err)
	assert.Len(t, statuses, 4)

	done, err := store.Tasks.List(ctx, ports.TaskFilter{Status: domain.TaskDone})
	require.NoError(t, err)
	assert.Len(t, done, 1)
}

func TestSeed_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	s := newSeeder(store)

	require.NoError(t, s.run(ctx, "admin-password", "user-password"))
	require.NoError(t, s.run(ctx, "admin-password", "user-password"))

	rooms, err := store.Rooms.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 3)
}
