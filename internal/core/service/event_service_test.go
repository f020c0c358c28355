package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
	"github.com/wfl/dashboard-api/internal/infrastructure/db/memory"
)

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	svc := NewEventService(st.Events, st.Rooms, zerolog.Nop())
	caller := &domain.Principal{UserID: "u1", Role: domain.RoleTeam}
	start := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)

	room, err := st.Rooms.Create(ctx, &domain.Room{Name: "Aula"})
	require.NoError(t, err)

	e, err := svc.Create(ctx, caller, &domain.Event{Title: "Plenum", RoomID: room.ID, Start: start, End: start.Add(time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, "u1", e.CreatedBy)

	_, err = svc.Create(ctx, caller, &domain.Event{Title: "Backwards", RoomID: room.ID, Start: start, End: start.Add(-time.Hour)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(ctx, caller, &domain.Event{Title: "Nowhere", RoomID: "999", Start: start, End: start})
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Room", nf.Entity)

	_, err = svc.Update(ctx, e.ID, domain.EventPatch{End: ptr(start.Add(-time.Minute))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewsService_ListLimit(t *testing.T) {
	svc := NewNewsService(memory.NewStore().News, zerolog.Nop())

	_, err := svc.List(context.Background(), newsFilter(101))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.List(context.Background(), newsFilter(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.List(context.Background(), newsFilter(0))
	assert.NoError(t, err)
}

func newsFilter(limit int) ports.NewsFilter { return ports.NewsFilter{Limit: limit} }
