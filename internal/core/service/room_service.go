package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

type RoomService struct {
	repo ports.RoomRepository
	log  zerolog.Logger
}

func NewRoomService(repo ports.RoomRepository, log zerolog.Logger) *RoomService {
	return &RoomService{repo: repo, log: log}
}

var _ ports.RoomService = (*RoomService)(nil)

func (s *RoomService) List(ctx context.Context) ([]*domain.Room, error) {
	return s.repo.List(ctx)
}

func (s *RoomService) Get(ctx context.Context, id string) (*domain.Room, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoomService) Create(ctx context.Context, r *domain.Room) (*domain.Room, error) {
	if r.Name == "" {
		return nil, domain.Invalid("name is required")
	}
	if r.Capacity != nil && *r.Capacity < 0 {
		return nil, domain.Invalid("capacity must not be negative")
	}
	created, err := s.repo.Create(ctx, r)
	if errors.Is(err, domain.ErrConflict) {
		return nil, domain.Conflict("Room name already exists")
	}
	return created, err
}

func (s *RoomService) Update(ctx context.Context, id string, patch domain.RoomPatch) (*domain.Room, error) {
	if patch.Capacity != nil && *patch.Capacity < 0 {
		return nil, domain.Invalid("capacity must not be negative")
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, domain.ErrConflict) {
		return nil, domain.Conflict("Room name already exists")
	}
	return updated, err
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
