package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

// EventService schedules events in rooms.
type EventService struct {
	repo  ports.EventRepository
	rooms ports.RoomRepository
	log   zerolog.Logger
}

func NewEventService(repo ports.EventRepository, rooms ports.RoomRepository, log zerolog.Logger) *EventService {
	return &EventService{repo: repo, rooms: rooms, log: log}
}

var _ ports.EventService = (*EventService)(nil)

func (s *EventService) List(ctx context.Context, f ports.EventFilter) ([]*domain.Event, error) {
	if !f.StartFrom.IsZero() && !f.StartTo.IsZero() && f.StartTo.Before(f.StartFrom) {
		return nil, domain.Invalid("start_to precedes start_from")
	}
	return s.repo.List(ctx, f)
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventService) Create(ctx context.Context, p *domain.Principal, e *domain.Event) (*domain.Event, error) {
	if e.Title == "" || e.RoomID == "" {
		return nil, domain.Invalid("title and room_id are required")
	}
	if err := s.validate(ctx, *e); err != nil {
		return nil, err
	}
	if e.CreatedBy == "" {
		e.CreatedBy = p.UserID
	}

	created, err := s.repo.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("event_id", created.ID).Str("room_id", created.RoomID).Msg("event scheduled")
	return created, nil
}

func (s *EventService) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, patch.Apply(*current)); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *EventService) validate(ctx context.Context, e domain.Event) error {
	if e.End.Before(e.Start) {
		return domain.Invalid("end must not precede start")
	}
	if _, err := s.rooms.FindByID(ctx, e.RoomID); err != nil {
		return fmt.Errorf("event room: %w", err)
	}
	return nil
}
