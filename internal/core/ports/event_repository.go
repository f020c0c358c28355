package ports

import (
	"context"
	"time"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

// EventFilter bounds are inclusive; zero values are ignored.
type EventFilter struct {
	StartFrom time.Time
	StartTo   time.Time
	RoomID    string
	ProjectID string
	Limit     int
}

type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	// List orders by start ascending.
	List(ctx context.Context, f EventFilter) ([]*domain.Event, error)
	Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}
