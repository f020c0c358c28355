package ports

import (
	"context"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, r *domain.Room) (*domain.Room, error)
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	FindByName(ctx context.Context, name string) (*domain.Room, error)
	// List orders by name ascending.
	List(ctx context.Context) ([]*domain.Room, error)
	Update(ctx context.Context, id string, patch domain.RoomPatch) (*domain.Room, error)
	Delete(ctx context.Context, id string) error
}
