package ports

import (
	"context"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

type RoomService interface {
	List(ctx context.Context) ([]*domain.Room, error)
	Get(ctx context.Context, id string) (*domain.Room, error)
	Create(ctx context.Context, r *domain.Room) (*domain.Room, error)
	Update(ctx context.Context, id string, patch domain.RoomPatch) (*domain.Room, error)
	Delete(ctx context.Context, id string) error
}
