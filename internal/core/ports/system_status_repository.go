package ports

import (
	"context"
	"time"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

type SystemStatusRepository interface {
	Create(ctx context.Context, s *domain.SystemStatus) (*domain.SystemStatus, error)
	FindByID(ctx context.Context, id string) (*domain.SystemStatus, error)
	// List orders by service name ascending.
	List(ctx context.Context) ([]*domain.SystemStatus, error)
	Update(ctx context.Context, id string, patch domain.SystemStatusPatch, at time.Time) (*domain.SystemStatus, error)
	Delete(ctx context.Context, id string) error
}
