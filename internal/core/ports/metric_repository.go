package ports

import (
	"context"
	"time"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

type MetricRepository interface {
	Create(ctx context.Context, m *domain.Metric) (*domain.Metric, error)
	FindByID(ctx context.Context, id string) (*domain.Metric, error)
	// List orders by name ascending.
	List(ctx context.Context) ([]*domain.Metric, error)
	Update(ctx context.Context, id string, patch domain.MetricPatch, at time.Time) (*domain.Metric, error)
	Delete(ctx context.Context, id string) error
}
