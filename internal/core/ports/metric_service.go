package ports

import (
	"context"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

type MetricService interface {
	List(ctx context.Context) ([]*domain.Metric, error)
	Create(ctx context.Context, m *domain.Metric) (*domain.Metric, error)
	Update(ctx context.Context, id string, patch domain.MetricPatch) (*domain.Metric, error)
	Delete(ctx context.Context, id string) error
}

type SystemStatusService interface {
	List(ctx context.Context) ([]*domain.SystemStatus, error)
	Create(ctx context.Context, s *domain.SystemStatus) (*domain.SystemStatus, error)
	Update(ctx context.Context, id string, patch domain.SystemStatusPatch) (*domain.SystemStatus, error)
	Delete(ctx context.Context, id string) error
}
