package ports

import (
	"context"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

type ProjectService interface {
	List(ctx context.Context, f ProjectFilter) ([]*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
