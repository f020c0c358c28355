package ports

import (
	"context"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

type ProjectFilter struct {
	Status domain.ProjectStatus
	Limit  int
}

type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// List orders newest first; projects created at the same instant are
	// ordered by insertion, later first.
	List(ctx context.Context, f ProjectFilter) ([]*domain.Project, error)
	Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
