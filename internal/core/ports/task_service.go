package ports

import (
	"context"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

type TaskService interface {
	List(ctx context.Context, f TaskFilter) ([]*domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	Create(ctx context.Context, p *domain.Principal, t *domain.Task) (*domain.Task, error)
	// Update applies the task ownership rule before touching the store.
	Update(ctx context.Context, p *domain.Principal, id string, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
