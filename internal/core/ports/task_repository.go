package ports

import (
	"context"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

type TaskFilter struct {
	AssigneeID string
	ProjectID  string
	Status     domain.TaskStatus
}

type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// List orders by due date ascending (undated first), then created_at
	// descending.
	List(ctx context.Context, f TaskFilter) ([]*domain.Task, error)
	// CountByStatus groups a project's tasks by status. Statuses without
	// tasks may be absent from the result.
	CountByStatus(ctx context.Context, projectID string) (map[domain.TaskStatus]int, error)
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
