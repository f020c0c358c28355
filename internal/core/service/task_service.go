package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/policy"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

type TaskService struct {
	repo ports.TaskRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewTaskService(repo ports.TaskRepository, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, log: log, now: time.Now}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) List(ctx context.Context, f ports.TaskFilter) ([]*domain.Task, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, domain.Invalid("unknown task status %q", f.Status)
	}
	return s.repo.List(ctx, f)
}

func (s *TaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) Create(ctx context.Context, p *domain.Principal, t *domain.Task) (*domain.Task, error) {
	if t.Title == "" {
		return nil, domain.Invalid("title is required")
	}
	if t.Status == "" {
		t.Status = domain.TaskOpen
	}
	if !t.Status.Valid() {
		return nil, domain.Invalid("unknown task status %q", t.Status)
	}
	t.CreatedBy = p.UserID
	t.CreatedAt = s.now().UTC()

	return s.repo.Create(ctx, t)
}

func (s *TaskService) Update(ctx context.Context, p *domain.Principal, id string, patch domain.TaskPatch) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanUpdateTask(p, task, patch); err != nil {
		return nil, err
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domain.Invalid("unknown task status %q", *patch.Status)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if patch.Status != nil && *patch.Status != task.Status {
		s.log.Info().
			Str("task_id", id).
			Str("from", string(task.Status)).
			Str("to", string(*patch.Status)).
			Msg("task status changed")
	}
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
