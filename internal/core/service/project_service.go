package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

type ProjectService struct {
	repo ports.ProjectRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewProjectService(repo ports.ProjectRepository, log zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, log: log, now: time.Now}
}

var _ ports.ProjectService = (*ProjectService)(nil)

func (s *ProjectService) List(ctx context.Context, f ports.ProjectFilter) ([]*domain.Project, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, domain.Invalid("unknown project status %q", f.Status)
	}
	return s.repo.List(ctx, f)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if p.Title == "" {
		return nil, domain.Invalid("title is required")
	}
	if p.Status == "" {
		p.Status = domain.ProjectGreen
	}
	if !p.Status.Valid() {
		return nil, domain.Invalid("unknown project status %q", p.Status)
	}
	p.CreatedAt = s.now().UTC()

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("project_id", created.ID).Msg("project created")
	return created, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domain.Invalid("unknown project status %q", *patch.Status)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
