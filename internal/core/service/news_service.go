package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

const (
	defaultNewsLimit = 20
	maxNewsLimit     = 100
)

type NewsService struct {
	repo ports.NewsRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewNewsService(repo ports.NewsRepository, log zerolog.Logger) *NewsService {
	return &NewsService{repo: repo, log: log, now: time.Now}
}

var _ ports.NewsService = (*NewsService)(nil)

func (s *NewsService) List(ctx context.Context, f ports.NewsFilter) ([]*domain.News, error) {
	switch {
	case f.Limit == 0:
		f.Limit = defaultNewsLimit
	case f.Limit < 1 || f.Limit > maxNewsLimit:
		return nil, domain.Invalid("limit must be between 1 and %d", maxNewsLimit)
	}
	return s.repo.List(ctx, f)
}

func (s *NewsService) Get(ctx context.Context, id string) (*domain.News, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *NewsService) Create(ctx context.Context, p *domain.Principal, n *domain.News) (*domain.News, error) {
	if n.Title == "" || n.Body == "" {
		return nil, domain.Invalid("title and body are required")
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	n.AuthorID = p.UserID
	n.CreatedAt = s.now().UTC()

	created, err := s.repo.Create(ctx, n)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("news_id", created.ID).Str("author_id", p.UserID).Msg("news published")
	return created, nil
}

func (s *NewsService) Update(ctx context.Context, id string, patch domain.NewsPatch) (*domain.News, error) {
	return s.repo.Update(ctx, id, patch)
}

func (s *NewsService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
