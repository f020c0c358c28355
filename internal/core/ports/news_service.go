package ports

import (
	"context"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

type NewsService interface {
	List(ctx context.Context, f NewsFilter) ([]*domain.News, error)
	Get(ctx context.Context, id string) (*domain.News, error)
	// Create records the caller as author.
	Create(ctx context.Context, p *domain.Principal, n *domain.News) (*domain.News, error)
	Update(ctx context.Context, id string, patch domain.NewsPatch) (*domain.News, error)
	Delete(ctx context.Context, id string) error
}
