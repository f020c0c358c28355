package ports

import (
	"context"
	"time"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

type NewsFilter struct {
	ProjectID string
	Tag       string
	IsPublic  *bool
	Since     time.Time
	Limit     int
}

type NewsRepository interface {
	Create(ctx context.Context, n *domain.News) (*domain.News, error)
	FindByID(ctx context.Context, id string) (*domain.News, error)
	// List orders by created_at descending.
	List(ctx context.Context, f NewsFilter) ([]*domain.News, error)
	Update(ctx context.Context, id string, patch domain.NewsPatch) (*domain.News, error)
	Delete(ctx context.Context, id string) error
}
