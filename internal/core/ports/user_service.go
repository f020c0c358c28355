package ports

import (
	"context"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, p *domain.Principal, id string) (*domain.User, error)
	Update(ctx context.Context, p *domain.Principal, id string, patch domain.UserPatch) (*domain.User, error)
	ChangePassword(ctx context.Context, p *domain.Principal, id, password string) error
	Delete(ctx context.Context, id string) error
}
