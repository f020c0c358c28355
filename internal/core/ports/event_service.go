package ports

import (
	"context"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

type EventService interface {
	List(ctx context.Context, f EventFilter) ([]*domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	// Create defaults CreatedBy to the caller when unset.
	Create(ctx context.Context, p *domain.Principal, e *domain.Event) (*domain.Event, error)
	Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}
