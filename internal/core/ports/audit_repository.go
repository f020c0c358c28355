package ports

import (
	"context"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}
