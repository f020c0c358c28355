package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

// MetricService keeps the named key figures shown on the dashboard.
type MetricService struct {
	repo ports.MetricRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewMetricService(repo ports.MetricRepository, log zerolog.Logger) *MetricService {
	return &MetricService{repo: repo, log: log, now: time.Now}
}

var _ ports.MetricService = (*MetricService)(nil)

func (s *MetricService) List(ctx context.Context) ([]*domain.Metric, error) {
	return s.repo.List(ctx)
}

func (s *MetricService) Create(ctx context.Context, m *domain.Metric) (*domain.Metric, error) {
	if m.Name == "" {
		return nil, domain.Invalid("name is required")
	}
	m.UpdatedAt = s.now().UTC()
	created, err := s.repo.Create(ctx, m)
	if errors.Is(err, domain.ErrConflict) {
		return nil, domain.Conflict("Metric %q already exists", m.Name)
	}
	return created, err
}

func (s *MetricService) Update(ctx context.Context, id string, patch domain.MetricPatch) (*domain.Metric, error) {
	updated, err := s.repo.Update(ctx, id, patch, s.now().UTC())
	if errors.Is(err, domain.ErrConflict) {
		return nil, domain.Conflict("Metric name already exists")
	}
	return updated, err
}

func (s *MetricService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// SystemStatusService tracks the health label of external systems.
type SystemStatusService struct {
	repo ports.SystemStatusRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewSystemStatusService(repo ports.SystemStatusRepository, log zerolog.Logger) *SystemStatusService {
	return &SystemStatusService{repo: repo, log: log, now: time.Now}
}

var _ ports.SystemStatusService = (*SystemStatusService)(nil)

func (s *SystemStatusService) List(ctx context.Context) ([]*domain.SystemStatus, error) {
	return s.repo.List(ctx)
}

func (s *SystemStatusService) Create(ctx context.Context, st *domain.SystemStatus) (*domain.SystemStatus, error) {
	if st.Service == "" {
		return nil, domain.Invalid("service is required")
	}
	if !st.Status.Valid() {
		return nil, domain.Invalid("unknown status %q", st.Status)
	}
	st.UpdatedAt = s.now().UTC()
	created, err := s.repo.Create(ctx, st)
	if errors.Is(err, domain.ErrConflict) {
		return nil, domain.Conflict("Service %q already tracked", st.Service)
	}
	return created, err
}

func (s *SystemStatusService) Update(ctx context.Context, id string, patch domain.SystemStatusPatch) (*domain.SystemStatus, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domain.Invalid("unknown status %q", *patch.Status)
	}
	updated, err := s.repo.Update(ctx, id, patch, s.now().UTC())
	if errors.Is(err, domain.ErrConflict) {
		return nil, domain.Conflict("Service already tracked")
	}
	if err == nil && patch.Status != nil {
		s.log.Info().Str("service", updated.Service).Str("status", string(updated.Status)).Msg("system status changed")
	}
	return updated, err
}

func (s *SystemStatusService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
