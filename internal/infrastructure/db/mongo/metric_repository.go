package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

const (
	metricsCollection      = "metrics"
	systemStatusCollection = "system_status"
)

type MetricRepository struct {
	c collection[domain.Metric]
}

func NewMetricRepository(db *mongo.Database) *MetricRepository {
	return &MetricRepository{c: collection[domain.Metric]{
		col:      db.Collection(metricsCollection),
		entity:   "Metric",
		conflict: "Metric name already exists",
	}}
}

var _ ports.MetricRepository = (*MetricRepository)(nil)

func (r *MetricRepository) Create(ctx context.Context, m *domain.Metric) (*domain.Metric, error) {
	doc := *m
	doc.ID = newID()
	if err := r.c.insert(ctx, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *MetricRepository) FindByID(ctx context.Context, id string) (*domain.Metric, error) {
	return r.c.findByID(ctx, id)
}

func (r *MetricRepository) List(ctx context.Context) ([]*domain.Metric, error) {
	return r.c.find(ctx, bson.M{}, findOptions(bson.D{{Key: "name", Value: 1}}, 0))
}

func (r *MetricRepository) Update(ctx context.Context, id string, patch domain.MetricPatch, at time.Time) (*domain.Metric, error) {
	set := bson.M{"updated_at": at}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Value != nil {
		set["value"] = *patch.Value
	}
	return r.c.updateByID(ctx, id, set)
}

func (r *MetricRepository) Delete(ctx context.Context, id string) error {
	return r.c.deleteByID(ctx, id)
}

type SystemStatusRepository struct {
	c collection[domain.SystemStatus]
}

func NewSystemStatusRepository(db *mongo.Database) *SystemStatusRepository {
	return &SystemStatusRepository{c: collection[domain.SystemStatus]{
		col:      db.Collection(systemStatusCollection),
		entity:   "System status",
		conflict: "Service already tracked",
	}}
}

var _ ports.SystemStatusRepository = (*SystemStatusRepository)(nil)

func (r *SystemStatusRepository) Create(ctx context.Context, s *domain.SystemStatus) (*domain.SystemStatus, error) {
	doc := *s
	doc.ID = newID()
	if err := r.c.insert(ctx, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *SystemStatusRepository) FindByID(ctx context.Context, id string) (*domain.SystemStatus, error) {
	return r.c.findByID(ctx, id)
}

func (r *SystemStatusRepository) List(ctx context.Context) ([]*domain.SystemStatus, error) {
	return r.c.find(ctx, bson.M{}, findOptions(bson.D{{Key: "service", Value: 1}}, 0))
}

func (r *SystemStatusRepository) Update(ctx context.Context, id string, patch domain.SystemStatusPatch, at time.Time) (*domain.SystemStatus, error) {
	set := bson.M{"updated_at": at}
	if patch.Service != nil {
		set["service"] = *patch.Service
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Message != nil {
		set["message"] = *patch.Message
	}
	return r.c.updateByID(ctx, id, set)
}

func (r *SystemStatusRepository) Delete(ctx context.Context, id string) error {
	return r.c.deleteByID(ctx, id)
}
