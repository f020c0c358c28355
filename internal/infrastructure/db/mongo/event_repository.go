package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

const eventsCollection = "events"

// EventRepository implements ports.EventRepository using MongoDB.
type EventRepository struct {
	c collection[domain.Event]
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{c: collection[domain.Event]{col: db.Collection(eventsCollection), entity: "Event"}}
}

var _ ports.EventRepository = (*EventRepository)(nil)

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	doc := *e
	doc.ID = newID()
	if err := r.c.insert(ctx, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	return r.c.findByID(ctx, id)
}

func (r *EventRepository) List(ctx context.Context, f ports.EventFilter) ([]*domain.Event, error) {
	sort := bson.D{{Key: "start", Value: 1}, {Key: "_id", Value: 1}}
	return r.c.find(ctx, eventFilter(f), findOptions(sort, f.Limit))
}

func (r *EventRepository) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Start != nil {
		set["start"] = *patch.Start
	}
	if patch.End != nil {
		set["end"] = *patch.End
	}
	if patch.RoomID != nil {
		set["room_id"] = *patch.RoomID
	}
	if patch.IsPublic != nil {
		set["is_public"] = *patch.IsPublic
	}
	if patch.ProjectID != nil {
		set["project_id"] = *patch.ProjectID
	}
	return r.c.updateByID(ctx, id, set)
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	return r.c.deleteByID(ctx, id)
}

func eventFilter(f ports.EventFilter) bson.M {
	filter := bson.M{}
	start := bson.M{}
	if !f.StartFrom.IsZero() {
		start["$gte"] = f.StartFrom
	}
	if !f.StartTo.IsZero() {
		start["$lte"] = f.StartTo
	}
	if len(start) > 0 {
		filter["start"] = start
	}
	if f.RoomID != "" {
		filter["room_id"] = f.RoomID
	}
	if f.ProjectID != "" {
		filter["project_id"] = f.ProjectID
	}
	return filter
}
