package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

const roomsCollection = "rooms"

type RoomRepository struct {
	c collection[domain.Room]
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{c: collection[domain.Room]{
		col:      db.Collection(roomsCollection),
		entity:   "Room",
		conflict: "Room name already exists",
	}}
}

var _ ports.RoomRepository = (*RoomRepository)(nil)

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	doc := *room
	doc.ID = newID()
	if err := r.c.insert(ctx, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	return r.c.findByID(ctx, id)
}

func (r *RoomRepository) FindByName(ctx context.Context, name string) (*domain.Room, error) {
	return r.c.findOne(ctx, bson.M{"name": name})
}

func (r *RoomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	return r.c.find(ctx, bson.M{}, findOptions(bson.D{{Key: "name", Value: 1}}, 0))
}

func (r *RoomRepository) Update(ctx context.Context, id string, patch domain.RoomPatch) (*domain.Room, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Capacity != nil {
		set["capacity"] = *patch.Capacity
	}
	return r.c.updateByID(ctx, id, set)
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	return r.c.deleteByID(ctx, id)
}
