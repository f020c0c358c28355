package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

// collection wraps a mongo collection holding documents that decode into T.
// Ids are ObjectID hex strings generated on insert, so sorting on _id
// follows insertion order.
type collection[T any] struct {
	col      *mongo.Collection
	entity   string
	conflict string
}

func newID() string { return primitive.NewObjectID().Hex() }

func (c collection[T]) insert(ctx context.Context, doc *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := c.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Conflict("%s", c.conflict)
		}
		return fmt.Errorf("insert %s: %w", c.entity, err)
	}
	return nil
}

func (c collection[T]) findOne(ctx context.Context, filter any) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var v T
	if err := c.col.FindOne(ctx, filter).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound(c.entity)
		}
		return nil, fmt.Errorf("find %s: %w", c.entity, err)
	}
	return &v, nil
}

func (c collection[T]) findByID(ctx context.Context, id string) (*T, error) {
	return c.findOne(ctx, bson.M{"_id": id})
}

func (c collection[T]) find(ctx context.Context, filter any, opts *options.FindOptions) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := c.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.entity, err)
	}
	var rows []T
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.entity, err)
	}

	out := make([]*T, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

// updateByID applies set and returns the document after the update. An
// empty set only checks existence.
func (c collection[T]) updateByID(ctx context.Context, id string, set bson.M) (*T, error) {
	if len(set) == 0 {
		return c.findByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var v T
	err := c.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&v)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, domain.NotFound(c.entity)
	case mongo.IsDuplicateKeyError(err):
		return nil, domain.Conflict("%s", c.conflict)
	case err != nil:
		return nil, fmt.Errorf("update %s: %w", c.entity, err)
	}
	return &v, nil
}

func (c collection[T]) deleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := c.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", c.entity, err)
	}
	if res.DeletedCount == 0 {
		return domain.NotFound(c.entity)
	}
	return nil
}

// findOptions builds sorted, optionally limited find options.
func findOptions(sort bson.D, limit int) *options.FindOptions {
	opts := options.Find().SetSort(sort)
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return opts
}
