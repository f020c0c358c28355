package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique keys and the sort indexes the
// repositories rely on. Safe to run on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		roomsCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
		metricsCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
		systemStatusCollection: {
			{Keys: bson.D{{Key: "service", Value: 1}}, Options: unique},
		},
		projectsCollection: {
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		newsCollection: {
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "tags", Value: 1}}},
		},
		eventsCollection: {
			{Keys: bson.D{{Key: "start", Value: 1}}},
			{Keys: bson.D{{Key: "room_id", Value: 1}}},
		},
		tasksCollection: {
			{Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "assignee_id", Value: 1}}},
		},
		auditCollection: {
			{Keys: bson.D{{Key: "at", Value: -1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", name, err)
		}
	}
	return nil
}
