package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

const tasksCollection = "tasks"

type TaskRepository struct {
	c collection[domain.Task]
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{c: collection[domain.Task]{col: db.Collection(tasksCollection), entity: "Task"}}
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	doc := *t
	doc.ID = newID()
	if err := r.c.insert(ctx, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	return r.c.findByID(ctx, id)
}

// List relies on missing due_date sorting ahead of any date.
func (r *TaskRepository) List(ctx context.Context, f ports.TaskFilter) ([]*domain.Task, error) {
	sort := bson.D{
		{Key: "due_date", Value: 1},
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	}
	return r.c.find(ctx, taskFilter(f), findOptions(sort, 0))
}

func (r *TaskRepository) CountByStatus(ctx context.Context, projectID string) (map[domain.TaskStatus]int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"project_id": projectID}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.M{"$sum": 1}},
		}}},
	}
	cur, err := r.c.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}

	var rows []struct {
		Status domain.TaskStatus `bson:"_id"`
		Count  int               `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode task counts: %w", err)
	}

	out := make(map[domain.TaskStatus]int, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

func (r *TaskRepository) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	return r.c.updateByID(ctx, id, taskSet(patch))
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.c.deleteByID(ctx, id)
}

func taskFilter(f ports.TaskFilter) bson.M {
	filter := bson.M{}
	if f.AssigneeID != "" {
		filter["assignee_id"] = f.AssigneeID
	}
	if f.ProjectID != "" {
		filter["project_id"] = f.ProjectID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

func taskSet(p domain.TaskPatch) bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.ProjectID != nil {
		set["project_id"] = *p.ProjectID
	}
	if p.AssigneeID != nil {
		set["assignee_id"] = *p.AssigneeID
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.DueDate != nil {
		set["due_date"] = *p.DueDate
	}
	return set
}
