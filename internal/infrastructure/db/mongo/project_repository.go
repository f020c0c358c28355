package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

const projectsCollection = "projects"

type ProjectRepository struct {
	c collection[domain.Project]
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{c: collection[domain.Project]{col: db.Collection(projectsCollection), entity: "Project"}}
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	doc := *p
	doc.ID = newID()
	if err := r.c.insert(ctx, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	return r.c.findByID(ctx, id)
}

func (r *ProjectRepository) List(ctx context.Context, f ports.ProjectFilter) ([]*domain.Project, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	sort := bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	return r.c.find(ctx, filter, findOptions(sort, f.Limit))
}

func (r *ProjectRepository) Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	return r.c.updateByID(ctx, id, projectSet(patch))
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.c.deleteByID(ctx, id)
}

func projectSet(p domain.ProjectPatch) bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.ResponsibleUserID != nil {
		set["responsible_user_id"] = *p.ResponsibleUserID
	}
	return set
}
