package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

const newsCollection = "news"

type NewsRepository struct {
	c collection[domain.News]
}

func NewNewsRepository(db *mongo.Database) *NewsRepository {
	return &NewsRepository{c: collection[domain.News]{col: db.Collection(newsCollection), entity: "News"}}
}

var _ ports.NewsRepository = (*NewsRepository)(nil)

func (r *NewsRepository) Create(ctx context.Context, n *domain.News) (*domain.News, error) {
	doc := n.Clone()
	doc.ID = newID()
	if err := r.c.insert(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *NewsRepository) FindByID(ctx context.Context, id string) (*domain.News, error) {
	return r.c.findByID(ctx, id)
}

func (r *NewsRepository) List(ctx context.Context, f ports.NewsFilter) ([]*domain.News, error) {
	sort := bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	return r.c.find(ctx, newsFilter(f), findOptions(sort, f.Limit))
}

func (r *NewsRepository) Update(ctx context.Context, id string, patch domain.NewsPatch) (*domain.News, error) {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Body != nil {
		set["body"] = *patch.Body
	}
	if patch.Tags != nil {
		set["tags"] = *patch.Tags
	}
	if patch.IsPublic != nil {
		set["is_public"] = *patch.IsPublic
	}
	if patch.ProjectID != nil {
		set["project_id"] = *patch.ProjectID
	}
	return r.c.updateByID(ctx, id, set)
}

func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	return r.c.deleteByID(ctx, id)
}

func newsFilter(f ports.NewsFilter) bson.M {
	filter := bson.M{}
	if f.ProjectID != "" {
		filter["project_id"] = f.ProjectID
	}
	if f.Tag != "" {
		filter["tags"] = f.Tag
	}
	if f.IsPublic != nil {
		filter["is_public"] = *f.IsPublic
	}
	if !f.Since.IsZero() {
		filter["created_at"] = bson.M{"$gte": f.Since}
	}
	return filter
}
