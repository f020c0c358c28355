package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

const usersCollection = "users"

type UserRepository struct {
	c collection[domain.User]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{c: collection[domain.User]{
		col:      db.Collection(usersCollection),
		entity:   "User",
		conflict: "Email already registered",
	}}
}

var _ ports.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	doc := *u
	doc.ID = newID()
	doc.Email = domain.NormalizeEmail(doc.Email)
	if err := r.c.insert(ctx, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.c.findByID(ctx, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.c.findOne(ctx, bson.M{"email": domain.NormalizeEmail(email)})
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	return r.c.find(ctx, bson.M{}, findOptions(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}, 0))
}

func (r *UserRepository) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Role != nil {
		set["role"] = *patch.Role
	}
	return r.c.updateByID(ctx, id, set)
}

func (r *UserRepository) SetPasswordHash(ctx context.Context, id, hash string) error {
	_, err := r.c.updateByID(ctx, id, bson.M{"password_hash": hash})
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.c.deleteByID(ctx, id)
}
