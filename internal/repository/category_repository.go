package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/current-cruiser/internal/model"
)

type CategoryRepo struct{ col *mongo.Collection }

func NewCategoryRepo(db *mongo.Database) *CategoryRepo {
	return &CategoryRepo{col: db.Collection("categories")}
}

// Create inserts a category with server-set timestamps and fills its id.
func (r *CategoryRepo) Create(ctx context.Context, cat *model.Category) error {
	now := time.Now().UTC()
	cat.CreatedAt, cat.UpdatedAt = now, now
	res, err := r.col.InsertOne(ctx, cat)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		cat.ID = id
	}
	return nil
}

// FindActive returns all categories that have not been soft-deleted.
func (r *CategoryRepo) FindActive(ctx context.Context) ([]model.Category, error) {
	cur, err := r.col.Find(ctx, bson.M{"deleted_at": nil})
	if err != nil {
		return nil, err
	}
	var cats []model.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// FindByID fetches an active category by hex id.
func (r *CategoryRepo) FindByID(ctx context.Context, id string) (*model.Category, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var cat model.Category
	err = r.col.FindOne(ctx, bson.M{"_id": objID, "deleted_at": nil}).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// Update renames an active category and returns the updated document.
func (r *CategoryRepo) Update(ctx context.Context, id, name string) (*model.Category, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var cat model.Category
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "deleted_at": nil},
		bson.M{"$set": bson.M{"name": name, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// SoftDelete stamps deleted_at on an active category and returns the
// updated document.
func (r *CategoryRepo) SoftDelete(ctx context.Context, id string) (*model.Category, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	var cat model.Category
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "deleted_at": nil},
		bson.M{"$set": bson.M{"deleted_at": now, "updated_at": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}
