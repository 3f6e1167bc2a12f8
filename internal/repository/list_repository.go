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
	"github.com/iliyamo/current-cruiser/internal/validator"
)

type ListRepo struct{ col *mongo.Collection }

func NewListRepo(db *mongo.Database) *ListRepo {
	return &ListRepo{col: db.Collection("lists")}
}

// Create inserts a list with server-set timestamps and fills its id.
func (r *ListRepo) Create(ctx context.Context, list *model.List) error {
	now := time.Now().UTC()
	list.CreatedAt, list.UpdatedAt = now, now
	res, err := r.col.InsertOne(ctx, list)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		list.ID = id
	}
	return nil
}

// FindActive returns all lists that have not been soft-deleted.
func (r *ListRepo) FindActive(ctx context.Context) ([]model.List, error) {
	cur, err := r.col.Find(ctx, bson.M{"deleted_at": nil})
	if err != nil {
		return nil, err
	}
	var lists []model.List
	if err := cur.All(ctx, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// FindActiveByUserID returns the active lists owned by a user.
func (r *ListRepo) FindActiveByUserID(ctx context.Context, userID string) ([]model.List, error) {
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID, "deleted_at": nil})
	if err != nil {
		return nil, err
	}
	var lists []model.List
	if err := cur.All(ctx, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// FindByID fetches an active list by hex id.
func (r *ListRepo) FindByID(ctx context.Context, id string) (*model.List, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var list model.List
	err = r.col.FindOne(ctx, bson.M{"_id": objID, "deleted_at": nil}).Decode(&list)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// Update applies the provided fields atomically and returns the updated
// document.
func (r *ListRepo) Update(ctx context.Context, id string, in validator.UpdateListInput) (*model.List, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	set := bson.M{"updated_at": time.Now().UTC()}
	if in.UserID != nil {
		set["user_id"] = *in.UserID
	}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Cars != nil {
		set["cars"] = *in.Cars
	}
	var list model.List
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "deleted_at": nil},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&list)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// SoftDelete stamps deleted_at on an active list and returns the updated
// document.
func (r *ListRepo) SoftDelete(ctx context.Context, id string) (*model.List, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	var list model.List
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "deleted_at": nil},
		bson.M{"$set": bson.M{"deleted_at": now, "updated_at": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&list)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}
