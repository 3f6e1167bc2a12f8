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

type CarRepo struct{ col *mongo.Collection }

func NewCarRepo(db *mongo.Database) *CarRepo {
	return &CarRepo{col: db.Collection("cars")}
}

// Create inserts a car with server-set timestamps and fills its id.
func (r *CarRepo) Create(ctx context.Context, car *model.Car) error {
	now := time.Now().UTC()
	car.CreatedAt, car.UpdatedAt = now, now
	res, err := r.col.InsertOne(ctx, car)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		car.ID = id
	}
	return nil
}

// FindActive returns all cars that have not been soft-deleted.
func (r *CarRepo) FindActive(ctx context.Context) ([]model.Car, error) {
	cur, err := r.col.Find(ctx, bson.M{"deleted_at": nil})
	if err != nil {
		return nil, err
	}
	var cars []model.Car
	if err := cur.All(ctx, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// FindByID fetches an active car by hex id.
func (r *CarRepo) FindByID(ctx context.Context, id string) (*model.Car, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var car model.Car
	err = r.col.FindOne(ctx, bson.M{"_id": objID, "deleted_at": nil}).Decode(&car)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &car, nil
}

// Update applies the provided fields atomically and returns the updated
// document. Specification fields are merged individually so a partial
// specifications patch does not wipe the sibling keys.
func (r *CarRepo) Update(ctx context.Context, id string, in validator.UpdateCarInput) (*model.Car, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	set := bson.M{"updated_at": time.Now().UTC()}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.History != nil {
		set["history"] = *in.History
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.CategoryID != nil {
		set["category_id"] = *in.CategoryID
	}
	if in.AvailableInMarket != nil {
		set["available_in_market"] = *in.AvailableInMarket
	}
	if in.Specifications != nil {
		if in.Specifications.Motor != nil {
			set["specifications.motor"] = *in.Specifications.Motor
		}
		if in.Specifications.Horsepower != nil {
			set["specifications.horsepower"] = *in.Specifications.Horsepower
		}
		if in.Specifications.Mph0to60 != nil {
			set["specifications.mph0to60"] = *in.Specifications.Mph0to60
		}
		if in.Specifications.TopSpeed != nil {
			set["specifications.topSpeed"] = *in.Specifications.TopSpeed
		}
	}
	var car model.Car
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "deleted_at": nil},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&car)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &car, nil
}

// SoftDelete stamps deleted_at on an active car and returns the updated
// document.
func (r *CarRepo) SoftDelete(ctx context.Context, id string) (*model.Car, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	var car model.Car
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "deleted_at": nil},
		bson.M{"$set": bson.M{"deleted_at": now, "updated_at": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&car)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &car, nil
}
