package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/current-cruiser/internal/model"
	"github.com/iliyamo/current-cruiser/internal/utils"
	"github.com/iliyamo/current-cruiser/internal/validator"
)

type UserRepo struct{ col *mongo.Collection }

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection("users")}
}

// Create hashes the password and inserts a new user with server-set
// timestamps. Callers are expected to have checked email uniqueness
// beforehand; the check-then-insert pair is not atomic.
func (r *UserRepo) Create(ctx context.Context, username, email, password, role string) (*model.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u := &model.User{
		Username:  username,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Password:  hash,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return nil, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = id
	}
	return u, nil
}

// FindByEmail fetches an active user by normalized email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"email": email, "deleted_at": nil}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindActive returns all users that have not been soft-deleted.
func (r *UserRepo) FindActive(ctx context.Context) ([]model.User, error) {
	cur, err := r.col.Find(ctx, bson.M{"deleted_at": nil})
	if err != nil {
		return nil, err
	}
	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID fetches an active user by hex id.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var u model.User
	err = r.col.FindOne(ctx, bson.M{"_id": objID, "deleted_at": nil}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Update applies the provided fields atomically and returns the updated
// document. A password update is re-hashed before it is stored.
func (r *UserRepo) Update(ctx context.Context, id string, in validator.UpdateUserInput) (*model.User, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	set := bson.M{"updated_at": time.Now().UTC()}
	if in.Username != nil {
		set["username"] = *in.Username
	}
	if in.Email != nil {
		set["email"] = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Password != nil {
		hash, err := utils.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		set["password"] = hash
	}
	var u model.User
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "deleted_at": nil},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SoftDelete stamps deleted_at on an active user and returns the updated
// document. Deleting an already deleted user reports ErrNotFound.
func (r *UserRepo) SoftDelete(ctx context.Context, id string) (*model.User, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	var u model.User
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "deleted_at": nil},
		bson.M{"$set": bson.M{"deleted_at": now, "updated_at": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
