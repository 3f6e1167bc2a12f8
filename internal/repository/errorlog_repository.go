package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/current-cruiser/internal/model"
)

type ErrorLogRepo struct{ col *mongo.Collection }

func NewErrorLogRepo(db *mongo.Database) *ErrorLogRepo {
	return &ErrorLogRepo{col: db.Collection("errorlog")}
}

// Insert appends an error log entry. Entries are never updated or read
// back by the application.
func (r *ErrorLogRepo) Insert(ctx context.Context, entry model.ErrorLog) error {
	_, err := r.col.InsertOne(ctx, entry)
	return err
}
