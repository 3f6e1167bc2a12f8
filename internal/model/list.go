package model

import (
    "time"

    "go.mongodb.org/mongo-driver/bson/primitive"
)

// List represents a user-curated list of cars in the `lists` collection.
// UserID references the owning user by hex id; Cars holds car ids in the
// order the user arranged them.
type List struct {
    ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
    UserID    string             `bson:"user_id" json:"user_id"`
    Title     string             `bson:"title" json:"title"`
    Cars      []string           `bson:"cars" json:"cars"`
    CreatedAt time.Time          `bson:"created_at" json:"created_at"`
    UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
    DeletedAt *time.Time         `bson:"deleted_at" json:"deleted_at"`
}
