package model

import (
    "time"

    "go.mongodb.org/mongo-driver/bson/primitive"
)

// Category represents a car category document in the `categories`
// collection.
type Category struct {
    ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
    Name      string             `bson:"name" json:"name"`
    CreatedAt time.Time          `bson:"created_at" json:"created_at"`
    UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
    DeletedAt *time.Time         `bson:"deleted_at" json:"deleted_at"`
}
