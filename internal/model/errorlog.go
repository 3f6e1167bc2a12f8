package model

import (
    "time"

    "go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrorLog is an append-only audit record written by the error pipeline
// into the `errorlog` collection.  User holds the hex id of the caller
// derived from the bearer token, or "unauthenticated" when no valid token
// accompanied the failing request.  The application never reads these
// records back.
type ErrorLog struct {
    ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
    Message   string             `bson:"message" json:"message"`
    Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
    Route     string             `bson:"route" json:"route"`
    User      string             `bson:"user" json:"user"`
}
