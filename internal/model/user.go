package model

import (
    "time"

    "go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles assignable to a user.  Registration always produces RoleUser;
// admins are promoted out of band.
const (
    RoleUser  = "user"
    RoleAdmin = "admin"
)

// User represents an application user document in the `users` collection.
// The password hash is stored but never serialized to JSON; handlers can
// therefore return the struct directly without leaking credentials.
//
// Fields:
//  ID        – document identifier.
//  Username  – display name.
//  Email     – unique among non-deleted users (checked before insert).
//  Password  – bcrypt hash of the password.
//  Role      – "user" or "admin".
//  CreatedAt – timestamp of creation.
//  UpdatedAt – timestamp of last update.
//  DeletedAt – soft-delete marker; nil while the user is active.
type User struct {
    ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
    Username  string             `bson:"username" json:"username"`
    Email     string             `bson:"email" json:"email"`
    Password  string             `bson:"password" json:"-"`
    Role      string             `bson:"role" json:"role"`
    CreatedAt time.Time          `bson:"created_at" json:"created_at"`
    UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
    DeletedAt *time.Time         `bson:"deleted_at" json:"deleted_at"`
}
