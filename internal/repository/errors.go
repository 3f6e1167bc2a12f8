// Package repository implements the persistence layer over MongoDB
// collections. Sentinel errors defined here let handlers distinguish the
// failure scenarios they translate into HTTP responses; everything else
// that comes back from the driver is treated as an internal fault.
package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a document is absent or soft-deleted.
// Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// oid parses a hex document id. Ids that pass the length check in the
// validator but are not valid hex cannot match any document, so they are
// reported as ErrNotFound.
func oid(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return id, nil
}
