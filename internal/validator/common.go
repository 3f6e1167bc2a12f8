package validator

// Document ids are 24-character hex strings. Only the length is checked
// here; a well-formed but non-existent id surfaces as a 404 from the
// store instead.

// IDParam is the shape of the `:id` route parameter.
type IDParam struct {
	ID string `param:"id" validate:"len=24"`
}

// UserIDParam is the shape of the `:userId` route parameter used by the
// per-user list lookup.
type UserIDParam struct {
	UserID string `param:"userId" validate:"len=24"`
}
