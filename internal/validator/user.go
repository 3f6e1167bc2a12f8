package validator

// UpdateUserInput is the partial-update payload for PUT /api/users/:id.
// Every field is optional but at least one must be present. Role is
// deliberately not updatable through this endpoint.
type UpdateUserInput struct {
	Username *string `json:"username" validate:"required_without_all=Email Password,omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=1"`
}
