package validator

// CreateListInput is the payload accepted by POST /api/lists/create. Cars
// defaults to an empty slice when omitted.
type CreateListInput struct {
	UserID string   `json:"user_id" validate:"required,len=24"`
	Title  string   `json:"title" validate:"required"`
	Cars   []string `json:"cars"`
}

// ApplyDefaults fills the cars default so stored lists always carry an
// array, never null.
func (in *CreateListInput) ApplyDefaults() {
	if in.Cars == nil {
		in.Cars = []string{}
	}
}

// UpdateListInput is the partial-update payload for PUT /api/lists/:id.
// Every field is optional but at least one must be present.
type UpdateListInput struct {
	UserID *string   `json:"user_id" validate:"required_without_all=Title Cars,omitempty,len=24"`
	Title  *string   `json:"title" validate:"omitempty,min=1"`
	Cars   *[]string `json:"cars"`
}
