package validator

// SpecificationsInput requires the complete technical sheet when a car is
// created. All four fields are non-empty strings.
type SpecificationsInput struct {
	Motor      string `json:"motor" validate:"required"`
	Horsepower string `json:"horsepower" validate:"required"`
	Mph0to60   string `json:"mph0to60" validate:"required"`
	TopSpeed   string `json:"topSpeed" validate:"required"`
}

// SpecificationsPatch is the optional-field variant used on update.
type SpecificationsPatch struct {
	Motor      *string `json:"motor" validate:"omitempty,min=1"`
	Horsepower *string `json:"horsepower" validate:"omitempty,min=1"`
	Mph0to60   *string `json:"mph0to60" validate:"omitempty,min=1"`
	TopSpeed   *string `json:"topSpeed" validate:"omitempty,min=1"`
}

// CreateCarInput is the payload accepted by POST /api/cars/create.
// AvailableInMarket is a pointer so that an explicit false passes while a
// missing field fails validation.
type CreateCarInput struct {
	Name              string              `json:"name" validate:"required"`
	History           string              `json:"history" validate:"required"`
	Description       string              `json:"description" validate:"required"`
	Specifications    SpecificationsInput `json:"specifications"`
	CategoryID        string              `json:"category_id" validate:"required"`
	AvailableInMarket *bool               `json:"available_in_market" validate:"required"`
}

// UpdateCarInput is the partial-update payload for PUT /api/cars/:id.
// Every field is optional but at least one must be present.
type UpdateCarInput struct {
	Name              *string              `json:"name" validate:"required_without_all=History Description Specifications CategoryID AvailableInMarket,omitempty,min=1"`
	History           *string              `json:"history" validate:"omitempty,min=1"`
	Description       *string              `json:"description" validate:"omitempty,min=1"`
	Specifications    *SpecificationsPatch `json:"specifications"`
	CategoryID        *string              `json:"category_id" validate:"omitempty,min=1"`
	AvailableInMarket *bool                `json:"available_in_market"`
}
