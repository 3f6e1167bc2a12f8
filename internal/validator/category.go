package validator

// CreateCategoryInput is the payload accepted by POST /api/categories/create.
type CreateCategoryInput struct {
	Name string `json:"name" validate:"required"`
}

// UpdateCategoryInput is the payload for PUT /api/categories/:id. A
// category only carries a name, so the update shape requires it too.
type UpdateCategoryInput struct {
	Name string `json:"name" validate:"required"`
}
