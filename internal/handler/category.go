package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/current-cruiser/internal/apperr"
	mw "github.com/iliyamo/current-cruiser/internal/middleware"
	"github.com/iliyamo/current-cruiser/internal/model"
	"github.com/iliyamo/current-cruiser/internal/repository"
	"github.com/iliyamo/current-cruiser/internal/validator"
)

// CategoryHandler serves the /api/categories CRUD endpoints.
type CategoryHandler struct{ Categories CategoryStore }

func NewCategoryHandler(categories CategoryStore) *CategoryHandler {
	return &CategoryHandler{Categories: categories}
}

// Create persists a new category from a validated payload.
func (h *CategoryHandler) Create(c echo.Context) error {
	in := mw.Body[validator.CreateCategoryInput](c)

	cat := &model.Category{Name: in.Name}

	ctx, cancel := opCtx(c)
	defer cancel()

	if err := h.Categories.Create(ctx, cat); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "msg": "Category created successfully", "category": cat})
}

// GetAll returns every active category. An empty result is reported as 404.
func (h *CategoryHandler) GetAll(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	cats, err := h.Categories.FindActive(ctx)
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		return apperr.New("No categories found", http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "msg": "All categories", "categories": cats})
}

// GetByID returns a single active category.
func (h *CategoryHandler) GetByID(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	cat, err := h.Categories.FindByID(ctx, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New("Category not found", http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "msg": "Found category", "category": cat})
}

// Update renames a category.
func (h *CategoryHandler) Update(c echo.Context) error {
	in := mw.Body[validator.UpdateCategoryInput](c)

	ctx, cancel := opCtx(c)
	defer cancel()

	cat, err := h.Categories.Update(ctx, c.Param("id"), in.Name)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New("Category not found", http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "msg": "Category updated successfully", "category": cat})
}

// Delete soft-deletes a category and returns the updated record.
func (h *CategoryHandler) Delete(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	cat, err := h.Categories.SoftDelete(ctx, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New("Category not found", http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "msg": "Category deleted successfully", "category": cat})
}
