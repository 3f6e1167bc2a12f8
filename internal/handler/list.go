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

// ListHandler serves the /api/lists CRUD endpoints.
type ListHandler struct{ Lists ListStore }

func NewListHandler(lists ListStore) *ListHandler {
	return &ListHandler{Lists: lists}
}

// Create persists a new list from a validated payload.
func (h *ListHandler) Create(c echo.Context) error {
	in := mw.Body[validator.CreateListInput](c)

	list := &model.List{UserID: in.UserID, Title: in.Title, Cars: in.Cars}

	ctx, cancel := opCtx(c)
	defer cancel()

	if err := h.Lists.Create(ctx, list); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "msg": "List created successfully", "list": list})
}

// GetAll returns every active list. An empty result is reported as 404.
func (h *ListHandler) GetAll(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	lists, err := h.Lists.FindActive(ctx)
	if err != nil {
		return err
	}
	if len(lists) == 0 {
		return apperr.New("No lists found", http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "msg": "All lists", "lists": lists})
}

// GetByID returns a single active list.
func (h *ListHandler) GetByID(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	list, err := h.Lists.FindByID(ctx, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New("List not found", http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "msg": "Found list", "list": list})
}

// GetByUserID returns the active lists owned by the given user.
func (h *ListHandler) GetByUserID(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	lists, err := h.Lists.FindActiveByUserID(ctx, c.Param("userId"))
	if err != nil {
		return err
	}
	if len(lists) == 0 {
		return apperr.New("No lists found for this user", http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "msg": "Lists found for this user", "lists": lists})
}

// Update applies a partial update to a list.
func (h *ListHandler) Update(c echo.Context) error {
	in := mw.Body[validator.UpdateListInput](c)

	ctx, cancel := opCtx(c)
	defer cancel()

	list, err := h.Lists.Update(ctx, c.Param("id"), in)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New("List not found", http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "msg": "List updated successfully", "list": list})
}

// Delete soft-deletes a list and returns the updated record.
func (h *ListHandler) Delete(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	list, err := h.Lists.SoftDelete(ctx, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New("List not found", http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "msg": "List deleted successfully", "list": list})
}
