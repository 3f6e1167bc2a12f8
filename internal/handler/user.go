package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/current-cruiser/internal/apperr"
	mw "github.com/iliyamo/current-cruiser/internal/middleware"
	"github.com/iliyamo/current-cruiser/internal/repository"
	"github.com/iliyamo/current-cruiser/internal/validator"
)

// UserHandler serves the /api/users CRUD endpoints.
type UserHandler struct{ Users UserStore }

func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{Users: users}
}

// GetAll returns every active user. An empty result is reported as 404.
func (h *UserHandler) GetAll(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	users, err := h.Users.FindActive(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return apperr.New("No active users found", http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "msg": "All users list", "users": users})
}

// GetByID returns a single active user.
func (h *UserHandler) GetByID(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	u, err := h.Users.FindByID(ctx, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New("User not found", http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "msg": "Found user", "user": u})
}

// Update applies a partial update to a user.
func (h *UserHandler) Update(c echo.Context) error {
	in := mw.Body[validator.UpdateUserInput](c)

	ctx, cancel := opCtx(c)
	defer cancel()

	u, err := h.Users.Update(ctx, c.Param("id"), in)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New("User not found", http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "msg": "User updated successfully", "user": u})
}

// Delete soft-deletes a user and returns the updated record.
func (h *UserHandler) Delete(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	u, err := h.Users.SoftDelete(ctx, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New("User not found", http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "msg": "User deleted successfully", "user": u})
}
