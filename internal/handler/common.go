package handler // handler defines the HTTP handlers for the catalog API

import (
    "context"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/current-cruiser/internal/model"
    "github.com/iliyamo/current-cruiser/internal/validator"
)

// Store interfaces consumed by the handlers.  The repository package
// provides the MongoDB implementations; tests substitute in-memory fakes.

type UserStore interface {
    Create(ctx context.Context, username, email, password, role string) (*model.User, error)
    FindByEmail(ctx context.Context, email string) (*model.User, error)
    FindActive(ctx context.Context) ([]model.User, error)
    FindByID(ctx context.Context, id string) (*model.User, error)
    Update(ctx context.Context, id string, in validator.UpdateUserInput) (*model.User, error)
    SoftDelete(ctx context.Context, id string) (*model.User, error)
}

type CarStore interface {
    Create(ctx context.Context, car *model.Car) error
    FindActive(ctx context.Context) ([]model.Car, error)
    FindByID(ctx context.Context, id string) (*model.Car, error)
    Update(ctx context.Context, id string, in validator.UpdateCarInput) (*model.Car, error)
    SoftDelete(ctx context.Context, id string) (*model.Car, error)
}

type CategoryStore interface {
    Create(ctx context.Context, cat *model.Category) error
    FindActive(ctx context.Context) ([]model.Category, error)
    FindByID(ctx context.Context, id string) (*model.Category, error)
    Update(ctx context.Context, id, name string) (*model.Category, error)
    SoftDelete(ctx context.Context, id string) (*model.Category, error)
}

type ListStore interface {
    Create(ctx context.Context, list *model.List) error
    FindActive(ctx context.Context) ([]model.List, error)
    FindActiveByUserID(ctx context.Context, userID string) ([]model.List, error)
    FindByID(ctx context.Context, id string) (*model.List, error)
    Update(ctx context.Context, id string, in validator.UpdateListInput) (*model.List, error)
    SoftDelete(ctx context.Context, id string) (*model.List, error)
}

// opCtx bounds a store call to the request with a fixed timeout.
func opCtx(c echo.Context) (context.Context, context.CancelFunc) {
    return context.WithTimeout(c.Request().Context(), 5*time.Second)
}
