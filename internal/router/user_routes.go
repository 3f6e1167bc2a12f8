package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/current-cruiser/internal/handler"
    "github.com/iliyamo/current-cruiser/internal/middleware"
    "github.com/iliyamo/current-cruiser/internal/validator"
)

// RegisterUsers registers the /api/users endpoints. Listing all users is
// admin-only; the per-user operations are open to admins and to the user
// the record belongs to.
func RegisterUsers(e *echo.Echo, u *handler.UserHandler, jwtSecret string) {
    g := e.Group("/api/users")
    g.GET("/all", u.GetAll, middleware.RequireAdmin(jwtSecret))
    g.GET("/:id", u.GetByID,
        middleware.RequireAdminOrSelf(jwtSecret),
        middleware.ValidateParams[validator.IDParam]())
    g.PUT("/:id", u.Update,
        middleware.RequireAdminOrSelf(jwtSecret),
        middleware.ValidateParams[validator.IDParam](),
        middleware.ValidateBody[validator.UpdateUserInput]())
    g.DELETE("/:id", u.Delete,
        middleware.RequireAdminOrSelf(jwtSecret),
        middleware.ValidateParams[validator.IDParam]())
}
