package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/current-cruiser/internal/handler"
    "github.com/iliyamo/current-cruiser/internal/middleware"
    "github.com/iliyamo/current-cruiser/internal/validator"
)

// RegisterCars registers the /api/cars endpoints. Browsing the catalog is
// public; mutations require the admin role.
func RegisterCars(e *echo.Echo, h *handler.CarHandler, jwtSecret string) {
    g := e.Group("/api/cars")
    g.POST("/create", h.Create,
        middleware.RequireAdmin(jwtSecret),
        middleware.ValidateBody[validator.CreateCarInput]())
    g.GET("/all", h.GetAll)
    g.GET("/:id", h.GetByID, middleware.ValidateParams[validator.IDParam]())
    g.PUT("/:id", h.Update,
        middleware.RequireAdmin(jwtSecret),
        middleware.ValidateParams[validator.IDParam](),
        middleware.ValidateBody[validator.UpdateCarInput]())
    g.DELETE("/:id", h.Delete,
        middleware.RequireAdmin(jwtSecret),
        middleware.ValidateParams[validator.IDParam]())
}

// RegisterCategories registers the /api/categories endpoints. Only the
// full listing is admin-gated; the remaining operations are open, which
// mirrors the routing table this API has always shipped with.
func RegisterCategories(e *echo.Echo, h *handler.CategoryHandler, jwtSecret string) {
    g := e.Group("/api/categories")
    g.POST("/create", h.Create, middleware.ValidateBody[validator.CreateCategoryInput]())
    g.GET("/all", h.GetAll, middleware.RequireAdmin(jwtSecret))
    g.GET("/:id", h.GetByID, middleware.ValidateParams[validator.IDParam]())
    g.PUT("/:id", h.Update,
        middleware.ValidateParams[validator.IDParam](),
        middleware.ValidateBody[validator.UpdateCategoryInput]())
    g.DELETE("/:id", h.Delete, middleware.ValidateParams[validator.IDParam]())
}
