package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/current-cruiser/internal/handler"
    "github.com/iliyamo/current-cruiser/internal/middleware"
    "github.com/iliyamo/current-cruiser/internal/validator"
)

// RegisterLists registers the /api/lists endpoints. Listing every list is
// admin-only; users otherwise work with lists directly by id.
func RegisterLists(e *echo.Echo, h *handler.ListHandler, jwtSecret string) {
    g := e.Group("/api/lists")
    g.POST("/create", h.Create, middleware.ValidateBody[validator.CreateListInput]())
    g.GET("/all", h.GetAll, middleware.RequireAdmin(jwtSecret))
    g.GET("/:id", h.GetByID, middleware.ValidateParams[validator.IDParam]())
    g.GET("/user/:userId", h.GetByUserID, middleware.ValidateParams[validator.UserIDParam]())
    g.PUT("/:id", h.Update,
        middleware.ValidateParams[validator.IDParam](),
        middleware.ValidateBody[validator.UpdateListInput]())
    g.DELETE("/:id", h.Delete, middleware.ValidateParams[validator.IDParam]())
}
