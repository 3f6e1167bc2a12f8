package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/current-cruiser/internal/handler"
    "github.com/iliyamo/current-cruiser/internal/middleware"
    "github.com/iliyamo/current-cruiser/internal/validator"
)

// RegisterRoutes registers routes that do not belong to any resource on
// the provided Echo instance. Currently it exposes only a health check
// used by load balancers and monitoring systems.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the registration and login endpoints under
// /api/auth. Both are public; each payload is validated before the
// handler runs.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
    g := e.Group("/api/auth")
    g.POST("/register", a.Register, middleware.ValidateBody[validator.RegisterInput]())
    g.POST("/login", a.Login, middleware.ValidateBody[validator.LoginInput]())
}
