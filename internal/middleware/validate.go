package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/current-cruiser/internal/apperr"
    "github.com/iliyamo/current-cruiser/internal/validator"
)

// Context keys under which parsed request sections are stored.  The
// validated value replaces the raw section for everything downstream, so
// defaults and normalization applied here are what handlers see.
const (
    contextBody   = "validated_body"
    contextParams = "validated_params"
)

// ValidateBody parses the request body into the shape T and validates it.
// On failure the chain stops and an operational 400 is raised into the
// error pipeline; handlers never observe an unvalidated body.
func ValidateBody[T any]() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            var in T
            if err := (&echo.DefaultBinder{}).BindBody(c, &in); err != nil {
                c.Logger().Errorf("validation error: %v", err)
                return apperr.New("Validation failed", http.StatusBadRequest)
            }
            if d, ok := any(&in).(validator.Defaulter); ok {
                d.ApplyDefaults()
            }
            if err := validator.Struct(&in); err != nil {
                c.Logger().Errorf("validation error: %v", err)
                return apperr.New("Validation failed", http.StatusBadRequest)
            }
            c.Set(contextBody, in)
            return next(c)
        }
    }
}

// ValidateParams parses the route parameters into the shape T and
// validates them.
func ValidateParams[T any]() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            var in T
            if err := (&echo.DefaultBinder{}).BindPathParams(c, &in); err != nil {
                c.Logger().Errorf("validation error: %v", err)
                return apperr.New("Validation failed", http.StatusBadRequest)
            }
            if err := validator.Struct(&in); err != nil {
                c.Logger().Errorf("validation error: %v", err)
                return apperr.New("Validation failed", http.StatusBadRequest)
            }
            c.Set(contextParams, in)
            return next(c)
        }
    }
}

// Body returns the validated request body stored by ValidateBody.
func Body[T any](c echo.Context) T {
    v, _ := c.Get(contextBody).(T)
    return v
}
