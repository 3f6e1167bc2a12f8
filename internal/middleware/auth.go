package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/current-cruiser/internal/apperr"
    "github.com/iliyamo/current-cruiser/internal/model"
    "github.com/iliyamo/current-cruiser/internal/utils"
)

// Context keys under which the verified token subject and role are stored
// for downstream handlers.
const (
    ContextUserID = "user_id"
    ContextRole   = "role"
)

// BearerToken extracts the token from the Authorization header.  The
// "Bearer " prefix is optional; clients historically sent the raw token.
// An empty string means no token was supplied.
func BearerToken(c echo.Context) string {
    auth := strings.TrimSpace(c.Request().Header.Get("Authorization"))
    return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

// RequireAdmin gates a route to callers holding a valid identity token
// with the admin role.  A missing token and a cryptographically invalid
// or expired one produce distinct 401 messages; an authenticated
// non-admin gets 403.
func RequireAdmin(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            token := BearerToken(c)
            if token == "" {
                return apperr.New("No token, authorization denied", http.StatusUnauthorized)
            }
            userID, role, err := utils.VerifyIdentityToken(secret, token)
            if err != nil {
                c.Logger().Errorf("unauthorized: %v", err)
                return apperr.New("Invalid token", http.StatusUnauthorized)
            }
            c.Set(ContextUserID, userID)
            c.Set(ContextRole, role)
            if role != model.RoleAdmin {
                return apperr.New("Access forbidden. Admin role required.", http.StatusForbidden)
            }
            return next(c)
        }
    }
}

// RequireAdminOrSelf gates a route to admins or to the user whose id
// matches the `:id` route parameter.
func RequireAdminOrSelf(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            token := BearerToken(c)
            if token == "" {
                return apperr.New("No token, authorization denied", http.StatusUnauthorized)
            }
            userID, role, err := utils.VerifyIdentityToken(secret, token)
            if err != nil {
                c.Logger().Errorf("unauthorized: %v", err)
                return apperr.New("Unauthorized: Invalid Token", http.StatusUnauthorized)
            }
            c.Set(ContextUserID, userID)
            c.Set(ContextRole, role)
            if role != model.RoleAdmin && userID != c.Param("id") {
                return apperr.New("Forbidden: Access Denied", http.StatusForbidden)
            }
            return next(c)
        }
    }
}
