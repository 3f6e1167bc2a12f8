package middleware

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/current-cruiser/internal/apperr"
    "github.com/iliyamo/current-cruiser/internal/model"
    "github.com/iliyamo/current-cruiser/internal/utils"
)

// ErrorLogStore persists error log entries.  Implemented by
// repository.ErrorLogRepo.
type ErrorLogStore interface {
    Insert(ctx context.Context, entry model.ErrorLog) error
}

// unauthenticatedUser marks log entries for requests without a valid
// bearer token.
const unauthenticatedUser = "unauthenticated"

// ErrorPipeline builds the centralized error handler: every failure a
// handler or middleware returns flows through the logger stage and then
// the responder stage.  Logging is best-effort; a failure to persist the
// entry must never mask or replace the original error.
func ErrorPipeline(secret string, logs ErrorLogStore) echo.HTTPErrorHandler {
    return func(err error, c echo.Context) {
        logError(secret, logs, err, c)
        respondError(err, c)
    }
}

// logError persists an ErrorLog entry for the in-flight error.  The caller
// identity is derived by independently re-verifying any bearer token on
// the request; auth middleware may never have run for this route.
func logError(secret string, logs ErrorLogStore, err error, c echo.Context) {
    if logs == nil {
        return
    }
    user := unauthenticatedUser
    if token := BearerToken(c); token != "" {
        if userID, _, verr := utils.VerifyIdentityToken(secret, token); verr == nil {
            user = userID
        }
    }
    entry := model.ErrorLog{
        Message:   err.Error(),
        Timestamp: time.Now().UTC(),
        Route:     c.Request().RequestURI,
        User:      user,
    }
    // The request context may already be done; give persistence its own
    // bounded context.
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    if lerr := logs.Insert(ctx, entry); lerr != nil {
        c.Logger().Errorf("error logging failed: %v", lerr)
    }
}

// respondError converts the error into the uniform JSON error body and an
// HTTP status code.  Operational errors carry their own status and safe
// message; anything else is a bug and is answered with a generic 500
// after a loud server-side log.
func respondError(err error, c echo.Context) {
    if c.Response().Committed {
        return
    }

    status := http.StatusInternalServerError
    message := "Internal Server Error"

    var ae *apperr.Error
    var he *echo.HTTPError
    switch {
    case errors.As(err, &ae) && ae.Operational:
        status = ae.Status
        message = ae.Message
    case errors.As(err, &he):
        status = he.Code
        if m, ok := he.Message.(string); ok {
            message = m
        }
    default:
        c.Logger().Errorf("unexpected error: %v", err)
    }

    if werr := c.JSON(status, echo.Map{"status": "error", "message": message}); werr != nil {
        c.Logger().Errorf("error response failed: %v", werr)
    }
}
