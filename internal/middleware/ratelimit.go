package middleware

import (
    "fmt"
    "net/http"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/current-cruiser/internal/apperr"
    "github.com/iliyamo/current-cruiser/internal/config"
)

// RateLimit enforces a fixed-window request limit per caller IP backed by
// Redis.  The first request in a window starts the clock; once the count
// passes the configured maximum, further requests are rejected until the
// window key expires.  When the limiter is disabled, the client is nil or
// Redis is unreachable, requests pass through untouched.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error { return next(c) }
        }
    }

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            ip := c.RealIP()
            if ip == "" {
                ip = "unknown"
            }
            key := fmt.Sprintf("%s:ip:%s", cfg.Prefix, ip)

            ctx := c.Request().Context()
            n, err := rdb.Incr(ctx, key).Result()
            if err != nil {
                c.Logger().Warnf("[ratelimit] redis error for key=%s: %v", key, err)
                return next(c)
            }
            if n == 1 {
                // New window; any expire failure leaves a stale counter that
                // the next INCR error path will bypass anyway.
                if err := rdb.Expire(ctx, key, cfg.Window).Err(); err != nil {
                    c.Logger().Warnf("[ratelimit] expire failed for key=%s: %v", key, err)
                }
            }
            if n > int64(cfg.Max) {
                return apperr.New("Too many requests from this IP, please try again later.", http.StatusTooManyRequests)
            }
            return next(c)
        }
    }
}
