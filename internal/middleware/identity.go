package middleware

// identity.go holds the user identity helper for the rate limit key
// builder. JWTAuth stores the token subject under "user_id";
// unauthenticated requests (health checks, webhooks) fall back to the
// shared "anon" bucket keyed by IP.

import (
    "github.com/labstack/echo/v4"
)

// currentUserID extracts the authenticated user's identifier from the
// Echo context, returning "anon" when no user is authenticated.
func currentUserID(c echo.Context) string {
    if v := c.Get("user_id"); v != nil {
        if s, ok := v.(string); ok && s != "" { return s }
    }
    return "anon"
}
