package handler // handler defines http handlers

import (
	"errors"  // errors provides sentinel values used in getUserID
	"strings" // strings provides trimming helpers

	"github.com/labstack/echo/v4" // echo defines request context types
)

// getUserID extracts the external identity provider's stable user
// identifier from echo.Context.  The JWT middleware stores the "sub"
// claim under "user_id"; identities are opaque strings here, never
// numeric database keys.
func getUserID(c echo.Context) (string, error) {
	v := c.Get("user_id")
	if s, ok := v.(string); ok {
		if s = strings.TrimSpace(s); s != "" {
			return s, nil
		}
	}
	return "", errors.New("invalid user_id in context")
}

// optional trims a bound string pointer into either nil (absent or
// blank) or a cleaned value, the shape the repositories store.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
