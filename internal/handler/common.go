package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/NathaNJOY-191/IN-OUT/internal/model"
)

// getUserID extracts the authenticated user id stored in the context by the
// JWT middleware.  JWT numeric claims decode as float64, but the helper
// tolerates the other integer shapes too.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// isAdmin reports whether the authenticated caller carries the admin role.
func isAdmin(c echo.Context) bool {
	role, _ := c.Get("role").(string)
	return role == model.RoleAdmin
}
