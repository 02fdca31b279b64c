package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/ghost-console/ghost/internal/core/domain"
)

// RequireAdmin rejects requests whose resolved user is not an admin.
// It must run after Auth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := UserFrom(c)
			if user == nil || !user.IsAdmin() {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
