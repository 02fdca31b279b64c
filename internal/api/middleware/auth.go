package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ghost-console/ghost/internal/core/domain"
)

// SessionCookie is the cookie carrying the session token for browser
// navigation. It may hold the raw token or a "Bearer <token>" value.
const SessionCookie = "access_token"

const userContextKey = "user"

// Authenticator resolves a token string to a live user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Auth requires a valid Authorization: Bearer token and injects the
// resolved user into the request context.
func Auth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request())
			if err != nil {
				return err
			}

			user, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// AuthOptional resolves an identity from the bearer header or the
// session cookie when present. Failures degrade to an anonymous request
// instead of rejecting it, so public pages can render a logged-out view.
func AuthOptional(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request())
			if err != nil {
				token = cookieToken(c)
			}
			if token == "" {
				return next(c)
			}

			user, err := auth.Authenticate(c.Request().Context(), token)
			if err == nil {
				c.Set(userContextKey, user)
			}
			return next(c)
		}
	}
}

// UserFrom returns the authenticated user injected by Auth or
// AuthOptional, or nil for an anonymous request.
func UserFrom(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}

func cookieToken(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return strings.TrimPrefix(cookie.Value, "Bearer ")
}
