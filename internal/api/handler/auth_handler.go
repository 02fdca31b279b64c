package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ghost-console/ghost/internal/api/middleware"
	"github.com/ghost-console/ghost/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Token handles POST /token, the OAuth2-password-style login endpoint.
//
// @Summary      Exchange credentials for a session token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  errorResponse
// @Router       /token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	token, _, err := h.authService.Login(c.Request().Context(), username, password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Logout handles GET /logout: expires the session cookie and redirects
// home. Logout is stateless: a token already handed out stays valid
// elsewhere until its natural expiry.
//
// @Summary      Clear the session cookie
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: false,
	})
	return c.Redirect(http.StatusFound, "/")
}
