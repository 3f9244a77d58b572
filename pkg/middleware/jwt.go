package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"petrolog/pkg/auth"
)

// JWT validates the Bearer token and puts the user id into the echo
// context under "uid".
func JWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			uid, err := auth.ParseToken(secret, strings.TrimPrefix(authz, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
