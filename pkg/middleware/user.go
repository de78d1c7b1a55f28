package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// User resolves the acting user from the X-User-Id header or the USER_ID
// cookie and stores it in the request context. With required=false requests
// without a user pass through anonymously; with required=true they get 401.
func User(required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := c.Request().Header.Get("X-User-Id")
			if uid == "" {
				if ck, err := c.Cookie("USER_ID"); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" && required {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
