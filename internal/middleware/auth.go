package middleware

import (
	"net/http"
	"strings"

	"github.com/blastmusic247/blast-gear-full/internal/service"

	"github.com/labstack/echo/v4"
)

// RequireAdmin guards admin routes with a bearer token. Any failure — a
// missing header, a bad signature, an expired token — is a 401; there is no
// soft fallthrough.
func RequireAdmin(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authentication credentials")
			}

			subject, err := authService.VerifyToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authentication credentials")
			}

			c.Set("admin_user", subject)
			return next(c)
		}
	}
}
