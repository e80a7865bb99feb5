package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

// Authenticator resolves a bearer token to its owning user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Context keys used to hand the resolved identity to handlers. They mirror
// the constants in the handler package; both sets must stay in sync.
const (
	ctxUser  = "auth_user"
	ctxToken = "auth_token"
)

// Auth validates the opaque bearer token against the session store and
// injects the resolved user and the presented token into the request context.
// A missing, malformed, unknown or revoked token is rejected with 401.
func Auth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or revoked token")
			}

			c.Set(ctxUser, user)
			c.Set(ctxToken, parts[1])

			return next(c)
		}
	}
}
