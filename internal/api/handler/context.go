package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

// Context keys set by the Auth middleware. The authenticated user is resolved
// exactly once per request and passed on explicitly; handlers never reach
// into any ambient global state.
const (
	CtxUser  = "auth_user"
	CtxToken = "auth_token"
)

// ctxUser extracts the authenticated user injected by the Auth middleware.
// Its presence proves the middleware ran; absence is a 401, not a 500.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(CtxUser).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return user, nil
}

// ctxToken extracts the bearer token the current request was authenticated with.
func ctxToken(c echo.Context) (string, error) {
	token, _ := c.Get(CtxToken).(string)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return token, nil
}
