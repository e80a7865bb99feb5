package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookverse/bookstore-api/internal/api/metrics"
	"github.com/bookverse/bookstore-api/internal/core/domain"
	"github.com/bookverse/bookstore-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=5,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5,max=25"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginData struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "email already taken, please try with a different email address"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "unable to register new user, please try again"})
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, envelope{
		Message: "User has been registered successfully!",
		Data:    user,
	})
}

// Login authenticates a user and issues a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "unable to login due to invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "unable to login, please try again"})
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, envelope{
		Message: "You are logged in successfully!",
		Data:    loginData{User: user, Token: token},
	})
}

// Profile returns the authenticated user's record.
//
// @Summary      Fetch the current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  map[string]string
// @Router       /user [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{
		Message: "User profile fetched successfully",
		Data:    user,
	})
}

// Logout revokes the token presented on the current request. The token never
// validates again after this call returns.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  envelope
// @Failure      401  {object}  map[string]string
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return echo.NewHTTPError(http.StatusUnauthorized, "unable to logout due to invalid token")
		}
		return err
	}

	metrics.SessionsRevokedTotal.Inc()
	return c.JSON(http.StatusCreated, envelope{
		Message: "Logout successfully",
		Data:    user,
	})
}
