package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register
// @Summary Register a new account
// @Description Creates a USER account and returns it with a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body rest.RegisterRequest true "Registration payload"
// @Success 201 {object} rest.AuthResponse
// @Failure 400 {object} map[string]string
// @Router /api/auth/register [post]
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	result, err := h.uc.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, newAuthResponse(result))
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Verifies credentials and returns the user with a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body rest.LoginRequest true "Credentials"
// @Success 200 {object} rest.AuthResponse
// @Failure 400 {object} map[string]string
// @Router /api/auth/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	result, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newAuthResponse(result))
}
