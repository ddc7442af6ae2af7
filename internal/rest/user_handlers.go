package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/publica-dev/publica/internal/publica"
)

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

type UpdateProfileRequest struct {
	Name           string  `json:"name"`
	ProfilePicture *string `json:"profilePicture"`
}

// UpdateUserRole handles PATCH /api/users/:id/role
// @Summary Change a user's role
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body rest.UpdateRoleRequest true "New role"
// @Success 200 {object} rest.User
// @Failure 400,401,403,404 {object} map[string]string
// @Security BearerAuth
// @Router /api/users/{id}/role [patch]
func (h *Handler) UpdateUserRole(c echo.Context) error {
	var req UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	user, err := h.uc.UpdateUserRole(c.Request().Context(), c.Param("id"), publica.Role(req.Role))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newUser(*user))
}

// UpdateProfile handles PATCH /api/users/profile
// @Summary Update the caller's own name and picture
// @Tags users
// @Accept json
// @Produce json
// @Param body body rest.UpdateProfileRequest true "Profile payload"
// @Success 200 {object} rest.User
// @Failure 400,401 {object} map[string]string
// @Security BearerAuth
// @Router /api/users/profile [patch]
func (h *Handler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	user, err := h.uc.UpdateUserProfile(c.Request().Context(), currentUser(c), req.Name, req.ProfilePicture)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newUser(*user))
}
