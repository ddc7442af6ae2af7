package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/publica-dev/publica/internal/publica"
)

type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Dashboard handles GET /api/admin/dashboard
// @Summary Admin overview
// @Description User and article totals, users per role, five most recent articles
// @Tags admin
// @Produce json
// @Success 200 {object} rest.DashboardStats
// @Failure 400,401,403 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/dashboard [get]
func (h *Handler) Dashboard(c echo.Context) error {
	stats, err := h.uc.DashboardStats(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newDashboardStats(stats))
}

// Users handles GET /api/admin/users
// @Summary All users with their article and bookmark counts
// @Tags admin
// @Produce json
// @Success 200 {array} rest.User
// @Failure 400,401,403 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/users [get]
func (h *Handler) Users(c echo.Context) error {
	users, err := h.uc.Users(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, mapSlice(users, newUserWithCounts))
}

// UserDetails handles GET /api/admin/users/:id
// @Summary One user with their authored articles and bookmarks
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} rest.UserDetails
// @Failure 400,401,403,404 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/users/{id} [get]
func (h *Handler) UserDetails(c echo.Context) error {
	details, err := h.uc.UserDetails(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newUserDetails(details))
}

// UpdateUser handles PUT /api/admin/users/:id
// @Summary Update a user's name, email and role
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body rest.UpdateUserRequest true "User payload"
// @Success 200 {object} rest.User
// @Failure 400,401,403,404 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/users/{id} [put]
func (h *Handler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	user, err := h.uc.UpdateUser(
		c.Request().Context(), c.Param("id"), req.Name, req.Email, publica.Role(req.Role),
	)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newUser(*user))
}

// DeleteUser handles DELETE /api/admin/users/:id
// @Summary Delete a user
// @Tags admin
// @Param id path string true "User ID"
// @Success 204
// @Failure 400,401,403 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/users/{id} [delete]
func (h *Handler) DeleteUser(c echo.Context) error {
	if err := h.uc.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
