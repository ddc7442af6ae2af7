package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/publica-dev/publica/internal/db"
)

type CategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Categories handles GET /api/categories
// @Summary Categories by name
// @Description With includeCount=true each category carries its published article count
// @Tags categories
// @Produce json
// @Param includeCount query bool false "Attach published article counts"
// @Success 200 {array} rest.Category
// @Failure 400 {object} map[string]string
// @Router /api/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	includeCount, _ := strconv.ParseBool(c.QueryParam("includeCount"))

	categories, err := h.uc.Categories(c.Request().Context(), includeCount)
	if err != nil {
		return h.handleError(c, err)
	}

	if includeCount {
		return c.JSON(http.StatusOK, mapSlice(categories, newCategoryWithCount))
	}
	return c.JSON(http.StatusOK, mapSlice(categories, func(in db.Category) Category {
		return *newCategory(&in)
	}))
}

// AllCategories handles GET /api/categories/all
// @Summary Categories with any-status article counts
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 400 {object} map[string]string
// @Router /api/categories/all [get]
func (h *Handler) AllCategories(c echo.Context) error {
	categories, err := h.uc.AllCategories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, mapSlice(categories, newCategoryWithCount))
}

// CreateCategory handles POST /api/categories
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param body body rest.CategoryRequest true "Category payload"
// @Success 201 {object} rest.Category
// @Failure 400,401,403 {object} map[string]string
// @Security BearerAuth
// @Router /api/categories [post]
func (h *Handler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, newCategory(category))
}

// UpdateCategory handles PUT /api/categories/:id
// @Summary Rename a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param body body rest.CategoryRequest true "Category payload"
// @Success 200 {object} rest.Category
// @Failure 400,401,403,404 {object} map[string]string
// @Security BearerAuth
// @Router /api/categories/{id} [put]
func (h *Handler) UpdateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), c.Param("id"), req.Name, req.Description)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newCategory(category))
}

// DeleteCategory handles DELETE /api/categories/:id
// @Summary Delete a category
// @Tags categories
// @Param id path string true "Category ID"
// @Success 204
// @Failure 400,401,403 {object} map[string]string
// @Security BearerAuth
// @Router /api/categories/{id} [delete]
func (h *Handler) DeleteCategory(c echo.Context) error {
	if err := h.uc.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
