package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type EditorArticlesRequest struct {
	Status *string `query:"status"`
	Search *string `query:"search"`
	Page   *int    `query:"page"`
	Limit  *int    `query:"limit"`
}

// EditorStats handles GET /api/editor/stats
// @Summary Aggregate stats over the caller's authored articles
// @Tags editor
// @Produce json
// @Success 200 {object} rest.EditorStats
// @Failure 400,401,403 {object} map[string]string
// @Security BearerAuth
// @Router /api/editor/stats [get]
func (h *Handler) EditorStats(c echo.Context) error {
	stats, err := h.uc.EditorStats(c.Request().Context(), currentUser(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newEditorStats(stats))
}

// EditorArticles handles GET /api/editor/articles
// @Summary The caller's own articles, newest first
// @Tags editor
// @Produce json
// @Param status query string false "Workflow status"
// @Param search query string false "Title or content substring"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10)"
// @Success 200 {object} rest.ArticleList
// @Failure 400,401,403 {object} map[string]string
// @Security BearerAuth
// @Router /api/editor/articles [get]
func (h *Handler) EditorArticles(c echo.Context) error {
	var req EditorArticlesRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	status, err := optionalStatus(req.Status)
	if err != nil {
		return h.handleError(c, err)
	}

	result, err := h.uc.EditorArticles(
		c.Request().Context(), currentUser(c), status, req.Search, pageRequest(req.Page, req.Limit),
	)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newArticleList(result))
}

// TopEditorArticles handles GET /api/editor/articles/top
// @Summary The caller's five best-performing published articles
// @Tags editor
// @Produce json
// @Success 200 {array} rest.Article
// @Failure 400,401,403 {object} map[string]string
// @Security BearerAuth
// @Router /api/editor/articles/top [get]
func (h *Handler) TopEditorArticles(c echo.Context) error {
	articles, err := h.uc.TopEditorArticles(c.Request().Context(), currentUser(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, mapSlice(articles, newArticle))
}

// EditorArticleDetails handles GET /api/editor/articles/:id
// @Summary One of the caller's articles with its likes and bookmarks
// @Tags editor
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} rest.ArticleDetail
// @Failure 400,401,403,404 {object} map[string]string
// @Security BearerAuth
// @Router /api/editor/articles/{id} [get]
func (h *Handler) EditorArticleDetails(c echo.Context) error {
	detail, err := h.uc.EditorArticleDetails(c.Request().Context(), currentUser(c), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newArticleDetail(*detail))
}

// UpdateOwnArticleStatus handles PATCH /api/editor/articles/:id/status
// @Summary Set the status of one of the caller's articles
// @Tags editor
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param body body rest.StatusUpdateRequest true "Target status"
// @Success 200 {object} rest.Article
// @Failure 400,401,403,404 {object} map[string]string
// @Security BearerAuth
// @Router /api/editor/articles/{id}/status [patch]
func (h *Handler) UpdateOwnArticleStatus(c echo.Context) error {
	var req StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	status, err := parseStatus(req.Status)
	if err != nil {
		return h.handleError(c, err)
	}

	article, err := h.uc.UpdateOwnArticleStatus(c.Request().Context(), currentUser(c), c.Param("id"), status)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newArticle(*article))
}
