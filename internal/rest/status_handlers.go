package rest

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/publica-dev/publica/internal/publica"
)

type StatusUpdateRequest struct {
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejectionReason"`
}

type StatusListRequest struct {
	Status     *string `query:"status"`
	Search     *string `query:"search"`
	CategoryID *string `query:"categoryId"`
	Page       *int    `query:"page"`
	Limit      *int    `query:"limit"`
}

func parseStatus(raw string) (publica.Status, error) {
	status := publica.Status(raw)
	if !publica.ValidStatus(status) {
		return "", fmt.Errorf("invalid status %q", raw)
	}
	return status, nil
}

func optionalStatus(raw *string) (*publica.Status, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	status, err := parseStatus(*raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// UpdateStatusByEditor handles PATCH /api/articles/status/editor/:id/status
// @Summary Move one of the caller's articles to DRAFT or PENDING
// @Tags workflow
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param body body rest.StatusUpdateRequest true "Target status"
// @Success 200 {object} rest.Article
// @Failure 400,401,403,404 {object} map[string]string
// @Security BearerAuth
// @Router /api/articles/status/editor/{id}/status [patch]
func (h *Handler) UpdateStatusByEditor(c echo.Context) error {
	var req StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	status, err := parseStatus(req.Status)
	if err != nil {
		return h.handleError(c, err)
	}

	article, err := h.uc.UpdateStatusByEditor(c.Request().Context(), currentUser(c), c.Param("id"), status)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newArticle(*article))
}

// UpdateStatusByAdmin handles PATCH /api/articles/status/admin/:id/status
// @Summary Move any article to any status
// @Description The rejection reason is recorded only with a REJECTED target
// @Tags workflow
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param body body rest.StatusUpdateRequest true "Target status and optional rejection reason"
// @Success 200 {object} rest.Article
// @Failure 400,401,403,404 {object} map[string]string
// @Security BearerAuth
// @Router /api/articles/status/admin/{id}/status [patch]
func (h *Handler) UpdateStatusByAdmin(c echo.Context) error {
	var req StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	status, err := parseStatus(req.Status)
	if err != nil {
		return h.handleError(c, err)
	}

	article, err := h.uc.UpdateStatusByAdmin(c.Request().Context(), c.Param("id"), status, req.RejectionReason)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newArticle(*article))
}

// PendingArticles handles GET /api/articles/status/pending
// @Summary Review queue of PENDING articles
// @Tags workflow
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10)"
// @Success 200 {object} rest.ArticleList
// @Failure 400,401,403 {object} map[string]string
// @Security BearerAuth
// @Router /api/articles/status/pending [get]
func (h *Handler) PendingArticles(c echo.Context) error {
	var req StatusListRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	result, err := h.uc.PendingArticles(c.Request().Context(), pageRequest(req.Page, req.Limit))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newArticleList(result))
}

// ArticlesByStatus handles GET /api/articles/status/status
// @Summary Articles in one status, or all of them
// @Tags workflow
// @Produce json
// @Param status query string false "Workflow status"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10)"
// @Success 200 {object} rest.ArticleList
// @Failure 400,401,403 {object} map[string]string
// @Security BearerAuth
// @Router /api/articles/status/status [get]
func (h *Handler) ArticlesByStatus(c echo.Context) error {
	var req StatusListRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	status, err := optionalStatus(req.Status)
	if err != nil {
		return h.handleError(c, err)
	}

	result, err := h.uc.ArticlesByStatus(c.Request().Context(), status, pageRequest(req.Page, req.Limit))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newArticleList(result))
}

// MyArticlesByStatus handles GET /api/articles/status/my
// @Summary The caller's own articles with a per-status summary
// @Tags workflow
// @Produce json
// @Param status query string false "Workflow status"
// @Param search query string false "Title or content substring"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10)"
// @Success 200 {object} rest.StatusArticleList
// @Failure 400,401,403 {object} map[string]string
// @Security BearerAuth
// @Router /api/articles/status/my [get]
func (h *Handler) MyArticlesByStatus(c echo.Context) error {
	var req StatusListRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	status, err := optionalStatus(req.Status)
	if err != nil {
		return h.handleError(c, err)
	}

	result, counts, err := h.uc.MyArticlesByStatus(
		c.Request().Context(), currentUser(c), status, req.Search, pageRequest(req.Page, req.Limit),
	)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newStatusArticleList(result, counts))
}

// AllArticlesByStatus handles GET /api/articles/status/all
// @Summary The whole corpus with corpus-wide status counts
// @Tags workflow
// @Produce json
// @Param status query string false "Workflow status"
// @Param search query string false "Title or content substring"
// @Param categoryId query string false "Restrict to one category"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10)"
// @Success 200 {object} rest.StatusArticleList
// @Failure 400,401,403 {object} map[string]string
// @Security BearerAuth
// @Router /api/articles/status/all [get]
func (h *Handler) AllArticlesByStatus(c echo.Context) error {
	var req StatusListRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	status, err := optionalStatus(req.Status)
	if err != nil {
		return h.handleError(c, err)
	}

	result, counts, err := h.uc.AllArticlesByStatus(
		c.Request().Context(), status, req.Search, req.CategoryID, pageRequest(req.Page, req.Limit),
	)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newStatusArticleList(result, counts))
}
