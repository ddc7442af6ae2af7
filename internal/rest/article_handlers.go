package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/publica-dev/publica/internal/publica"
)

type TrendingRequest struct {
	Days       *int    `query:"days"`
	CategoryID *string `query:"categoryId"`
	Page       *int    `query:"page"`
	Limit      *int    `query:"limit"`
}

type PageQuery struct {
	Page  *int `query:"page"`
	Limit *int `query:"limit"`
}

type ArticleRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Summary    *string  `json:"summary"`
	ImageURL   *string  `json:"imageUrl"`
	CategoryID string   `json:"categoryId"`
	Tags       []string `json:"tags"`
}

func pageRequest(page, limit *int) publica.PageRequest {
	var out publica.PageRequest
	if page != nil {
		out.Page = *page
	}
	if limit != nil {
		out.Limit = *limit
	}
	return out
}

// Trending handles GET /api/articles/trending
// @Summary Trending articles
// @Description Recently published articles ordered by views and likes, each with an engagement score
// @Tags articles
// @Produce json
// @Param days query int false "Lookback window in days (default: 7)"
// @Param categoryId query string false "Restrict to one category"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10)"
// @Success 200 {object} rest.TrendingResponse
// @Failure 400 {object} map[string]string
// @Router /api/articles/trending [get]
func (h *Handler) Trending(c echo.Context) error {
	var req TrendingRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	params := publica.TrendingParams{
		CategoryID: req.CategoryID,
		Page:       pageRequest(req.Page, req.Limit),
	}
	if req.Days != nil {
		params.Days = *req.Days
	}

	result, err := h.uc.TrendingArticles(c.Request().Context(), params)
	if err != nil {
		return h.handleError(c, err)
	}

	list := newArticleList(result)
	days := params.Days
	if days < 1 {
		days = 7
	}

	return c.JSON(http.StatusOK, TrendingResponse{
		Articles:   list.Articles,
		Pagination: list.Pagination,
		Filters:    TrendingFilters{Days: days, CategoryID: req.CategoryID},
	})
}

// ArticlesByCategory handles GET /api/articles/category/:categoryId
// @Summary Published articles of one category
// @Tags articles
// @Produce json
// @Param categoryId path string true "Category ID"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10)"
// @Success 200 {object} rest.ArticleList
// @Failure 400 {object} map[string]string
// @Router /api/articles/category/{categoryId} [get]
func (h *Handler) ArticlesByCategory(c echo.Context) error {
	var req PageQuery
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	result, err := h.uc.ArticlesByCategory(
		c.Request().Context(), c.Param("categoryId"), pageRequest(req.Page, req.Limit),
	)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newArticleList(result))
}

// ArticleByID handles GET /api/articles/:id
// @Summary Article detail
// @Description Returns one article and increments its view counter
// @Tags articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} rest.Article
// @Failure 400,404 {object} map[string]string
// @Router /api/articles/{id} [get]
func (h *Handler) ArticleByID(c echo.Context) error {
	article, err := h.uc.ViewArticle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newArticle(*article))
}

// CreateArticle handles POST /api/articles
// @Summary Create an article
// @Description Stores a new DRAFT article for the caller; tags are upserted by name
// @Tags articles
// @Accept json
// @Produce json
// @Param body body rest.ArticleRequest true "Article payload"
// @Success 201 {object} rest.Article
// @Failure 400,401,403 {object} map[string]string
// @Security BearerAuth
// @Router /api/articles [post]
func (h *Handler) CreateArticle(c echo.Context) error {
	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	article, err := h.uc.CreateArticle(c.Request().Context(), currentUser(c), publica.ArticleInput{
		Title:      req.Title,
		Content:    req.Content,
		Summary:    req.Summary,
		ImageURL:   req.ImageURL,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, newArticle(*article))
}

// UpdateArticle handles PUT /api/articles/:id
// @Summary Update an article
// @Description Replaces the content fields and the whole tag set
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param body body rest.ArticleRequest true "Article payload"
// @Success 200 {object} rest.Article
// @Failure 400,401,403,404 {object} map[string]string
// @Security BearerAuth
// @Router /api/articles/{id} [put]
func (h *Handler) UpdateArticle(c echo.Context) error {
	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	article, err := h.uc.UpdateArticle(c.Request().Context(), c.Param("id"), publica.ArticleInput{
		Title:      req.Title,
		Content:    req.Content,
		Summary:    req.Summary,
		ImageURL:   req.ImageURL,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newArticle(*article))
}

// MyFeed handles GET /api/articles/feed/my
// @Summary Personal feed
// @Description Newest published articles from the categories the caller follows
// @Tags articles
// @Produce json
// @Success 200 {array} rest.Article
// @Failure 400,401 {object} map[string]string
// @Security BearerAuth
// @Router /api/articles/feed/my [get]
func (h *Handler) MyFeed(c echo.Context) error {
	articles, err := h.uc.MyFeed(c.Request().Context(), currentUser(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, mapSlice(articles, newArticle))
}

// LikeArticle handles POST /api/articles/:id/like
// @Summary Like an article
// @Tags articles
// @Param id path string true "Article ID"
// @Success 201
// @Failure 400,401 {object} map[string]string
// @Security BearerAuth
// @Router /api/articles/{id}/like [post]
func (h *Handler) LikeArticle(c echo.Context) error {
	if err := h.uc.LikeArticle(c.Request().Context(), currentUser(c), c.Param("id")); err != nil {
		return h.handleError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// UnlikeArticle handles DELETE /api/articles/:id/like
// @Summary Remove a like
// @Tags articles
// @Param id path string true "Article ID"
// @Success 204
// @Failure 400,401 {object} map[string]string
// @Security BearerAuth
// @Router /api/articles/{id}/like [delete]
func (h *Handler) UnlikeArticle(c echo.Context) error {
	if err := h.uc.UnlikeArticle(c.Request().Context(), currentUser(c), c.Param("id")); err != nil {
		return h.handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
