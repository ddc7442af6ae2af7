package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/publica-dev/publica/internal/publica"
)

type SearchRequest struct {
	Query      string   `query:"query"`
	SortBy     string   `query:"sortBy"`
	CategoryID *string  `query:"categoryId"`
	Tags       []string `query:"tags"`
	DateRange  string   `query:"dateRange"`
	Status     *string  `query:"status"`
	Page       *int     `query:"page"`
	Limit      *int     `query:"limit"`
}

type SuggestionsRequest struct {
	Query string `query:"query"`
}

// Search handles GET /api/search
// @Summary Full-text article search
// @Description Filtered search with relevance ranking, plus category counts and popular tags
// @Tags search
// @Produce json
// @Param query query string false "Free-text query"
// @Param sortBy query string false "relevance (default), date, views or likes"
// @Param categoryId query string false "Restrict to one category"
// @Param tags query []string false "Restrict to articles carrying any of these tags"
// @Param dateRange query string false "today, week, month or year"
// @Param status query string false "Workflow status (default: PUBLISHED)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10)"
// @Success 200 {object} rest.SearchResponse
// @Failure 400 {object} map[string]string
// @Router /api/search [get]
func (h *Handler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	params := publica.SearchParams{
		Query:      req.Query,
		SortBy:     req.SortBy,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
		DateRange:  req.DateRange,
		Page:       pageRequest(req.Page, req.Limit),
	}
	if req.Status != nil && *req.Status != "" {
		status, err := parseStatus(*req.Status)
		if err != nil {
			return h.handleError(c, err)
		}
		params.Status = status
	}

	result, err := h.uc.Search(c.Request().Context(), params)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, newSearchResponse(result))
}

// SearchSuggestions handles GET /api/search/suggestions
// @Summary Autocomplete candidates
// @Description Queries shorter than two characters return an empty suggestion list
// @Tags search
// @Produce json
// @Param query query string false "Query prefix"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/search/suggestions [get]
func (h *Handler) SearchSuggestions(c echo.Context) error {
	var req SuggestionsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err)
	}

	suggestions, err := h.uc.SearchSuggestions(c.Request().Context(), req.Query)
	if err != nil {
		return h.handleError(c, err)
	}

	// Short queries keep the historical empty-array shape.
	if suggestions == nil {
		return c.JSON(http.StatusOK, map[string]any{"suggestions": []string{}})
	}

	return c.JSON(http.StatusOK, map[string]any{"suggestions": Suggestions{
		Articles:   orEmpty(suggestions.Articles),
		Tags:       orEmpty(suggestions.Tags),
		Categories: orEmpty(suggestions.Categories),
	}})
}

func orEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
