package publica

import (
	"context"
	"fmt"
	"sort"

	"github.com/publica-dev/publica/internal/db"
	"golang.org/x/sync/errgroup"
)

const (
	suggestionMinQueryLen   = 2
	titleSuggestionLimit    = 5
	tagSuggestionLimit      = 3
	categorySuggestionLimit = 3
	popularTagsLimit        = 10
)

// Search runs the filtered article query together with its two side
// channels (category counts, popular tags), all store reads issued
// concurrently. When a free-text query is present and the sort mode is
// relevance, the fetched page is re-ranked by RelevanceScore; ranking
// never reaches beyond the page that was fetched.
func (m *Manager) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	params.Page = params.Page.normalized()
	if params.SortBy == "" {
		params.SortBy = "relevance"
	}
	if params.Status == "" {
		params.Status = StatusPublished
	}

	status := string(params.Status)
	filter := db.ArticleFilter{
		Status:     &status,
		CategoryID: params.CategoryID,
		TagNames:   params.Tags,
	}
	if params.Query != "" {
		filter.Query = &params.Query
	}
	if start, ok := DateRangeStart(m.now(), params.DateRange); ok {
		filter.CreatedAfter = &start
	}

	var sortMode db.ArticleSort
	switch params.SortBy {
	case "date":
		sortMode = db.SortCreatedDesc
	case "views":
		sortMode = db.SortViewsDesc
	case "likes":
		sortMode = db.SortLikesDesc
	default:
		sortMode = db.SortRelevance
	}

	var (
		dbArticles  []db.Article
		total       int
		categories  []db.Category
		popularTags []db.Tag
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		dbArticles, err = m.db.Articles(groupCtx, filter, sortMode, params.Page.Page, params.Page.Limit)
		return err
	})
	group.Go(func() error {
		var err error
		total, err = m.db.ArticlesCount(groupCtx, filter)
		return err
	})
	group.Go(func() error {
		var err error
		categories, err = m.db.Categories(groupCtx, true, true)
		return err
	})
	group.Go(func() error {
		var err error
		popularTags, err = m.db.PopularTags(groupCtx, popularTagsLimit)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("db search: %w", err)
	}

	articles := newArticles(dbArticles)
	if params.Query != "" {
		for i := range articles {
			score := RelevanceScore(&articles[i].Article, params.Query)
			articles[i].RelevanceScore = &score
		}

		if params.SortBy == "relevance" {
			sort.SliceStable(articles, func(i, j int) bool {
				return *articles[i].RelevanceScore > *articles[j].RelevanceScore
			})
		}
	}

	return &SearchResult{
		Articles:    articles,
		Pagination:  newPagination(total, params.Page),
		Filters:     params,
		Categories:  categories,
		PopularTags: popularTags,
	}, nil
}

// SearchSuggestions returns autocomplete candidates for queries of at
// least two characters; shorter queries yield nothing, not an error.
func (m *Manager) SearchSuggestions(ctx context.Context, query string) (*Suggestions, error) {
	if len(query) < suggestionMinQueryLen {
		return nil, nil
	}

	var suggestions Suggestions

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		suggestions.Articles, err = m.db.ArticleTitleMatches(groupCtx, query, titleSuggestionLimit)
		return err
	})
	group.Go(func() error {
		var err error
		suggestions.Tags, err = m.db.TagNameMatches(groupCtx, query, tagSuggestionLimit)
		return err
	})
	group.Go(func() error {
		var err error
		suggestions.Categories, err = m.db.CategoryNameMatches(groupCtx, query, categorySuggestionLimit)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("db search suggestions: %w", err)
	}

	return &suggestions, nil
}
