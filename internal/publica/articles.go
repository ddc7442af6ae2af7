package publica

import (
	"context"
	"fmt"

	"github.com/publica-dev/publica/internal/db"
)

// articlePage runs the list + count pair for one filter and wraps the
// result in the shared pagination envelope.
func (m *Manager) articlePage(ctx context.Context, filter db.ArticleFilter, sort db.ArticleSort,
	page PageRequest) (*ArticlePage, error) {

	page = page.normalized()

	dbArticles, err := m.db.Articles(ctx, filter, sort, page.Page, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("db get articles: %w", err)
	}

	total, err := m.db.ArticlesCount(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("db get articles count: %w", err)
	}

	return &ArticlePage{
		Articles:   newArticles(dbArticles),
		Pagination: newPagination(total, page),
	}, nil
}

// CreateArticle stores a new DRAFT article for the author, upserting
// tags by name.
func (m *Manager) CreateArticle(ctx context.Context, author db.User, input ArticleInput) (*Article, error) {
	tags, err := m.db.UpsertTagsByName(ctx, input.Tags)
	if err != nil {
		return nil, fmt.Errorf("db upsert tags: %w", err)
	}

	created, err := m.db.CreateArticle(ctx, &db.Article{
		Title:      input.Title,
		Content:    input.Content,
		Summary:    input.Summary,
		ImageURL:   input.ImageURL,
		Status:     db.StatusDraft,
		CategoryID: input.CategoryID,
		AuthorID:   author.ID,
		TagIDs:     tagIDs(tags),
	})
	if err != nil {
		return nil, fmt.Errorf("db create article: %w", err)
	}

	return &Article{Article: *created}, nil
}

// UpdateArticle replaces the article's content fields and its whole tag
// set. Tags removed from the article stay in the global tag table.
func (m *Manager) UpdateArticle(ctx context.Context, articleID string, input ArticleInput) (*Article, error) {
	tags, err := m.db.UpsertTagsByName(ctx, input.Tags)
	if err != nil {
		return nil, fmt.Errorf("db upsert tags: %w", err)
	}

	updated, err := m.db.UpdateArticle(ctx, &db.Article{
		ID:         articleID,
		Title:      input.Title,
		Content:    input.Content,
		Summary:    input.Summary,
		ImageURL:   input.ImageURL,
		CategoryID: input.CategoryID,
		TagIDs:     tagIDs(tags),
	})
	if err != nil {
		return nil, fmt.Errorf("db update article: %w", err)
	}
	if updated == nil {
		return nil, fmt.Errorf("article not found: %w", ErrNotFound)
	}

	return &Article{Article: *updated}, nil
}

// ViewArticle returns an article's detail view and bumps its view
// counter, exactly once per call.
func (m *Manager) ViewArticle(ctx context.Context, articleID string) (*Article, error) {
	article, err := m.db.IncrementArticleViews(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("db increment views: %w", err)
	}
	if article == nil {
		return nil, fmt.Errorf("article not found: %w", ErrNotFound)
	}

	return &Article{Article: *article}, nil
}

// TrendingArticles lists recently created published articles ordered by
// views then likes, each with its engagement score attached. The score
// is display data: the page keeps the store's ordering.
func (m *Manager) TrendingArticles(ctx context.Context, params TrendingParams) (*ArticlePage, error) {
	if params.Days < 1 {
		params.Days = m.cfg.TrendingDays
	}

	status := db.StatusPublished
	since := m.now().AddDate(0, 0, -params.Days)
	filter := db.ArticleFilter{
		Status:       &status,
		CategoryID:   params.CategoryID,
		CreatedAfter: &since,
	}

	result, err := m.articlePage(ctx, filter, db.SortTrending, params.Page)
	if err != nil {
		return nil, err
	}

	for i := range result.Articles {
		a := &result.Articles[i]
		score := EngagementScore(a.Views, a.LikeCount, a.SavedByCount)
		a.EngagementScore = &score
	}

	return result, nil
}

// ArticlesByCategory lists published articles of one category, newest
// first.
func (m *Manager) ArticlesByCategory(ctx context.Context, categoryID string, page PageRequest) (*ArticlePage, error) {
	status := db.StatusPublished
	filter := db.ArticleFilter{Status: &status, CategoryID: &categoryID}
	return m.articlePage(ctx, filter, db.SortCreatedDesc, page)
}

// MyFeed returns the 20 newest published articles from the categories
// the user follows.
func (m *Manager) MyFeed(ctx context.Context, user db.User) ([]Article, error) {
	if len(user.FollowedCategoryIDs) == 0 {
		return []Article{}, nil
	}

	status := db.StatusPublished
	filter := db.ArticleFilter{Status: &status, CategoryIDs: user.FollowedCategoryIDs}

	dbArticles, err := m.db.Articles(ctx, filter, db.SortCreatedDesc, 1, 20)
	if err != nil {
		return nil, fmt.Errorf("db get feed articles: %w", err)
	}

	return newArticles(dbArticles), nil
}

// LikeArticle records a like. A duplicate like surfaces the store's
// uniqueness violation unchanged.
func (m *Manager) LikeArticle(ctx context.Context, user db.User, articleID string) error {
	if err := m.db.CreateLike(ctx, user.ID, articleID); err != nil {
		return fmt.Errorf("db create like: %w", err)
	}
	return nil
}

// UnlikeArticle removes a like; removing one that was never given is an
// error.
func (m *Manager) UnlikeArticle(ctx context.Context, user db.User, articleID string) error {
	if err := m.db.DeleteLike(ctx, user.ID, articleID); err != nil {
		return fmt.Errorf("db delete like: %w", err)
	}
	return nil
}

// EditorArticles lists the caller's own articles, newest first.
func (m *Manager) EditorArticles(ctx context.Context, actor db.User, status *Status, search *string,
	page PageRequest) (*ArticlePage, error) {

	filter := db.ArticleFilter{
		AuthorID: &actor.ID,
		Status:   statusPtr(status),
		Search:   search,
	}

	return m.articlePage(ctx, filter, db.SortCreatedDesc, page)
}

// TopEditorArticles returns the caller's five best-performing published
// articles.
func (m *Manager) TopEditorArticles(ctx context.Context, actor db.User) ([]Article, error) {
	status := db.StatusPublished
	filter := db.ArticleFilter{AuthorID: &actor.ID, Status: &status}

	dbArticles, err := m.db.Articles(ctx, filter, db.SortTrending, 1, 5)
	if err != nil {
		return nil, fmt.Errorf("db get top articles: %w", err)
	}

	return newArticles(dbArticles), nil
}

// EditorArticleDetails returns one of the caller's articles with its
// likes and bookmarks; foreign articles read as not found.
func (m *Manager) EditorArticleDetails(ctx context.Context, actor db.User, articleID string) (*ArticleDetail, error) {
	article, err := m.db.ArticleByIDAndAuthor(ctx, articleID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("db get article: %w", err)
	}
	if article == nil {
		return nil, fmt.Errorf("article not found: %w", ErrNotFound)
	}

	likes, err := m.db.LikesByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("db get likes: %w", err)
	}

	savedBy, err := m.db.SavedByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("db get saved links: %w", err)
	}

	return &ArticleDetail{
		Article: Article{Article: *article},
		Likes:   likes,
		SavedBy: savedBy,
	}, nil
}

func newArticles(dbArticles []db.Article) []Article {
	articles := make([]Article, len(dbArticles))
	for i := range dbArticles {
		articles[i] = Article{Article: dbArticles[i]}
	}
	return articles
}

func tagIDs(tags []db.Tag) []string {
	ids := make([]string, len(tags))
	for i := range tags {
		ids[i] = tags[i].ID
	}
	return ids
}
