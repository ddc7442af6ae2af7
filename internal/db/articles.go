package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

// Articles retrieves articles matching the filter, with pagination.
// Category, author, tags and like/saved counts are attached.
func (r *Repository) Articles(ctx context.Context, filter ArticleFilter,
	sort ArticleSort, page, pageSize int) ([]Article, error) {

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	offset := (page - 1) * pageSize

	var articles []Article
	query := r.db.ModelContext(ctx, &articles).
		Relation("Category").
		Relation("Author")

	query = applyArticleFilter(query, filter)
	query = applyArticleSort(query, sort)

	err := query.
		Limit(pageSize).
		Offset(offset).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}

	return r.attachArticleRelations(ctx, articles)
}

func (r *Repository) ArticlesCount(ctx context.Context, filter ArticleFilter) (int, error) {
	query := r.db.ModelContext(ctx, (*Article)(nil))
	query = applyArticleFilter(query, filter)

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get articles count: %w", err)
	}

	return count, nil
}

func (r *Repository) ArticleByID(ctx context.Context, articleID string) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Relation("Category").
		Relation("Author").
		Where(`"t"."articleId" = ?`, articleID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	return r.attachArticleRelationsOne(ctx, article)
}

// ArticleByIDAndAuthor returns nil when the article does not exist or
// is authored by somebody else.
func (r *Repository) ArticleByIDAndAuthor(ctx context.Context, articleID, authorID string) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Relation("Category").
		Relation("Author").
		Where(`"t"."articleId" = ?`, articleID).
		Where(`"t"."authorId" = ?`, authorID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by id and author: %w", err)
	}

	return r.attachArticleRelationsOne(ctx, article)
}

func (r *Repository) CreateArticle(ctx context.Context, article *Article) (*Article, error) {
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now

	if _, err := r.db.ModelContext(ctx, article).Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert article: %w", err)
	}

	return r.ArticleByID(ctx, article.ID)
}

// UpdateArticle replaces the editable fields of an article, including
// the whole tag set. Status, views and authorId are left untouched.
func (r *Repository) UpdateArticle(ctx context.Context, article *Article) (*Article, error) {
	result, err := r.db.ModelContext(ctx, article).
		Column("title", "content", "summary", "imageUrl", "categoryId", "tagIds").
		Set(`"updatedAt" = ?`, time.Now()).
		Where(`"t"."articleId" = ?`, article.ID).
		Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, nil
	}

	return r.ArticleByID(ctx, article.ID)
}

// UpdateArticleStatus sets the workflow status. The rejection reason is
// written only when the target status is REJECTED; otherwise the stored
// value is preserved.
func (r *Repository) UpdateArticleStatus(ctx context.Context, articleID, status string,
	rejectionReason *string) (*Article, error) {

	query := r.db.ModelContext(ctx, (*Article)(nil)).
		Set(`"status" = ?`, status).
		Set(`"updatedAt" = ?`, time.Now()).
		Where(`"t"."articleId" = ?`, articleID)

	if status == StatusRejected && rejectionReason != nil {
		query = query.Set(`"rejectionReason" = ?`, *rejectionReason)
	}

	result, err := query.Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update article status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, nil
	}

	return r.ArticleByID(ctx, articleID)
}

// IncrementArticleViews bumps the view counter by one and returns the
// refreshed article. Returns nil when the article does not exist.
func (r *Repository) IncrementArticleViews(ctx context.Context, articleID string) (*Article, error) {
	result, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Set(`"views" = "views" + 1`).
		Where(`"t"."articleId" = ?`, articleID).
		Update()
	if err != nil {
		return nil, fmt.Errorf("failed to increment article views: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, nil
	}

	return r.ArticleByID(ctx, articleID)
}

// ArticleStatusCounts groups articles by status, optionally scoped to
// one author. Statuses without articles are absent from the result.
func (r *Repository) ArticleStatusCounts(ctx context.Context, authorID *string) (map[string]int, error) {
	var rows []struct {
		Status string
		Count  int
	}

	query := r.db.ModelContext(ctx, (*Article)(nil)).
		Column("status").
		ColumnExpr("count(*) AS count").
		Group("status")

	if authorID != nil {
		query = query.Where(`"t"."authorId" = ?`, *authorID)
	}

	if err := query.Select(&rows); err != nil {
		return nil, fmt.Errorf("failed to get article status counts: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}

// ArticleTitleMatches returns published article titles containing the
// query, for search suggestions.
func (r *Repository) ArticleTitleMatches(ctx context.Context, query string, limit int) ([]string, error) {
	var titles []string
	err := r.db.ModelContext(ctx, (*Article)(nil)).
		Column("title").
		Where(`"t"."status" = ?`, StatusPublished).
		Where(`"t"."title" ILIKE ?`, "%"+query+"%").
		Limit(limit).
		Select(&titles)
	if err != nil {
		return nil, fmt.Errorf("failed to query article title matches: %w", err)
	}

	return titles, nil
}
