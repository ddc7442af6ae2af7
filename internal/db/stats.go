package db

import (
	"context"
	"fmt"
)

func (r *Repository) ArticlesTotalCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Article)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get total articles count: %w", err)
	}

	return count, nil
}

// RecentArticles returns the newest articles with authors attached.
func (r *Repository) RecentArticles(ctx context.Context, limit int) ([]Article, error) {
	var articles []Article
	err := r.db.ModelContext(ctx, &articles).
		Relation("Author").
		OrderExpr(`"t"."createdAt" DESC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query recent articles: %w", err)
	}

	return articles, nil
}

// ViewsSumByAuthor sums views over one author's PUBLISHED articles.
func (r *Repository) ViewsSumByAuthor(ctx context.Context, authorID string) (int, error) {
	var total int
	err := r.db.ModelContext(ctx, (*Article)(nil)).
		ColumnExpr(`coalesce(sum("t"."views"), 0)`).
		Where(`"t"."authorId" = ?`, authorID).
		Where(`"t"."status" = ?`, StatusPublished).
		Select(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum views by author: %w", err)
	}

	return total, nil
}
