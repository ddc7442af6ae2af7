package db

import (
	"context"
	"fmt"
	"time"
)

// CreateLike inserts a like row. A second like by the same user for the
// same article violates the primary key and the raw constraint error is
// returned to the caller.
func (r *Repository) CreateLike(ctx context.Context, userID, articleID string) error {
	like := &Like{
		UserID:    userID,
		ArticleID: articleID,
		CreatedAt: time.Now(),
	}

	if _, err := r.db.ModelContext(ctx, like).Insert(); err != nil {
		return fmt.Errorf("failed to insert like: %w", err)
	}

	return nil
}

// DeleteLike removes a like. Deleting a like that does not exist is an
// error, mirroring the unique pair contract.
func (r *Repository) DeleteLike(ctx context.Context, userID, articleID string) error {
	result, err := r.db.ModelContext(ctx, (*Like)(nil)).
		Where(`"t"."userId" = ?`, userID).
		Where(`"t"."articleId" = ?`, articleID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("like not found for user %s and article %s", userID, articleID)
	}

	return nil
}

// LikesByArticle lists who liked an article, newest first.
func (r *Repository) LikesByArticle(ctx context.Context, articleID string) ([]Like, error) {
	var likes []Like
	err := r.db.ModelContext(ctx, &likes).
		Relation("User").
		Where(`"t"."articleId" = ?`, articleID).
		OrderExpr(`"t"."createdAt" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query likes by article: %w", err)
	}

	return likes, nil
}

// LikesCountByAuthor counts likes across all of one author's articles.
func (r *Repository) LikesCountByAuthor(ctx context.Context, authorID string) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Like)(nil)).
		Join(`JOIN "articles" a ON a."articleId" = "t"."articleId"`).
		Where(`a."authorId" = ?`, authorID).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count likes by author: %w", err)
	}

	return count, nil
}

// SavedByArticle lists who bookmarked an article, newest first.
func (r *Repository) SavedByArticle(ctx context.Context, articleID string) ([]SavedArticle, error) {
	var saved []SavedArticle
	err := r.db.ModelContext(ctx, &saved).
		Relation("User").
		Where(`"t"."articleId" = ?`, articleID).
		OrderExpr(`"t"."savedAt" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query saved links by article: %w", err)
	}

	return saved, nil
}

// SavedArticlesByUser lists a user's bookmarks with the articles attached.
func (r *Repository) SavedArticlesByUser(ctx context.Context, userID string) ([]SavedArticle, error) {
	var saved []SavedArticle
	err := r.db.ModelContext(ctx, &saved).
		Relation("Article").
		Where(`"t"."userId" = ?`, userID).
		OrderExpr(`"t"."savedAt" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query saved articles by user: %w", err)
	}

	return saved, nil
}
