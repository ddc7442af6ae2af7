package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

// Categories lists categories by name. When publishedOnly is set the
// attached article counts cover PUBLISHED articles only, otherwise all.
func (r *Repository) Categories(ctx context.Context, withCounts, publishedOnly bool) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."name" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	if !withCounts || len(categories) == 0 {
		return categories, nil
	}

	counts, err := r.categoryArticleCounts(ctx, publishedOnly)
	if err != nil {
		return nil, err
	}

	for i := range categories {
		categories[i].ArticleCount = counts[categories[i].ID]
	}

	return categories, nil
}

func (r *Repository) categoryArticleCounts(ctx context.Context, publishedOnly bool) (map[string]int, error) {
	var rows []struct {
		CategoryID string
		Count      int
	}

	query := `SELECT "categoryId" AS category_id, count(*) AS count FROM "articles" GROUP BY "categoryId"`
	args := []interface{}{}
	if publishedOnly {
		query = `SELECT "categoryId" AS category_id, count(*) AS count FROM "articles" WHERE "status" = ? GROUP BY "categoryId"`
		args = append(args, StatusPublished)
	}

	if _, err := r.db.QueryContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to count articles by category: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}

	return counts, nil
}

func (r *Repository) CategoryByID(ctx context.Context, categoryID string) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."categoryId" = ?`, categoryID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *Repository) CreateCategory(ctx context.Context, name string, description *string) (*Category, error) {
	category := &Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
	}

	if _, err := r.db.ModelContext(ctx, category).Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}

	return category, nil
}

func (r *Repository) UpdateCategory(ctx context.Context, categoryID, name string, description *string) (*Category, error) {
	result, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Set(`"name" = ?`, name).
		Set(`"description" = ?`, description).
		Where(`"t"."categoryId" = ?`, categoryID).
		Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, nil
	}

	return r.CategoryByID(ctx, categoryID)
}

func (r *Repository) DeleteCategory(ctx context.Context, categoryID string) error {
	result, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Where(`"t"."categoryId" = ?`, categoryID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %s not found", categoryID)
	}

	return nil
}

// CategoryNameMatches returns category names containing the query, for
// search suggestions.
func (r *Repository) CategoryNameMatches(ctx context.Context, query string, limit int) ([]string, error) {
	var names []string
	err := r.db.ModelContext(ctx, (*Category)(nil)).
		Column("name").
		Where(`"t"."name" ILIKE ?`, "%"+query+"%").
		Limit(limit).
		Select(&names)
	if err != nil {
		return nil, fmt.Errorf("failed to query category name matches: %w", err)
	}

	return names, nil
}
