package db

import (
	"context"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

func (r *Repository) TagsByIDs(ctx context.Context, tagIDs []string) ([]Tag, error) {
	if len(tagIDs) == 0 {
		return []Tag{}, nil
	}

	tags := []Tag{}
	err := r.db.ModelContext(ctx, &tags).
		Where(`"t"."tagId" IN (?)`, pg.In(tagIDs)).
		OrderExpr(`"t"."name" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query tags by ids: %w", err)
	}

	return tags, nil
}

// UpsertTagsByName resolves tag names to tag rows, creating the missing
// ones. The returned slice preserves the input order.
func (r *Repository) UpsertTagsByName(ctx context.Context, names []string) ([]Tag, error) {
	if len(names) == 0 {
		return []Tag{}, nil
	}

	var existing []Tag
	err := r.db.ModelContext(ctx, &existing).
		Where(`"t"."name" IN (?)`, pg.In(names)).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query tags by names: %w", err)
	}

	byName := make(map[string]Tag, len(names))
	for i := range existing {
		byName[existing[i].Name] = existing[i]
	}

	result := make([]Tag, 0, len(names))
	for _, name := range names {
		if tag, ok := byName[name]; ok {
			result = append(result, tag)
			continue
		}

		tag := Tag{ID: uuid.NewString(), Name: name}
		_, err := r.db.ModelContext(ctx, &tag).
			OnConflict(`("name") DO UPDATE SET "name" = EXCLUDED."name"`).
			Returning("*").
			Insert()
		if err != nil {
			return nil, fmt.Errorf("failed to upsert tag %q: %w", name, err)
		}

		byName[name] = tag
		result = append(result, tag)
	}

	return result, nil
}

// PopularTags returns the tags with the most PUBLISHED articles.
func (r *Repository) PopularTags(ctx context.Context, limit int) ([]Tag, error) {
	var rows []struct {
		TagID        string
		Name         string
		ArticleCount int
	}

	_, err := r.db.QueryContext(ctx, &rows, `
		SELECT tg."tagId" AS tag_id, tg."name" AS name, count(a."articleId") AS article_count
		FROM "tags" tg
		LEFT JOIN "articles" a
			ON tg."tagId" = ANY (a."tagIds") AND a."status" = ?
		GROUP BY tg."tagId", tg."name"
		ORDER BY article_count DESC
		LIMIT ?`, StatusPublished, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular tags: %w", err)
	}

	tags := make([]Tag, len(rows))
	for i, row := range rows {
		tags[i] = Tag{ID: row.TagID, Name: row.Name, ArticleCount: row.ArticleCount}
	}

	return tags, nil
}

// TagNameMatches returns tag names containing the query, for search
// suggestions.
func (r *Repository) TagNameMatches(ctx context.Context, query string, limit int) ([]string, error) {
	var names []string
	err := r.db.ModelContext(ctx, (*Tag)(nil)).
		Column("name").
		Where(`"t"."name" ILIKE ?`, "%"+query+"%").
		Limit(limit).
		Select(&names)
	if err != nil {
		return nil, fmt.Errorf("failed to query tag name matches: %w", err)
	}

	return names, nil
}
