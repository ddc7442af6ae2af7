package db

import (
	"context"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// attachArticleRelations fills the tag lists and like/saved counts for
// a batch of articles in three queries total.
func (r *Repository) attachArticleRelations(ctx context.Context, articles []Article) ([]Article, error) {
	articles, err := r.attachTagsBatch(ctx, articles)
	if err != nil {
		return nil, err
	}

	return r.attachCountsBatch(ctx, articles)
}

func (r *Repository) attachArticleRelationsOne(ctx context.Context, article *Article) (*Article, error) {
	filled, err := r.attachArticleRelations(ctx, []Article{*article})
	if err != nil {
		return nil, err
	}

	return &filled[0], nil
}

func (r *Repository) attachTagsBatch(ctx context.Context, articles []Article) ([]Article, error) {
	tagSet := make(map[string]struct{})
	for i := range articles {
		for _, id := range articles[i].TagIDs {
			tagSet[id] = struct{}{}
		}
	}

	if len(tagSet) == 0 {
		for i := range articles {
			articles[i].Tags = []Tag{}
		}
		return articles, nil
	}

	allTagIDs := make([]string, 0, len(tagSet))
	for id := range tagSet {
		allTagIDs = append(allTagIDs, id)
	}

	tags, err := r.TagsByIDs(ctx, allTagIDs)
	if err != nil {
		return nil, fmt.Errorf("get tags by ids: %w", err)
	}

	tagsByID := make(map[string]Tag, len(tags))
	for i := range tags {
		tagsByID[tags[i].ID] = tags[i]
	}

	for i := range articles {
		ids := articles[i].TagIDs
		out := make([]Tag, 0, len(ids))
		for _, id := range ids {
			if t, ok := tagsByID[id]; ok {
				out = append(out, t)
			}
		}
		articles[i].Tags = out
	}

	return articles, nil
}

func (r *Repository) attachCountsBatch(ctx context.Context, articles []Article) ([]Article, error) {
	if len(articles) == 0 {
		return articles, nil
	}

	ids := make([]string, len(articles))
	for i := range articles {
		ids[i] = articles[i].ID
	}

	likeCounts, err := r.likeCountsByArticle(ctx, ids)
	if err != nil {
		return nil, err
	}

	savedCounts, err := r.savedCountsByArticle(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range articles {
		articles[i].LikeCount = likeCounts[articles[i].ID]
		articles[i].SavedByCount = savedCounts[articles[i].ID]
	}

	return articles, nil
}

func (r *Repository) likeCountsByArticle(ctx context.Context, articleIDs []string) (map[string]int, error) {
	return r.countsByArticle(ctx, "likes", articleIDs)
}

func (r *Repository) savedCountsByArticle(ctx context.Context, articleIDs []string) (map[string]int, error) {
	return r.countsByArticle(ctx, "saved_articles", articleIDs)
}

func (r *Repository) countsByArticle(ctx context.Context, table string, articleIDs []string) (map[string]int, error) {
	var rows []struct {
		ArticleID string
		Count     int
	}

	_, err := r.db.QueryContext(ctx, &rows, fmt.Sprintf(`
		SELECT "articleId" AS article_id, count(*) AS count
		FROM %q
		WHERE "articleId" IN (?)
		GROUP BY "articleId"`, table), pg.In(articleIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to count %s by article: %w", table, err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.ArticleID] = row.Count
	}

	return counts, nil
}
