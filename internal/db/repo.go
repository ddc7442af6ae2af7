package db

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// ArticleSort selects the store-level ordering of article listings.
type ArticleSort int

const (
	SortUpdatedDesc ArticleSort = iota
	SortCreatedDesc
	SortViewsDesc
	SortLikesDesc
	// SortTrending orders by views, then like count.
	SortTrending
	// SortRelevance is the store-side half of relevance ranking:
	// views first, newest first. Per-page rescoring happens upstream.
	SortRelevance
)

// ArticleFilter narrows article listings. Nil pointers mean "no filter".
type ArticleFilter struct {
	Status     *string
	CategoryID *string
	// CategoryIDs keeps articles from any of the listed categories
	// (personal feed). Ignored when empty.
	CategoryIDs []string
	AuthorID    *string
	// Search matches title/content only (status listings).
	Search *string
	// Query matches title/content/summary/tag names (full-text search).
	Query *string
	// TagNames keeps articles carrying at least one of the named tags.
	TagNames []string
	// CreatedAfter is a lower bound on createdAt.
	CreatedAfter *time.Time
}

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Ping(ctx)
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Close()
	}

	return nil
}

func applyArticleFilter(query *orm.Query, filter ArticleFilter) *orm.Query {
	if filter.Status != nil {
		query = query.Where(`"t"."status" = ?`, *filter.Status)
	}

	if filter.CategoryID != nil {
		query = query.Where(`"t"."categoryId" = ?`, *filter.CategoryID)
	}

	if len(filter.CategoryIDs) > 0 {
		query = query.Where(`"t"."categoryId" IN (?)`, pg.In(filter.CategoryIDs))
	}

	if filter.AuthorID != nil {
		query = query.Where(`"t"."authorId" = ?`, *filter.AuthorID)
	}

	if filter.CreatedAfter != nil {
		query = query.Where(`"t"."createdAt" >= ?`, *filter.CreatedAfter)
	}

	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		query = query.WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			return q.
				WhereOr(`"t"."title" ILIKE ?`, pattern).
				WhereOr(`"t"."content" ILIKE ?`, pattern), nil
		})
	}

	if filter.Query != nil && *filter.Query != "" {
		pattern := "%" + *filter.Query + "%"
		query = query.WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			return q.
				WhereOr(`"t"."title" ILIKE ?`, pattern).
				WhereOr(`"t"."content" ILIKE ?`, pattern).
				WhereOr(`"t"."summary" ILIKE ?`, pattern).
				WhereOr(`EXISTS (
					SELECT 1 FROM "tags" tg
					WHERE tg."tagId" = ANY ("t"."tagIds") AND tg."name" ILIKE ?
				)`, pattern), nil
		})
	}

	if len(filter.TagNames) > 0 {
		query = query.Where(`EXISTS (
			SELECT 1 FROM "tags" tg
			WHERE tg."tagId" = ANY ("t"."tagIds") AND tg."name" IN (?)
		)`, pg.In(filter.TagNames))
	}

	return query
}

const likeCountExpr = `(SELECT count(*) FROM "likes" l WHERE l."articleId" = "t"."articleId")`

func applyArticleSort(query *orm.Query, sort ArticleSort) *orm.Query {
	switch sort {
	case SortCreatedDesc:
		return query.OrderExpr(`"t"."createdAt" DESC`)
	case SortViewsDesc:
		return query.OrderExpr(`"t"."views" DESC`)
	case SortLikesDesc:
		return query.OrderExpr(likeCountExpr + ` DESC`)
	case SortTrending:
		return query.OrderExpr(`"t"."views" DESC, ` + likeCountExpr + ` DESC`)
	case SortRelevance:
		return query.OrderExpr(`"t"."views" DESC, "t"."createdAt" DESC`)
	default:
		return query.OrderExpr(`"t"."updatedAt" DESC`)
	}
}
