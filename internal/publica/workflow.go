package publica

import (
	"context"
	"fmt"

	"github.com/publica-dev/publica/internal/db"
)

// CanTransition is the single authorization policy for workflow status
// changes. Admins may move any article anywhere; editors may only park
// their own articles back in DRAFT or submit them as PENDING; readers
// may not transition at all. The source status is deliberately
// unconstrained: the workflow is gated by role, not by a transition
// table.
func CanTransition(role Role, isOwner bool, from, to Status) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleEditor:
		return isOwner && (to == StatusDraft || to == StatusPending)
	default:
		return false
	}
}

// UpdateStatusByEditor moves one of the actor's own articles to DRAFT
// or PENDING. Any other target is refused before touching the store,
// and a foreign or missing article reads as not found.
func (m *Manager) UpdateStatusByEditor(ctx context.Context, actor db.User, articleID string, target Status) (*Article, error) {
	if !CanTransition(RoleEditor, true, "", target) {
		return nil, fmt.Errorf("editors can only set articles to DRAFT or PENDING status: %w", ErrPermissionDenied)
	}

	owned, err := m.db.ArticleByIDAndAuthor(ctx, articleID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("db get article: %w", err)
	}
	if owned == nil {
		return nil, fmt.Errorf("article not found or unauthorized: %w", ErrNotFound)
	}

	updated, err := m.db.UpdateArticleStatus(ctx, articleID, string(target), nil)
	if err != nil {
		return nil, fmt.Errorf("db update article status: %w", err)
	}
	if updated == nil {
		return nil, fmt.Errorf("article not found or unauthorized: %w", ErrNotFound)
	}

	return &Article{Article: *updated}, nil
}

// UpdateOwnArticleStatus moves one of the actor's own articles to any
// status. Target restrictions are left to the route's role gate; a
// foreign or missing article reads as not found.
func (m *Manager) UpdateOwnArticleStatus(ctx context.Context, actor db.User, articleID string, target Status) (*Article, error) {
	owned, err := m.db.ArticleByIDAndAuthor(ctx, articleID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("db get article: %w", err)
	}
	if owned == nil {
		return nil, fmt.Errorf("article not found: %w", ErrNotFound)
	}

	updated, err := m.db.UpdateArticleStatus(ctx, articleID, string(target), nil)
	if err != nil {
		return nil, fmt.Errorf("db update article status: %w", err)
	}
	if updated == nil {
		return nil, fmt.Errorf("article not found: %w", ErrNotFound)
	}

	return &Article{Article: *updated}, nil
}

// UpdateStatusByAdmin moves any article to any status. The rejection
// reason is recorded only alongside a REJECTED target.
func (m *Manager) UpdateStatusByAdmin(ctx context.Context, articleID string, target Status, rejectionReason *string) (*Article, error) {
	updated, err := m.db.UpdateArticleStatus(ctx, articleID, string(target), rejectionReason)
	if err != nil {
		return nil, fmt.Errorf("db update article status: %w", err)
	}
	if updated == nil {
		return nil, fmt.Errorf("article not found: %w", ErrNotFound)
	}

	// Hook: notify the author when the article goes PUBLISHED or
	// REJECTED. Delivery is not implemented yet.

	return &Article{Article: *updated}, nil
}

// PendingArticles is the admin review queue, most recently touched
// first.
func (m *Manager) PendingArticles(ctx context.Context, page PageRequest) (*ArticlePage, error) {
	status := db.StatusPending
	return m.articlePage(ctx, db.ArticleFilter{Status: &status}, db.SortUpdatedDesc, page)
}

// ArticlesByStatus lists articles in one status, or all of them.
func (m *Manager) ArticlesByStatus(ctx context.Context, status *Status, page PageRequest) (*ArticlePage, error) {
	return m.articlePage(ctx, db.ArticleFilter{Status: statusPtr(status)}, db.SortUpdatedDesc, page)
}

// MyArticlesByStatus lists the caller's own articles with a status
// summary scoped to the caller.
func (m *Manager) MyArticlesByStatus(ctx context.Context, actor db.User, status *Status, search *string,
	page PageRequest) (*ArticlePage, StatusCounts, error) {

	filter := db.ArticleFilter{
		AuthorID: &actor.ID,
		Status:   statusPtr(status),
		Search:   search,
	}

	result, err := m.articlePage(ctx, filter, db.SortUpdatedDesc, page)
	if err != nil {
		return nil, nil, err
	}

	counts, err := m.statusCounts(ctx, &actor.ID)
	if err != nil {
		return nil, nil, err
	}

	return result, counts, nil
}

// AllArticlesByStatus lists the whole corpus with corpus-wide status
// counts, for the admin workflow board.
func (m *Manager) AllArticlesByStatus(ctx context.Context, status *Status, search *string, categoryID *string,
	page PageRequest) (*ArticlePage, StatusCounts, error) {

	filter := db.ArticleFilter{
		Status:     statusPtr(status),
		Search:     search,
		CategoryID: categoryID,
	}

	result, err := m.articlePage(ctx, filter, db.SortUpdatedDesc, page)
	if err != nil {
		return nil, nil, err
	}

	counts, err := m.statusCounts(ctx, nil)
	if err != nil {
		return nil, nil, err
	}

	return result, counts, nil
}

// statusCounts overlays the store's grouped counts onto the fixed
// four-key shape, so absent statuses show up as zero.
func (m *Manager) statusCounts(ctx context.Context, authorID *string) (StatusCounts, error) {
	grouped, err := m.db.ArticleStatusCounts(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("db get status counts: %w", err)
	}

	counts := make(StatusCounts, len(Statuses))
	for _, status := range Statuses {
		counts[status] = grouped[string(status)]
	}

	return counts, nil
}

func statusPtr(status *Status) *string {
	if status == nil {
		return nil
	}
	s := string(*status)
	return &s
}
