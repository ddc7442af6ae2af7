package publica

import (
	"context"
	"fmt"

	"github.com/publica-dev/publica/internal/db"
)

func (m *Manager) Users(ctx context.Context) ([]db.User, error) {
	users, err := m.db.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get users: %w", err)
	}

	return users, nil
}

// UserDetails returns one user with their authored articles and
// bookmarks.
func (m *Manager) UserDetails(ctx context.Context, userID string) (*UserDetails, error) {
	user, err := m.db.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found: %w", ErrNotFound)
	}

	articles, err := m.db.Articles(ctx, db.ArticleFilter{AuthorID: &userID}, db.SortCreatedDesc, 1, 100)
	if err != nil {
		return nil, fmt.Errorf("db get user articles: %w", err)
	}

	saved, err := m.db.SavedArticlesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("db get saved articles: %w", err)
	}

	return &UserDetails{User: *user, Articles: articles, SavedArticles: saved}, nil
}

func (m *Manager) UpdateUser(ctx context.Context, userID, name, email string, role Role) (*db.User, error) {
	user, err := m.db.UpdateUser(ctx, userID, name, email, string(role))
	if err != nil {
		return nil, fmt.Errorf("db update user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found: %w", ErrNotFound)
	}

	return user, nil
}

func (m *Manager) UpdateUserRole(ctx context.Context, userID string, role Role) (*db.User, error) {
	user, err := m.db.UpdateUserRole(ctx, userID, string(role))
	if err != nil {
		return nil, fmt.Errorf("db update user role: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found: %w", ErrNotFound)
	}

	return user, nil
}

func (m *Manager) UpdateUserProfile(ctx context.Context, actor db.User, name string, profilePicture *string) (*db.User, error) {
	user, err := m.db.UpdateUserProfile(ctx, actor.ID, name, profilePicture)
	if err != nil {
		return nil, fmt.Errorf("db update user profile: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found: %w", ErrNotFound)
	}

	return user, nil
}

func (m *Manager) DeleteUser(ctx context.Context, userID string) error {
	if err := m.db.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("db delete user: %w", err)
	}

	return nil
}
