package publica

import (
	"context"
	"fmt"

	"github.com/publica-dev/publica/internal/db"
)

// Categories lists categories by name; counts cover published articles
// only and are attached when requested.
func (m *Manager) Categories(ctx context.Context, includeCount bool) ([]db.Category, error) {
	categories, err := m.db.Categories(ctx, includeCount, true)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return categories, nil
}

// AllCategories lists categories with any-status article counts, for
// the admin view.
func (m *Manager) AllCategories(ctx context.Context) ([]db.Category, error) {
	categories, err := m.db.Categories(ctx, true, false)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return categories, nil
}

func (m *Manager) CreateCategory(ctx context.Context, name string, description *string) (*db.Category, error) {
	category, err := m.db.CreateCategory(ctx, name, description)
	if err != nil {
		return nil, fmt.Errorf("db create category: %w", err)
	}

	return category, nil
}

func (m *Manager) UpdateCategory(ctx context.Context, categoryID, name string, description *string) (*db.Category, error) {
	category, err := m.db.UpdateCategory(ctx, categoryID, name, description)
	if err != nil {
		return nil, fmt.Errorf("db update category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("category not found: %w", ErrNotFound)
	}

	return category, nil
}

func (m *Manager) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := m.db.DeleteCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("db delete category: %w", err)
	}

	return nil
}
