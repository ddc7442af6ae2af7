package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

func (r *Repository) CreateUser(ctx context.Context, user *User) (*User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = RoleUser
	}
	user.CreatedAt = time.Now()

	if _, err := r.db.ModelContext(ctx, user).Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."email" = ?`, email).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *Repository) UserByID(ctx context.Context, userID string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."userId" = ?`, userID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// Users lists all users with per-user article and bookmark counts.
func (r *Repository) Users(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.ModelContext(ctx, &users).
		OrderExpr(`"t"."createdAt" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	if len(users) == 0 {
		return users, nil
	}

	articleCounts, err := r.countsByUserColumn(ctx, `SELECT "authorId" AS user_id, count(*) AS count FROM "articles" GROUP BY "authorId"`)
	if err != nil {
		return nil, err
	}

	savedCounts, err := r.countsByUserColumn(ctx, `SELECT "userId" AS user_id, count(*) AS count FROM "saved_articles" GROUP BY "userId"`)
	if err != nil {
		return nil, err
	}

	for i := range users {
		users[i].ArticleCount = articleCounts[users[i].ID]
		users[i].SavedCount = savedCounts[users[i].ID]
	}

	return users, nil
}

func (r *Repository) countsByUserColumn(ctx context.Context, query string) (map[string]int, error) {
	var rows []struct {
		UserID string
		Count  int
	}

	if _, err := r.db.QueryContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to count rows by user: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.UserID] = row.Count
	}

	return counts, nil
}

func (r *Repository) UpdateUser(ctx context.Context, userID, name, email, role string) (*User, error) {
	result, err := r.db.ModelContext(ctx, (*User)(nil)).
		Set(`"name" = ?`, name).
		Set(`"email" = ?`, email).
		Set(`"role" = ?`, role).
		Where(`"t"."userId" = ?`, userID).
		Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, nil
	}

	return r.UserByID(ctx, userID)
}

func (r *Repository) UpdateUserRole(ctx context.Context, userID, role string) (*User, error) {
	result, err := r.db.ModelContext(ctx, (*User)(nil)).
		Set(`"role" = ?`, role).
		Where(`"t"."userId" = ?`, userID).
		Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, nil
	}

	return r.UserByID(ctx, userID)
}

func (r *Repository) UpdateUserProfile(ctx context.Context, userID, name string, profilePicture *string) (*User, error) {
	result, err := r.db.ModelContext(ctx, (*User)(nil)).
		Set(`"name" = ?`, name).
		Set(`"profilePicture" = ?`, profilePicture).
		Where(`"t"."userId" = ?`, userID).
		Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, nil
	}

	return r.UserByID(ctx, userID)
}

func (r *Repository) DeleteUser(ctx context.Context, userID string) error {
	result, err := r.db.ModelContext(ctx, (*User)(nil)).
		Where(`"t"."userId" = ?`, userID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", userID)
	}

	return nil
}

// UsersCountByRole groups users by role.
func (r *Repository) UsersCountByRole(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Role  string
		Count int
	}

	err := r.db.ModelContext(ctx, (*User)(nil)).
		Column("role").
		ColumnExpr("count(*) AS count").
		Group("role").
		Select(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get users count by role: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Count
	}

	return counts, nil
}

func (r *Repository) UsersCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*User)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get users count: %w", err)
	}

	return count, nil
}
