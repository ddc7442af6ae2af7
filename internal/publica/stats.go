package publica

import (
	"context"
	"fmt"

	"github.com/publica-dev/publica/internal/db"
	"golang.org/x/sync/errgroup"
)

const recentArticlesLimit = 5

// EditorStats aggregates the caller's authored corpus: per-status
// counts, total views on published work, total likes received. The
// three reads are independent and issued concurrently.
func (m *Manager) EditorStats(ctx context.Context, actor db.User) (*EditorStats, error) {
	var stats EditorStats

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		stats.ArticleStats, err = m.statusCounts(groupCtx, &actor.ID)
		return err
	})
	group.Go(func() error {
		var err error
		stats.TotalViews, err = m.db.ViewsSumByAuthor(groupCtx, actor.ID)
		return err
	})
	group.Go(func() error {
		var err error
		stats.TotalLikes, err = m.db.LikesCountByAuthor(groupCtx, actor.ID)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("db editor stats: %w", err)
	}

	return &stats, nil
}

// DashboardStats aggregates the admin overview; the four reads are
// independent and issued concurrently.
func (m *Manager) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var (
		stats      DashboardStats
		roleCounts map[string]int
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		stats.TotalUsers, err = m.db.UsersCount(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		stats.TotalArticles, err = m.db.ArticlesTotalCount(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		roleCounts, err = m.db.UsersCountByRole(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		stats.RecentArticles, err = m.db.RecentArticles(groupCtx, recentArticlesLimit)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("db dashboard stats: %w", err)
	}

	stats.UsersByRole = make(map[Role]int, len(roleCounts))
	for role, count := range roleCounts {
		stats.UsersByRole[Role(role)] = count
	}

	return &stats, nil
}
