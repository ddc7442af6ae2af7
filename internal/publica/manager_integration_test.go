package publica

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/publica-dev/publica/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDB      *pg.DB
	testSeed    *db.Seed
	testManager *Manager
)

func testConfig() Config {
	return Config{
		TokenSecret:  "test-secret",
		TokenTTL:     time.Hour,
		TrendingDays: 7,
	}
}

func TestMain(m *testing.M) {
	database, seed, err := db.SetupTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up test database: %v\n", err)
		os.Exit(1)
	}

	testDB = database
	testSeed = seed
	if testDB != nil {
		testManager = NewManager(db.New(testDB), testConfig())
	}

	code := m.Run()

	if testDB != nil {
		if err := testDB.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
		}
	}

	os.Exit(code)
}

func requireDB(t *testing.T) context.Context {
	t.Helper()
	if testDB == nil {
		t.Skip("test database is not available, start it with docker-compose -f docker-compose.test.yml up -d")
	}
	return context.Background()
}

// withTx yields a manager bound to a rolled-back transaction for tests
// that mutate the fixtures.
func withTx(t *testing.T) (context.Context, *Manager) {
	ctx := requireDB(t)

	tx, err := testDB.Begin()
	require.NoError(t, err, "failed to begin transaction")

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	return ctx, NewManager(db.New(tx), testConfig())
}

func TestManager_Workflow_Integration(t *testing.T) {
	t.Run("EditorSubmitsOwnDraft", func(t *testing.T) {
		ctx, manager := withTx(t)

		article, err := manager.UpdateStatusByEditor(ctx, testSeed.Editor, testSeed.PendingDraft.ID, StatusDraft)
		require.NoError(t, err)
		assert.Equal(t, db.StatusDraft, article.Status)
	})

	t.Run("EditorMayNotPublish", func(t *testing.T) {
		ctx, manager := withTx(t)

		_, err := manager.UpdateStatusByEditor(ctx, testSeed.Editor, testSeed.PendingDraft.ID, StatusPublished)
		require.ErrorIs(t, err, ErrPermissionDenied)

		// Refused before any write: the status is unchanged.
		unchanged, dbErr := manager.db.ArticleByID(ctx, testSeed.PendingDraft.ID)
		require.NoError(t, dbErr)
		assert.Equal(t, db.StatusPending, unchanged.Status)
	})

	t.Run("EditorForeignArticleReadsAsNotFound", func(t *testing.T) {
		ctx, manager := withTx(t)

		// Reader authored nothing; from their perspective the article
		// does not exist even though it does.
		_, err := manager.UpdateStatusByEditor(ctx, testSeed.Reader, testSeed.PendingDraft.ID, StatusPending)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("AdminRejectsWithReason", func(t *testing.T) {
		ctx, manager := withTx(t)

		reason := "duplicate submission"
		article, err := manager.UpdateStatusByAdmin(ctx, testSeed.PendingDraft.ID, StatusRejected, &reason)
		require.NoError(t, err)
		assert.Equal(t, db.StatusRejected, article.Status)
		require.NotNil(t, article.RejectionReason)
		assert.Equal(t, reason, *article.RejectionReason)
	})

	t.Run("AdminRejectsWithoutReason", func(t *testing.T) {
		ctx, manager := withTx(t)

		article, err := manager.UpdateStatusByAdmin(ctx, testSeed.PendingDraft.ID, StatusRejected, nil)
		require.NoError(t, err)
		assert.Equal(t, db.StatusRejected, article.Status)
		assert.Nil(t, article.RejectionReason)
	})

	t.Run("AdminPublishesForeignArticle", func(t *testing.T) {
		ctx, manager := withTx(t)

		article, err := manager.UpdateStatusByAdmin(ctx, testSeed.PendingDraft.ID, StatusPublished, nil)
		require.NoError(t, err)
		assert.Equal(t, db.StatusPublished, article.Status)
	})

	t.Run("AdminMissingArticleNotFound", func(t *testing.T) {
		ctx, manager := withTx(t)

		_, err := manager.UpdateStatusByAdmin(ctx, "00000000-0000-0000-0000-000000000000", StatusPublished, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestManager_StatusCounts_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	_, counts, err := manager.MyArticlesByStatus(ctx, testSeed.Editor, nil, nil, PageRequest{})
	require.NoError(t, err)

	require.Len(t, counts, 4, "status counts must always carry all four statuses")
	assert.Equal(t, 0, counts[StatusDraft])
	assert.Equal(t, 0, counts[StatusRejected])
	assert.Equal(t, 1, counts[StatusPending])
	assert.Equal(t, 3, counts[StatusPublished])
}

func TestManager_Trending_Integration(t *testing.T) {
	ctx := requireDB(t)

	result, err := testManager.TrendingArticles(ctx, TrendingParams{})
	require.NoError(t, err)
	require.Len(t, result.Articles, 2, "the 30 day old article is outside the default window")

	hot := result.Articles[0]
	assert.Equal(t, testSeed.PublishedHot.ID, hot.ID)
	require.NotNil(t, hot.EngagementScore)
	// 1000 views, one like, one save.
	assert.Equal(t, 1000+2+3, *hot.EngagementScore)
}

func TestManager_Search_Integration(t *testing.T) {
	ctx := requireDB(t)

	t.Run("QueryAttachesRelevanceScores", func(t *testing.T) {
		result, err := testManager.Search(ctx, SearchParams{Query: "go"})
		require.NoError(t, err)
		require.NotEmpty(t, result.Articles)

		for _, article := range result.Articles {
			require.NotNil(t, article.RelevanceScore)
		}
		for i := 1; i < len(result.Articles); i++ {
			assert.GreaterOrEqual(t,
				*result.Articles[i-1].RelevanceScore,
				*result.Articles[i].RelevanceScore,
				"relevance sort must be descending")
		}
	})

	t.Run("NoQueryNoScores", func(t *testing.T) {
		result, err := testManager.Search(ctx, SearchParams{SortBy: "date"})
		require.NoError(t, err)
		require.NotEmpty(t, result.Articles)
		for _, article := range result.Articles {
			assert.Nil(t, article.RelevanceScore)
		}
	})

	t.Run("SideChannelsAlwaysPresent", func(t *testing.T) {
		result, err := testManager.Search(ctx, SearchParams{Query: "zzz-no-match"})
		require.NoError(t, err)
		assert.Empty(t, result.Articles)
		assert.Len(t, result.Categories, 2)
		assert.NotEmpty(t, result.PopularTags)
	})

	t.Run("WeekRangeExcludesOldArticles", func(t *testing.T) {
		result, err := testManager.Search(ctx, SearchParams{DateRange: "week"})
		require.NoError(t, err)
		for _, article := range result.Articles {
			assert.NotEqual(t, testSeed.OldPublished.ID, article.ID)
		}
	})

	t.Run("DefaultsToPublished", func(t *testing.T) {
		result, err := testManager.Search(ctx, SearchParams{})
		require.NoError(t, err)
		for _, article := range result.Articles {
			assert.Equal(t, db.StatusPublished, article.Status)
		}
	})
}

func TestManager_SearchSuggestions_Integration(t *testing.T) {
	ctx := requireDB(t)

	t.Run("ShortQueryYieldsNothing", func(t *testing.T) {
		suggestions, err := testManager.SearchSuggestions(ctx, "g")
		require.NoError(t, err)
		assert.Nil(t, suggestions)
	})

	t.Run("MatchesAcrossKinds", func(t *testing.T) {
		suggestions, err := testManager.SearchSuggestions(ctx, "go")
		require.NoError(t, err)
		require.NotNil(t, suggestions)
		assert.Contains(t, suggestions.Articles, "Go Generics in Practice")
		assert.Contains(t, suggestions.Tags, "go")
	})
}

func TestManager_Articles_Integration(t *testing.T) {
	t.Run("CreateThenReplaceTags", func(t *testing.T) {
		ctx, manager := withTx(t)

		created, err := manager.CreateArticle(ctx, testSeed.Editor, ArticleInput{
			Title:      "Tagged",
			Content:    "body",
			CategoryID: testSeed.TechCategory.ID,
			Tags:       []string{"go", "rust"},
		})
		require.NoError(t, err)
		assert.Equal(t, db.StatusDraft, created.Status, "new articles start as drafts")
		assert.ElementsMatch(t, []string{"go", "rust"}, tagNames(created.Tags))

		updated, err := manager.UpdateArticle(ctx, created.ID, ArticleInput{
			Title:      "Tagged",
			Content:    "body",
			CategoryID: testSeed.TechCategory.ID,
			Tags:       []string{"rust"},
		})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"rust"}, tagNames(updated.Tags))

		// The unlinked tag survives globally.
		still, err := manager.db.TagsByIDs(ctx, []string{testSeed.GoTag.ID})
		require.NoError(t, err)
		assert.Len(t, still, 1)
	})

	t.Run("ViewIncrementsOncePerRead", func(t *testing.T) {
		ctx, manager := withTx(t)

		first, err := manager.ViewArticle(ctx, testSeed.PublishedCold.ID)
		require.NoError(t, err)
		second, err := manager.ViewArticle(ctx, testSeed.PublishedCold.ID)
		require.NoError(t, err)
		assert.Equal(t, first.Views+1, second.Views)
	})

	t.Run("LikeTwiceFails", func(t *testing.T) {
		ctx, manager := withTx(t)

		require.NoError(t, manager.LikeArticle(ctx, testSeed.Admin, testSeed.PublishedCold.ID))
		assert.Error(t, manager.LikeArticle(ctx, testSeed.Admin, testSeed.PublishedCold.ID))
	})

	t.Run("MyFeedFollowsCategories", func(t *testing.T) {
		ctx, manager := withTx(t)

		feed, err := manager.MyFeed(ctx, testSeed.Reader)
		require.NoError(t, err)
		require.NotEmpty(t, feed)
		for _, article := range feed {
			assert.Equal(t, testSeed.TechCategory.ID, article.CategoryID)
			assert.Equal(t, db.StatusPublished, article.Status)
		}

		empty, err := manager.MyFeed(ctx, testSeed.Admin)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}

func TestManager_Auth_Integration(t *testing.T) {
	t.Run("RegisterThenLogin", func(t *testing.T) {
		ctx, manager := withTx(t)

		registered, err := manager.Register(ctx, "new@example.com", "hunter22", "Newcomer")
		require.NoError(t, err)
		assert.Equal(t, db.RoleUser, registered.User.Role)
		assert.NotEmpty(t, registered.Token)
		assert.NotEqual(t, "hunter22", registered.User.Password, "password must be stored hashed")

		logged, err := manager.Login(ctx, "new@example.com", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, logged.User.ID)

		user, err := manager.UserFromToken(ctx, logged.Token)
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, user.ID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		ctx, manager := withTx(t)

		_, err := manager.Login(ctx, testSeed.Reader.Email, "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmailSameError", func(t *testing.T) {
		ctx, manager := withTx(t)

		_, err := manager.Login(ctx, "ghost@example.com", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		ctx, manager := withTx(t)

		_, err := manager.UserFromToken(ctx, "not-a-token")
		assert.Error(t, err)
	})
}

func TestManager_Stats_Integration(t *testing.T) {
	ctx := requireDB(t)

	t.Run("EditorStats", func(t *testing.T) {
		stats, err := testManager.EditorStats(ctx, testSeed.Editor)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.ArticleStats[StatusPublished])
		assert.Equal(t, 1510, stats.TotalViews, "views of the three published articles")
		assert.Equal(t, 1, stats.TotalLikes)
	})

	t.Run("Dashboard", func(t *testing.T) {
		stats, err := testManager.DashboardStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.TotalUsers)
		assert.Equal(t, 4, stats.TotalArticles)
		assert.Equal(t, 1, stats.UsersByRole[RoleAdmin])
		assert.Len(t, stats.RecentArticles, 4)
	})
}

func tagNames(tags []db.Tag) []string {
	names := make([]string, len(tags))
	for i := range tags {
		names[i] = tags[i].Name
	}
	return names
}
