package publica

import (
	"testing"
	"time"

	"github.com/publica-dev/publica/internal/db"
	"github.com/stretchr/testify/assert"
)

func TestEngagementScore(t *testing.T) {
	assert.Equal(t, 0, EngagementScore(0, 0, 0))
	assert.Equal(t, 100, EngagementScore(100, 0, 0))
	assert.Equal(t, 2, EngagementScore(0, 1, 0))
	assert.Equal(t, 3, EngagementScore(0, 0, 1))
	assert.Equal(t, 100+2*10+3*4, EngagementScore(100, 10, 4))
}

func TestRelevanceScore(t *testing.T) {
	summary := "A short summary about databases"
	base := db.Article{
		Title:   "Introduction to Go",
		Content: "This article covers goroutines and channels.",
		Summary: &summary,
		Tags:    []db.Tag{{Name: "golang"}, {Name: "concurrency"}},
	}

	t.Run("NoMatchNoEngagement", func(t *testing.T) {
		article := base
		assert.Equal(t, 0.0, RelevanceScore(&article, "kubernetes"))
	})

	t.Run("TitleMatchScoresTen", func(t *testing.T) {
		article := db.Article{Title: "Introduction to Go", Content: "nothing else"}
		assert.Equal(t, 10.0, RelevanceScore(&article, "introduction"))
	})

	t.Run("CaseInsensitiveSubstring", func(t *testing.T) {
		article := db.Article{Title: "Introduction to Go", Content: "nothing else"}
		assert.Equal(t, 10.0, RelevanceScore(&article, "INTRO"))
	})

	t.Run("EachMatchingFieldAddsItsWeight", func(t *testing.T) {
		article := base
		// "go" is a substring of title, content ("goroutines") and the
		// golang tag, but not of the summary.
		assert.Equal(t, 10.0+3.0+2.0, RelevanceScore(&article, "go"))
	})

	t.Run("SummaryWeight", func(t *testing.T) {
		article := base
		assert.Equal(t, 5.0, RelevanceScore(&article, "databases"))
	})

	t.Run("MultipleTagMatchesCountOnce", func(t *testing.T) {
		article := db.Article{
			Title:   "x",
			Content: "y",
			Tags:    []db.Tag{{Name: "concurrency"}, {Name: "concurrent maps"}},
		}
		assert.Equal(t, 2.0, RelevanceScore(&article, "concurren"))
	})

	t.Run("ViewsNormalization", func(t *testing.T) {
		cold := db.Article{Title: "x", Content: "y"}
		hot := cold
		hot.Views = 1000

		diff := RelevanceScore(&hot, "z") - RelevanceScore(&cold, "z")
		assert.InDelta(t, 1.0, diff, 1e-9, "1000 views must be worth exactly one point")
	})

	t.Run("MonotonicInLikes", func(t *testing.T) {
		article := db.Article{Title: "x", Content: "y"}
		liked := article
		liked.LikeCount = 4

		assert.Equal(t, 2.0, RelevanceScore(&liked, "z")-RelevanceScore(&article, "z"))
	})

	t.Run("AddingAMatchStrictlyIncreasesScore", func(t *testing.T) {
		without := db.Article{Title: "unrelated", Content: "also unrelated"}
		with := without
		with.Content = "mentions kubernetes here"

		assert.Greater(t, RelevanceScore(&with, "kubernetes"), RelevanceScore(&without, "kubernetes"))
	})
}

func TestDateRangeStart(t *testing.T) {
	now := time.Date(2024, 3, 15, 17, 30, 45, 0, time.UTC)

	t.Run("Today", func(t *testing.T) {
		start, ok := DateRangeStart(now, "today")
		assert.True(t, ok)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("Week", func(t *testing.T) {
		start, ok := DateRangeStart(now, "week")
		assert.True(t, ok)
		assert.Equal(t, now.AddDate(0, 0, -7), start)

		eightDaysAgo := now.AddDate(0, 0, -8)
		twoDaysAgo := now.AddDate(0, 0, -2)
		assert.True(t, eightDaysAgo.Before(start), "8 day old article must fall outside the window")
		assert.True(t, twoDaysAgo.After(start), "2 day old article must fall inside the window")
	})

	t.Run("Month", func(t *testing.T) {
		start, ok := DateRangeStart(now, "month")
		assert.True(t, ok)
		assert.Equal(t, time.Date(2024, 2, 15, 17, 30, 45, 0, time.UTC), start)
	})

	t.Run("Year", func(t *testing.T) {
		start, ok := DateRangeStart(now, "year")
		assert.True(t, ok)
		assert.Equal(t, time.Date(2023, 3, 15, 17, 30, 45, 0, time.UTC), start)
	})

	t.Run("UnknownRangeMeansNoBound", func(t *testing.T) {
		_, ok := DateRangeStart(now, "fortnight")
		assert.False(t, ok)

		_, ok = DateRangeStart(now, "")
		assert.False(t, ok)
	})
}
