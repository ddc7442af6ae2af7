package publica

import (
	"strings"
	"time"

	"github.com/publica-dev/publica/internal/db"
)

// Engagement weights: a save signals more intent than a like, a like
// more than a view.
const (
	likeWeight = 2
	saveWeight = 3
)

// EngagementScore ranks trending articles. Recomputed per request.
func EngagementScore(views, likes, savedBy int) int {
	return views + likes*likeWeight + savedBy*saveWeight
}

// Relevance weights for the field-substring matches.
const (
	titleMatchScore   = 10
	summaryMatchScore = 5
	contentMatchScore = 3
	tagMatchScore     = 2

	viewsNormalizer = 1000.0
	likePointWeight = 0.5
)

// RelevanceScore scores an article against a free-text query using
// case-insensitive substring containment, plus continuous terms for
// views and likes.
func RelevanceScore(article *db.Article, query string) float64 {
	queryLower := strings.ToLower(query)
	score := 0.0

	if strings.Contains(strings.ToLower(article.Title), queryLower) {
		score += titleMatchScore
	}

	if article.Summary != nil && strings.Contains(strings.ToLower(*article.Summary), queryLower) {
		score += summaryMatchScore
	}

	if strings.Contains(strings.ToLower(article.Content), queryLower) {
		score += contentMatchScore
	}

	for _, tag := range article.Tags {
		if strings.Contains(strings.ToLower(tag.Name), queryLower) {
			score += tagMatchScore
			break
		}
	}

	score += float64(article.Views) / viewsNormalizer
	score += float64(article.LikeCount) * likePointWeight

	return score
}

// DateRangeStart converts a named range into a createdAt lower bound.
// "today" truncates to local midnight, the others subtract a calendar
// unit. Unknown values mean no bound.
func DateRangeStart(now time.Time, dateRange string) (time.Time, bool) {
	switch dateRange {
	case "today":
		year, month, day := now.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, now.Location()), true
	case "week":
		return now.AddDate(0, 0, -7), true
	case "month":
		return now.AddDate(0, -1, 0), true
	case "year":
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}
