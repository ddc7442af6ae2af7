package publica

import (
	"time"

	"github.com/publica-dev/publica/internal/db"
)

type Status string

const (
	StatusDraft     Status = db.StatusDraft
	StatusPending   Status = db.StatusPending
	StatusPublished Status = db.StatusPublished
	StatusRejected  Status = db.StatusRejected
)

// Statuses lists every workflow status, in lifecycle order.
var Statuses = []Status{StatusDraft, StatusPending, StatusPublished, StatusRejected}

// ValidStatus reports whether s names a known workflow status.
func ValidStatus(s Status) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

type Role string

const (
	RoleAdmin  Role = db.RoleAdmin
	RoleEditor Role = db.RoleEditor
	RoleUser   Role = db.RoleUser
)

type Article struct {
	db.Article

	// EngagementScore is set on trending listings, RelevanceScore on
	// query searches. Both are recomputed per request, never stored.
	EngagementScore *int
	RelevanceScore  *float64
}

// ArticleDetail is an article plus who liked and bookmarked it.
type ArticleDetail struct {
	Article
	Likes   []db.Like
	SavedBy []db.SavedArticle
}

type Pagination struct {
	Total       int
	Pages       int
	CurrentPage int
}

type ArticlePage struct {
	Articles   []Article
	Pagination Pagination
}

// StatusCounts always carries all four statuses, absent ones as 0.
type StatusCounts map[Status]int

type ArticleInput struct {
	Title      string
	Content    string
	Summary    *string
	ImageURL   *string
	CategoryID string
	Tags       []string
}

type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) normalized() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	return p
}

func newPagination(total int, page PageRequest) Pagination {
	pages := 0
	if total > 0 {
		pages = (total + page.Limit - 1) / page.Limit
	}
	return Pagination{Total: total, Pages: pages, CurrentPage: page.Page}
}

type SearchParams struct {
	Query      string
	SortBy     string // relevance (default), date, views, likes
	CategoryID *string
	Tags       []string
	DateRange  string // today, week, month, year
	Status     Status // defaults to PUBLISHED
	Page       PageRequest
}

type SearchResult struct {
	Articles    []Article
	Pagination  Pagination
	Filters     SearchParams
	Categories  []db.Category
	PopularTags []db.Tag
}

type Suggestions struct {
	Articles   []string
	Tags       []string
	Categories []string
}

type TrendingParams struct {
	Days       int
	CategoryID *string
	Page       PageRequest
}

type EditorStats struct {
	ArticleStats StatusCounts
	TotalViews   int
	TotalLikes   int
}

type DashboardStats struct {
	TotalUsers     int
	TotalArticles  int
	UsersByRole    map[Role]int
	RecentArticles []db.Article
}

type UserDetails struct {
	db.User
	Articles      []db.Article
	SavedArticles []db.SavedArticle
}

// AuthResult pairs a user with a freshly minted bearer token.
type AuthResult struct {
	User  db.User
	Token string
}

// Clock is overridable in tests for the date-window logic.
type Clock func() time.Time
