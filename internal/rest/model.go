package rest

import "time"

type Author struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ProfilePicture *string `json:"profilePicture"`
}

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	ProfilePicture *string   `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
	ArticleCount   *int      `json:"articleCount,omitempty"`
	SavedCount     *int      `json:"savedCount,omitempty"`
}

type Category struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	ArticleCount *int    `json:"articleCount,omitempty"`
}

type Tag struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ArticleCount *int   `json:"articleCount,omitempty"`
}

type Article struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	Summary         *string   `json:"summary"`
	ImageURL        *string   `json:"imageUrl"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejectionReason,omitempty"`
	Views           int       `json:"views"`
	CategoryID      string    `json:"categoryId"`
	AuthorID        string    `json:"authorId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Author          *Author   `json:"author,omitempty"`
	Category        *Category `json:"category,omitempty"`
	Tags            []Tag     `json:"tags"`
	LikeCount       int       `json:"likeCount"`
	SavedByCount    int       `json:"savedByCount"`
	EngagementScore *int      `json:"engagementScore,omitempty"`
	RelevanceScore  *float64  `json:"relevanceScore,omitempty"`
}

type LikeEntry struct {
	User      *Author   `json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type SavedEntry struct {
	User    *Author   `json:"user,omitempty"`
	SavedAt time.Time `json:"savedAt"`
}

type ArticleDetail struct {
	Article
	Likes   []LikeEntry  `json:"likes"`
	SavedBy []SavedEntry `json:"savedBy"`
}

type Pagination struct {
	Total       int `json:"total"`
	Pages       int `json:"pages"`
	CurrentPage int `json:"currentPage"`
}

type ArticleList struct {
	Articles   []Article  `json:"articles"`
	Pagination Pagination `json:"pagination"`
}

type StatusArticleList struct {
	Articles     []Article      `json:"articles"`
	Pagination   Pagination     `json:"pagination"`
	StatusCounts map[string]int `json:"statusCounts"`
}

type TrendingResponse struct {
	Articles   []Article       `json:"articles"`
	Pagination Pagination      `json:"pagination"`
	Filters    TrendingFilters `json:"filters"`
}

type TrendingFilters struct {
	Days       int     `json:"days"`
	CategoryID *string `json:"categoryId"`
}

type SearchResponse struct {
	Articles    []Article     `json:"articles"`
	Pagination  Pagination    `json:"pagination"`
	Filters     SearchFilters `json:"filters"`
	Categories  []Category    `json:"categories"`
	PopularTags []Tag         `json:"popularTags"`
}

type SearchFilters struct {
	Query      string   `json:"query"`
	SortBy     string   `json:"sortBy"`
	CategoryID *string  `json:"categoryId"`
	Tags       []string `json:"tags"`
	DateRange  string   `json:"dateRange"`
}

type Suggestions struct {
	Articles   []string `json:"articles"`
	Tags       []string `json:"tags"`
	Categories []string `json:"categories"`
}

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type UserDetails struct {
	User
	Articles      []Article      `json:"articles"`
	SavedArticles []SavedArticle `json:"savedArticles"`
}

type SavedArticle struct {
	Article *Article  `json:"article,omitempty"`
	SavedAt time.Time `json:"savedAt"`
}

type EditorStats struct {
	ArticleStats map[string]int `json:"articleStats"`
	TotalViews   int            `json:"totalViews"`
	TotalLikes   int            `json:"totalLikes"`
}

type DashboardStats struct {
	TotalUsers     int            `json:"totalUsers"`
	TotalArticles  int            `json:"totalArticles"`
	UsersByRole    map[string]int `json:"usersByRole"`
	RecentArticles []Article      `json:"recentArticles"`
}
