package rest

import (
	"github.com/publica-dev/publica/internal/db"
	"github.com/publica-dev/publica/internal/publica"
)

func mapSlice[T, M any](items []T, fn func(T) M) []M {
	out := make([]M, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

func newAuthor(in *db.User) *Author {
	if in == nil {
		return nil
	}
	return &Author{ID: in.ID, Name: in.Name, ProfilePicture: in.ProfilePicture}
}

func newUser(in db.User) User {
	return User{
		ID:             in.ID,
		Email:          in.Email,
		Name:           in.Name,
		Role:           in.Role,
		ProfilePicture: in.ProfilePicture,
		CreatedAt:      in.CreatedAt,
	}
}

func newUserWithCounts(in db.User) User {
	out := newUser(in)
	articleCount, savedCount := in.ArticleCount, in.SavedCount
	out.ArticleCount = &articleCount
	out.SavedCount = &savedCount
	return out
}

func newCategory(in *db.Category) *Category {
	if in == nil {
		return nil
	}
	return &Category{ID: in.ID, Name: in.Name, Description: in.Description}
}

func newCategoryWithCount(in db.Category) Category {
	count := in.ArticleCount
	return Category{ID: in.ID, Name: in.Name, Description: in.Description, ArticleCount: &count}
}

func newTag(in db.Tag) Tag {
	return Tag{ID: in.ID, Name: in.Name}
}

func newTagWithCount(in db.Tag) Tag {
	count := in.ArticleCount
	return Tag{ID: in.ID, Name: in.Name, ArticleCount: &count}
}

func newArticleFromDB(in db.Article) Article {
	return Article{
		ID:              in.ID,
		Title:           in.Title,
		Content:         in.Content,
		Summary:         in.Summary,
		ImageURL:        in.ImageURL,
		Status:          in.Status,
		RejectionReason: in.RejectionReason,
		Views:           in.Views,
		CategoryID:      in.CategoryID,
		AuthorID:        in.AuthorID,
		CreatedAt:       in.CreatedAt,
		UpdatedAt:       in.UpdatedAt,
		Author:          newAuthor(in.Author),
		Category:        newCategory(in.Category),
		Tags:            mapSlice(in.Tags, newTag),
		LikeCount:       in.LikeCount,
		SavedByCount:    in.SavedByCount,
	}
}

func newArticle(in publica.Article) Article {
	out := newArticleFromDB(in.Article)
	out.EngagementScore = in.EngagementScore
	out.RelevanceScore = in.RelevanceScore
	return out
}

func newArticleDetail(in publica.ArticleDetail) ArticleDetail {
	return ArticleDetail{
		Article: newArticle(in.Article),
		Likes: mapSlice(in.Likes, func(like db.Like) LikeEntry {
			return LikeEntry{User: newAuthor(like.User), CreatedAt: like.CreatedAt}
		}),
		SavedBy: mapSlice(in.SavedBy, func(saved db.SavedArticle) SavedEntry {
			return SavedEntry{User: newAuthor(saved.User), SavedAt: saved.SavedAt}
		}),
	}
}

func newPagination(in publica.Pagination) Pagination {
	return Pagination{Total: in.Total, Pages: in.Pages, CurrentPage: in.CurrentPage}
}

func newArticleList(in *publica.ArticlePage) ArticleList {
	return ArticleList{
		Articles:   mapSlice(in.Articles, newArticle),
		Pagination: newPagination(in.Pagination),
	}
}

func newStatusCounts(in publica.StatusCounts) map[string]int {
	out := make(map[string]int, len(in))
	for status, count := range in {
		out[string(status)] = count
	}
	return out
}

func newStatusArticleList(page *publica.ArticlePage, counts publica.StatusCounts) StatusArticleList {
	return StatusArticleList{
		Articles:     mapSlice(page.Articles, newArticle),
		Pagination:   newPagination(page.Pagination),
		StatusCounts: newStatusCounts(counts),
	}
}

func newSearchResponse(in *publica.SearchResult) SearchResponse {
	return SearchResponse{
		Articles:   mapSlice(in.Articles, newArticle),
		Pagination: newPagination(in.Pagination),
		Filters: SearchFilters{
			Query:      in.Filters.Query,
			SortBy:     in.Filters.SortBy,
			CategoryID: in.Filters.CategoryID,
			Tags:       in.Filters.Tags,
			DateRange:  in.Filters.DateRange,
		},
		Categories:  mapSlice(in.Categories, newCategoryWithCount),
		PopularTags: mapSlice(in.PopularTags, newTagWithCount),
	}
}

func newUserDetails(in *publica.UserDetails) UserDetails {
	return UserDetails{
		User: newUser(in.User),
		Articles: mapSlice(in.Articles, func(article db.Article) Article {
			return newArticleFromDB(article)
		}),
		SavedArticles: mapSlice(in.SavedArticles, func(saved db.SavedArticle) SavedArticle {
			var article *Article
			if saved.Article != nil {
				converted := newArticleFromDB(*saved.Article)
				article = &converted
			}
			return SavedArticle{Article: article, SavedAt: saved.SavedAt}
		}),
	}
}

func newEditorStats(in *publica.EditorStats) EditorStats {
	return EditorStats{
		ArticleStats: newStatusCounts(in.ArticleStats),
		TotalViews:   in.TotalViews,
		TotalLikes:   in.TotalLikes,
	}
}

func newDashboardStats(in *publica.DashboardStats) DashboardStats {
	roles := make(map[string]int, len(in.UsersByRole))
	for role, count := range in.UsersByRole {
		roles[string(role)] = count
	}
	return DashboardStats{
		TotalUsers:    in.TotalUsers,
		TotalArticles: in.TotalArticles,
		UsersByRole:   roles,
		RecentArticles: mapSlice(in.RecentArticles, func(article db.Article) Article {
			return newArticleFromDB(article)
		}),
	}
}

func newAuthResponse(in *publica.AuthResult) AuthResponse {
	return AuthResponse{User: newUser(in.User), Token: in.Token}
}
