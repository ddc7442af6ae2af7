package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/publica-dev/publica/internal/publica"
)

// RegisterRoutes builds the echo instance with every route, gate and
// cross-cutting middleware attached.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(h.metrics.middleware)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", h.metrics.handler())

	api := e.Group("/api")

	auth := api.Group("/auth", h.limiter.middleware)
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)

	articles := api.Group("/articles")
	articles.GET("/trending", h.Trending)
	articles.GET("/category/:categoryId", h.ArticlesByCategory)
	articles.GET("/:id", h.ArticleByID)
	articles.GET("/feed/my", h.MyFeed, h.authenticate)
	articles.POST("/:id/like", h.LikeArticle, h.authenticate)
	articles.DELETE("/:id/like", h.UnlikeArticle, h.authenticate)
	articles.POST("", h.CreateArticle, h.authenticate, h.requireRole(publica.RoleEditor, publica.RoleAdmin))
	articles.PUT("/:id", h.UpdateArticle, h.authenticate, h.requireRole(publica.RoleEditor, publica.RoleAdmin))

	status := api.Group("/articles/status", h.authenticate)
	status.PATCH("/editor/:id/status", h.UpdateStatusByEditor, h.requireRole(publica.RoleEditor))
	status.PATCH("/admin/:id/status", h.UpdateStatusByAdmin, h.requireRole(publica.RoleAdmin))
	status.GET("/pending", h.PendingArticles, h.requireRole(publica.RoleAdmin))
	status.GET("/status", h.ArticlesByStatus, h.requireRole(publica.RoleAdmin))
	status.GET("/my", h.MyArticlesByStatus, h.requireRole(publica.RoleEditor, publica.RoleAdmin))
	status.GET("/all", h.AllArticlesByStatus, h.requireRole(publica.RoleAdmin))

	editor := api.Group("/editor", h.authenticate, h.requireRole(publica.RoleEditor, publica.RoleAdmin))
	editor.GET("/stats", h.EditorStats)
	editor.GET("/articles", h.EditorArticles)
	editor.GET("/articles/top", h.TopEditorArticles)
	editor.GET("/articles/:id", h.EditorArticleDetails)
	editor.PATCH("/articles/:id/status", h.UpdateOwnArticleStatus)

	admin := api.Group("/admin", h.authenticate, h.requireRole(publica.RoleAdmin))
	admin.GET("/dashboard", h.Dashboard)
	admin.GET("/users", h.Users)
	admin.GET("/users/:id", h.UserDetails)
	admin.PUT("/users/:id", h.UpdateUser)
	admin.DELETE("/users/:id", h.DeleteUser)

	categories := api.Group("/categories")
	categories.GET("", h.Categories)
	categories.GET("/all", h.AllCategories)
	categories.POST("", h.CreateCategory, h.authenticate, h.requireRole(publica.RoleAdmin))
	categories.PUT("/:id", h.UpdateCategory, h.authenticate, h.requireRole(publica.RoleAdmin))
	categories.DELETE("/:id", h.DeleteCategory, h.authenticate, h.requireRole(publica.RoleAdmin))

	users := api.Group("/users")
	users.PATCH("/:id/role", h.UpdateUserRole, h.authenticate, h.requireRole(publica.RoleAdmin))
	users.PATCH("/profile", h.UpdateProfile, h.authenticate)

	search := api.Group("/search")
	search.GET("", h.Search)
	search.GET("/suggestions", h.SearchSuggestions)

	return e
}
