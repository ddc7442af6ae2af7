package db

import (
	"time"
)

const (
	StatusDraft     = "DRAFT"
	StatusPending   = "PENDING"
	StatusPublished = "PUBLISHED"
	StatusRejected  = "REJECTED"

	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
	RoleUser   = "USER"
)

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID                  string    `pg:"userId,pk,type:uuid"`
	Email               string    `pg:"email,use_zero"`
	Password            string    `pg:"password,use_zero"`
	Name                string    `pg:"name,use_zero"`
	Role                string    `pg:"role,use_zero"`
	ProfilePicture      *string   `pg:"profilePicture"`
	FollowedCategoryIDs []string  `pg:"followedCategoryIds,array,use_zero"`
	CreatedAt           time.Time `pg:"createdAt,use_zero"`

	// Loaded separately, never scanned from the users table.
	ArticleCount int `pg:"-"`
	SavedCount   int `pg:"-"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          string  `pg:"categoryId,pk,type:uuid"`
	Name        string  `pg:"name,use_zero"`
	Description *string `pg:"description"`

	ArticleCount int `pg:"-"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID   string `pg:"tagId,pk,type:uuid"`
	Name string `pg:"name,use_zero"`

	ArticleCount int `pg:"-"`
}

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID              string    `pg:"articleId,pk,type:uuid"`
	Title           string    `pg:"title,use_zero"`
	Content         string    `pg:"content,use_zero"`
	Summary         *string   `pg:"summary"`
	ImageURL        *string   `pg:"imageUrl"`
	Status          string    `pg:"status,use_zero"`
	RejectionReason *string   `pg:"rejectionReason"`
	Views           int       `pg:"views,use_zero"`
	CategoryID      string    `pg:"categoryId,type:uuid,use_zero"`
	AuthorID        string    `pg:"authorId,type:uuid,use_zero"`
	TagIDs          []string  `pg:"tagIds,array,use_zero"`
	CreatedAt       time.Time `pg:"createdAt,use_zero"`
	UpdatedAt       time.Time `pg:"updatedAt,use_zero"`

	Category *Category `pg:"fk:categoryId,rel:has-one"`
	Author   *User     `pg:"fk:authorId,rel:has-one"`

	// Filled by the batch loaders in loaders.go.
	Tags         []Tag `pg:"-"`
	LikeCount    int   `pg:"-"`
	SavedByCount int   `pg:"-"`
}

type Like struct {
	tableName struct{} `pg:"likes,alias:t,discard_unknown_columns"`

	UserID    string    `pg:"userId,pk,type:uuid"`
	ArticleID string    `pg:"articleId,pk,type:uuid"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`

	User *User `pg:"fk:userId,rel:has-one"`
}

type SavedArticle struct {
	tableName struct{} `pg:"saved_articles,alias:t,discard_unknown_columns"`

	UserID    string    `pg:"userId,pk,type:uuid"`
	ArticleID string    `pg:"articleId,pk,type:uuid"`
	SavedAt   time.Time `pg:"savedAt,use_zero"`

	User    *User    `pg:"fk:userId,rel:has-one"`
	Article *Article `pg:"fk:articleId,rel:has-one"`
}
