// File: internal/post/model.go
package post

import (
	"time"

	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/directory"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AnonymousAuthor is shown instead of the author's name on anonymous posts.
const AnonymousAuthor = "Anonymous"

// CacheKeyPrefix groups every cached post collection.
const CacheKeyPrefix = "posts:"

// DefaultSort lists the newest posts first.
const DefaultSort common.SortKey = "-created_date"

// Post is a Community screen entry.
type Post struct {
	common.BaseModel
	Title       string         `gorm:"type:varchar(200);not null" json:"title"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	PostType    string         `gorm:"type:varchar(30);not null;index" json:"post_type"`
	Tags        pq.StringArray `gorm:"type:text" json:"tags"`
	IsAnonymous bool           `gorm:"not null;default:false" json:"is_anonymous"`
	AuthorName  string         `gorm:"type:varchar(200)" json:"author_name"`
	AuthorID    *uuid.UUID     `gorm:"type:uuid;index" json:"author_id,omitempty"`
	LikesCount  int            `gorm:"not null;default:0" json:"likes_count"`
}

// TableName specifies the table name for the Post model.
func (Post) TableName() string {
	return "posts"
}

// Filter is the Community filter bar. Both facets default to "all".
type Filter struct {
	Type string
	Tag  string
	Sort common.SortKey
}

// Facets returns the Community facets in evaluation order.
func (f Filter) Facets() []directory.Facet[Post] {
	return []directory.Facet[Post]{
		{Name: "type", Value: f.Type, Match: func(p Post, v string) bool { return directory.Equal(p.PostType, v) }},
		{Name: "tag", Value: f.Tag, Match: func(p Post, v string) bool { return directory.Member(p.Tags, v) }},
	}
}

// CreatePostRequest is the "new post" form.
type CreatePostRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Content     string   `json:"content" binding:"required,max=10000"`
	PostType    string   `json:"post_type" binding:"required,oneof=story question advice celebration resource_share"`
	Tags        []string `json:"tags" binding:"omitempty,max=10,dive,max=50"`
	IsAnonymous bool     `json:"is_anonymous"`
}

// PostResponse is a post as rendered on the Community screen.
type PostResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	PostType    string     `json:"post_type"`
	Tags        []string   `json:"tags"`
	IsAnonymous bool       `json:"is_anonymous"`
	AuthorName  string     `json:"author_name"`
	AuthorID    *uuid.UUID `json:"author_id,omitempty"`
	LikesCount  int        `json:"likes_count"`
	CreatedAt   time.Time  `json:"created_date"`
}

// ToPostResponse hides the author of anonymous posts.
func ToPostResponse(p Post) PostResponse {
	resp := PostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		PostType:    p.PostType,
		Tags:        []string(p.Tags),
		IsAnonymous: p.IsAnonymous,
		AuthorName:  p.AuthorName,
		LikesCount:  p.LikesCount,
		CreatedAt:   p.CreatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if !p.IsAnonymous {
		resp.AuthorID = p.AuthorID
	}
	return resp
}
