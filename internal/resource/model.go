// File: internal/resource/model.go
package resource

import (
	"time"

	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/directory"

	"github.com/google/uuid"
)

// CacheKeyPrefix groups every cached resource collection.
const CacheKeyPrefix = "resources:"

// DefaultSort lists the newest resources first.
const DefaultSort common.SortKey = "-created_date"

// Resource is a Resources screen entry.
type Resource struct {
	common.BaseModel
	Title           string     `gorm:"type:varchar(200);not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	Category        string     `gorm:"type:varchar(30);not null;index" json:"category"`
	ResourceType    string     `gorm:"type:varchar(20);not null;index" json:"resource_type"`
	DifficultyLevel string     `gorm:"type:varchar(20)" json:"difficulty_level"`
	URL             string     `gorm:"type:text" json:"url"`
	Author          string     `gorm:"type:varchar(200)" json:"author"`
	SubmittedByID   *uuid.UUID `gorm:"type:uuid" json:"-"`
}

// TableName specifies the table name for the Resource model.
func (Resource) TableName() string {
	return "resources"
}

// Filter is the Resources filter bar.
type Filter struct {
	Category string
	Type     string
	Search   string
	Sort     common.SortKey
}

// Facets returns the Resources facets. Search matches title or description, ignoring case.
func (f Filter) Facets() []directory.Facet[Resource] {
	return []directory.Facet[Resource]{
		{Name: "category", Value: f.Category, Match: func(r Resource, v string) bool { return directory.Equal(r.Category, v) }},
		{Name: "type", Value: f.Type, Match: func(r Resource, v string) bool { return directory.Equal(r.ResourceType, v) }},
		{Name: "search", Value: f.Search, Match: func(r Resource, v string) bool {
			return directory.ContainsFold(r.Title, v) || directory.ContainsFold(r.Description, v)
		}},
	}
}

// CreateResourceRequest is the "share a resource" form.
type CreateResourceRequest struct {
	Title           string `json:"title" binding:"required,max=200"`
	Description     string `json:"description" binding:"omitempty,max=5000"`
	Category        string `json:"category" binding:"required,oneof=quran hadith prayer fasting charity pilgrimage daily_life converts_guide"`
	ResourceType    string `json:"resource_type" binding:"required,oneof=article video audio book course app"`
	DifficultyLevel string `json:"difficulty_level" binding:"omitempty,oneof=beginner intermediate advanced"`
	URL             string `json:"url" binding:"omitempty,url,max=2000"`
	Author          string `json:"author" binding:"omitempty,max=200"`
}

// SearchQuery is a full-text query against the search index.
type SearchQuery struct {
	Text     string
	Category string
	Type     string
	Limit    int
}

// Document is the search-index representation of a Resource.
type Document struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	ResourceType    string    `json:"resource_type"`
	DifficultyLevel string    `json:"difficulty_level"`
	URL             string    `json:"url"`
	Author          string    `json:"author"`
	CreatedAt       time.Time `json:"created_date"`
}

// ToDocument converts a Resource for indexing.
func ToDocument(r Resource) Document {
	return Document{
		ID:              r.ID.String(),
		Title:           r.Title,
		Description:     r.Description,
		Category:        r.Category,
		ResourceType:    r.ResourceType,
		DifficultyLevel: r.DifficultyLevel,
		URL:             r.URL,
		Author:          r.Author,
		CreatedAt:       r.CreatedAt,
	}
}

// FromDocument rebuilds the public fields of a Resource from a search hit.
func FromDocument(d Document) Resource {
	var r Resource
	if id, err := uuid.Parse(d.ID); err == nil {
		r.ID = id
	}
	r.Title = d.Title
	r.Description = d.Description
	r.Category = d.Category
	r.ResourceType = d.ResourceType
	r.DifficultyLevel = d.DifficultyLevel
	r.URL = d.URL
	r.Author = d.Author
	r.CreatedAt = d.CreatedAt
	return r
}
