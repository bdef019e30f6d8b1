// File: internal/post/repository.go
package post

import (
	"context"
	"fmt"

	"revert_connect_backend/internal/common"

	"gorm.io/gorm"
)

// Repository defines the interface for post data operations.
type Repository interface {
	Create(ctx context.Context, post *Post) error
	List(ctx context.Context, sort common.SortKey) ([]Post, error)
}

var sortColumns = map[string]string{
	"created_date": "created_at",
	"likes_count":  "likes_count",
	"title":        "title",
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM post repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Create inserts a new post.
func (r *gormRepository) Create(ctx context.Context, post *Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// List returns every post in the requested order.
func (r *gormRepository) List(ctx context.Context, sort common.SortKey) ([]Post, error) {
	order, err := sort.OrderClause(sortColumns)
	if err != nil {
		return nil, err
	}
	if order == "" {
		order = "created_at DESC"
	}
	var posts []Post
	if err := r.db.WithContext(ctx).Order(order).Order("id").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}
