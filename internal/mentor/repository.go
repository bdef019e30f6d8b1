// File: internal/mentor/repository.go
package mentor

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository defines the interface for mentor request data operations.
type Repository interface {
	Create(ctx context.Context, request *MentorRequest) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM mentor request repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Create inserts a new mentor request.
func (r *gormRepository) Create(ctx context.Context, request *MentorRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return fmt.Errorf("failed to create mentor request: %w", err)
	}
	return nil
}
