// File: internal/resource/repository.go
package resource

import (
	"context"
	"fmt"

	"revert_connect_backend/internal/common"

	"gorm.io/gorm"
)

// Repository defines the interface for resource data operations.
type Repository interface {
	Create(ctx context.Context, resource *Resource) error
	List(ctx context.Context, sort common.SortKey) ([]Resource, error)
	// FindAllForSync pages through every resource in a stable order for index rebuilds.
	FindAllForSync(ctx context.Context, offset, limit int) ([]Resource, error)
}

var sortColumns = map[string]string{
	"created_date": "created_at",
	"title":        "title",
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM resource repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Create inserts a new resource.
func (r *gormRepository) Create(ctx context.Context, resource *Resource) error {
	if err := r.db.WithContext(ctx).Create(resource).Error; err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}
	return nil
}

// List returns every resource in the requested order.
func (r *gormRepository) List(ctx context.Context, sort common.SortKey) ([]Resource, error) {
	order, err := sort.OrderClause(sortColumns)
	if err != nil {
		return nil, err
	}
	if order == "" {
		order = "created_at DESC"
	}
	var resources []Resource
	if err := r.db.WithContext(ctx).Order(order).Order("id").Find(&resources).Error; err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	return resources, nil
}

// FindAllForSync returns one page of resources ordered by creation time.
func (r *gormRepository) FindAllForSync(ctx context.Context, offset, limit int) ([]Resource, error) {
	var resources []Resource
	err := r.db.WithContext(ctx).
		Order("created_at ASC").Order("id").
		Offset(offset).Limit(limit).
		Find(&resources).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resources for sync: %w", err)
	}
	return resources, nil
}
