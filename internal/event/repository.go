// File: internal/event/repository.go
package event

import (
	"context"
	"fmt"

	"revert_connect_backend/internal/common"

	"gorm.io/gorm"
)

// Repository defines the interface for event data operations.
type Repository interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context, sort common.SortKey) ([]Event, error)
}

var sortColumns = map[string]string{
	"date":         "date",
	"created_date": "created_at",
	"title":        "title",
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM event repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Create inserts a new event.
func (r *gormRepository) Create(ctx context.Context, event *Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// List returns every event in the requested order.
func (r *gormRepository) List(ctx context.Context, sort common.SortKey) ([]Event, error) {
	order, err := sort.OrderClause(sortColumns)
	if err != nil {
		return nil, err
	}
	if order == "" {
		order = "date DESC"
	}
	var events []Event
	if err := r.db.WithContext(ctx).Order(order).Order("id").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}
