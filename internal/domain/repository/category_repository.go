package repository

import (
	"context"

	"github.com/places-directory/internal/domain"
)

// CategoryRepository reads place categories with their translations attached.
type CategoryRepository interface {
	// List returns all categories ordered by id.
	List(ctx context.Context) ([]*domain.Category, error)

	// GetByID returns one category or errors.ErrCategoryNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
}
