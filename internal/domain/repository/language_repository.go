package repository

import (
	"context"

	"github.com/places-directory/internal/domain"
)

// LanguageRepository reads the immutable language reference table.
type LanguageRepository interface {
	// List returns all languages ordered by code.
	List(ctx context.Context) ([]*domain.Language, error)

	// GetByCode returns one language or errors.ErrLanguageNotFound.
	GetByCode(ctx context.Context, code string) (*domain.Language, error)
}
