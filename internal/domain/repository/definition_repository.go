package repository

import (
	"context"

	"github.com/places-directory/internal/domain"
)

// DefinitionRepository reads the static tag definition tables with their
// translations attached.
type DefinitionRepository interface {
	// ListExpectations returns every expectation definition ordered by key.
	ListExpectations(ctx context.Context) ([]*domain.ExpectationDefinition, error)

	// ListSortTags returns sort tag definitions ordered by key, optionally
	// restricted to the given types.
	ListSortTags(ctx context.Context, types ...domain.SortTagType) ([]*domain.SortTagDefinition, error)
}
