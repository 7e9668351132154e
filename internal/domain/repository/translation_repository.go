package repository

import (
	"context"

	"github.com/places-directory/internal/domain"
)

// TranslationRepository exposes the translation store directly. The serving
// core reads translations through the entity repositories; this interface
// exists for the offline translation batch tool.
type TranslationRepository interface {
	// ListByEntityType returns every translation set of one entity type,
	// keyed by entity id.
	ListByEntityType(ctx context.Context, et domain.EntityType) (map[string]domain.TranslationSet, error)

	// Upsert writes one translation value, creating or replacing the
	// (entity, language, field) row.
	Upsert(ctx context.Context, t domain.Translation) error
}
