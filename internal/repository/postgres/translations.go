package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/places-directory/internal/domain"
)

// loadTranslationSets fetches every translation row of the given entities
// and groups them into per-entity sets. Entities with no rows at all simply
// stay absent from the result; callers attach an empty set instead.
func loadTranslationSets(
	ctx context.Context,
	db *sqlx.DB,
	et domain.EntityType,
	ids []string,
) (map[string]domain.TranslationSet, error) {
	sets := make(map[string]domain.TranslationSet, len(ids))
	if len(ids) == 0 {
		return sets, nil
	}

	query := `
		SELECT entity_id, language_code, field, value
		FROM translations
		WHERE entity_type = $1 AND entity_id = ANY($2)
	`

	rows, err := db.QueryContext(ctx, query, string(et), pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entityID, lang, field, value string
		if err := rows.Scan(&entityID, &lang, &field, &value); err != nil {
			return nil, err
		}
		set, ok := sets[entityID]
		if !ok {
			set = make(domain.TranslationSet)
			sets[entityID] = set
		}
		set.Set(lang, field, value)
	}

	return sets, rows.Err()
}

func translationsFor(sets map[string]domain.TranslationSet, id string) domain.TranslationSet {
	if set, ok := sets[id]; ok {
		return set
	}
	return make(domain.TranslationSet)
}
