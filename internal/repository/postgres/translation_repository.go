package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

type translationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTranslationRepository(db *DB) repository.TranslationRepository {
	return &translationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *translationRepository) ListByEntityType(ctx context.Context, et domain.EntityType) (map[string]domain.TranslationSet, error) {
	query := `
		SELECT entity_id, language_code, field, value
		FROM translations
		WHERE entity_type = $1
	`

	rows, err := r.db.QueryContext(ctx, query, string(et))
	if err != nil {
		r.logger.Error("Failed to list translations",
			zap.String("entity_type", string(et)), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	sets := make(map[string]domain.TranslationSet)
	for rows.Next() {
		var entityID, lang, field, value string
		if err := rows.Scan(&entityID, &lang, &field, &value); err != nil {
			return nil, errors.ErrDatabaseError
		}
		set, ok := sets[entityID]
		if !ok {
			set = make(domain.TranslationSet)
			sets[entityID] = set
		}
		set.Set(lang, field, value)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError
	}

	return sets, nil
}

func (r *translationRepository) Upsert(ctx context.Context, t domain.Translation) error {
	query := `
		INSERT INTO translations (entity_type, entity_id, language_code, field, value)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (entity_type, entity_id, language_code, field)
		DO UPDATE SET value = EXCLUDED.value
	`

	_, err := r.db.ExecContext(ctx, query,
		string(t.EntityType), t.EntityID, t.LanguageCode, t.Field, t.Value)
	if err != nil {
		r.logger.Error("Failed to upsert translation",
			zap.String("entity_type", string(t.EntityType)),
			zap.String("entity_id", t.EntityID),
			zap.String("language_code", t.LanguageCode),
			zap.String("field", t.Field),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
