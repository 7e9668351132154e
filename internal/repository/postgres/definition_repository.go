package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

type definitionRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewDefinitionRepository(db *DB) repository.DefinitionRepository {
	return &definitionRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *definitionRepository) ListExpectations(ctx context.Context) ([]*domain.ExpectationDefinition, error) {
	query := `
		SELECT key, icon_key
		FROM expectation_definitions
		ORDER BY key
	`

	var definitions []*domain.ExpectationDefinition
	if err := r.db.SelectContext(ctx, &definitions, query); err != nil {
		r.logger.Error("Failed to list expectation definitions", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	keys := make([]string, len(definitions))
	for i, d := range definitions {
		keys[i] = d.Key
	}

	sets, err := loadTranslationSets(ctx, r.db, domain.EntityExpectation, keys)
	if err != nil {
		r.logger.Error("Failed to load expectation translations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	for _, d := range definitions {
		d.Translations = translationsFor(sets, d.Key)
	}

	return definitions, nil
}

func (r *definitionRepository) ListSortTags(ctx context.Context, types ...domain.SortTagType) ([]*domain.SortTagDefinition, error) {
	query := `
		SELECT key, icon_key, type
		FROM sort_tag_definitions
	`
	args := []interface{}{}

	if len(types) > 0 {
		typeNames := make([]string, len(types))
		for i, t := range types {
			typeNames[i] = string(t)
		}
		query += " WHERE type = ANY($1)"
		args = append(args, pq.Array(typeNames))
	}
	query += " ORDER BY key"

	var definitions []*domain.SortTagDefinition
	if err := r.db.SelectContext(ctx, &definitions, query, args...); err != nil {
		r.logger.Error("Failed to list sort tag definitions", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	keys := make([]string, len(definitions))
	for i, d := range definitions {
		keys[i] = d.Key
	}

	sets, err := loadTranslationSets(ctx, r.db, domain.EntitySortTag, keys)
	if err != nil {
		r.logger.Error("Failed to load sort tag translations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	for _, d := range definitions {
		d.Translations = translationsFor(sets, d.Key)
	}

	return definitions, nil
}
