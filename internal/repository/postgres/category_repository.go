package postgres

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

type categoryRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCategoryRepository(db *DB) repository.CategoryRepository {
	return &categoryRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	query := `
		SELECT id, icon_key
		FROM categories
		ORDER BY id
	`

	var categories []*domain.Category
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		r.logger.Error("Failed to list categories", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = strconv.FormatInt(c.ID, 10)
	}

	sets, err := loadTranslationSets(ctx, r.db, domain.EntityCategory, ids)
	if err != nil {
		r.logger.Error("Failed to load category translations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	for _, c := range categories {
		c.Translations = translationsFor(sets, strconv.FormatInt(c.ID, 10))
	}

	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `
		SELECT id, icon_key
		FROM categories
		WHERE id = $1
	`

	var category domain.Category
	err := r.db.GetContext(ctx, &category, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrCategoryNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get category", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	sets, err := loadTranslationSets(ctx, r.db, domain.EntityCategory, []string{strconv.FormatInt(id, 10)})
	if err != nil {
		r.logger.Error("Failed to load category translations", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	category.Translations = translationsFor(sets, strconv.FormatInt(id, 10))

	return &category, nil
}
