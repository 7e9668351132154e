package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

type languageRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewLanguageRepository(db *DB) repository.LanguageRepository {
	return &languageRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *languageRepository) List(ctx context.Context) ([]*domain.Language, error) {
	query := `
		SELECT code, name, flag_icon_key
		FROM languages
		ORDER BY code
	`

	var languages []*domain.Language
	if err := r.db.SelectContext(ctx, &languages, query); err != nil {
		r.logger.Error("Failed to list languages", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return languages, nil
}

func (r *languageRepository) GetByCode(ctx context.Context, code string) (*domain.Language, error) {
	query := `
		SELECT code, name, flag_icon_key
		FROM languages
		WHERE code = $1
	`

	var lang domain.Language
	err := r.db.GetContext(ctx, &lang, query, code)
	if err == sql.ErrNoRows {
		return nil, errors.ErrLanguageNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get language", zap.String("code", code), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &lang, nil
}
