package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

// ReferenceUseCase serves the slow-changing reference data: languages,
// categories and filter options. Localized renditions are cached in redis
// per language; cache failures degrade to database reads.
type ReferenceUseCase struct {
	languageRepo   repository.LanguageRepository
	categoryRepo   repository.CategoryRepository
	definitionRepo repository.DefinitionRepository
	cache          repository.CacheRepository
	presenter      *Presenter
	defaultLang    string
	referenceTTL   time.Duration
	filterTTL      time.Duration
	logger         *zap.Logger
}

func NewReferenceUseCase(
	languageRepo repository.LanguageRepository,
	categoryRepo repository.CategoryRepository,
	definitionRepo repository.DefinitionRepository,
	cache repository.CacheRepository,
	presenter *Presenter,
	defaultLang string,
	referenceTTL, filterTTL time.Duration,
	logger *zap.Logger,
) *ReferenceUseCase {
	return &ReferenceUseCase{
		languageRepo:   languageRepo,
		categoryRepo:   categoryRepo,
		definitionRepo: definitionRepo,
		cache:          cache,
		presenter:      presenter,
		defaultLang:    defaultLang,
		referenceTTL:   referenceTTL,
		filterTTL:      filterTTL,
		logger:         logger,
	}
}

func (uc *ReferenceUseCase) Languages(ctx context.Context) ([]*domain.Language, error) {
	const key = "reference:languages"

	var cached []*domain.Language
	if uc.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	languages, err := uc.languageRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	uc.toCache(ctx, key, languages, uc.referenceTTL)
	return languages, nil
}

func (uc *ReferenceUseCase) GetLanguage(ctx context.Context, code string) (*domain.Language, error) {
	return uc.languageRepo.GetByCode(ctx, code)
}

func (uc *ReferenceUseCase) Categories(ctx context.Context, lang string) ([]dto.CategoryView, error) {
	key := fmt.Sprintf("reference:categories:%s", lang)

	var cached []dto.CategoryView
	if uc.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]dto.CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, uc.categoryView(c, lang))
	}

	uc.toCache(ctx, key, views, uc.referenceTTL)
	return views, nil
}

func (uc *ReferenceUseCase) GetCategory(ctx context.Context, id int64, lang string) (*dto.CategoryView, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := uc.categoryView(category, lang)
	return &view, nil
}

// FilterOptions returns every selectable filter value localized to lang.
func (uc *ReferenceUseCase) FilterOptions(ctx context.Context, lang string) (*dto.FilterOptionsResponse, error) {
	key := fmt.Sprintf("reference:filter_options:%s", lang)

	var cached dto.FilterOptionsResponse
	if uc.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	regions, err := uc.definitionRepo.ListSortTags(ctx, domain.SortTagRegion)
	if err != nil {
		return nil, err
	}
	expectations, err := uc.definitionRepo.ListExpectations(ctx)
	if err != nil {
		return nil, err
	}
	sortTags, err := uc.definitionRepo.ListSortTags(ctx, domain.SortTagGeneral, domain.SortTagAmenity)
	if err != nil {
		return nil, err
	}
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.FilterOptionsResponse{
		Regions:      uc.sortTagOptions(regions, lang),
		Expectations: make([]dto.ExpectationOption, 0, len(expectations)),
		SortTags:     uc.sortTagOptions(sortTags, lang),
		PlaceTypes:   make([]dto.CategoryView, 0, len(categories)),
	}
	for _, d := range expectations {
		resp.Expectations = append(resp.Expectations, dto.ExpectationOption{
			Key:     d.Key,
			IconKey: d.IconKey,
			Name:    d.Translations.Resolve(lang, uc.defaultLang, "name", d.Key),
		})
	}
	for _, c := range categories {
		resp.PlaceTypes = append(resp.PlaceTypes, uc.categoryView(c, lang))
	}

	uc.toCache(ctx, key, resp, uc.filterTTL)
	return resp, nil
}

func (uc *ReferenceUseCase) categoryView(c *domain.Category, lang string) dto.CategoryView {
	return dto.CategoryView{
		ID:      c.ID,
		Name:    c.Name(lang, uc.defaultLang),
		IconKey: c.IconKey,
	}
}

func (uc *ReferenceUseCase) sortTagOptions(defs []*domain.SortTagDefinition, lang string) []dto.SortTagOption {
	options := make([]dto.SortTagOption, 0, len(defs))
	for _, d := range defs {
		options = append(options, dto.SortTagOption{
			Key:     d.Key,
			IconKey: d.IconKey,
			Type:    string(d.Type),
			Name:    d.Translations.Resolve(lang, uc.defaultLang, "name", d.Key),
		})
	}
	return options
}

// fromCache loads key into dest, reporting whether it hit. Errors count
// as misses.
func (uc *ReferenceUseCase) fromCache(ctx context.Context, key string, dest interface{}) bool {
	data, err := uc.cache.Get(ctx, key)
	if err != nil || data == nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		uc.logger.Warn("Failed to unmarshal cached value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (uc *ReferenceUseCase) toCache(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		uc.logger.Warn("Failed to marshal value for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := uc.cache.Set(ctx, key, data, ttl); err != nil {
		uc.logger.Warn("Failed to cache value", zap.String("key", key), zap.Error(err))
	}
}
