package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newReferenceUseCase(
	langRepo *MockLanguageRepository,
	catRepo *MockCategoryRepository,
	defRepo *MockDefinitionRepository,
	cacheRepo *MockCacheRepository,
) *usecase.ReferenceUseCase {
	logger := zap.NewNop()
	return usecase.NewReferenceUseCase(
		langRepo,
		catRepo,
		defRepo,
		cacheRepo,
		usecase.NewPresenter("en", logger),
		"en",
		time.Hour,
		10*time.Minute,
		logger,
	)
}

func categoryWithName(id int64, lang, name string) *domain.Category {
	translations := make(domain.TranslationSet)
	translations.Set(lang, "name", name)
	return &domain.Category{ID: id, Translations: translations}
}

func sortTagDef(key string, tagType domain.SortTagType, lang, name string) *domain.SortTagDefinition {
	translations := make(domain.TranslationSet)
	translations.Set(lang, "name", name)
	return &domain.SortTagDefinition{Key: key, Type: tagType, Translations: translations}
}

func TestReferenceUseCase_Languages(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss reads database and caches", func(t *testing.T) {
		langRepo := &MockLanguageRepository{}
		catRepo := &MockCategoryRepository{}
		defRepo := &MockDefinitionRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := newReferenceUseCase(langRepo, catRepo, defRepo, cacheRepo)

		languages := []*domain.Language{{Code: "en", Name: "English"}}
		cacheRepo.On("Get", ctx, "reference:languages").Return(nil, nil)
		langRepo.On("List", ctx).Return(languages, nil)
		cacheRepo.On("Set", ctx, "reference:languages", mock.Anything, time.Hour).Return(nil)

		got, err := uc.Languages(ctx)

		assert.NoError(t, err)
		assert.Equal(t, languages, got)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("cache hit skips database", func(t *testing.T) {
		langRepo := &MockLanguageRepository{}
		catRepo := &MockCategoryRepository{}
		defRepo := &MockDefinitionRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := newReferenceUseCase(langRepo, catRepo, defRepo, cacheRepo)

		cached, _ := json.Marshal([]*domain.Language{{Code: "tr", Name: "Türkçe"}})
		cacheRepo.On("Get", ctx, "reference:languages").Return(cached, nil)

		got, err := uc.Languages(ctx)

		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "tr", got[0].Code)
		langRepo.AssertNotCalled(t, "List", mock.Anything)
	})
}

func TestReferenceUseCase_FilterOptions(t *testing.T) {
	ctx := context.Background()

	langRepo := &MockLanguageRepository{}
	catRepo := &MockCategoryRepository{}
	defRepo := &MockDefinitionRepository{}
	cacheRepo := &MockCacheRepository{}
	uc := newReferenceUseCase(langRepo, catRepo, defRepo, cacheRepo)

	cacheRepo.On("Get", ctx, "reference:filter_options:tr").Return(nil, nil)
	cacheRepo.On("Set", ctx, "reference:filter_options:tr", mock.Anything, 10*time.Minute).Return(nil)

	defRepo.On("ListSortTags", ctx, domain.SortTagRegion).
		Return([]*domain.SortTagDefinition{sortTagDef("kyrenia", domain.SortTagRegion, "tr", "Girne")}, nil)
	defRepo.On("ListExpectations", ctx).
		Return([]*domain.ExpectationDefinition{expectationDef("coffee", "Coffee Served", "coffee-cup")}, nil)
	defRepo.On("ListSortTags", ctx, domain.SortTagGeneral, domain.SortTagAmenity).
		Return([]*domain.SortTagDefinition{sortTagDef("popular", domain.SortTagGeneral, "en", "Popular")}, nil)
	catRepo.On("List", ctx).
		Return([]*domain.Category{categoryWithName(1, "tr", "Restoranlar")}, nil)

	options, err := uc.FilterOptions(ctx, "tr")

	assert.NoError(t, err)
	assert.Len(t, options.Regions, 1)
	assert.Equal(t, "Girne", options.Regions[0].Name)
	assert.Equal(t, "region", options.Regions[0].Type)

	// Expectation has no Turkish translation: falls back to the default
	// language value.
	assert.Len(t, options.Expectations, 1)
	assert.Equal(t, "Coffee Served", options.Expectations[0].Name)

	assert.Len(t, options.SortTags, 1)
	assert.Equal(t, "Popular", options.SortTags[0].Name)

	assert.Len(t, options.PlaceTypes, 1)
	assert.Equal(t, "Restoranlar", options.PlaceTypes[0].Name)
}
