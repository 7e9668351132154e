package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/pkg/errors"
	"github.com/places-directory/internal/usecase"
	"github.com/places-directory/internal/usecase/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newPlaceUseCase(placeRepo *MockPlaceRepository, defRepo *MockDefinitionRepository) *usecase.PlaceUseCase {
	logger := zap.NewNop()
	return usecase.NewPlaceUseCase(
		placeRepo,
		defRepo,
		usecase.NewPresenter("en", logger),
		time.UTC,
		logger,
	)
}

func placeWithName(id int64, name string) *domain.Place {
	translations := make(domain.TranslationSet)
	translations.Set("en", "name", name)
	return &domain.Place{
		ID:           id,
		CategoryID:   1,
		Translations: translations,
		Category:     &domain.Category{ID: 1, Translations: make(domain.TranslationSet)},
	}
}

func TestPlaceUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("tag keys become conjunctive columns, unknown keys dropped", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		defRepo := &MockDefinitionRepository{}
		uc := newPlaceUseCase(placeRepo, defRepo)

		placeRepo.On("List", ctx, mock.MatchedBy(func(f domain.PlaceFilter) bool {
			return assert.ObjectsAreEqual([]string{"coffee", "bar", "kyrenia"}, f.TagColumns) &&
				len(f.CategoryIDs) == 0
		})).Return([]*domain.Place{placeWithName(1, "Cafe")}, nil)

		items, err := uc.List(ctx, dto.PlaceListQuery{
			Expectations: "coffee,bar,doesNotExist",
			SortingTags:  "kyrenia",
		}, "en")

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "Cafe", items[0].Name)
		placeRepo.AssertExpectations(t)
	})

	t.Run("category id parsed into filter", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		defRepo := &MockDefinitionRepository{}
		uc := newPlaceUseCase(placeRepo, defRepo)

		placeRepo.On("List", ctx, mock.MatchedBy(func(f domain.PlaceFilter) bool {
			return len(f.CategoryIDs) == 1 && f.CategoryIDs[0] == 7
		})).Return([]*domain.Place{}, nil)

		items, err := uc.List(ctx, dto.PlaceListQuery{Category: "7"}, "en")

		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("non-numeric category is rejected", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		defRepo := &MockDefinitionRepository{}
		uc := newPlaceUseCase(placeRepo, defRepo)

		_, err := uc.List(ctx, dto.PlaceListQuery{Category: "museum"}, "en")

		appErr, ok := err.(*errors.AppError)
		assert.True(t, ok)
		assert.Equal(t, errors.ErrInvalidRequest.Code, appErr.Code)
	})
}

func TestPlaceUseCase_GetDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("not found propagates", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		defRepo := &MockDefinitionRepository{}
		uc := newPlaceUseCase(placeRepo, defRepo)

		placeRepo.On("GetByID", ctx, int64(99)).Return(nil, errors.ErrPlaceNotFound)

		_, err := uc.GetDetail(ctx, 99, "en", "")
		assert.Equal(t, errors.ErrPlaceNotFound, err)
	})

	t.Run("device id drives user interaction", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		defRepo := &MockDefinitionRepository{}
		uc := newPlaceUseCase(placeRepo, defRepo)

		placeRepo.On("GetByID", ctx, int64(1)).Return(placeWithName(1, "Cafe"), nil)
		placeRepo.On("IsLikedBy", ctx, int64(1), "device-a").Return(true, nil)
		defRepo.On("ListExpectations", ctx).Return([]*domain.ExpectationDefinition{}, nil)
		defRepo.On("ListSortTags", ctx).Return([]*domain.SortTagDefinition{}, nil)

		detail, err := uc.GetDetail(ctx, 1, "en", "device-a")

		assert.NoError(t, err)
		assert.True(t, detail.UserInteraction.IsLiked)
	})

	t.Run("no device id means not liked and no lookup", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		defRepo := &MockDefinitionRepository{}
		uc := newPlaceUseCase(placeRepo, defRepo)

		placeRepo.On("GetByID", ctx, int64(1)).Return(placeWithName(1, "Cafe"), nil)
		defRepo.On("ListExpectations", ctx).Return([]*domain.ExpectationDefinition{}, nil)
		defRepo.On("ListSortTags", ctx).Return([]*domain.SortTagDefinition{}, nil)

		detail, err := uc.GetDetail(ctx, 1, "en", "")

		assert.NoError(t, err)
		assert.False(t, detail.UserInteraction.IsLiked)
		placeRepo.AssertNotCalled(t, "IsLikedBy", mock.Anything, mock.Anything, mock.Anything)
	})
}

// togglePlaceRepo keeps like state in memory so double-toggle semantics can
// be asserted end to end.
type togglePlaceRepo struct {
	MockPlaceRepository
	likes map[string]bool
}

func (r *togglePlaceRepo) ToggleLike(_ context.Context, _ int64, deviceID string) (bool, int, error) {
	if r.likes == nil {
		r.likes = make(map[string]bool)
	}
	if r.likes[deviceID] {
		delete(r.likes, deviceID)
	} else {
		r.likes[deviceID] = true
	}
	return r.likes[deviceID], len(r.likes), nil
}

func TestPlaceUseCase_ToggleLikeTwiceRestoresState(t *testing.T) {
	ctx := context.Background()
	placeRepo := &togglePlaceRepo{}
	defRepo := &MockDefinitionRepository{}
	logger := zap.NewNop()
	uc := usecase.NewPlaceUseCase(placeRepo, defRepo, usecase.NewPresenter("en", logger), time.UTC, logger)

	req := dto.LikeRequest{DeviceID: "device-a"}

	first, err := uc.ToggleLike(ctx, 1, req)
	assert.NoError(t, err)
	assert.True(t, first.Success)
	assert.True(t, first.IsLiked)
	assert.Equal(t, 1, first.LikeCount)

	second, err := uc.ToggleLike(ctx, 1, req)
	assert.NoError(t, err)
	assert.True(t, second.Success)
	assert.False(t, second.IsLiked)
	assert.Equal(t, 0, second.LikeCount)
}
