package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/pkg/errors"
	"github.com/places-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

type PlaceUseCase struct {
	placeRepo      repository.PlaceRepository
	definitionRepo repository.DefinitionRepository
	presenter      *Presenter
	location       *time.Location
	now            func() time.Time
	logger         *zap.Logger
}

func NewPlaceUseCase(
	placeRepo repository.PlaceRepository,
	definitionRepo repository.DefinitionRepository,
	presenter *Presenter,
	location *time.Location,
	logger *zap.Logger,
) *PlaceUseCase {
	return &PlaceUseCase{
		placeRepo:      placeRepo,
		definitionRepo: definitionRepo,
		presenter:      presenter,
		location:       location,
		now:            time.Now,
		logger:         logger,
	}
}

// List returns the compact place views matching the query. Tag keys map
// through the fixed tables with AND semantics; unknown keys are dropped.
func (uc *PlaceUseCase) List(ctx context.Context, query dto.PlaceListQuery, lang string) ([]dto.PlaceListItem, error) {
	filter := domain.PlaceFilter{
		CategoryName: query.CategoryName,
		Search:       query.Search,
		Ordering:     query.Ordering,
		Language:     lang,
	}

	if query.Category != "" {
		categoryID, err := strconv.ParseInt(query.Category, 10, 64)
		if err != nil {
			return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"category": "must be an integer id",
			})
		}
		filter.CategoryIDs = []int64{categoryID}
	}

	filter.TagColumns = append(
		domain.ColumnsForKeys(domain.ExpectationFields, domain.SplitKeys(query.Expectations)),
		domain.ColumnsForKeys(domain.SortingTagFields, domain.SplitKeys(query.SortingTags))...,
	)

	places, err := uc.placeRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list places", zap.Error(err))
		return nil, err
	}

	now := uc.now().In(uc.location)
	items := make([]dto.PlaceListItem, 0, len(places))
	for _, p := range places {
		items = append(items, uc.presenter.ListItem(p, lang, now))
	}

	return items, nil
}

// GetDetail returns the full detail view. deviceID is optional; when set,
// user_interaction reflects that device's like state.
func (uc *PlaceUseCase) GetDetail(ctx context.Context, id int64, lang, deviceID string) (*dto.PlaceDetail, error) {
	place, err := uc.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isLiked := false
	if deviceID != "" {
		isLiked, err = uc.placeRepo.IsLikedBy(ctx, id, deviceID)
		if err != nil {
			return nil, err
		}
	}

	expectationDefs, sortTagDefs, err := uc.loadDefinitions(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now().In(uc.location)
	detail := uc.presenter.Detail(place, lang, now, isLiked, expectationDefs, sortTagDefs)
	return &detail, nil
}

// ToggleLike flips the device's like on the place and reports the
// post-toggle state.
func (uc *PlaceUseCase) ToggleLike(ctx context.Context, placeID int64, req dto.LikeRequest) (*dto.LikeResponse, error) {
	liked, count, err := uc.placeRepo.ToggleLike(ctx, placeID, req.DeviceID)
	if err != nil {
		uc.logger.Error("Failed to toggle like",
			zap.Int64("place_id", placeID), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Like toggled",
		zap.Int64("place_id", placeID),
		zap.Bool("is_liked", liked),
		zap.Int("like_count", count),
	)

	return &dto.LikeResponse{
		Success:   true,
		IsLiked:   liked,
		LikeCount: count,
	}, nil
}

func (uc *PlaceUseCase) loadDefinitions(ctx context.Context) (
	map[string]*domain.ExpectationDefinition,
	map[string]*domain.SortTagDefinition,
	error,
) {
	expectations, err := uc.definitionRepo.ListExpectations(ctx)
	if err != nil {
		return nil, nil, err
	}
	sortTags, err := uc.definitionRepo.ListSortTags(ctx)
	if err != nil {
		return nil, nil, err
	}

	expectationDefs := make(map[string]*domain.ExpectationDefinition, len(expectations))
	for _, d := range expectations {
		expectationDefs[d.Key] = d
	}
	sortTagDefs := make(map[string]*domain.SortTagDefinition, len(sortTags))
	for _, d := range sortTags {
		sortTagDefs[d.Key] = d
	}

	return expectationDefs, sortTagDefs, nil
}
