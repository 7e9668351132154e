package usecase

import (
	"context"
	"math/rand"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/pkg/errors"
	"github.com/places-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

// WheelSpinUseCase selects one place uniformly at random among those
// matching the request's filters.
type WheelSpinUseCase struct {
	placeRepo repository.PlaceRepository
	places    *PlaceUseCase
	randIntN  func(n int) int
	logger    *zap.Logger
}

func NewWheelSpinUseCase(
	placeRepo repository.PlaceRepository,
	places *PlaceUseCase,
	logger *zap.Logger,
) *WheelSpinUseCase {
	return &WheelSpinUseCase{
		placeRepo: placeRepo,
		places:    places,
		randIntN:  rand.Intn,
		logger:    logger,
	}
}

// Spin returns the detail view of a random matching place, or
// errors.ErrNoPlacesMatch when nothing matches.
func (uc *WheelSpinUseCase) Spin(ctx context.Context, req dto.WheelSpinRequest, lang string) (*dto.PlaceDetail, error) {
	filter := domain.PlaceFilter{
		CategoryIDs: req.CategoryIDs,
		Language:    lang,
	}
	filter.TagColumns = append(
		domain.ColumnsForKeys(domain.ExpectationFields, req.ExpectationKeys),
		domain.ColumnsForKeys(domain.RegionFields, req.RegionKeys)...,
	)

	ids, err := uc.placeRepo.FilterIDs(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to load wheel spin candidates", zap.Error(err))
		return nil, err
	}
	if len(ids) == 0 {
		return nil, errors.ErrNoPlacesMatch
	}

	selected := ids[uc.randIntN(len(ids))]
	uc.logger.Debug("Wheel spin selected place",
		zap.Int64("place_id", selected),
		zap.Int("candidates", len(ids)),
	)

	return uc.places.GetDetail(ctx, selected, lang, req.DeviceID)
}
