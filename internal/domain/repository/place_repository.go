package repository

import (
	"context"

	"github.com/places-directory/internal/domain"
)

// PlaceRepository reads active places and mutates their liked-device sets.
type PlaceRepository interface {
	// List returns active places matching the filter, hydrated for the list
	// view: translations, category (with translations) and opening hours.
	List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error)

	// GetByID returns one active place fully hydrated (translations,
	// category, ordered images, ordered opening hours, like count), or
	// errors.ErrPlaceNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Place, error)

	// FilterIDs returns the ids of every active place matching the filter,
	// in a stable order. Used by the wheel-spin selection engine.
	FilterIDs(ctx context.Context, filter domain.PlaceFilter) ([]int64, error)

	// ToggleLike atomically flips the device's membership in the place's
	// liked set and returns the post-toggle state and count. Concurrent
	// toggles for the same (place, device) serialize on the storage-level
	// uniqueness constraint.
	ToggleLike(ctx context.Context, placeID int64, deviceID string) (liked bool, count int, err error)

	// IsLikedBy reports whether the device currently likes the place.
	IsLikedBy(ctx context.Context, placeID int64, deviceID string) (bool, error)
}
