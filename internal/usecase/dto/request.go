package dto

// PlaceListQuery carries the list endpoint's query parameters. Expectations
// and SortingTags are comma-separated tag keys; unknown keys never fail the
// request, they are dropped during predicate building.
type PlaceListQuery struct {
	Category     string `query:"category"`
	CategoryName string `query:"category_name"`
	Expectations string `query:"expectations"`
	SortingTags  string `query:"sorting_tags"`
	Search       string `query:"search"`
	Ordering     string `query:"ordering"`
}

// LikeRequest toggles a device's like on a place.
type LikeRequest struct {
	DeviceID string `json:"device_id" validate:"required"`
}

// WheelSpinRequest filters the random-selection pool. All lists are
// optional; an empty request spins over every active place.
type WheelSpinRequest struct {
	RegionKeys      []string `json:"region_keys"`
	ExpectationKeys []string `json:"expectation_keys"`
	CategoryIDs     []int64  `json:"category_ids"`
	DeviceID        string   `json:"device_id"`
}
