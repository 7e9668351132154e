package dto

import (
	"encoding/json"

	"github.com/places-directory/internal/domain"
)

// PlaceListItem is the compact list view of a place.
type PlaceListItem struct {
	ID                 int64                     `json:"id"`
	Name               string                    `json:"name"`
	Description        string                    `json:"description"`
	Category           int64                     `json:"category"`
	CategoryName       string                    `json:"category_name"`
	MainImage          *string                   `json:"main_image"`
	Latitude           *string                   `json:"latitude"`
	Longitude          *string                   `json:"longitude"`
	WorkingHoursStatus domain.WorkingHoursStatus `json:"working_hours_status"`
}

// Location renders coordinates as decimal strings, null when unset.
type Location struct {
	Latitude  *string `json:"latitude"`
	Longitude *string `json:"longitude"`
}

type ContactInformation struct {
	Phone    *string `json:"phone"`
	Website  *string `json:"website"`
	Email    *string `json:"email"`
	MapLink  *string `json:"map_link"`
	Whatsapp *string `json:"whatsapp"`
}

type SocialMedias struct {
	Instagram *string `json:"instagram"`
	Twitter   *string `json:"twitter"`
	Facebook  *string `json:"facebook"`
	Pinterest *string `json:"pinterest"`
}

type UserInteraction struct {
	IsLiked bool `json:"is_liked"`
}

type PlaceImageView struct {
	ImageURL string `json:"image_url"`
	Order    int    `json:"order"`
}

type OpeningHourView struct {
	Day   string `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

// ResolvedTag is one resolved expectation or sorting tag. It serializes as
// {"<key>": true, "label": ..., "icon_key": ...} with the tag key itself as
// a dynamic JSON field name.
type ResolvedTag struct {
	Key     string
	Label   string
	IconKey *string
}

func (t ResolvedTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		t.Key:      true,
		"label":    t.Label,
		"icon_key": t.IconKey,
	})
}

// PlaceDetail is the full detail view of a place.
type PlaceDetail struct {
	ID                 int64                     `json:"id"`
	Type               string                    `json:"type"`
	Name               string                    `json:"name"`
	Description        string                    `json:"description"`
	AllTranslations    domain.TranslationSet     `json:"all_translations"`
	Address            *string                   `json:"address"`
	Location           Location                  `json:"location"`
	MainImage          *string                   `json:"main_image"`
	Images             []PlaceImageView          `json:"images"`
	WorkingHoursStatus domain.WorkingHoursStatus `json:"working_hours_status"`
	OpenTimes          []OpeningHourView         `json:"open_times"`
	ContactInformation ContactInformation        `json:"contact_information"`
	SocialMedias       SocialMedias              `json:"social_medias"`
	IconKeysForContact map[string]string         `json:"icon_keys_for_contact"`
	UserInteraction    UserInteraction           `json:"user_interaction"`
	Expectations       []ResolvedTag             `json:"expectations"`
	SortingTags        []ResolvedTag             `json:"sorting_tags"`
}

type LikeResponse struct {
	Success   bool `json:"success"`
	IsLiked   bool `json:"is_liked"`
	LikeCount int  `json:"like_count"`
}

type CategoryView struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	IconKey *string `json:"icon_key"`
}

type ExpectationOption struct {
	Key     string  `json:"key"`
	IconKey *string `json:"icon_key"`
	Name    string  `json:"name"`
}

type SortTagOption struct {
	Key     string  `json:"key"`
	IconKey *string `json:"icon_key"`
	Type    string  `json:"type"`
	Name    string  `json:"name"`
}

type FilterOptionsResponse struct {
	Regions      []SortTagOption     `json:"regions"`
	Expectations []ExpectationOption `json:"expectations"`
	SortTags     []SortTagOption     `json:"sort_tags"`
	PlaceTypes   []CategoryView      `json:"place_types"`
}
