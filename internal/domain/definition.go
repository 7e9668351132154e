package domain

// SortTagType classifies a sort tag definition.
type SortTagType string

const (
	SortTagGeneral SortTagType = "general"
	SortTagRegion  SortTagType = "region"
	SortTagAmenity SortTagType = "amenity"
)

// ExpectationDefinition is a static lookup record mapping a fixed
// expectation key to a localized label and icon.
type ExpectationDefinition struct {
	Key          string         `json:"key" db:"key"`
	IconKey      *string        `json:"icon_key" db:"icon_key"`
	Translations TranslationSet `json:"-" db:"-"`
}

// SortTagDefinition is the sorting/region counterpart of
// ExpectationDefinition, additionally typed general/region/amenity.
type SortTagDefinition struct {
	Key          string         `json:"key" db:"key"`
	IconKey      *string        `json:"icon_key" db:"icon_key"`
	Type         SortTagType    `json:"type" db:"type"`
	Translations TranslationSet `json:"-" db:"-"`
}
