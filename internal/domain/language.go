package domain

// Language is immutable reference data describing a supported content language.
type Language struct {
	Code        string  `json:"code" db:"code"`
	Name        string  `json:"name" db:"name"`
	FlagIconKey *string `json:"flag_icon_key" db:"flag_icon_key"`
}
