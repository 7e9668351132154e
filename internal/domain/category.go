package domain

// Category groups places. Deleting a category cascades to its places.
type Category struct {
	ID           int64          `json:"id" db:"id"`
	IconKey      *string        `json:"icon_key" db:"icon_key"`
	Translations TranslationSet `json:"-" db:"-"`
}

// Name resolves the localized category name.
func (c *Category) Name(lang, defaultLang string) string {
	return c.Translations.Resolve(lang, defaultLang, "name", "")
}
