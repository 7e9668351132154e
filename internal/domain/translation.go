package domain

import "sort"

// EntityType identifies which table a translation row belongs to.
type EntityType string

const (
	EntityPlace       EntityType = "place"
	EntityCategory    EntityType = "category"
	EntityExpectation EntityType = "expectation_definition"
	EntitySortTag     EntityType = "sort_tag_definition"
)

// Translation is a single localized field value keyed by
// (entity type, entity id, language code, field). Missing rows are never
// created implicitly; lookups fall back instead.
type Translation struct {
	EntityType   EntityType `db:"entity_type"`
	EntityID     string     `db:"entity_id"`
	LanguageCode string     `db:"language_code"`
	Field        string     `db:"field"`
	Value        string     `db:"value"`
}

// LocalizedFields returns the translatable fields of an entity type.
func LocalizedFields(et EntityType) []string {
	if et == EntityPlace {
		return []string{"name", "description"}
	}
	return []string{"name"}
}

// TranslationSet holds every translation of one entity,
// as language code -> field -> value.
type TranslationSet map[string]map[string]string

// Get returns the value for (lang, field) without any fallback.
func (ts TranslationSet) Get(lang, field string) (string, bool) {
	fields, ok := ts[lang]
	if !ok {
		return "", false
	}
	v, ok := fields[field]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Set stores a value, allocating the language map on first use.
func (ts TranslationSet) Set(lang, field, value string) {
	fields, ok := ts[lang]
	if !ok {
		fields = make(map[string]string)
		ts[lang] = fields
	}
	fields[field] = value
}

// Resolve looks up a field using the explicit fallback order:
// requested language, then the configured default language, then the
// lexicographically first language that has a value, then def.
// The ordering is deterministic and never depends on map iteration.
func (ts TranslationSet) Resolve(lang, defaultLang, field, def string) string {
	if v, ok := ts.Get(lang, field); ok {
		return v
	}
	if v, ok := ts.Get(defaultLang, field); ok {
		return v
	}
	for _, code := range ts.Languages() {
		if v, ok := ts.Get(code, field); ok {
			return v
		}
	}
	return def
}

// Languages returns the language codes present in the set, sorted.
func (ts TranslationSet) Languages() []string {
	codes := make([]string, 0, len(ts))
	for code := range ts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
