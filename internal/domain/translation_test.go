package domain_test

import (
	"testing"

	"github.com/places-directory/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTranslationSetResolve(t *testing.T) {
	t.Run("requested language wins", func(t *testing.T) {
		ts := make(domain.TranslationSet)
		ts.Set("en", "name", "Castle")
		ts.Set("tr", "name", "Kale")

		assert.Equal(t, "Kale", ts.Resolve("tr", "en", "name", "fallback"))
	})

	t.Run("falls back to default language", func(t *testing.T) {
		ts := make(domain.TranslationSet)
		ts.Set("en", "name", "Castle")

		assert.Equal(t, "Castle", ts.Resolve("tr", "en", "name", "fallback"))
	})

	t.Run("falls back to lexicographically first language", func(t *testing.T) {
		ts := make(domain.TranslationSet)
		ts.Set("tr", "name", "Kale")
		ts.Set("ru", "name", "Замок")

		// Neither requested nor default present: "ru" sorts before "tr".
		assert.Equal(t, "Замок", ts.Resolve("de", "en", "name", "fallback"))
	})

	t.Run("empty values are treated as absent", func(t *testing.T) {
		ts := make(domain.TranslationSet)
		ts.Set("tr", "name", "")
		ts.Set("en", "name", "Castle")

		assert.Equal(t, "Castle", ts.Resolve("tr", "en", "name", "fallback"))
	})

	t.Run("caller default when nothing available", func(t *testing.T) {
		ts := make(domain.TranslationSet)

		assert.Equal(t, "fallback", ts.Resolve("tr", "en", "name", "fallback"))
	})
}

func TestLocalizedFields(t *testing.T) {
	assert.Equal(t, []string{"name", "description"}, domain.LocalizedFields(domain.EntityPlace))
	assert.Equal(t, []string{"name"}, domain.LocalizedFields(domain.EntityCategory))
	assert.Equal(t, []string{"name"}, domain.LocalizedFields(domain.EntityExpectation))
}
