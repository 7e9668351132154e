package postgres

import (
	"strings"
	"testing"

	"github.com/places-directory/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAppendFilter(t *testing.T) {
	t.Run("empty filter adds nothing", func(t *testing.T) {
		query, args := appendFilter("WHERE p.is_active = TRUE", nil, domain.PlaceFilter{})

		assert.Equal(t, "WHERE p.is_active = TRUE", query)
		assert.Empty(t, args)
	})

	t.Run("single category id uses equality", func(t *testing.T) {
		query, args := appendFilter("", nil, domain.PlaceFilter{CategoryIDs: []int64{7}})

		assert.Contains(t, query, "p.category_id = $1")
		assert.Equal(t, []interface{}{int64(7)}, args)
	})

	t.Run("multiple category ids use ANY", func(t *testing.T) {
		query, args := appendFilter("", nil, domain.PlaceFilter{CategoryIDs: []int64{1, 2}})

		assert.Contains(t, query, "p.category_id = ANY($1)")
		assert.Len(t, args, 1)
	})

	t.Run("tag columns become conjunctive predicates", func(t *testing.T) {
		query, args := appendFilter("", nil, domain.PlaceFilter{
			TagColumns: []string{"coffee", "bar", "kyrenia"},
		})

		assert.Contains(t, query, "AND p.coffee = TRUE")
		assert.Contains(t, query, "AND p.bar = TRUE")
		assert.Contains(t, query, "AND p.kyrenia = TRUE")
		assert.Empty(t, args)
	})

	t.Run("search reuses one argument across branches", func(t *testing.T) {
		query, args := appendFilter("", nil, domain.PlaceFilter{Search: "harbour"})

		assert.Contains(t, query, "p.address ILIKE")
		assert.Contains(t, query, "pt.field IN ('name', 'description')")
		assert.Equal(t, []interface{}{"harbour"}, args)
		// All three ILIKE branches reference the same placeholder.
		assert.Equal(t, 3, strings.Count(query, "$1"))
	})

	t.Run("argument indices stay sequential across parts", func(t *testing.T) {
		query, args := appendFilter("", nil, domain.PlaceFilter{
			CategoryIDs:  []int64{3},
			CategoryName: "museum",
			Search:       "old town",
		})

		assert.Contains(t, query, "p.category_id = $1")
		assert.Contains(t, query, "$2")
		assert.Contains(t, query, "$3")
		assert.Len(t, args, 3)
	})
}

func TestAppendOrdering(t *testing.T) {
	t.Run("default is created_at descending", func(t *testing.T) {
		query, args := appendOrdering("", nil, domain.PlaceFilter{})

		assert.Contains(t, query, "ORDER BY p.created_at DESC")
		assert.Empty(t, args)
	})

	t.Run("unknown ordering falls back to default", func(t *testing.T) {
		query, _ := appendOrdering("", nil, domain.PlaceFilter{Ordering: "surprise"})

		assert.Contains(t, query, "ORDER BY p.created_at DESC")
	})

	t.Run("name ordering sorts by requested language translation", func(t *testing.T) {
		query, args := appendOrdering("", nil, domain.PlaceFilter{Ordering: "name", Language: "tr"})

		assert.Contains(t, query, "pt.language_code = $1")
		assert.Contains(t, query, " ASC")
		assert.Equal(t, []interface{}{"tr"}, args)
	})

	t.Run("leading minus flips direction", func(t *testing.T) {
		query, _ := appendOrdering("", nil, domain.PlaceFilter{Ordering: "-name", Language: "en"})

		assert.Contains(t, query, " DESC")
	})

	t.Run("popularity maps to the popular flag", func(t *testing.T) {
		query, args := appendOrdering("", nil, domain.PlaceFilter{Ordering: "-popularity"})

		assert.Contains(t, query, "ORDER BY p.popular DESC")
		assert.Empty(t, args)
	})

	t.Run("existing args shift placeholder numbering", func(t *testing.T) {
		query, args := appendOrdering("", []interface{}{"already"}, domain.PlaceFilter{Ordering: "name", Language: "en"})

		assert.Contains(t, query, "pt.language_code = $2")
		assert.Len(t, args, 2)
	})
}
