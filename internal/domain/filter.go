package domain

// PlaceFilter is the predicate set applied to active places. All populated
// parts combine with logical AND; category ids combine with OR among
// themselves. TagColumns come from the fixed tag tables, so they hold only
// known column names and each must be true on a matching place.
type PlaceFilter struct {
	CategoryIDs  []int64
	CategoryName string
	TagColumns   []string
	Search       string

	// Ordering is one of name, created_at, category, popularity, optionally
	// prefixed with "-" for descending. Empty means the default -created_at.
	Ordering string

	// Language drives name-based ordering and search over translated fields.
	Language string
}

// IsZero reports whether the filter restricts anything beyond is_active.
func (f PlaceFilter) IsZero() bool {
	return len(f.CategoryIDs) == 0 && f.CategoryName == "" &&
		len(f.TagColumns) == 0 && f.Search == ""
}
