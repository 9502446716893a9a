package catalog

import "strings"

// CategoryAll is the sentinel category meaning "no category filter"
const CategoryAll = "all"

// Result is an ordered set of matching entries plus its count. Total always
// equals len(Entries); it is carried explicitly because it crosses the API
// boundary as a separate field.
type Result[T Entry] struct {
	Entries []T
	Total   int
}

// Filter narrows entries by optional category and free-text term. An empty
// category, the "all" sentinel, and an empty search term each mean "no filter
// applied". Both filters compose with logical AND, matching is
// case-insensitive, and source order is preserved. An unknown category yields
// an empty result, not an error.
func Filter[T Entry](entries []T, category, search string) Result[T] {
	matched := make([]T, 0, len(entries))

	search = strings.ToLower(search)
	filterCategory := category != "" && !strings.EqualFold(category, CategoryAll)

	for _, e := range entries {
		if filterCategory && !strings.EqualFold(e.EntryCategory(), category) {
			continue
		}
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		matched = append(matched, e)
	}

	return Result[T]{Entries: matched, Total: len(matched)}
}

// matchesSearch reports whether the lowercased term is a substring of at
// least one designated search field
func matchesSearch(e Entry, term string) bool {
	for _, field := range e.SearchFields() {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
