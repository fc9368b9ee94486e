package core

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/ibarra/shelfr/internal/model"
)

// SearchField names the single field a search scans.
type SearchField string

// Fields accepted by [Library.Search].
const (
	SearchByTitle  SearchField = "Title"
	SearchByAuthor SearchField = "Author"
)

// ParseSearchField converts user input to a SearchField, accepting any
// casing.
func ParseSearchField(s string) (SearchField, error) {
	switch {
	case strings.EqualFold(s, string(SearchByTitle)):
		return SearchByTitle, nil
	case strings.EqualFold(s, string(SearchByAuthor)):
		return SearchByAuthor, nil
	default:
		return "", fmt.Errorf("unknown search field %q (want Title or Author)", s)
	}
}

func (f SearchField) valueOf(b model.Book) string {
	if f == SearchByAuthor {
		return b.Author
	}

	return b.Title
}

// Search returns a lazy sequence of books whose field contains query as a
// case-insensitive substring. Ranging the sequence again re-scans; an
// empty result is a valid outcome, not an error.
func (l *Library) Search(field SearchField, query string) iter.Seq[model.Book] {
	q := strings.ToLower(query)

	return func(yield func(model.Book) bool) {
		for _, b := range l.books {
			if !strings.Contains(strings.ToLower(field.valueOf(b)), q) {
				continue
			}

			if !yield(b) {
				return
			}
		}
	}
}

// SortKey names the field [Library.List] orders by.
type SortKey string

// Sort keys accepted by [Library.List]. SortNone keeps insertion order.
const (
	SortNone     SortKey = ""
	SortByTitle  SortKey = "Title"
	SortByAuthor SortKey = "Author"
	SortByYear   SortKey = "Year"
	SortByGenre  SortKey = "Genre"
)

// ParseSortKey converts user input to a SortKey, accepting any casing.
// An empty string means no sorting.
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range []SortKey{SortByTitle, SortByAuthor, SortByYear, SortByGenre} {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}

	if s == "" {
		return SortNone, nil
	}

	return SortNone, fmt.Errorf("unknown sort key %q (want Title, Author, Year or Genre)", s)
}

// List returns a copy of the library, stably sorted ascending by the given
// key. The stored order is never changed; sorting is a presentation view.
func (l *Library) List(sortBy SortKey) []model.Book {
	out := slices.Clone(l.books)

	switch sortBy {
	case SortByTitle:
		slices.SortStableFunc(out, func(a, b model.Book) int { return cmp.Compare(a.Title, b.Title) })
	case SortByAuthor:
		slices.SortStableFunc(out, func(a, b model.Book) int { return cmp.Compare(a.Author, b.Author) })
	case SortByYear:
		slices.SortStableFunc(out, func(a, b model.Book) int { return cmp.Compare(a.Year, b.Year) })
	case SortByGenre:
		slices.SortStableFunc(out, func(a, b model.Book) int { return cmp.Compare(a.Genre, b.Genre) })
	}

	return out
}
