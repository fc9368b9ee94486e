package core

import (
	"slices"
	"strings"

	"github.com/ibarra/shelfr/internal/model"
)

// Library is the ordered in-memory collection of book records. Insertion
// order is display order and decides which record a title lookup resolves
// to when duplicates exist. Library does no I/O; [LibraryManager] pairs it
// with a store.
type Library struct {
	books []model.Book
}

// NewLibrary builds a Library holding a copy of the given books.
func NewLibrary(books ...model.Book) *Library {
	return &Library{books: slices.Clone(books)}
}

// Books returns a copy of the collection in insertion order.
func (l *Library) Books() []model.Book {
	return slices.Clone(l.books)
}

// Len returns the number of books.
func (l *Library) Len() int {
	return len(l.books)
}

// Add appends a book. Title, Author and Genre must be non-blank; Year and
// Read are accepted as-is. Field values are stored verbatim.
func (l *Library) Add(b model.Book) error {
	var missing []string

	if strings.TrimSpace(b.Title) == "" {
		missing = append(missing, "Title")
	}

	if strings.TrimSpace(b.Author) == "" {
		missing = append(missing, "Author")
	}

	if strings.TrimSpace(b.Genre) == "" {
		missing = append(missing, "Genre")
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	l.books = append(l.books, b)

	return nil
}

// indexOf returns the position of the first book whose title equals the
// given title case-insensitively, or -1.
func (l *Library) indexOf(title string) int {
	for i, b := range l.books {
		if strings.EqualFold(b.Title, title) {
			return i
		}
	}

	return -1
}

// Find returns the first book whose title matches case-insensitively.
func (l *Library) Find(title string) (model.Book, error) {
	i := l.indexOf(title)
	if i < 0 {
		return model.Book{}, &NotFoundError{Title: title}
	}

	return l.books[i], nil
}

// Remove deletes the first book whose title matches case-insensitively.
// Later duplicates stay untouched.
func (l *Library) Remove(title string) error {
	i := l.indexOf(title)
	if i < 0 {
		return &NotFoundError{Title: title}
	}

	l.books = slices.Delete(l.books, i, i+1)

	return nil
}

// Changes carries replacement values for Edit. Blank strings and nil
// pointers keep the existing value, so an empty form field never wipes a
// stored one.
type Changes struct {
	Title  string
	Author string
	Genre  string
	Year   *int
	Read   *bool
}

// Edit overwrites the fields of the first title match with the non-blank
// values in ch and returns the updated record.
func (l *Library) Edit(title string, ch Changes) (model.Book, error) {
	i := l.indexOf(title)
	if i < 0 {
		return model.Book{}, &NotFoundError{Title: title}
	}

	b := &l.books[i]

	if strings.TrimSpace(ch.Title) != "" {
		b.Title = ch.Title
	}

	if strings.TrimSpace(ch.Author) != "" {
		b.Author = ch.Author
	}

	if strings.TrimSpace(ch.Genre) != "" {
		b.Genre = ch.Genre
	}

	if ch.Year != nil {
		b.Year = *ch.Year
	}

	if ch.Read != nil {
		b.Read = *ch.Read
	}

	return *b, nil
}
