package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibarra/shelfr/internal/model"
)

func testBooks() []model.Book {
	return []model.Book{
		{Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "Science Fiction", Read: true},
		{Title: "Emma", Author: "Jane Austen", Year: 1815, Genre: "Romance"},
		{Title: "Dune Messiah", Author: "Frank Herbert", Year: 1969, Genre: "Science Fiction"},
	}
}

func TestLibrary_Add(t *testing.T) {
	tests := []struct {
		name        string
		book        model.Book
		wantMissing []string
	}{
		{
			name: "valid book",
			book: model.Book{Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "Science Fiction"},
		},
		{
			name: "year and read flag are optional",
			book: model.Book{Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction"},
		},
		{
			name:        "empty title",
			book:        model.Book{Author: "Frank Herbert", Genre: "Science Fiction"},
			wantMissing: []string{"Title"},
		},
		{
			name:        "whitespace author",
			book:        model.Book{Title: "Dune", Author: "   ", Genre: "Science Fiction"},
			wantMissing: []string{"Author"},
		},
		{
			name:        "tab and newline genre",
			book:        model.Book{Title: "Dune", Author: "Frank Herbert", Genre: "\t\n"},
			wantMissing: []string{"Genre"},
		},
		{
			name:        "everything blank",
			book:        model.Book{Title: " ", Author: "", Genre: ""},
			wantMissing: []string{"Title", "Author", "Genre"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := NewLibrary()

			err := lib.Add(tt.book)
			if len(tt.wantMissing) == 0 {
				require.NoError(t, err)
				assert.Equal(t, 1, lib.Len())

				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantMissing, verr.Fields)
			assert.Zero(t, lib.Len(), "a rejected add must leave the library unchanged")
		})
	}
}

func TestLibrary_AddStoresValuesVerbatim(t *testing.T) {
	lib := NewLibrary()
	require.NoError(t, lib.Add(model.Book{Title: "  Dune  ", Author: "Frank Herbert", Genre: "Sci-Fi"}))

	got, err := lib.Find("  DUNE  ")
	require.NoError(t, err)
	assert.Equal(t, "  Dune  ", got.Title, "surrounding whitespace is kept, not trimmed away")
}

func TestLibrary_Find(t *testing.T) {
	lib := NewLibrary(testBooks()...)

	t.Run("case-insensitive", func(t *testing.T) {
		got, err := lib.Find("dUnE")
		require.NoError(t, err)
		assert.Equal(t, "Dune", got.Title)
		assert.Equal(t, 1965, got.Year)
	})

	t.Run("exact title only", func(t *testing.T) {
		_, err := lib.Find("Dune Mess")

		var nferr *NotFoundError
		require.ErrorAs(t, err, &nferr)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := lib.Find("Middlemarch")

		var nferr *NotFoundError
		require.ErrorAs(t, err, &nferr)
		assert.Equal(t, "Middlemarch", nferr.Title)
	})

	t.Run("first match wins", func(t *testing.T) {
		dup := NewLibrary(
			model.Book{Title: "Dune", Author: "First", Year: 1965, Genre: "Sci-Fi"},
			model.Book{Title: "DUNE", Author: "Second", Year: 1984, Genre: "Film"},
		)

		got, err := dup.Find("dune")
		require.NoError(t, err)
		assert.Equal(t, "First", got.Author)
	})
}

func TestLibrary_Remove(t *testing.T) {
	t.Run("removes first match only", func(t *testing.T) {
		lib := NewLibrary(
			model.Book{Title: "Dune", Author: "First", Year: 1965, Genre: "Sci-Fi"},
			model.Book{Title: "DUNE", Author: "Second", Year: 1984, Genre: "Film"},
		)

		require.NoError(t, lib.Remove("dune"))
		require.Equal(t, 1, lib.Len())

		// The duplicate still answers lookups.
		got, err := lib.Find("dune")
		require.NoError(t, err)
		assert.Equal(t, "Second", got.Author)

		require.NoError(t, lib.Remove("dune"))

		_, err = lib.Find("dune")

		var nferr *NotFoundError
		assert.ErrorAs(t, err, &nferr)
	})

	t.Run("unknown title", func(t *testing.T) {
		lib := NewLibrary(testBooks()...)

		err := lib.Remove("Middlemarch")

		var nferr *NotFoundError
		require.ErrorAs(t, err, &nferr)
		assert.Equal(t, 3, lib.Len())
	})

	t.Run("keeps the order of the rest", func(t *testing.T) {
		lib := NewLibrary(testBooks()...)
		require.NoError(t, lib.Remove("Emma"))

		books := lib.Books()
		require.Len(t, books, 2)
		assert.Equal(t, "Dune", books[0].Title)
		assert.Equal(t, "Dune Messiah", books[1].Title)
	})
}

func TestLibrary_Edit(t *testing.T) {
	base := model.Book{Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "Science Fiction"}
	newYear := 1966
	read := true

	tests := []struct {
		name    string
		changes Changes
		want    model.Book
	}{
		{
			name:    "no changes keep everything",
			changes: Changes{},
			want:    base,
		},
		{
			name:    "blank strings keep existing fields",
			changes: Changes{Title: "  ", Author: " \t", Genre: "\n"},
			want:    base,
		},
		{
			name:    "new author applies",
			changes: Changes{Author: "F. Herbert"},
			want:    model.Book{Title: "Dune", Author: "F. Herbert", Year: 1965, Genre: "Science Fiction"},
		},
		{
			name:    "new title applies",
			changes: Changes{Title: "Dune (1965)"},
			want:    model.Book{Title: "Dune (1965)", Author: "Frank Herbert", Year: 1965, Genre: "Science Fiction"},
		},
		{
			name:    "year and read flag apply",
			changes: Changes{Year: &newYear, Read: &read},
			want:    model.Book{Title: "Dune", Author: "Frank Herbert", Year: 1966, Genre: "Science Fiction", Read: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := NewLibrary(base)

			got, err := lib.Edit("DUNE", tt.changes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			stored, err := lib.Find(tt.want.Title)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stored)
		})
	}

	t.Run("unknown title", func(t *testing.T) {
		lib := NewLibrary(base)

		_, err := lib.Edit("Middlemarch", Changes{Author: "Nobody"})

		var nferr *NotFoundError
		require.ErrorAs(t, err, &nferr)
	})

	t.Run("edits the first match in place", func(t *testing.T) {
		lib := NewLibrary(testBooks()...)

		_, err := lib.Edit("emma", Changes{Genre: "Classic"})
		require.NoError(t, err)

		books := lib.Books()
		assert.Equal(t, "Emma", books[1].Title)
		assert.Equal(t, "Classic", books[1].Genre)
	})
}

func TestLibrary_BooksReturnsACopy(t *testing.T) {
	lib := NewLibrary(testBooks()...)

	books := lib.Books()
	books[0].Title = "Mutated"

	got, err := lib.Find("Dune")
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)
}
