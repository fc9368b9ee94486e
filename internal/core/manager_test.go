package core

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibarra/shelfr/internal/model"
	"github.com/ibarra/shelfr/internal/store"
)

func newTestManager(t *testing.T) (*LibraryManager, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "library.json")

	mgr, err := NewLibraryManager(store.NewJSON(path), nil)
	require.NoError(t, err)

	return mgr, path
}

func TestLibraryManager_RoundTrip(t *testing.T) {
	mgr, path := newTestManager(t)

	for _, b := range testBooks() {
		require.NoError(t, mgr.Add(b))
	}

	fresh, err := NewLibraryManager(store.NewJSON(path), nil)
	require.NoError(t, err)

	assert.Equal(t, testBooks(), fresh.Books())
}

func TestLibraryManager_EndToEnd(t *testing.T) {
	mgr, path := newTestManager(t)

	require.NoError(t, mgr.Add(model.Book{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "Sci-Fi"}))

	// A fresh manager over the same file finds the book case-insensitively
	// and hands it back with its stored casing intact.
	fresh, err := NewLibraryManager(store.NewJSON(path), nil)
	require.NoError(t, err)

	got, err := fresh.Find("dune")
	require.NoError(t, err)
	assert.Equal(t, model.Book{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "Sci-Fi"}, got)
}

func TestLibraryManager_WritesThroughEveryMutation(t *testing.T) {
	mgr, path := newTestManager(t)
	onDisk := store.NewJSON(path)

	require.NoError(t, mgr.Add(model.Book{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "Sci-Fi"}))

	books, err := onDisk.Load()
	require.NoError(t, err)
	require.Len(t, books, 1)

	read := true
	_, err = mgr.Edit("dune", Changes{Read: &read})
	require.NoError(t, err)

	books, err = onDisk.Load()
	require.NoError(t, err)
	require.True(t, books[0].Read)

	require.NoError(t, mgr.Remove("dune"))

	books, err = onDisk.Load()
	require.NoError(t, err)
	assert.Empty(t, books)
}

type failingStore struct {
	books   []model.Book
	saveErr error
}

func (f *failingStore) Load() ([]model.Book, error) { return f.books, nil }
func (f *failingStore) Save([]model.Book) error     { return f.saveErr }
func (f *failingStore) Close() error                { return nil }

func TestLibraryManager_SaveFailureKeepsMutation(t *testing.T) {
	diskErr := errors.New("disk full")

	mgr, err := NewLibraryManager(&failingStore{saveErr: diskErr}, nil)
	require.NoError(t, err)

	err = mgr.Add(model.Book{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "Sci-Fi"})

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "add", perr.Op)
	assert.ErrorIs(t, err, diskErr)

	// The mutation survives in memory, so the user can retry the save.
	got, findErr := mgr.Find("Dune")
	require.NoError(t, findErr)
	assert.Equal(t, "Dune", got.Title)
}

func TestLibraryManager_ValidationFailureDoesNotPersist(t *testing.T) {
	mgr, path := newTestManager(t)

	err := mgr.Add(model.Book{Title: "   ", Author: "Herbert", Genre: "Sci-Fi"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	// Nothing was written.
	books, err := store.NewJSON(path).Load()
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestLibraryManager_SearchSnapshot(t *testing.T) {
	mgr, _ := newTestManager(t)
	for _, b := range testBooks() {
		require.NoError(t, mgr.Add(b))
	}

	seq := mgr.Search(SearchByTitle, "dune")
	require.NoError(t, mgr.Remove("Dune"))

	// The sequence keeps the snapshot taken when it was created.
	assert.Len(t, slices.Collect(seq), 2)
	assert.Len(t, slices.Collect(mgr.Search(SearchByTitle, "dune")), 1)
}

func TestLibraryManager_Save(t *testing.T) {
	mgr, path := newTestManager(t)

	require.NoError(t, mgr.Add(model.Book{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "Sci-Fi"}))
	require.NoError(t, mgr.Save())

	books, err := store.NewJSON(path).Load()
	require.NoError(t, err)
	assert.Len(t, books, 1)
}
