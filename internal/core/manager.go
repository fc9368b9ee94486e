package core

import (
	"fmt"
	"iter"
	"log/slog"
	"sync"

	"github.com/ibarra/shelfr/internal/model"
	"github.com/ibarra/shelfr/internal/store"
)

// LibraryManager owns the in-memory library and writes every mutation
// through to the configured store. It is safe for concurrent use, which
// lets the menu and web front-ends share one instance.
type LibraryManager struct {
	mu  sync.Mutex
	lib *Library
	st  store.Store
	log *slog.Logger
}

// NewLibraryManager loads the library from st once and serves every
// operation from memory afterwards. A nil logger falls back to
// [slog.Default].
func NewLibraryManager(st store.Store, log *slog.Logger) (*LibraryManager, error) {
	if log == nil {
		log = slog.Default()
	}

	books, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load library: %w", err)
	}

	log.Info("library loaded", "books", len(books))

	return &LibraryManager{lib: NewLibrary(books...), st: st, log: log}, nil
}

// Add validates and appends b, then persists the library.
func (m *LibraryManager) Add(b model.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.lib.Add(b); err != nil {
		return err
	}

	m.log.Info("book added", "title", b.Title)

	return m.persist("add")
}

// Remove deletes the first book whose title matches, then persists the
// library.
func (m *LibraryManager) Remove(title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.lib.Remove(title); err != nil {
		return err
	}

	m.log.Info("book removed", "title", title)

	return m.persist("remove")
}

// Edit applies ch to the first book whose title matches, then persists the
// library. It returns the updated book.
func (m *LibraryManager) Edit(title string, ch Changes) (model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	book, err := m.lib.Edit(title, ch)
	if err != nil {
		return model.Book{}, err
	}

	m.log.Info("book updated", "title", book.Title)

	return book, m.persist("edit")
}

// Find returns the first book whose title matches, ignoring case.
func (m *LibraryManager) Find(title string) (model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lib.Find(title)
}

// Search matches books whose field contains query, ignoring case. The
// returned sequence runs over a point-in-time snapshot, so it stays valid
// while other goroutines mutate the library.
func (m *LibraryManager) Search(field SearchField, query string) iter.Seq[model.Book] {
	m.mu.Lock()
	snapshot := NewLibrary(m.lib.books...)
	m.mu.Unlock()

	return snapshot.Search(field, query)
}

// List returns the books ordered by sortBy. The stored order never changes.
func (m *LibraryManager) List(sortBy SortKey) []model.Book {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lib.List(sortBy)
}

// Books returns the library in insertion order.
func (m *LibraryManager) Books() []model.Book {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lib.Books()
}

// Len reports how many books the library holds.
func (m *LibraryManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lib.Len()
}

// Statistics summarizes the library.
func (m *LibraryManager) Statistics() Statistics {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lib.Statistics()
}

// Save writes the current library to the store without mutating it. The
// menu calls this once more on exit.
func (m *LibraryManager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.persist("")
}

// persist writes the library through to the store. The caller holds the
// lock. On failure the in-memory state keeps the mutation, so the user can
// retry or keep working without losing it.
func (m *LibraryManager) persist(op string) error {
	if err := m.st.Save(m.lib.Books()); err != nil {
		m.log.Error("failed to persist library", "op", op, "error", err)

		return &PersistenceError{Op: op, Err: err}
	}

	return nil
}
