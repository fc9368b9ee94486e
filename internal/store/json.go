package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/kjk/common/atomicfile"

	"github.com/ibarra/shelfr/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONFile persists the library as one indented JSON array, the format the
// original flat-file libraries already use. It is the default backend.
type JSONFile struct {
	path string
}

// NewJSON creates a JSON store backed by the file at path. The file itself
// appears on first save.
func NewJSON(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Load reads the library file. A missing file, or one that does not hold a
// valid book list, starts an empty library instead of failing.
func (s *JSONFile) Load() ([]model.Book, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("library file is unreadable, starting empty", "path", s.path, "error", err)
		}

		return nil, nil
	}

	var books []model.Book
	if err := json.Unmarshal(data, &books); err != nil {
		slog.Warn("library file is not valid JSON, starting empty", "path", s.path, "error", err)

		return nil, nil
	}

	return books, nil
}

// Save rewrites the whole file through a temp file and rename, so a failed
// write leaves the previous library intact on disk.
func (s *JSONFile) Save(books []model.Book) error {
	if books == nil {
		books = []model.Book{}
	}

	data, err := json.MarshalIndent(books, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode library: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create library directory: %w", err)
	}

	f, err := atomicfile.New(s.path)
	if err != nil {
		return fmt.Errorf("failed to open library file: %w", err)
	}
	defer f.RemoveIfNotClosed()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write library file: %w", err)
	}

	return f.Close()
}

// Close is a no-op; the file is only open during Save.
func (s *JSONFile) Close() error {
	return nil
}
