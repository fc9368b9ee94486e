package store

import (
	"fmt"
	"path/filepath"

	"github.com/ibarra/shelfr/internal/model"
	"github.com/ibarra/shelfr/internal/params"
)

// Store is the persistence contract shared by every backend. The library is
// small enough to travel whole: Load reads all of it, Save rewrites all of it.
type Store interface {
	// Load returns every stored book in insertion order. A missing or
	// unreadable backing file yields an empty library, not an error.
	Load() ([]model.Book, error)

	// Save replaces the stored library with books. Implementations must not
	// leave a half-written library behind on failure.
	Save(books []model.Book) error

	// Close releases whatever the backend holds open.
	Close() error
}

// Open creates the backend selected by cfg. An empty cfg.Path places the
// library file in the shelfr data directory.
func Open(cfg model.StorageConfig) (Store, error) {
	path, err := resolvePath(cfg)
	if err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case "", model.BackendJSON:
		return NewJSON(path), nil
	case model.BackendBolt:
		return NewBolt(path)
	case model.BackendSQLite:
		return NewSQLite(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func resolvePath(cfg model.StorageConfig) (string, error) {
	if cfg.Path != "" {
		return cfg.Path, nil
	}

	dir, err := params.Dir()
	if err != nil {
		return "", err
	}

	switch cfg.Backend {
	case model.BackendBolt:
		return filepath.Join(dir, "library.bolt"), nil
	case model.BackendSQLite:
		return filepath.Join(dir, "library.db"), nil
	default:
		return filepath.Join(dir, "library.json"), nil
	}
}
