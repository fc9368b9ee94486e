package params

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/ibarra/shelfr/internal/application"
)

var (
	once   sync.Once
	dir    string
	dirErr error
)

// Dir returns the shelfr data directory, creating it on first use.
// The library file and config file live here unless overridden.
func Dir() (string, error) {
	once.Do(func() {
		dir, dirErr = application.GetApplicationDirectory()
		if dirErr != nil {
			return
		}

		dirErr = os.MkdirAll(dir, 0o755)
	})

	return dir, dirErr
}

// DefaultLibraryPath returns the default path of the JSON library file.
func DefaultLibraryPath() (string, error) {
	d, err := Dir()
	if err != nil {
		return "", err
	}

	return filepath.Join(d, "library.json"), nil
}

// DefaultConfigPath returns the default path of the config.ini file.
func DefaultConfigPath() (string, error) {
	d, err := Dir()
	if err != nil {
		return "", err
	}

	return filepath.Join(d, "config.ini"), nil
}
