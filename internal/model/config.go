package model

import (
	"path/filepath"

	"github.com/ibarra/shelfr/internal/application"
)

// Storage backends selectable in [StorageConfig].
const (
	BackendJSON   = "json"
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

// StorageConfig selects and locates the persistence backend.
type StorageConfig struct {
	// Backend is one of json, bolt or sqlite.
	Backend string `ini:"backend"`

	// Path is the backing file path. Empty means the default file for the
	// backend inside the shelfr data directory.
	Path string `ini:"path"`
}

// WebConfig holds the web front-end settings.
type WebConfig struct {
	// Host is the listen address. The server binds localhost only.
	Host string `ini:"host"`

	// Port is the HTTP port.
	Port int `ini:"port"`

	// OpenBrowser opens the default browser after the server starts.
	OpenBrowser bool `ini:"open_browser"`
}

// Config holds the application configuration
type Config struct {
	Storage StorageConfig
	Web     WebConfig
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	// Fall back to the working directory when no config dir is available
	appDir, err := application.GetApplicationDirectory()
	if err != nil {
		appDir = "."
	}

	return Config{
		Storage: StorageConfig{
			Backend: BackendJSON,
			Path:    filepath.Join(appDir, "library.json"),
		},
		Web: WebConfig{
			Host:        "127.0.0.1",
			Port:        8080,
			OpenBrowser: true,
		},
	}
}
