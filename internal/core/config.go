package core

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"

	"github.com/ibarra/shelfr/internal/model"
	"github.com/ibarra/shelfr/internal/params"
)

// LoadConfig reads the ini configuration at path and fills anything unset
// from [model.DefaultConfig]. An empty path means the config.ini in the
// shelfr data directory, and a missing file is not an error: first runs
// work on defaults alone.
//
// The file carries two sections:
//
//	[storage]
//	backend = json
//	path    = /home/user/.config/shelfr/library.json
//
//	[web]
//	host         = 127.0.0.1
//	port         = 8080
//	open_browser = true
func LoadConfig(path string) (model.Config, error) {
	cfg := model.DefaultConfig()

	if path == "" {
		var err error

		path, err = params.DefaultConfigPath()
		if err != nil {
			return cfg, err
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := file.Section("storage").MapTo(&cfg.Storage); err != nil {
		return cfg, fmt.Errorf("failed to parse storage config: %w", err)
	}

	if err := file.Section("web").MapTo(&cfg.Web); err != nil {
		return cfg, fmt.Errorf("failed to parse web config: %w", err)
	}

	return cfg, nil
}
