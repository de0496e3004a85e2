// Package config reads viewer settings from the environment, optionally
// seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvDir   = "MBRVIEW_DIR"
	EnvZoom  = "MBRVIEW_ZOOM"
	EnvBoxes = "MBRVIEW_BOXES"
)

type Config struct {
	Dir       string  // directory listed in the file sidebar
	Zoom      float64 // initial zoom factor
	ShowBoxes bool    // draw feature bounding rectangles
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	dir, _ := os.Getwd()
	return Config{Dir: dir, Zoom: 1.0, ShowBoxes: true}
}

// Load applies the given .env files (".env" when none are named) and then
// reads the MBRVIEW_* variables. A missing default .env is not an error.
// Variables already set in the environment win over file values.
func Load(files ...string) (Config, error) {
	explicit := len(files) > 0
	if !explicit {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if !explicit && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: %s: %w", f, err)
		}
	}

	cfg := Default()
	if v, ok := os.LookupEnv(EnvDir); ok && v != "" {
		cfg.Dir = v
	}
	if v, ok := os.LookupEnv(EnvZoom); ok && v != "" {
		z, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvZoom, err)
		}
		if z <= 0 {
			return Config{}, fmt.Errorf("config: %s: must be positive, got %v", EnvZoom, z)
		}
		cfg.Zoom = z
	}
	if v, ok := os.LookupEnv(EnvBoxes); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvBoxes, err)
		}
		cfg.ShowBoxes = b
	}
	return cfg, nil
}
