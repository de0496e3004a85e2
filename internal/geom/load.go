package geom

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Exts lists the file extensions Load understands.
var Exts = []string{".geojson", ".json", ".csv", ".kml", ".wkt"}

// Load reads any supported file, choosing the format by extension.
func Load(path string) (Data, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".geojson", ".json":
		return LoadGeo(path)
	case ".csv":
		return LoadCSV(path)
	case ".kml":
		return LoadKML(path)
	case ".wkt":
		b, err := os.ReadFile(path)
		if err != nil {
			return Data{}, err
		}
		return ParseWKTData(string(b))
	default:
		return Data{}, errors.New("unsupported file: " + ext)
	}
}

// LoadAll loads every path concurrently and merges the results in argument
// order. Only the first error is returned.
func LoadAll(paths ...string) (Data, error) {
	parts := make([]Data, len(paths))
	var g errgroup.Group
	g.SetLimit(4)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			d, err := Load(p)
			if err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(p), err)
			}
			parts[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Data{}, err
	}
	var out Data
	for _, d := range parts {
		out.Merge(d)
	}
	return out, nil
}
