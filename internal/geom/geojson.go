package geom

import (
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
	"github.com/tidwall/gjson"
)

// LoadGeo reads a GeoJSON file and returns Data (points, lines, polygons).
func LoadGeo(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	return ParseGeoJSON(b)
}

// ParseGeoJSON accepts a FeatureCollection, a Feature or a bare geometry.
func ParseGeoJSON(b []byte) (Data, error) {
	if !gjson.ValidBytes(b) {
		return Data{}, errors.New("geojson: invalid json")
	}
	var d Data
	switch t := gjson.GetBytes(b, "type").String(); t {
	case "":
		return Data{}, errors.New("invalid geojson: missing type")
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(b)
		if err != nil {
			return Data{}, fmt.Errorf("geojson: %w", err)
		}
		for _, f := range fc.Features {
			d.addGeometry(f.Geometry)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(b)
		if err != nil {
			return Data{}, fmt.Errorf("geojson: %w", err)
		}
		d.addGeometry(f.Geometry)
	default:
		g, err := geojson.UnmarshalGeometry(b)
		if err != nil {
			return Data{}, fmt.Errorf("geojson %s: %w", t, err)
		}
		d.addGeometry(g.Geometry())
	}
	if d.Empty() {
		return Data{}, errors.New("no geometries found")
	}
	return d, nil
}
