package geom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadGeo(t *testing.T) {
	tests := []struct {
		name   string
		json   string
		counts [3]int
		boxes  int
		extent [4]float64
	}{
		{
			name: "feature collection",
			json: `{"type":"FeatureCollection","features":[
				{"type":"Feature","properties":{"name":"a"},"geometry":{"type":"Point","coordinates":[1,2]}},
				{"type":"Feature","properties":{"name":"b"},"geometry":{"type":"LineString","coordinates":[[0,0],[4,-1]]}},
				{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[5,5],[5,8],[9,8],[9,5],[5,5]]]}}
			]}`,
			counts: [3]int{1, 1, 1},
			boxes:  3,
			extent: [4]float64{0, -1, 9, 8},
		},
		{
			name:   "single feature",
			json:   `{"type":"Feature","properties":null,"geometry":{"type":"MultiPoint","coordinates":[[1,1],[3,2]]}}`,
			counts: [3]int{2, 0, 0},
			boxes:  2,
			extent: [4]float64{1, 1, 3, 2},
		},
		{
			name:   "bare multipolygon",
			json:   `{"type":"MultiPolygon","coordinates":[[[[0,0],[0,1],[1,1],[0,0]]],[[[10,10],[10,12],[12,12],[10,10]]]]}`,
			counts: [3]int{0, 0, 2},
			boxes:  2,
			extent: [4]float64{0, 0, 12, 12},
		},
		{
			name:   "geometry collection",
			json:   `{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[-1,-1]},{"type":"MultiLineString","coordinates":[[[0,0],[1,1]],[[2,2],[3,5]]]}]}`,
			counts: [3]int{1, 2, 0},
			boxes:  3,
			extent: [4]float64{-1, -1, 3, 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := LoadGeo(writeFile(t, "data.geojson", tt.json))
			if err != nil {
				t.Fatalf("LoadGeo: %v", err)
			}
			got := [3]int{len(d.Points), len(d.Lines), len(d.Polygons)}
			if got != tt.counts {
				t.Errorf("counts = %v, want %v", got, tt.counts)
			}
			if len(d.Boxes) != tt.boxes {
				t.Errorf("boxes = %d, want %d", len(d.Boxes), tt.boxes)
			}
			if diff := cmp.Diff(tt.extent, d.Extent.Bounds()); diff != "" {
				t.Errorf("extent (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadGeoErrors(t *testing.T) {
	tests := []struct {
		name, json, want string
	}{
		{"not json", `{"type":`, "geojson: invalid json"},
		{"missing type", `{"coordinates":[1,2]}`, "invalid geojson: missing type"},
		{"no geometries", `{"type":"FeatureCollection","features":[]}`, "no geometries found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGeoJSON([]byte(tt.json))
			if err == nil || err.Error() != tt.want {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
	if _, err := LoadGeo(filepath.Join(t.TempDir(), "missing.geojson")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFeatureBoxes(t *testing.T) {
	d, err := ParseGeoJSON([]byte(`{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[0,2],[2,2],[2,0],[0,0]]]}},
		{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[4,5],[4,9],[8,9],[8,5],[4,5]]]}}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	a, b := d.Boxes[0], d.Boxes[1]
	if a.Bounds() != [4]float64{0, 0, 2, 2} || b.Bounds() != [4]float64{4, 5, 8, 9} {
		t.Fatalf("boxes = %v, %v", a, b)
	}
	if a.Intersects(b) {
		t.Error("feature boxes should be disjoint")
	}
	if !d.Extent.Equals(a.Union(b)) {
		t.Errorf("extent %v is not the union of the boxes", d.Extent)
	}
}

func TestLoadCSV(t *testing.T) {
	p := writeFile(t, "pts.csv", "name, Latitude, LON\na, 10, 20\nb, -5, 7.5\nbad, x, 1\nshort\n")
	d, err := LoadCSV(p)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(d.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(d.Points))
	}
	if diff := cmp.Diff([4]float64{7.5, -5, 20, 10}, d.Extent.Bounds()); diff != "" {
		t.Errorf("extent (-want +got):\n%s", diff)
	}
	if !d.Boxes[0].IsPoint() {
		t.Errorf("point feature box %v is not a point", d.Boxes[0])
	}

	_, err = LoadCSV(writeFile(t, "nocols.csv", "a,b\n1,2\n"))
	if err == nil || !strings.Contains(err.Error(), "columns not found") {
		t.Errorf("error = %v, want missing columns", err)
	}
}

func TestLoadKML(t *testing.T) {
	kml := `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
<Document>
  <Placemark><Point><coordinates>1.5,2.5,0</coordinates></Point></Placemark>
  <Placemark><LineString><coordinates>0,0 3,4</coordinates></LineString></Placemark>
  <Placemark><Polygon><outerBoundaryIs><LinearRing><coordinates>-1,-1 -1,1 1,1 1,-1 -1,-1</coordinates></LinearRing></outerBoundaryIs></Polygon></Placemark>
</Document>
</kml>`
	d, err := LoadKML(writeFile(t, "doc.kml", kml))
	if err != nil {
		t.Fatalf("LoadKML: %v", err)
	}
	got := [3]int{len(d.Points), len(d.Lines), len(d.Polygons)}
	if got != [3]int{1, 1, 1} {
		t.Errorf("counts = %v", got)
	}
	if diff := cmp.Diff([4]float64{-1, -1, 3, 4}, d.Extent.Bounds()); diff != "" {
		t.Errorf("extent (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	d, err := Load(writeFile(t, "shape.WKT", "POLYGON ((0 0, 0 2, 2 2, 2 0, 0 0))"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Extent.WKT() != "POLYGON ((0 0, 0 2, 2 2, 2 0, 0 0))" {
		t.Errorf("extent = %s", d.Extent.WKT())
	}
	if _, err := Load(writeFile(t, "x.shp", "")); err == nil || err.Error() != "unsupported file: .shp" {
		t.Errorf("error = %v", err)
	}
}

func TestLoadAll(t *testing.T) {
	a := writeFile(t, "a.wkt", "POINT (5 6)")
	b := writeFile(t, "b.wkt", "LINESTRING (0 0, 1 1)")
	d, err := LoadAll(a, b)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(d.Points) != 1 || len(d.Lines) != 1 || len(d.Boxes) != 2 {
		t.Fatalf("merged data = %+v", d)
	}
	// argument order is kept
	if got := d.Boxes[0].WKT(); got != "POLYGON ((5 6, 5 6, 5 6, 5 6, 5 6))" {
		t.Errorf("first box = %s", got)
	}
	if diff := cmp.Diff([4]float64{0, 0, 5, 6}, d.Extent.Bounds()); diff != "" {
		t.Errorf("extent (-want +got):\n%s", diff)
	}

	_, err = LoadAll(a, writeFile(t, "c.wkt", "CIRCLE (1 1)"))
	if err == nil || !strings.HasPrefix(err.Error(), "c.wkt: ") {
		t.Errorf("error = %v", err)
	}
}
