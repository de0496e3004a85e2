package geom

import (
	"encoding/xml"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPolygon struct {
	Outer kmlCoords   `xml:"outerBoundaryIs>LinearRing"`
	Inner []kmlCoords `xml:"innerBoundaryIs>LinearRing"`
}

type kmlPlacemark struct {
	Point      *kmlCoords  `xml:"Point"`
	LineString *kmlCoords  `xml:"LineString"`
	Polygon    *kmlPolygon `xml:"Polygon"`
}

type kmlDoc struct {
	Placemarks []kmlPlacemark `xml:"Document>Placemark"`
	Top        []kmlPlacemark `xml:"Placemark"`
}

// LoadKML extracts Point, LineString and Polygon placemarks from a KML file.
// KML coordinates are "lon,lat[,alt]"; we ignore altitude.
func LoadKML(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	var doc kmlDoc
	if err := xml.Unmarshal(b, &doc); err != nil {
		return Data{}, err
	}
	var d Data
	for _, pm := range append(doc.Top, doc.Placemarks...) {
		switch {
		case pm.Point != nil:
			for _, p := range parseKMLCoords(pm.Point.Coordinates) {
				d.AddPoint(p)
			}
		case pm.LineString != nil:
			d.AddLine(parseKMLCoords(pm.LineString.Coordinates))
		case pm.Polygon != nil:
			poly := orb.Polygon{orb.Ring(parseKMLCoords(pm.Polygon.Outer.Coordinates))}
			for _, in := range pm.Polygon.Inner {
				poly = append(poly, orb.Ring(parseKMLCoords(in.Coordinates)))
			}
			d.AddPolygon(poly)
		}
	}
	if d.Empty() {
		return Data{}, errors.New("kml: no placemarks found")
	}
	return d, nil
}

// parseKMLCoords reads whitespace separated "lon,lat[,alt]" tuples.
func parseKMLCoords(s string) []orb.Point {
	var out []orb.Point
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, orb.Point{lon, lat})
	}
	return out
}
