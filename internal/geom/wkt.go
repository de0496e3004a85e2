package geom

import (
	"errors"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"gombr/pkg/mbr"
)

// ParseWKTData parses a subset of WKT into Data.
// Supported: POINT(x y), MULTIPOINT(x y, ...), LINESTRING(x y, ...), POLYGON((x y, ...), ...)
func ParseWKTData(wkt string) (Data, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Data{}, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	var d Data
	switch {
	case strings.HasPrefix(up, "POINT"), strings.HasPrefix(up, "MULTIPOINT"):
		block, err := between(s, "(", ")")
		if err != nil {
			return Data{}, err
		}
		// MULTIPOINT((1 2), (3 4)) is accepted as well as MULTIPOINT(1 2, 3 4)
		block = strings.NewReplacer("(", "", ")", "").Replace(block)
		for _, p := range parseTuples(block) {
			d.AddPoint(p)
		}
	case strings.HasPrefix(up, "LINESTRING"):
		block, err := between(s, "(", ")")
		if err != nil {
			return Data{}, err
		}
		d.AddLine(parseTuples(block))
	case strings.HasPrefix(up, "POLYGON"):
		block, err := between(s, "((", "))")
		if err != nil {
			return Data{}, err
		}
		// normalize spaces around ring separators
		norm := strings.ReplaceAll(block, "), (", "),(")
		norm = strings.ReplaceAll(norm, ") , (", "),(")
		var poly orb.Polygon
		for _, rp := range strings.Split(norm, "),(") {
			poly = append(poly, orb.Ring(parseTuples(rp)))
		}
		d.AddPolygon(poly)
	default:
		return Data{}, errors.New("unsupported wkt type")
	}
	if d.Empty() {
		return Data{}, errors.New("wkt: no coordinates parsed")
	}
	return d, nil
}

// ParseWKTExtent returns the bounding rectangle of a WKT geometry. It reads
// back the output of mbr.MBR.WKT.
func ParseWKTExtent(wkt string) (mbr.MBR[float64], error) {
	d, err := ParseWKTData(wkt)
	if err != nil {
		return mbr.MBR[float64]{}, err
	}
	return d.Extent, nil
}

func between(s, open, close string) (string, error) {
	i := strings.Index(s, open)
	j := strings.LastIndex(s, close)
	if i < 0 || j <= i {
		kind := strings.ToLower(strings.Fields(s)[0])
		if k := strings.Index(kind, "("); k >= 0 {
			kind = kind[:k]
		}
		return "", errors.New("wkt " + kind + ": invalid")
	}
	return s[i+len(open) : j], nil
}

// parseTuples splits "x y, x y, ..." into points, skipping malformed tuples.
func parseTuples(block string) []orb.Point {
	var out []orb.Point
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		out = append(out, orb.Point{x, y})
	}
	return out
}
