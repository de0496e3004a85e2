package geom

import (
	"github.com/paulmach/orb"

	"gombr/pkg/mbr"
	"gombr/pkg/pt"
)

// Data is a minimal geometry container for rendering. Boxes holds the
// bounding rectangle of every feature in load order; Extent covers them all.
type Data struct {
	Points   []orb.Point
	Lines    []orb.LineString
	Polygons []orb.Polygon // rings: first outer, following holes
	Boxes    []mbr.MBR[float64]
	Extent   mbr.MBR[float64]
}

// Empty reports whether no feature has been added.
func (d *Data) Empty() bool {
	return len(d.Boxes) == 0
}

func (d *Data) AddPoint(p orb.Point) {
	d.Points = append(d.Points, p)
	d.addBox(mbr.FromPoint(pt.Pt[float64]{X: p[0], Y: p[1]}))
}

// AddLine adds a line string. Empty lines are dropped.
func (d *Data) AddLine(ls orb.LineString) {
	if len(ls) == 0 {
		return
	}
	d.Lines = append(d.Lines, ls)
	d.addBox(extentOf(ls))
}

// AddPolygon adds a polygon whose box covers all of its rings. Polygons
// without vertices are dropped.
func (d *Data) AddPolygon(poly orb.Polygon) {
	var box mbr.MBR[float64]
	seeded := false
	for _, ring := range poly {
		if len(ring) == 0 {
			continue
		}
		if !seeded {
			box, seeded = extentOf(ring), true
			continue
		}
		box.ExpandToInclude(extentOf(ring))
	}
	if !seeded {
		return
	}
	d.Polygons = append(d.Polygons, poly)
	d.addBox(box)
}

// addGeometry flattens g into points, lines and polygons.
func (d *Data) addGeometry(g orb.Geometry) {
	switch g := g.(type) {
	case orb.Point:
		d.AddPoint(g)
	case orb.MultiPoint:
		for _, p := range g {
			d.AddPoint(p)
		}
	case orb.LineString:
		d.AddLine(g)
	case orb.MultiLineString:
		for _, ls := range g {
			d.AddLine(ls)
		}
	case orb.Ring:
		d.AddPolygon(orb.Polygon{g})
	case orb.Polygon:
		d.AddPolygon(g)
	case orb.MultiPolygon:
		for _, poly := range g {
			d.AddPolygon(poly)
		}
	case orb.Collection:
		for _, c := range g {
			d.addGeometry(c)
		}
	case orb.Bound:
		d.AddPolygon(orb.Polygon{g.ToRing()})
	}
}

// Merge appends o's features after d's.
func (d *Data) Merge(o Data) {
	if o.Empty() {
		return
	}
	d.Points = append(d.Points, o.Points...)
	d.Lines = append(d.Lines, o.Lines...)
	d.Polygons = append(d.Polygons, o.Polygons...)
	if d.Empty() {
		d.Extent = o.Extent
	} else {
		d.Extent = d.Extent.Union(o.Extent)
	}
	d.Boxes = append(d.Boxes, o.Boxes...)
}

func (d *Data) addBox(b mbr.MBR[float64]) {
	if len(d.Boxes) == 0 {
		d.Extent = b
	} else {
		d.Extent.ExpandToInclude(b)
	}
	d.Boxes = append(d.Boxes, b)
}

// extentOf returns the bounding rectangle of a non-empty vertex list.
func extentOf(pts []orb.Point) mbr.MBR[float64] {
	e := mbr.FromPoint(pt.Pt[float64]{X: pts[0][0], Y: pts[0][1]})
	for _, p := range pts[1:] {
		e.ExpandToIncludeXY(p[0], p[1])
	}
	return e
}
