package tui

import (
	"fmt"
	"math"

	"gombr/internal/geom"
	"gombr/pkg/mbr"
	"gombr/pkg/pt"
)

// nearestBox returns the index of the box closest to p. Boxes containing p
// are all at distance zero; the smallest of them wins.
func nearestBox(boxes []mbr.MBR[float64], p pt.Pt[float64]) (int, bool) {
	probe := mbr.FromPoint(p)
	best := -1
	bestD, bestA := math.Inf(1), math.Inf(1)
	for i, b := range boxes {
		d := b.DistanceSquare(probe)
		a := b.Area()
		if d < bestD || (d == bestD && a < bestA) {
			best, bestD, bestA = i, d, a
		}
	}
	return best, best >= 0
}

// neighbours counts the other boxes intersecting boxes[idx] and finds the nearest one.
func neighbours(boxes []mbr.MBR[float64], idx int) (hits, nearest int, dist float64) {
	nearest, dist = -1, math.Inf(1)
	self := boxes[idx]
	for i, b := range boxes {
		if i == idx {
			continue
		}
		if self.Intersects(b) {
			hits++
		}
		if d := self.Distance(b); d < dist {
			nearest, dist = i, d
		}
	}
	return hits, nearest, dist
}

// describeBox renders the inspect popup lines for box idx of d.
func describeBox(d geom.Data, idx int) []string {
	b := d.Boxes[idx]
	c := b.Center()
	out := []string{
		fmt.Sprintf("box %d of %d", idx+1, len(d.Boxes)),
		"wkt: " + b.WKT(),
		fmt.Sprintf("size: w=%s h=%s area=%s", coord(b.Width()), coord(b.Height()), coord(b.Area())),
		fmt.Sprintf("center: lon=%s lat=%s", coord(c.X), coord(c.Y)),
	}
	if b.IsPoint() {
		out = append(out, "degenerate: point")
	}
	hits, near, dist := neighbours(d.Boxes, idx)
	out = append(out, fmt.Sprintf("intersects: %d other boxes", hits))
	if near >= 0 {
		out = append(out, fmt.Sprintf("nearest: box %d at %s", near+1, coord(dist)))
		if common, ok := b.Intersection(d.Boxes[near]); ok {
			out = append(out, "overlap: "+common.WKT())
		}
	}
	out = append(out, "extent: "+d.Extent.WKT())
	return out
}
