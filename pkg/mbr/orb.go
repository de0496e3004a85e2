package mbr

import "github.com/paulmach/orb"

// FromOrbBound converts an orb.Bound into a normalized rectangle.
func FromOrbBound(b orb.Bound) MBR[float64] {
	return New(b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y())
}

// OrbBound returns m as an orb.Bound.
func (m MBR[T]) OrbBound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{float64(m.MinX), float64(m.MinY)},
		Max: orb.Point{float64(m.MaxX), float64(m.MaxY)},
	}
}

// OrbRing returns the closed polygon ring of m.
func (m MBR[T]) OrbRing() orb.Ring {
	pts := m.PolygonRing()
	ring := make(orb.Ring, 0, len(pts))
	for _, p := range pts {
		ring = append(ring, orb.Point{float64(p.X), float64(p.Y)})
	}
	return ring
}
