package mbr

import (
	"math"

	"gombr/pkg/mutil"
	"gombr/pkg/pt"
)

// Contains reports whether o lies inside m. Boundaries may touch.
func (m MBR[T]) Contains(o MBR[T]) bool {
	return o.MinX >= m.MinX &&
		o.MinY >= m.MinY &&
		o.MaxX <= m.MaxX &&
		o.MaxY <= m.MaxY
}

// ContainsXY reports whether (x, y) lies inside m or on its boundary.
func (m MBR[T]) ContainsXY(x, y T) bool {
	return x >= m.MinX && x <= m.MaxX && y >= m.MinY && y <= m.MaxY
}

// CompletelyContains is Contains without touching boundaries.
func (m MBR[T]) CompletelyContains(o MBR[T]) bool {
	return o.MinX > m.MinX &&
		o.MinY > m.MinY &&
		o.MaxX < m.MaxX &&
		o.MaxY < m.MaxY
}

// CompletelyContainsXY is ContainsXY excluding the boundary.
func (m MBR[T]) CompletelyContainsXY(x, y T) bool {
	return x > m.MinX && x < m.MaxX && y > m.MinY && y < m.MaxY
}

// Intersects reports whether m and o share at least one point.
func (m MBR[T]) Intersects(o MBR[T]) bool {
	return !(o.MinX > m.MaxX ||
		o.MaxX < m.MinX ||
		o.MinY > m.MaxY ||
		o.MaxY < m.MinY)
}

func (m MBR[T]) IntersectsXY(x, y T) bool {
	return m.ContainsXY(x, y)
}

// IntersectsSegment tests m against the bounding box of the segment a-b.
// It can report true for a segment that passes beside m.
func (m MBR[T]) IntersectsSegment(a, b pt.Pt[T]) bool {
	lo, hi := mutil.Min(a.X, b.X), mutil.Max(a.X, b.X)
	if m.MinX > hi || m.MaxX < lo {
		return false
	}
	lo, hi = mutil.Min(a.Y, b.Y), mutil.Max(a.Y, b.Y)
	return !(m.MinY > hi || m.MaxY < lo)
}

func (m MBR[T]) Disjoint(o MBR[T]) bool {
	return !m.Intersects(o)
}

// Union returns the smallest normalized rectangle covering m and o.
func (m MBR[T]) Union(o MBR[T]) MBR[T] {
	return New(
		mutil.Min(o.MinX, m.MinX),
		mutil.Min(o.MinY, m.MinY),
		mutil.Max(o.MaxX, m.MaxX),
		mutil.Max(o.MaxY, m.MaxY),
	)
}

// Intersection returns the overlap of m and o, or false when they are
// disjoint. A shared edge or corner yields a degenerate rectangle.
func (m MBR[T]) Intersection(o MBR[T]) (MBR[T], bool) {
	if m.Disjoint(o) {
		return MBR[T]{}, false
	}
	minx, miny := m.MinX, m.MinY
	if o.MinX > minx {
		minx = o.MinX
	}
	if o.MinY > miny {
		miny = o.MinY
	}
	maxx, maxy := m.MaxX, m.MaxY
	if o.MaxX < maxx {
		maxx = o.MaxX
	}
	if o.MaxY < maxy {
		maxy = o.MaxY
	}
	return New(minx, miny, maxx, maxy), true
}

// ExpandToInclude grows m in place to cover o.
func (m *MBR[T]) ExpandToInclude(o MBR[T]) *MBR[T] {
	m.MinX = mutil.Min(o.MinX, m.MinX)
	m.MinY = mutil.Min(o.MinY, m.MinY)
	m.MaxX = mutil.Max(o.MaxX, m.MaxX)
	m.MaxY = mutil.Max(o.MaxY, m.MaxY)
	return m
}

// ExpandToIncludeXY grows m in place to cover (x, y).
func (m *MBR[T]) ExpandToIncludeXY(x, y T) *MBR[T] {
	if x < m.MinX {
		m.MinX = x
	} else if x > m.MaxX {
		m.MaxX = x
	}
	if y < m.MinY {
		m.MinY = y
	} else if y > m.MaxY {
		m.MaxY = y
	}
	return m
}

// ExpandByDelta moves the min corner by (-dx, -dy) and the max corner by
// (dx, dy), then renormalizes. A negative delta larger than half the
// extent swaps the sides.
func (m *MBR[T]) ExpandByDelta(dx, dy T) *MBR[T] {
	*m = New(m.MinX-dx, m.MinY-dy, m.MaxX+dx, m.MaxY+dy)
	return m
}

// Translate returns m shifted by (dx, dy).
func (m MBR[T]) Translate(dx, dy T) MBR[T] {
	return New(m.MinX+dx, m.MinY+dy, m.MaxX+dx, m.MaxY+dy)
}

// DistanceDxDy returns the gap between m and o along each axis, zero on
// an axis where they overlap.
func (m MBR[T]) DistanceDxDy(o MBR[T]) pt.Pt[T] {
	var d pt.Pt[T]
	if m.MaxX < o.MinX {
		d.X = o.MinX - m.MaxX
	} else if m.MinX > o.MaxX {
		d.X = m.MinX - o.MaxX
	}
	if m.MaxY < o.MinY {
		d.Y = o.MinY - m.MaxY
	} else if m.MinY > o.MaxY {
		d.Y = m.MinY - o.MaxY
	}
	return d
}

// Distance is the euclidean distance between the nearest edges of m and
// o, zero when they intersect.
func (m MBR[T]) Distance(o MBR[T]) float64 {
	if m.Intersects(o) {
		return 0
	}
	d := m.DistanceDxDy(o)
	return math.Hypot(float64(d.X), float64(d.Y))
}

// DistanceSquare is Distance squared, computed without the square root.
func (m MBR[T]) DistanceSquare(o MBR[T]) float64 {
	if m.Intersects(o) {
		return 0
	}
	d := m.DistanceDxDy(o)
	dx, dy := float64(d.X), float64(d.Y)
	return dx*dx + dy*dy
}
