// Package mbr implements an axis-aligned minimum bounding rectangle over
// integer or floating point coordinates.
//
// Constructors normalize their input so that MinX <= MaxX and MinY <= MaxY,
// except NewRaw and FromBoundsRaw which store the values as given.
// Degenerate rectangles (a line or a single point) are valid values.
package mbr

import (
	"gombr/pkg/mutil"
	"gombr/pkg/pt"
)

// Scalar is the set of coordinate types an MBR can hold.
type Scalar = mutil.Scalar

// MBR is a minimum bounding rectangle. The zero value is the rectangle
// collapsed onto the origin.
type MBR[T Scalar] struct {
	MinX T
	MinY T
	MaxX T
	MaxY T
}

// New builds a normalized rectangle from two opposite corners.
func New[T Scalar](x1, y1, x2, y2 T) MBR[T] {
	return MBR[T]{
		MinX: mutil.Min(x1, x2),
		MinY: mutil.Min(y1, y2),
		MaxX: mutil.Max(x1, x2),
		MaxY: mutil.Max(y1, y2),
	}
}

// NewRaw stores the bounds verbatim, without reordering.
func NewRaw[T Scalar](minx, miny, maxx, maxy T) MBR[T] {
	return MBR[T]{MinX: minx, MinY: miny, MaxX: maxx, MaxY: maxy}
}

// FromBounds builds a normalized rectangle from {minx, miny, maxx, maxy}.
func FromBounds[T Scalar](b [4]T) MBR[T] {
	return New(b[0], b[1], b[2], b[3])
}

// FromBoundsRaw is FromBounds without normalization.
func FromBoundsRaw[T Scalar](b [4]T) MBR[T] {
	return NewRaw(b[0], b[1], b[2], b[3])
}

// FromPoint returns the point rectangle at p.
func FromPoint[T Scalar](p pt.Pt[T]) MBR[T] {
	return MBR[T]{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
}

// FromPoints returns the rectangle spanned by a and b.
func FromPoints[T Scalar](a, b pt.Pt[T]) MBR[T] {
	return New(a.X, a.Y, b.X, b.Y)
}

// As converts m to another coordinate type. The converted bounds are not
// renormalized.
func As[U, T Scalar](m MBR[T]) MBR[U] {
	return NewRaw(U(m.MinX), U(m.MinY), U(m.MaxX), U(m.MaxY))
}

func (m MBR[T]) Width() T  { return m.MaxX - m.MinX }
func (m MBR[T]) Height() T { return m.MaxY - m.MinY }
func (m MBR[T]) Area() T   { return m.Height() * m.Width() }

// IsPoint reports whether both width and height are zero.
func (m MBR[T]) IsPoint() bool {
	return mutil.Feq(float64(m.Height()), 0) && mutil.Feq(float64(m.Width()), 0)
}

// Center returns the midpoint of m. Integer coordinates truncate.
func (m MBR[T]) Center() pt.Pt[T] {
	return pt.Pt[T]{X: (m.MinX + m.MaxX) / 2, Y: (m.MinY + m.MaxY) / 2}
}

// Bounds returns {minx, miny, maxx, maxy}.
func (m MBR[T]) Bounds() [4]T {
	return [4]T{m.MinX, m.MinY, m.MaxX, m.MaxY}
}

func (m MBR[T]) Tuple() (minx, miny, maxx, maxy T) {
	return m.MinX, m.MinY, m.MaxX, m.MaxY
}

// PolygonRing returns the closed ring
// (minx,miny) (minx,maxy) (maxx,maxy) (maxx,miny) (minx,miny).
func (m MBR[T]) PolygonRing() []pt.Pt[T] {
	return []pt.Pt[T]{
		{X: m.MinX, Y: m.MinY},
		{X: m.MinX, Y: m.MaxY},
		{X: m.MaxX, Y: m.MaxY},
		{X: m.MaxX, Y: m.MinY},
		{X: m.MinX, Y: m.MinY},
	}
}

// Corners returns the lower left and upper right corners.
func (m MBR[T]) Corners() (ll, ur pt.Pt[T]) {
	return pt.Pt[T]{X: m.MinX, Y: m.MinY}, pt.Pt[T]{X: m.MaxX, Y: m.MaxY}
}

// Equals compares all four bounds, exactly for integer coordinates and
// within mutil.Epsilon for floating point ones.
func (m MBR[T]) Equals(o MBR[T]) bool {
	return mutil.Equal(m.MaxX, o.MaxX) &&
		mutil.Equal(m.MaxY, o.MaxY) &&
		mutil.Equal(m.MinX, o.MinX) &&
		mutil.Equal(m.MinY, o.MinY)
}

// Less orders rectangles by MinX, then by MinY. Rectangles sharing both
// are equivalent.
func (m MBR[T]) Less(o MBR[T]) bool {
	if !mutil.Equal(m.MinX, o.MinX) {
		return m.MinX < o.MinX
	}
	return m.MinY < o.MinY
}

// Compare is the three-way form of Less, for slices.SortStableFunc.
func Compare[T Scalar](a, b MBR[T]) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}
