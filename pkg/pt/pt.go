// Package pt provides planar and spatial point values.
package pt

import (
	"fmt"

	"gombr/pkg/mutil"
)

// Pt is a planar point.
type Pt[T mutil.Scalar] struct {
	X T
	Y T
}

// Equals compares p and o component-wise within mutil.Epsilon.
func (p Pt[T]) Equals(o Pt[T]) bool {
	return mutil.Feq(float64(p.X), float64(o.X)) &&
		mutil.Feq(float64(p.Y), float64(o.Y))
}

// Array returns the coordinates as {x, y}.
func (p Pt[T]) Array() [2]T {
	return [2]T{p.X, p.Y}
}

func (p Pt[T]) String() string {
	return fmt.Sprintf("Pt(%v, %v)", p.X, p.Y)
}

// Pt3d is a spatial point.
type Pt3d[T mutil.Scalar] struct {
	X T
	Y T
	Z T
}

// Equals compares p and o component-wise within mutil.Epsilon.
func (p Pt3d[T]) Equals(o Pt3d[T]) bool {
	return mutil.Feq(float64(p.X), float64(o.X)) &&
		mutil.Feq(float64(p.Y), float64(o.Y)) &&
		mutil.Feq(float64(p.Z), float64(o.Z))
}

// Array returns the coordinates as {x, y, z}.
func (p Pt3d[T]) Array() [3]T {
	return [3]T{p.X, p.Y, p.Z}
}

func (p Pt3d[T]) String() string {
	return fmt.Sprintf("Pt3d(%v, %v, %v)", p.X, p.Y, p.Z)
}
