// Package geometry provides the small set of 2D primitives the marquee
// component measures and publishes: offsets, sizes, and the affine
// transform applied to the scrolled content.
package geometry

import "golang.org/x/image/math/f64"

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Extent returns the size's extent along the given axis.
func (s Size) Extent(axis Axis) float64 {
	if axis == AxisHorizontal {
		return s.Width
	}
	return s.Height
}

// Axis identifies a scroll direction.
type Axis int

const (
	// AxisVertical scrolls along Y. It is the zero value and the only
	// axis the marquee currently animates.
	AxisVertical Axis = iota
	// AxisHorizontal scrolls along X.
	AxisHorizontal
)

// Transform is a 2D affine transform in row-major order with an
// implied [0 0 1] bottom row. The marquee publishes pure translations,
// but hosts compose it with their own transforms when painting.
type Transform struct {
	Matrix f64.Aff3
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{Matrix: f64.Aff3{1, 0, 0, 0, 1, 0}}
}

// Translate returns a transform translating by (x, y).
func Translate(x, y float64) Transform {
	return Transform{Matrix: f64.Aff3{1, 0, x, 0, 1, y}}
}

// Offset returns the translation component of the transform.
func (t Transform) Offset() Offset {
	return Offset{X: t.Matrix[2], Y: t.Matrix[5]}
}
