// Package shape implements the parametric generators every body part
// specializes: the 5D box, the ring-approximated cylinder and the planar
// quad. Generators are pure: vertex lists are recomputed on every call.
package shape

import "github.com/chazu/sscha/pkg/geom"

// Shape is anything with a center that produces a vertex list.
type Shape interface {
	Center() geom.Point
	Vertices() []geom.Point
}

// Segment is a shape spanned between two endpoints.
type Segment interface {
	Shape
	Axis() geom.Vector
	Length() float64
}

// Compile-time interface checks.
var (
	_ Shape   = Box{}
	_ Shape   = Quad{}
	_ Segment = Cylinder{}
)
