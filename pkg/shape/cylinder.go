package shape

import (
	"math"

	"github.com/chazu/sscha/pkg/geom"
)

// Cylinder is a segment with two rings of Radial points, one around each
// endpoint. Rings lie in the spatial subspace: their w and v coordinates
// equal those of the endpoint they surround.
type Cylinder struct {
	origin geom.Point
	end    geom.Point
	radius float64
	radial int
}

// NewCylinder returns a cylinder from origin to end. radial is clamped up to
// minRadial.
func NewCylinder(origin, end geom.Point, radius float64, radial, minRadial int) Cylinder {
	return Cylinder{
		origin: origin,
		end:    end,
		radius: radius,
		radial: max(radial, minRadial),
	}
}

func (c Cylinder) Origin() geom.Point { return c.origin }
func (c Cylinder) End() geom.Point    { return c.end }
func (c Cylinder) Radius() float64    { return c.radius }
func (c Cylinder) Radial() int        { return c.radial }

// Axis returns end - origin.
func (c Cylinder) Axis() geom.Vector {
	return c.end.Sub(c.origin)
}

func (c Cylinder) Length() float64 {
	return c.Axis().Norm()
}

// Center returns the midpoint of the axis.
func (c Cylinder) Center() geom.Point {
	return c.origin.Add(c.Axis().Scale(0.5))
}

// Endpoints returns origin and end.
func (c Cylinder) Endpoints() []geom.Point {
	return []geom.Point{c.origin, c.end}
}

// VertexCount returns the number of points Vertices produces.
func (c Cylinder) VertexCount() int {
	if c.Length() < geom.Epsilon {
		return 2
	}
	return 2 + 2*c.radial
}

// Frame returns the two in-plane directions the rings are built on. ok is
// false for a zero-length axis.
//
// u is the axis rotated a quarter turn in the xy-plane, or in the yz-plane
// when the axis has no xy component. v combines axis and u in the spatial
// coordinates only and falls back to the x axis when that vanishes.
func (c Cylinder) Frame() (u, v geom.Vector, ok bool) {
	a := c.Axis()
	if a.Norm() < geom.Epsilon {
		return geom.Vector{}, geom.Vector{}, false
	}

	u = geom.Vector{DX: -a.DY, DY: a.DX}
	un := u.Norm()
	if un < geom.Epsilon {
		u = geom.Vector{DY: -a.DZ, DZ: a.DY}
		un = u.Norm()
	}
	if un >= geom.Epsilon {
		u = u.Scale(1.0 / un)
	}

	v = geom.Vector{
		DX: -a.DZ * u.DY,
		DY: a.DZ * u.DX,
		DZ: a.DX*u.DY - a.DY*u.DX,
	}
	v = v.Unit(geom.UnitX)
	return u, v, true
}

// Vertices returns origin, end, then for each ring angle the pair of points
// around origin and end.
func (c Cylinder) Vertices() []geom.Point {
	u, v, ok := c.Frame()
	if !ok {
		return c.Endpoints()
	}

	out := make([]geom.Point, 0, 2+2*c.radial)
	out = append(out, c.origin, c.end)
	for i := 0; i < c.radial; i++ {
		angle := 2 * math.Pi * float64(i) / float64(c.radial)
		offset := u.Scale(c.radius * math.Cos(angle)).Add(v.Scale(c.radius * math.Sin(angle)))
		out = append(out, c.origin.Add(offset), c.end.Add(offset))
	}
	return out
}
