package shape

import "github.com/chazu/sscha/pkg/geom"

// QuadVertexCount is the number of corners of a planar quad.
const QuadVertexCount = 4

// Quad is a rectangular patch on a plane embedded in 5D.
type Quad struct {
	plane  geom.Plane
	width  float64
	height float64
}

// NewQuad builds a quad centered at center facing normal. The first spanning
// direction follows up projected off the normal; a zero or degenerate up means
// the canonical y axis. The second spanning direction is the spatial cross
// product of normal and the first. A degenerate normal gives the x/y plane.
func NewQuad(center geom.Point, normal geom.Vector, width, height float64, up geom.Vector) Quad {
	return Quad{
		plane:  quadPlane(center, normal, up),
		width:  width,
		height: height,
	}
}

func quadPlane(center geom.Point, normal, up geom.Vector) geom.Plane {
	if normal.Norm() < geom.Epsilon {
		return geom.Plane{Origin: center, U: geom.UnitX, T: geom.UnitY}
	}
	n := normal.Unit(geom.UnitZ)
	hint := up.Unit(geom.UnitY)

	u := hint.Sub(n.Scale(n.Dot(hint)))
	if u.Norm() < geom.Epsilon {
		u = geom.UnitX.Sub(n.Scale(n.DX))
	}
	if un := u.Norm(); un >= geom.Epsilon {
		u = u.Scale(1.0 / un)
	}

	t := geom.Vector{
		DX: n.DY*u.DZ - n.DZ*u.DY,
		DY: n.DZ*u.DX - n.DX*u.DZ,
		DZ: n.DX*u.DY - n.DY*u.DX,
	}
	t = t.Unit(geom.UnitX)

	return geom.Plane{Origin: center, U: u, T: t}
}

func (q Quad) Plane() geom.Plane  { return q.plane }
func (q Quad) Center() geom.Point { return q.plane.Origin }
func (q Quad) Width() float64     { return q.width }
func (q Quad) Height() float64    { return q.height }

// Vertices returns the corners at (-w/2,-h/2), (+w/2,-h/2), (+w/2,+h/2),
// (-w/2,+h/2) in plane parameters.
func (q Quad) Vertices() []geom.Point {
	hw := q.width * 0.5
	hh := q.height * 0.5
	return []geom.Point{
		q.plane.PointAt(-hw, -hh),
		q.plane.PointAt(hw, -hh),
		q.plane.PointAt(hw, hh),
		q.plane.PointAt(-hw, hh),
	}
}
