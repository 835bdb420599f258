package geom

// Plane is a 2-parameter affine patch embedded in 5D: an origin plus two
// spanning vectors. U and T need not be orthonormal.
type Plane struct {
	Origin Point
	U      Vector
	T      Vector
}

// PointAt returns Origin + U*s + T*r. The patch is unbounded; callers
// choose the parameter range.
func (p Plane) PointAt(s, r float64) Point {
	return p.Origin.Add(p.U.Scale(s)).Add(p.T.Scale(r))
}

// Normal3DSlice returns the cross product of U and T restricted to the
// spatial coordinates, with the w and v components left at zero. It is an
// inspection aid only.
func (p Plane) Normal3DSlice() Vector {
	u, t := p.U, p.T
	return Vector{
		DX: u.DY*t.DZ - u.DZ*t.DY,
		DY: u.DZ*t.DX - u.DX*t.DZ,
		DZ: u.DX*t.DY - u.DY*t.DX,
	}
}
