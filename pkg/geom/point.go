package geom

import "fmt"

// Point is a location in 5D space. Two points are equal when all five
// coordinates are equal; no tolerance is applied.
type Point struct {
	X, Y, Z, W, V float64
}

// Origin returns the 5D zero point.
func Origin() Point {
	return Point{}
}

// Add returns the point displaced by d.
func (p Point) Add(d Vector) Point {
	return Point{
		X: p.X + d.DX,
		Y: p.Y + d.DY,
		Z: p.Z + d.DZ,
		W: p.W + d.DW,
		V: p.V + d.DV,
	}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{
		DX: p.X - q.X,
		DY: p.Y - q.Y,
		DZ: p.Z - q.Z,
		DW: p.W - q.W,
		DV: p.V - q.V,
	}
}

// At returns coordinate i in x, y, z, w, v order. It panics if i is out of range.
func (p Point) At(i int) float64 {
	return p.Coords()[i]
}

// Coords returns the coordinates as an array.
func (p Point) Coords() [5]float64 {
	return [5]float64{p.X, p.Y, p.Z, p.W, p.V}
}

// Vector returns the displacement of p from the origin.
func (p Point) Vector() Vector {
	return Vector{p.X, p.Y, p.Z, p.W, p.V}
}

func (p Point) String() string {
	return fmt.Sprintf("Point5D(%g, %g, %g, %g, %g)", p.X, p.Y, p.Z, p.W, p.V)
}
