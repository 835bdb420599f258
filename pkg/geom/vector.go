package geom

import (
	"fmt"
	"math"
)

// Epsilon is the length below which a vector is treated as degenerate.
// Normalizing code must test against it and substitute a fallback axis
// instead of dividing.
const Epsilon = 1e-10

// Vector is a displacement in 5D space.
type Vector struct {
	DX, DY, DZ, DW, DV float64
}

// Unit axes.
var (
	UnitX = Vector{DX: 1}
	UnitY = Vector{DY: 1}
	UnitZ = Vector{DZ: 1}
	UnitW = Vector{DW: 1}
	UnitV = Vector{DV: 1}
)

func (a Vector) Scale(k float64) Vector {
	return Vector{a.DX * k, a.DY * k, a.DZ * k, a.DW * k, a.DV * k}
}

func (a Vector) Add(b Vector) Vector {
	return Vector{a.DX + b.DX, a.DY + b.DY, a.DZ + b.DZ, a.DW + b.DW, a.DV + b.DV}
}

func (a Vector) Sub(b Vector) Vector {
	return Vector{a.DX - b.DX, a.DY - b.DY, a.DZ - b.DZ, a.DW - b.DW, a.DV - b.DV}
}

// Dot returns the dot product of a and b.
func (a Vector) Dot(b Vector) float64 {
	return a.DX*b.DX + a.DY*b.DY + a.DZ*b.DZ + a.DW*b.DW + a.DV*b.DV
}

// NormSq returns the squared Euclidean length.
func (a Vector) NormSq() float64 {
	return a.Dot(a)
}

// Norm returns the Euclidean length.
func (a Vector) Norm() float64 {
	return math.Sqrt(a.NormSq())
}

// IsDegenerate reports whether the vector is too short to normalize.
func (a Vector) IsDegenerate() bool {
	return a.Norm() < Epsilon
}

// Unit returns a unit-length copy of a, or fallback when a is degenerate.
func (a Vector) Unit(fallback Vector) Vector {
	n := a.Norm()
	if n < Epsilon {
		return fallback
	}
	return a.Scale(1.0 / n)
}

// Components returns the components as an array.
func (a Vector) Components() [5]float64 {
	return [5]float64{a.DX, a.DY, a.DZ, a.DW, a.DV}
}

func (a Vector) String() string {
	return fmt.Sprintf("Vector5D(%g, %g, %g, %g, %g)", a.DX, a.DY, a.DZ, a.DW, a.DV)
}
