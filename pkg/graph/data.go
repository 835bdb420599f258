package graph

import "github.com/chazu/sscha/pkg/geom"

// BoxData holds the parameters of a box part.
type BoxData struct {
	Center      geom.Point
	HalfExtents [5]float64
}

func (BoxData) nodeData() {}

// CylinderData holds the parameters of a cylinder part.
type CylinderData struct {
	Origin geom.Point
	End    geom.Point
	Radius float64
	Radial int
}

func (CylinderData) nodeData() {}

// Axis returns End - Origin.
func (d CylinderData) Axis() geom.Vector {
	return d.End.Sub(d.Origin)
}

// QuadData holds the parameters of a planar patch part.
type QuadData struct {
	Plane  geom.Plane
	Normal geom.Vector // as supplied, before normalization
	Width  float64
	Height float64
}

func (QuadData) nodeData() {}

// PairData marks a left/right container. Its two children are the sides,
// left first.
type PairData struct{}

func (PairData) nodeData() {}
