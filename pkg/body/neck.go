package body

import (
	"github.com/chazu/sscha/pkg/geom"
	"github.com/chazu/sscha/pkg/shape"
)

const (
	NeckRadius    = 0.15
	NeckRadial    = 8
	NeckMinRadial = 3
)

// Neck links the top of the torso to the bottom of the head.
type Neck struct {
	cyl shape.Cylinder
}

// NewNeck returns a neck from base to headEnd. radial is clamped up to
// NeckMinRadial.
func NewNeck(base, headEnd geom.Point, radius float64, radial int) *Neck {
	return &Neck{cyl: shape.NewCylinder(base, headEnd, radius, radial, NeckMinRadial)}
}

func (n *Neck) Name() string           { return NameNeck }
func (n *Neck) Base() geom.Point       { return n.cyl.Origin() }
func (n *Neck) HeadEnd() geom.Point    { return n.cyl.End() }
func (n *Neck) Radius() float64        { return n.cyl.Radius() }
func (n *Neck) Radial() int            { return n.cyl.Radial() }
func (n *Neck) Axis() geom.Vector      { return n.cyl.Axis() }
func (n *Neck) Length() float64        { return n.cyl.Length() }
func (n *Neck) Center() geom.Point     { return n.cyl.Center() }
func (n *Neck) Vertices() []geom.Point { return n.cyl.Vertices() }

// SegmentEndpoints returns base and head end, for line rendering.
func (n *Neck) SegmentEndpoints() []geom.Point {
	return n.cyl.Endpoints()
}

// Shape returns the underlying cylinder.
func (n *Neck) Shape() shape.Cylinder { return n.cyl }
