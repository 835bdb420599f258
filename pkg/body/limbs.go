package body

import (
	"github.com/chazu/sscha/pkg/geom"
	"github.com/chazu/sscha/pkg/shape"
)

const (
	LimbRadius    = 0.12
	LimbRadial    = 6
	LimbMinRadial = 2

	LegsRadius = 0.12
	ArmsRadius = 0.1
)

// Limb is a single cylindrical segment from origin to end.
type Limb struct {
	cyl shape.Cylinder
}

// NewLimb returns a limb segment. radial is clamped up to LimbMinRadial.
func NewLimb(origin, end geom.Point, radius float64, radial int) Limb {
	return Limb{cyl: shape.NewCylinder(origin, end, radius, radial, LimbMinRadial)}
}

func (l Limb) Origin() geom.Point     { return l.cyl.Origin() }
func (l Limb) End() geom.Point        { return l.cyl.End() }
func (l Limb) Radius() float64        { return l.cyl.Radius() }
func (l Limb) Radial() int            { return l.cyl.Radial() }
func (l Limb) Axis() geom.Vector      { return l.cyl.Axis() }
func (l Limb) Length() float64        { return l.cyl.Length() }
func (l Limb) Center() geom.Point     { return l.cyl.Center() }
func (l Limb) Vertices() []geom.Point { return l.cyl.Vertices() }
func (l Limb) Shape() shape.Cylinder  { return l.cyl }

var _ shape.Segment = Limb{}

// Leg runs from a hip anchor to a foot center.
type Leg struct {
	Limb
}

// Legs is the left and right leg pair.
type Legs struct {
	Left, Right Leg
}

// NewLegs builds both legs with the same radius and radial count.
func NewLegs(leftHip, leftFoot, rightHip, rightFoot geom.Point, radius float64, radial int) *Legs {
	return &Legs{
		Left:  Leg{NewLimb(leftHip, leftFoot, radius, radial)},
		Right: Leg{NewLimb(rightHip, rightFoot, radius, radial)},
	}
}

func (l *Legs) Name() string { return NameLegs }

// Segments returns (left, right).
func (l *Legs) Segments() (Leg, Leg) { return l.Left, l.Right }

func (l *Legs) LeftVertices() []geom.Point  { return l.Left.Vertices() }
func (l *Legs) RightVertices() []geom.Point { return l.Right.Vertices() }

// Vertices returns the left leg's vertices followed by the right's.
func (l *Legs) Vertices() []geom.Point {
	return append(l.Left.Vertices(), l.Right.Vertices()...)
}
