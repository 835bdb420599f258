package body

import (
	"iter"

	"github.com/chazu/sscha/pkg/geom"
	"github.com/chazu/sscha/pkg/shape"
)

// Canonical directions: +y up, +z forward, +x right.
var (
	Up      = geom.UnitY
	Forward = geom.UnitZ
	Right   = geom.UnitX
)

// Config holds the inputs of a figure.
type Config struct {
	Origin geom.Point
	Scale  float64
	PlaneW float64
	PlaneV float64
}

// DefaultConfig returns a unit-scale figure at the 5D origin on the (0, 0)
// slice.
func DefaultConfig() Config {
	return Config{Origin: geom.Origin(), Scale: 1.0}
}

// Figure is a humanoid assembled from its parts on a fixed (w, v) slice.
// Parts are fixed at construction; vertex lists are regenerated on each call.
type Figure struct {
	cfg Config

	Torso *Torso
	Hips  *Hips
	Neck  *Neck
	Head  *Head
	Face  *Face
	Legs  *Legs
	Arms  *Arms
	Hands *Hands
	Feet  *Feet
}

// NewFigure places every part relative to the torso center. The scale is
// not validated; a non-positive scale yields mirrored or collapsed parts.
func NewFigure(cfg Config) *Figure {
	s := cfg.Scale
	o := cfg.Origin
	torsoCenter := geom.Point{X: o.X, Y: o.Y, Z: o.Z, W: cfg.PlaneW, V: cfg.PlaneV}
	up := func(k float64) geom.Vector { return Up.Scale(k * s) }
	right := func(k float64) geom.Vector { return Right.Scale(k * s) }

	f := &Figure{cfg: cfg}
	f.Torso = NewTorso(torsoCenter, shape.Extents{0.5, 0.6, 0.3, 0.2, 0.2}.Scale(s))

	hipCenter := torsoCenter.Add(up(-0.9))
	f.Hips = NewHips(hipCenter, shape.Extents{0.4, 0.25, 0.25, 0.15, 0.15}.Scale(s))

	f.Neck = NewNeck(torsoCenter.Add(up(0.6)), torsoCenter.Add(up(1.2)), 0.12*s, NeckRadial)

	headCenter := torsoCenter.Add(up(1.5))
	f.Head = NewHead(headCenter, shape.Extents{0.2, 0.2, 0.22, 0.1, 0.1}.Scale(s))

	f.Face = NewFace(headCenter.Add(Forward.Scale(0.22*s)), Forward, 0.35*s, 0.4*s, Up)

	leftShoulder := torsoCenter.Add(up(0.4)).Add(right(-0.5))
	rightShoulder := torsoCenter.Add(up(0.4)).Add(right(0.5))
	leftHand := leftShoulder.Add(right(-0.7)).Add(up(-0.2))
	rightHand := rightShoulder.Add(right(0.7)).Add(up(-0.2))
	f.Arms = NewArms(leftShoulder, leftHand, rightShoulder, rightHand, 0.08*s, LimbRadial)
	f.Hands = NewHands(leftHand, rightHand)

	leftHip := hipCenter.Add(right(-0.35))
	rightHip := hipCenter.Add(right(0.35))
	leftFoot := hipCenter.Add(up(-1.0)).Add(right(-0.2))
	rightFoot := hipCenter.Add(up(-1.0)).Add(right(0.2))
	f.Legs = NewLegs(leftHip, leftFoot, rightHip, rightFoot, 0.1*s, LimbRadial)
	f.Feet = NewFeet(leftFoot, rightFoot)

	return f
}

func (f *Figure) Config() Config     { return f.cfg }
func (f *Figure) Origin() geom.Point { return f.cfg.Origin }
func (f *Figure) Scale() float64     { return f.cfg.Scale }
func (f *Figure) PlaneW() float64    { return f.cfg.PlaneW }
func (f *Figure) PlaneV() float64    { return f.cfg.PlaneV }

// Plane returns the reference plane of the figure's slice: the x/y plane
// through (0, 0, 0, w, v).
func (f *Figure) Plane() geom.Plane {
	return geom.Plane{
		Origin: geom.Point{W: f.cfg.PlaneW, V: f.cfg.PlaneV},
		U:      geom.UnitX,
		T:      geom.UnitY,
	}
}

// Parts yields the nine parts in vertex order: torso, hips, neck, head,
// face, legs, arms, hands, feet.
func (f *Figure) Parts() iter.Seq[Part] {
	return func(yield func(Part) bool) {
		for _, p := range []Part{f.Torso, f.Hips, f.Neck, f.Head, f.Face, f.Legs, f.Arms, f.Hands, f.Feet} {
			if !yield(p) {
				return
			}
		}
	}
}

// Vertices concatenates the vertices of every part in Parts order.
func (f *Figure) Vertices() []geom.Point {
	var out []geom.Point
	for p := range f.Parts() {
		out = append(out, p.Vertices()...)
	}
	return out
}
