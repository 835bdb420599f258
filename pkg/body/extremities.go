package body

import (
	"github.com/chazu/sscha/pkg/geom"
	"github.com/chazu/sscha/pkg/shape"
)

var (
	DefaultHandExtents = shape.Extents{0.1, 0.05, 0.06, 0.03, 0.03}
	DefaultFootExtents = shape.Extents{0.12, 0.05, 0.08, 0.04, 0.04}
)

// Hand is a box at the end of an arm.
type Hand struct {
	box shape.Box
}

func NewHand(center geom.Point, h shape.Extents) Hand {
	return Hand{box: shape.NewBox(center, h)}
}

func (h Hand) Center() geom.Point         { return h.box.Center() }
func (h Hand) HalfExtents() shape.Extents { return h.box.HalfExtents() }
func (h Hand) Vertices() []geom.Point     { return h.box.Vertices() }

// Foot is the sole box at the end of a leg.
type Foot struct {
	box shape.Box
}

func NewFoot(center geom.Point, h shape.Extents) Foot {
	return Foot{box: shape.NewBox(center, h)}
}

func (f Foot) Center() geom.Point         { return f.box.Center() }
func (f Foot) HalfExtents() shape.Extents { return f.box.HalfExtents() }
func (f Foot) Vertices() []geom.Point     { return f.box.Vertices() }

// Hands is the left and right hand pair, both with DefaultHandExtents.
type Hands struct {
	Left, Right Hand
}

func NewHands(left, right geom.Point) *Hands {
	return &Hands{
		Left:  NewHand(left, DefaultHandExtents),
		Right: NewHand(right, DefaultHandExtents),
	}
}

func (h *Hands) Name() string                { return NameHands }
func (h *Hands) LeftVertices() []geom.Point  { return h.Left.Vertices() }
func (h *Hands) RightVertices() []geom.Point { return h.Right.Vertices() }

func (h *Hands) Vertices() []geom.Point {
	return append(h.Left.Vertices(), h.Right.Vertices()...)
}

// Feet is the left and right foot pair, both with DefaultFootExtents.
type Feet struct {
	Left, Right Foot
}

func NewFeet(left, right geom.Point) *Feet {
	return &Feet{
		Left:  NewFoot(left, DefaultFootExtents),
		Right: NewFoot(right, DefaultFootExtents),
	}
}

func (f *Feet) Name() string                { return NameFeet }
func (f *Feet) LeftVertices() []geom.Point  { return f.Left.Vertices() }
func (f *Feet) RightVertices() []geom.Point { return f.Right.Vertices() }

func (f *Feet) Vertices() []geom.Point {
	return append(f.Left.Vertices(), f.Right.Vertices()...)
}
