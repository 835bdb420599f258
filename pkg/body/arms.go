package body

import "github.com/chazu/sscha/pkg/geom"

// Arm runs from a shoulder to a hand center.
type Arm struct {
	Limb
}

// Arms is the left and right arm pair.
type Arms struct {
	Left, Right Arm
}

// NewArms builds both arms with the same radius and radial count.
func NewArms(leftShoulder, leftHand, rightShoulder, rightHand geom.Point, radius float64, radial int) *Arms {
	return &Arms{
		Left:  Arm{NewLimb(leftShoulder, leftHand, radius, radial)},
		Right: Arm{NewLimb(rightShoulder, rightHand, radius, radial)},
	}
}

func (a *Arms) Name() string { return NameArms }

// Segments returns (left, right).
func (a *Arms) Segments() (Arm, Arm) { return a.Left, a.Right }

func (a *Arms) LeftVertices() []geom.Point  { return a.Left.Vertices() }
func (a *Arms) RightVertices() []geom.Point { return a.Right.Vertices() }

func (a *Arms) Vertices() []geom.Point {
	return append(a.Left.Vertices(), a.Right.Vertices()...)
}
