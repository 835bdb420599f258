package body

import "github.com/chazu/sscha/pkg/geom"

// Part names, in the order a Figure reports them.
const (
	NameTorso = "torso"
	NameHips  = "hips"
	NameNeck  = "neck"
	NameHead  = "head"
	NameFace  = "face"
	NameLegs  = "legs"
	NameArms  = "arms"
	NameHands = "hands"
	NameFeet  = "feet"
)

// Part is one anatomical part of a figure.
type Part interface {
	Name() string
	Vertices() []geom.Point
}

// Compile-time interface checks.
var (
	_ Part = (*Torso)(nil)
	_ Part = (*Hips)(nil)
	_ Part = (*Neck)(nil)
	_ Part = (*Head)(nil)
	_ Part = (*Face)(nil)
	_ Part = (*Legs)(nil)
	_ Part = (*Arms)(nil)
	_ Part = (*Hands)(nil)
	_ Part = (*Feet)(nil)
)
