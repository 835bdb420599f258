package body

import (
	"github.com/chazu/sscha/pkg/geom"
	"github.com/chazu/sscha/pkg/shape"
)

// DefaultTorsoExtents are the half-extents of a free-standing torso.
var DefaultTorsoExtents = shape.Extents{1.0, 1.0, 1.0, 0.2, 0.2}

// Torso is the central 5D box every other part is placed from.
type Torso struct {
	box shape.Box
}

// NewTorso returns a torso centered at center.
func NewTorso(center geom.Point, h shape.Extents) *Torso {
	return &Torso{box: shape.NewBox(center, h)}
}

func (t *Torso) Name() string               { return NameTorso }
func (t *Torso) Center() geom.Point         { return t.box.Center() }
func (t *Torso) HalfExtents() shape.Extents { return t.box.HalfExtents() }
func (t *Torso) Vertices() []geom.Point     { return t.box.Vertices() }

// TopCenter returns center + up*hx.
func (t *Torso) TopCenter(up geom.Vector) geom.Point {
	return t.box.Along(up)
}
