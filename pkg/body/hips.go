package body

import (
	"github.com/chazu/sscha/pkg/geom"
	"github.com/chazu/sscha/pkg/shape"
)

// DefaultHipsExtents are the half-extents of free-standing hips.
var DefaultHipsExtents = shape.Extents{0.8, 0.4, 0.5, 0.15, 0.15}

// Hips is the box below the torso that the legs hang from.
type Hips struct {
	box shape.Box
}

// NewHips returns hips centered at center.
func NewHips(center geom.Point, h shape.Extents) *Hips {
	return &Hips{box: shape.NewBox(center, h)}
}

func (h *Hips) Name() string               { return NameHips }
func (h *Hips) Center() geom.Point         { return h.box.Center() }
func (h *Hips) HalfExtents() shape.Extents { return h.box.HalfExtents() }
func (h *Hips) Vertices() []geom.Point     { return h.box.Vertices() }

// LeftAnchor returns the left leg attachment, center + dir*hx.
func (h *Hips) LeftAnchor(dir geom.Vector) geom.Point {
	return h.box.Along(dir)
}

// RightAnchor returns the right leg attachment, center + dir*hx.
func (h *Hips) RightAnchor(dir geom.Vector) geom.Point {
	return h.box.Along(dir)
}
