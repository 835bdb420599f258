package body

import (
	"github.com/chazu/sscha/pkg/geom"
	"github.com/chazu/sscha/pkg/shape"
)

// DefaultHeadExtents are the half-extents of a free-standing head.
var DefaultHeadExtents = shape.Extents{0.4, 0.4, 0.45, 0.1, 0.1}

// Head is the skull's bounding box.
type Head struct {
	box shape.Box
}

// NewHead returns a head centered at center.
func NewHead(center geom.Point, h shape.Extents) *Head {
	return &Head{box: shape.NewBox(center, h)}
}

func (h *Head) Name() string               { return NameHead }
func (h *Head) Center() geom.Point         { return h.box.Center() }
func (h *Head) HalfExtents() shape.Extents { return h.box.HalfExtents() }
func (h *Head) Vertices() []geom.Point     { return h.box.Vertices() }

// FrontCenter returns the face attachment point, center + forward*hx.
func (h *Head) FrontCenter(forward geom.Vector) geom.Point {
	return h.box.Along(forward)
}

// BottomCenter returns the neck attachment point, center + down*hx.
func (h *Head) BottomCenter(down geom.Vector) geom.Point {
	return h.box.Along(down)
}
