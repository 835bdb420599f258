package body

import (
	"github.com/chazu/sscha/pkg/geom"
	"github.com/chazu/sscha/pkg/shape"
)

const (
	FaceWidth  = 0.6
	FaceHeight = 0.5
)

// Face is the rectangular patch on the front of the head.
type Face struct {
	quad   shape.Quad
	normal geom.Vector
}

// NewFace returns a face centered at center. A zero up means no hint.
func NewFace(center geom.Point, normal geom.Vector, width, height float64, up geom.Vector) *Face {
	return &Face{
		quad:   shape.NewQuad(center, normal, width, height, up),
		normal: normal,
	}
}

func (f *Face) Name() string           { return NameFace }
func (f *Face) Center() geom.Point     { return f.quad.Center() }
func (f *Face) Normal() geom.Vector    { return f.normal }
func (f *Face) Width() float64         { return f.quad.Width() }
func (f *Face) Height() float64        { return f.quad.Height() }
func (f *Face) Plane() geom.Plane      { return f.quad.Plane() }
func (f *Face) Vertices() []geom.Point { return f.quad.Vertices() }
