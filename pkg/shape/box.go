package shape

import "github.com/chazu/sscha/pkg/geom"

// BoxVertexCount is the number of corners of a 5D box.
const BoxVertexCount = 32

// Extents holds one non-negative half-extent per axis, in x, y, z, w, v order.
type Extents [5]float64

// Scale returns every half-extent multiplied by k.
func (e Extents) Scale(k float64) Extents {
	return Extents{e[0] * k, e[1] * k, e[2] * k, e[3] * k, e[4] * k}
}

// Box is an axis-aligned 5D box.
type Box struct {
	center      geom.Point
	halfExtents Extents
}

// NewBox returns a box centered at center.
func NewBox(center geom.Point, h Extents) Box {
	return Box{center: center, halfExtents: h}
}

func (b Box) Center() geom.Point { return b.center }

func (b Box) HalfExtents() Extents { return b.halfExtents }

// Vertices returns all 32 corners. Signs are enumerated with x outermost and
// v innermost, each running -1 then +1; callers rely on this order.
func (b Box) Vertices() []geom.Point {
	hx, hy, hz, hw, hv := b.halfExtents[0], b.halfExtents[1], b.halfExtents[2], b.halfExtents[3], b.halfExtents[4]
	c := b.center
	signs := [2]float64{-1, 1}

	out := make([]geom.Point, 0, BoxVertexCount)
	for _, sx := range signs {
		for _, sy := range signs {
			for _, sz := range signs {
				for _, sw := range signs {
					for _, sv := range signs {
						out = append(out, geom.Point{
							X: c.X + sx*hx,
							Y: c.Y + sy*hy,
							Z: c.Z + sz*hz,
							W: c.W + sw*hw,
							V: c.V + sv*hv,
						})
					}
				}
			}
		}
	}
	return out
}

// Along returns center + dir*hx. The x half-extent is used whatever axis dir
// points along; anchor points of existing figures depend on it.
func (b Box) Along(dir geom.Vector) geom.Point {
	return b.center.Add(dir.Scale(b.halfExtents[0]))
}
