package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/sscha/pkg/geom"
)

func TestBoxVertexCount(t *testing.T) {
	tests := []struct {
		name   string
		center geom.Point
		h      Extents
	}{
		{"unit at origin", geom.Origin(), Extents{1, 1, 1, 1, 1}},
		{"flat extended axes", geom.Point{X: 1, Y: -2, Z: 3}, Extents{0.5, 0.6, 0.3, 0, 0}},
		{"all zero", geom.Point{W: 4, V: -4}, Extents{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBox(tt.center, tt.h)
			verts := b.Vertices()
			require.Len(t, verts, BoxVertexCount)

			c := tt.center.Coords()
			for _, p := range verts {
				pc := p.Coords()
				for i := range pc {
					assert.GreaterOrEqual(t, pc[i], c[i]-tt.h[i])
					assert.LessOrEqual(t, pc[i], c[i]+tt.h[i])
				}
			}
		})
	}
}

func TestBoxEnumerationOrder(t *testing.T) {
	b := NewBox(geom.Origin(), Extents{1, 2, 3, 4, 5})
	verts := b.Vertices()

	assert.Equal(t, geom.Point{X: -1, Y: -2, Z: -3, W: -4, V: -5}, verts[0])
	assert.Equal(t, geom.Point{X: -1, Y: -2, Z: -3, W: -4, V: 5}, verts[1])
	assert.Equal(t, geom.Point{X: -1, Y: -2, Z: -3, W: 4, V: -5}, verts[2])
	assert.Equal(t, geom.Point{X: -1, Y: 2, Z: -3, W: -4, V: -5}, verts[8])
	assert.Equal(t, geom.Point{X: 1, Y: -2, Z: -3, W: -4, V: -5}, verts[16])
	assert.Equal(t, geom.Point{X: 1, Y: 2, Z: 3, W: 4, V: 5}, verts[31])

	// Index bit k (from the most significant) selects the sign of axis k.
	for i, p := range verts {
		pc := p.Coords()
		for axis := 0; axis < 5; axis++ {
			positive := i&(1<<(4-axis)) != 0
			assert.Equal(t, positive, pc[axis] > 0, "vertex %d axis %d", i, axis)
		}
	}
}

func TestBoxSymmetry(t *testing.T) {
	center := geom.Point{X: 0.5, Y: -1, Z: 2, W: 0.25, V: -0.75}
	b := NewBox(center, Extents{0.5, 0.25, 1, 0.125, 0.375})
	verts := b.Vertices()

	set := make(map[geom.Point]bool, len(verts))
	for _, p := range verts {
		set[p] = true
	}
	require.Len(t, set, BoxVertexCount)

	for axis := 0; axis < 5; axis++ {
		for _, p := range verts {
			pc := p.Coords()
			cc := center.Coords()
			pc[axis] = 2*cc[axis] - pc[axis]
			mirrored := geom.Point{X: pc[0], Y: pc[1], Z: pc[2], W: pc[3], V: pc[4]}
			assert.True(t, set[mirrored], "mirror of %v across axis %d missing", p, axis)
		}
	}
}

func TestBoxAlongUsesXExtent(t *testing.T) {
	b := NewBox(geom.Origin(), Extents{0.8, 0.4, 0.5, 0.15, 0.15})

	assert.Equal(t, geom.Point{X: -0.8}, b.Along(geom.UnitX.Scale(-1)))
	assert.Equal(t, geom.Point{Y: 0.8}, b.Along(geom.UnitY))
	assert.Equal(t, geom.Point{Z: 0.8}, b.Along(geom.UnitZ))
}

func TestExtentsScale(t *testing.T) {
	e := Extents{0.5, 0.6, 0.3, 0.2, 0.2}
	assert.Equal(t, Extents{1, 1.2, 0.6, 0.4, 0.4}, e.Scale(2))
	assert.Equal(t, e, e.Scale(1))
}
