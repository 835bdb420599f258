package sdfx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCells = 24

func assertBounds(t *testing.T, min, max, wantMin, wantMax [3]float64, tol float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, wantMin[i], min[i], tol, "min[%d]", i)
		assert.InDelta(t, wantMax[i], max[i], tol, "max[%d]", i)
	}
}

func TestNewWithCells(t *testing.T) {
	assert.Equal(t, DefaultMeshCells, New().Cells())
	assert.Equal(t, 16, NewWithCells(16).Cells())
	assert.Equal(t, DefaultMeshCells, NewWithCells(0).Cells())
}

func TestBoxIsCentered(t *testing.T) {
	k := New()
	box, err := k.Box(0.5, 0.6, 0.3)
	require.NoError(t, err)

	min, max := box.BoundingBox()
	assertBounds(t, min, max, [3]float64{-0.5, -0.6, -0.3}, [3]float64{0.5, 0.6, 0.3}, 1e-9)
}

func TestBoxMesh(t *testing.T) {
	k := NewWithCells(testCells)
	box, err := k.Box(1, 0.5, 0.25)
	require.NoError(t, err)

	mesh, err := k.ToMesh(box)
	require.NoError(t, err)
	require.False(t, mesh.IsEmpty())

	assert.Equal(t, len(mesh.Vertices), len(mesh.Normals))
	assert.Equal(t, mesh.TriangleCount()*3, len(mesh.Indices))
	assert.Equal(t, mesh.VertexCount(), len(mesh.Indices))
}

func TestCylinder(t *testing.T) {
	k := NewWithCells(testCells)
	cyl, err := k.Cylinder(2, 0.5, 8)
	require.NoError(t, err)

	min, max := cyl.BoundingBox()
	assertBounds(t, min, max, [3]float64{-0.5, -0.5, -1}, [3]float64{0.5, 0.5, 1}, 1e-9)

	mesh, err := k.ToMesh(cyl)
	require.NoError(t, err)
	assert.NotZero(t, mesh.TriangleCount())
}

func TestCylinderInvalid(t *testing.T) {
	k := New()
	_, err := k.Cylinder(1, -1, 8)
	assert.Error(t, err)
}

func TestTranslate(t *testing.T) {
	k := New()
	box, err := k.Box(5, 5, 5)
	require.NoError(t, err)

	min, max := k.Translate(box, 100, 200, 300).BoundingBox()
	assertBounds(t, min, max, [3]float64{95, 195, 295}, [3]float64{105, 205, 305}, 1e-6)
}

func TestOrient(t *testing.T) {
	k := New()
	cyl, err := k.Cylinder(4, 0.5, 8)
	require.NoError(t, err)

	tests := []struct {
		name    string
		dir     [3]float64
		wantMax [3]float64
	}{
		{"+x", [3]float64{3, 0, 0}, [3]float64{2, 0.5, 0.5}},
		{"-y", [3]float64{0, -1, 0}, [3]float64{0.5, 2, 0.5}},
		{"+z", [3]float64{0, 0, 1}, [3]float64{0.5, 0.5, 2}},
		{"-z", [3]float64{0, 0, -2}, [3]float64{0.5, 0.5, 2}},
		{"zero", [3]float64{}, [3]float64{0.5, 0.5, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := k.Orient(cyl, tt.dir).BoundingBox()
			wantMin := [3]float64{-tt.wantMax[0], -tt.wantMax[1], -tt.wantMax[2]}
			assertBounds(t, min, max, wantMin, tt.wantMax, 1e-6)
		})
	}
}

func TestOrientDiagonal(t *testing.T) {
	k := NewWithCells(testCells)
	cyl, err := k.Cylinder(2, 0.2, 8)
	require.NoError(t, err)

	s := k.Translate(k.Orient(cyl, [3]float64{1, 1, 0}), 1, 1, 0)
	mesh, err := k.ToMesh(s)
	require.NoError(t, err)
	require.False(t, mesh.IsEmpty())

	// The segment runs from about (0.3, 0.3) to (1.7, 1.7); its mesh
	// vertices stay near the diagonal.
	for i := 0; i < len(mesh.Vertices); i += 3 {
		x, y := float64(mesh.Vertices[i]), float64(mesh.Vertices[i+1])
		assert.Less(t, math.Abs(x-y)/math.Sqrt2, 0.35)
	}
}

func TestUnion(t *testing.T) {
	k := NewWithCells(testCells)
	a, err := k.Box(1, 1, 1)
	require.NoError(t, err)
	b, err := k.Box(1, 1, 1)
	require.NoError(t, err)

	u := k.Union(a, k.Translate(b, 3, 0, 0))
	min, max := u.BoundingBox()
	assertBounds(t, min, max, [3]float64{-1, -1, -1}, [3]float64{4, 1, 1}, 1e-6)

	mesh, err := k.ToMesh(u)
	require.NoError(t, err)
	assert.False(t, mesh.IsEmpty())
}

func TestToMeshNil(t *testing.T) {
	_, err := New().ToMesh(nil)
	assert.Error(t, err)
}
