package tessellate_test

import (
	"testing"

	"github.com/chazu/sscha/pkg/body"
	"github.com/chazu/sscha/pkg/geom"
	"github.com/chazu/sscha/pkg/graph"
	"github.com/chazu/sscha/pkg/kernel"
	"github.com/chazu/sscha/pkg/kernel/sdfx"
	"github.com/chazu/sscha/pkg/tessellate"
)

// newKernel returns a coarse sdfx kernel for testing.
func newKernel() kernel.Kernel {
	return sdfx.NewWithCells(24)
}

func makeBox(name string, center geom.Point, h [5]float64, children ...graph.NodeID) *graph.Node {
	return &graph.Node{
		ID:       graph.NewNodeID(name),
		Kind:     graph.NodeBox,
		Name:     name,
		Children: children,
		Data:     graph.BoxData{Center: center, HalfExtents: h},
	}
}

func makeCylinder(name string, origin, end geom.Point, radius float64) *graph.Node {
	return &graph.Node{
		ID:   graph.NewNodeID(name),
		Kind: graph.NodeCylinder,
		Name: name,
		Data: graph.CylinderData{Origin: origin, End: end, Radius: radius, Radial: 6},
	}
}

func TestNilGraph(t *testing.T) {
	meshes, err := tessellate.Tessellate(nil, newKernel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meshes) != 0 {
		t.Fatalf("expected no meshes, got %d", len(meshes))
	}
}

func TestSingleBox(t *testing.T) {
	k := newKernel()
	g := graph.New()
	box := makeBox("torso", geom.Point{X: 10}, [5]float64{1, 2, 0.5, 0.2, 0.2})
	g.AddNode(box)
	g.AddRoot(box.ID)

	meshes, err := tessellate.Tessellate(g, k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(meshes))
	}
	if meshes[0].PartName != "torso" {
		t.Errorf("PartName = %q, want %q", meshes[0].PartName, "torso")
	}
	if meshes[0].IsEmpty() {
		t.Fatal("mesh is empty")
	}

	min, max, ok := meshes[0].Bounds()
	if !ok {
		t.Fatal("Bounds() ok = false")
	}
	if min[0] < 8.5 || max[0] > 11.5 {
		t.Errorf("mesh x range [%v, %v] not near [9, 11]", min[0], max[0])
	}
}

func TestZeroLengthCylinderSkipped(t *testing.T) {
	k := newKernel()
	g := graph.New()
	p := geom.Point{Y: 1}
	cyl := makeCylinder("neck", p, p, 0.1)
	g.AddNode(cyl)
	g.AddRoot(cyl.ID)

	meshes, err := tessellate.Tessellate(g, k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meshes) != 0 {
		t.Fatalf("expected zero-length cylinder to be skipped, got %d meshes", len(meshes))
	}

	if _, _, ok, err := tessellate.Bounds(g, k); ok || err != nil {
		t.Errorf("Bounds() = ok %v, err %v; want no bounds and no error", ok, err)
	}
}

func TestNegativeRadiusFails(t *testing.T) {
	g := graph.New()
	cyl := makeCylinder("arm", geom.Origin(), geom.Point{X: 1}, -0.1)
	g.AddNode(cyl)
	g.AddRoot(cyl.ID)

	if _, err := tessellate.Tessellate(g, newKernel()); err == nil {
		t.Fatal("expected error for negative radius")
	}
}

func TestCylinderPlacement(t *testing.T) {
	k := newKernel()
	g := graph.New()
	cyl := makeCylinder("arm", geom.Point{X: 1, Y: 1}, geom.Point{X: 3, Y: 1, W: 5}, 0.25)
	g.AddNode(cyl)
	g.AddRoot(cyl.ID)

	min, max, ok, err := tessellate.Bounds(g, k)
	if err != nil || !ok {
		t.Fatalf("Bounds() ok %v, err %v", ok, err)
	}
	const tol = 1e-6
	want := [2][3]float64{{1, 0.75, -0.25}, {3, 1.25, 0.25}}
	for i := 0; i < 3; i++ {
		if d := min[i] - want[0][i]; d > tol || d < -tol {
			t.Errorf("min[%d] = %v, want %v", i, min[i], want[0][i])
		}
		if d := max[i] - want[1][i]; d > tol || d < -tol {
			t.Errorf("max[%d] = %v, want %v", i, max[i], want[1][i])
		}
	}
}

func TestChildrenFollowParents(t *testing.T) {
	k := newKernel()
	g := graph.New()
	face := &graph.Node{
		ID: graph.NewNodeID("face"), Kind: graph.NodeQuad, Name: "face",
		Data: graph.QuadData{Normal: geom.UnitZ, Width: 1, Height: 1},
	}
	head := makeBox("head", geom.Point{Y: 2}, [5]float64{0.5, 0.5, 0.5, 0.1, 0.1}, face.ID)
	torso := makeBox("torso", geom.Origin(), [5]float64{1, 1, 1, 0.2, 0.2}, head.ID)
	g.AddNode(face)
	g.AddNode(head)
	g.AddNode(torso)
	g.AddRoot(torso.ID)

	meshes, err := tessellate.Tessellate(g, k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meshes) != 2 {
		t.Fatalf("expected 2 meshes (quad skipped), got %d", len(meshes))
	}
	if meshes[0].PartName != "torso" || meshes[1].PartName != "head" {
		t.Errorf("mesh order = [%s %s], want [torso head]", meshes[0].PartName, meshes[1].PartName)
	}
}

func TestFigure(t *testing.T) {
	k := newKernel()
	f := body.NewFigure(body.DefaultConfig())
	g := f.Graph()

	meshes, err := tessellate.Tessellate(g, k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"torso", "hips", "legs/left", "legs/right", "feet/left", "feet/right",
		"neck", "head", "arms/left", "arms/right", "hands/left", "hands/right",
	}
	if len(meshes) != len(want) {
		t.Fatalf("expected %d meshes, got %d", len(want), len(meshes))
	}
	for i, m := range meshes {
		if m.PartName != want[i] {
			t.Errorf("mesh %d PartName = %q, want %q", i, m.PartName, want[i])
		}
		if m.IsEmpty() {
			t.Errorf("mesh %s is empty", m.PartName)
		}
	}
}

func TestFigureBoundsContainBoxVertices(t *testing.T) {
	k := newKernel()
	f := body.NewFigure(body.Config{Origin: geom.Point{X: 1, Y: -2, Z: 0.5}, Scale: 1.5})

	min, max, ok, err := tessellate.Bounds(f.Graph(), k)
	if err != nil || !ok {
		t.Fatalf("Bounds() ok %v, err %v", ok, err)
	}

	const tol = 1e-9
	var pts []geom.Point
	pts = append(pts, f.Torso.Vertices()...)
	pts = append(pts, f.Hips.Vertices()...)
	pts = append(pts, f.Head.Vertices()...)
	pts = append(pts, f.Hands.Vertices()...)
	pts = append(pts, f.Feet.Vertices()...)
	for _, p := range pts {
		xyz := [3]float64{p.X, p.Y, p.Z}
		for i := 0; i < 3; i++ {
			if xyz[i] < min[i]-tol || xyz[i] > max[i]+tol {
				t.Fatalf("vertex %v outside bounds %v..%v", p, min, max)
			}
		}
	}
}
