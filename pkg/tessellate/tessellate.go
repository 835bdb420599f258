// Package tessellate walks a figure's attachment graph and produces
// triangle meshes of its spatial (x, y, z) slice using a geometry kernel.
// One mesh is produced per box or cylinder part.
package tessellate

import (
	"fmt"
	"log/slog"

	"github.com/chazu/sscha/pkg/geom"
	"github.com/chazu/sscha/pkg/graph"
	"github.com/chazu/sscha/pkg/kernel"
)

// Part is a positioned solid and the graph node it was built from.
type Part struct {
	Name  string
	Solid kernel.Solid
}

// Solids walks the graph and builds one positioned solid per box and
// cylinder node, parents before children. Quads have no thickness and
// zero-length cylinders have no direction; both are skipped.
func Solids(g *graph.DesignGraph, k kernel.Kernel) ([]Part, error) {
	if g == nil {
		return nil, nil
	}

	var parts []Part
	for _, rootID := range g.Roots {
		root := g.Get(rootID)
		if root == nil {
			continue
		}
		collected, err := walkNode(g, k, root)
		if err != nil {
			return nil, fmt.Errorf("tessellate: error walking root %s: %w", rootID.Short(), err)
		}
		parts = append(parts, collected...)
	}
	return parts, nil
}

// Tessellate meshes every solid Solids returns. Mesh order follows the
// graph walk and each mesh carries its node name. The graph is never
// mutated.
func Tessellate(g *graph.DesignGraph, k kernel.Kernel) ([]*kernel.Mesh, error) {
	parts, err := Solids(g, k)
	if err != nil {
		return nil, err
	}

	meshes := make([]*kernel.Mesh, 0, len(parts))
	for _, p := range parts {
		mesh, err := k.ToMesh(p.Solid)
		if err != nil {
			return nil, fmt.Errorf("tessellate: ToMesh failed for %s: %w", p.Name, err)
		}
		mesh.PartName = p.Name
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// Bounds returns the bounding box of the union of every solid in the
// graph. ok is false when the graph has no solids.
func Bounds(g *graph.DesignGraph, k kernel.Kernel) (min, max [3]float64, ok bool, err error) {
	parts, err := Solids(g, k)
	if err != nil || len(parts) == 0 {
		return min, max, false, err
	}

	all := parts[0].Solid
	for _, p := range parts[1:] {
		all = k.Union(all, p.Solid)
	}
	min, max = all.BoundingBox()
	return min, max, true, nil
}

// walkNode builds the node's own solid, if any, then recurses into its
// children.
func walkNode(g *graph.DesignGraph, k kernel.Kernel, n *graph.Node) ([]Part, error) {
	var parts []Part

	switch n.Kind {
	case graph.NodeBox, graph.NodeCylinder:
		solid, err := buildSolid(k, n)
		if err != nil {
			return nil, err
		}
		if solid != nil {
			parts = append(parts, Part{Name: partName(n), Solid: solid})
		}

	case graph.NodeQuad:
		// Zero thickness; the slice has nothing to mesh.

	case graph.NodePair:
		// Container only.

	default:
		return nil, fmt.Errorf("unknown node kind: %v", n.Kind)
	}

	for _, child := range g.Children(n) {
		collected, err := walkNode(g, k, child)
		if err != nil {
			return nil, err
		}
		parts = append(parts, collected...)
	}
	return parts, nil
}

// buildSolid positions a primitive in the spatial slice. It returns a nil
// solid for parts that cannot be meshed.
func buildSolid(k kernel.Kernel, n *graph.Node) (kernel.Solid, error) {
	switch data := n.Data.(type) {
	case graph.BoxData:
		h := data.HalfExtents
		solid, err := k.Box(h[0], h[1], h[2])
		if err != nil {
			return nil, fmt.Errorf("box %s: %w", partName(n), err)
		}
		c := data.Center
		return k.Translate(solid, c.X, c.Y, c.Z), nil

	case graph.CylinderData:
		axis := data.Axis()
		spatial := geom.Vector{DX: axis.DX, DY: axis.DY, DZ: axis.DZ}
		length := spatial.Norm()
		if length < geom.Epsilon {
			slog.Debug("tessellate: skipping zero-length cylinder", "part", partName(n))
			return nil, nil
		}
		solid, err := k.Cylinder(length, data.Radius, data.Radial)
		if err != nil {
			return nil, fmt.Errorf("cylinder %s: %w", partName(n), err)
		}
		solid = k.Orient(solid, [3]float64{axis.DX, axis.DY, axis.DZ})
		mid := data.Origin.Add(axis.Scale(0.5))
		return k.Translate(solid, mid.X, mid.Y, mid.Z), nil

	default:
		return nil, fmt.Errorf("node %s has unsupported data type %T", n.ID.Short(), n.Data)
	}
}

// partName prefers the node's Name and falls back to its short ID.
func partName(n *graph.Node) string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID.Short()
}
