package body

import (
	"github.com/chazu/sscha/pkg/geom"
	"github.com/chazu/sscha/pkg/graph"
	"github.com/chazu/sscha/pkg/shape"
)

// Graph returns the attachment graph of the figure. The torso is the root;
// paired parts become a pair node with "<name>/left" and "<name>/right"
// leaves. Building twice gives graphs with identical IDs.
func (f *Figure) Graph() *graph.DesignGraph {
	g := graph.New()
	g.Slice = &graph.Slice{W: f.cfg.PlaneW, V: f.cfg.PlaneV}

	box := func(name string, center geom.Point, h shape.Extents, children ...graph.NodeID) graph.NodeID {
		id := graph.NewNodeID(name)
		g.AddNode(&graph.Node{
			ID: id, Kind: graph.NodeBox, Name: name, Children: children,
			Data: graph.BoxData{Center: center, HalfExtents: h},
		})
		return id
	}
	cylinder := func(name string, c shape.Cylinder) graph.NodeID {
		id := graph.NewNodeID(name)
		g.AddNode(&graph.Node{
			ID: id, Kind: graph.NodeCylinder, Name: name,
			Data: graph.CylinderData{Origin: c.Origin(), End: c.End(), Radius: c.Radius(), Radial: c.Radial()},
		})
		return id
	}
	pair := func(name string, left, right graph.NodeID) graph.NodeID {
		id := graph.NewNodeID(name)
		g.AddNode(&graph.Node{
			ID: id, Kind: graph.NodePair, Name: name,
			Children: []graph.NodeID{left, right},
			Data:     graph.PairData{},
		})
		return id
	}

	faceID := graph.NewNodeID(NameFace)
	g.AddNode(&graph.Node{
		ID: faceID, Kind: graph.NodeQuad, Name: NameFace,
		Data: graph.QuadData{Plane: f.Face.Plane(), Normal: f.Face.Normal(), Width: f.Face.Width(), Height: f.Face.Height()},
	})

	legs := pair(NameLegs,
		cylinder(NameLegs+"/left", f.Legs.Left.Shape()),
		cylinder(NameLegs+"/right", f.Legs.Right.Shape()))
	feet := pair(NameFeet,
		box(NameFeet+"/left", f.Feet.Left.Center(), f.Feet.Left.HalfExtents()),
		box(NameFeet+"/right", f.Feet.Right.Center(), f.Feet.Right.HalfExtents()))
	arms := pair(NameArms,
		cylinder(NameArms+"/left", f.Arms.Left.Shape()),
		cylinder(NameArms+"/right", f.Arms.Right.Shape()))
	hands := pair(NameHands,
		box(NameHands+"/left", f.Hands.Left.Center(), f.Hands.Left.HalfExtents()),
		box(NameHands+"/right", f.Hands.Right.Center(), f.Hands.Right.HalfExtents()))

	hips := box(NameHips, f.Hips.Center(), f.Hips.HalfExtents(), legs, feet)
	neck := cylinder(NameNeck, f.Neck.Shape())
	head := box(NameHead, f.Head.Center(), f.Head.HalfExtents(), faceID)
	torso := box(NameTorso, f.Torso.Center(), f.Torso.HalfExtents(), hips, neck, head, arms, hands)
	g.AddRoot(torso)

	return g
}
