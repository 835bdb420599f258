package graph

import "fmt"

// Slice is the fixed (w, v) coordinate pair a figure is built on.
type Slice struct {
	W, V float64
}

// DesignGraph is the attachment graph of one figure.
type DesignGraph struct {
	Nodes     map[NodeID]*Node
	Roots     []NodeID
	NameIndex map[string]NodeID
	Slice     *Slice // nil when parts are not bound to a slice
}

// New creates an empty DesignGraph.
func New() *DesignGraph {
	return &DesignGraph{
		Nodes:     make(map[NodeID]*Node),
		NameIndex: make(map[string]NodeID),
	}
}

// AddNode adds a node to the graph. It does not check for duplicates.
func (g *DesignGraph) AddNode(n *Node) {
	g.Nodes[n.ID] = n
	if n.Name != "" {
		g.NameIndex[n.Name] = n.ID
	}
}

// AddRoot registers a node ID as a root of the graph.
func (g *DesignGraph) AddRoot(id NodeID) {
	g.Roots = append(g.Roots, id)
}

// Lookup returns the node with the given name, or nil.
func (g *DesignGraph) Lookup(name string) *Node {
	id, ok := g.NameIndex[name]
	if !ok {
		return nil
	}
	return g.Nodes[id]
}

// MustLookup returns the node with the given name, or panics.
func (g *DesignGraph) MustLookup(name string) *Node {
	n := g.Lookup(name)
	if n == nil {
		panic(fmt.Sprintf("graph: no node named %q", name))
	}
	return n
}

// Get returns the node with the given ID, or nil.
func (g *DesignGraph) Get(id NodeID) *Node {
	return g.Nodes[id]
}

// Children returns the child nodes of the given node in declaration order.
func (g *DesignGraph) Children(n *Node) []*Node {
	children := make([]*Node, 0, len(n.Children))
	for _, cid := range n.Children {
		if c := g.Nodes[cid]; c != nil {
			children = append(children, c)
		}
	}
	return children
}

// Walk visits every node reachable from the roots depth-first, parents
// before children, in declaration order. Returning false from fn stops the
// walk.
func (g *DesignGraph) Walk(fn func(n *Node) bool) {
	seen := make(map[NodeID]bool, len(g.Nodes))
	var visit func(id NodeID) bool
	visit = func(id NodeID) bool {
		if seen[id] {
			return true
		}
		seen[id] = true
		n := g.Nodes[id]
		if n == nil {
			return true
		}
		if !fn(n) {
			return false
		}
		for _, cid := range n.Children {
			if !visit(cid) {
				return false
			}
		}
		return true
	}
	for _, id := range g.Roots {
		if !visit(id) {
			return
		}
	}
}

// NodeCount returns the total number of nodes.
func (g *DesignGraph) NodeCount() int {
	return len(g.Nodes)
}
