package graph

// NodeKind enumerates the types of nodes in the attachment graph.
type NodeKind int

const (
	NodeBox      NodeKind = iota // 5D box part
	NodeCylinder                 // ring-approximated cylinder part
	NodeQuad                     // planar patch part
	NodePair                     // left/right container
)

func (k NodeKind) String() string {
	switch k {
	case NodeBox:
		return "box"
	case NodeCylinder:
		return "cylinder"
	case NodeQuad:
		return "quad"
	case NodePair:
		return "pair"
	default:
		return "unknown"
	}
}

// Node is a single part of the figure. Children are the parts anchored to it.
type Node struct {
	ID       NodeID
	Kind     NodeKind
	Name     string
	Children []NodeID
	Data     NodeData
}

// NodeData is the interface for kind-specific node payloads.
type NodeData interface {
	nodeData() // marker method restricting implementations to this package
}
