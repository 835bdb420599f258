package graph

import (
	"crypto/sha256"
	"encoding/hex"
)

// NodeID is a content-addressed identifier derived from a node's path.
type NodeID string

// ZeroID is the empty NodeID.
const ZeroID NodeID = ""

// NewNodeID returns the identifier for the node at path. Equal paths give
// equal IDs, so two graphs built from the same figure share IDs.
func NewNodeID(path string) NodeID {
	sum := sha256.Sum256([]byte(path))
	return NodeID(hex.EncodeToString(sum[:]))
}

// Short returns the first 8 characters, for messages.
func (id NodeID) Short() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8])
}

// IsZero reports whether id is the empty ID.
func (id NodeID) IsZero() bool {
	return id == ZeroID
}
