package graph

import "fmt"

// ValidationSeverity indicates whether a validation finding blocks use of
// the graph or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks use
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	NodeID   NodeID             // which node has the problem (zero if graph-level)
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.NodeID.IsZero() {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] node %s: %s", e.Severity, e.NodeID.Short(), e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	NodeID  NodeID
	Message string
}

// ValidationResult bundles errors (blocking) and warnings (advisory)
// from all validation tiers.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// OK reports whether the result carries no blocking errors.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Validate runs the structural checks on the graph and returns every
// finding. An empty slice means the graph is valid. It never mutates g.
func Validate(g *DesignGraph) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateTree(g)...)
	errs = append(errs, validatePairs(g)...)
	return errs
}

// ValidateAll runs the structural and geometric tiers and separates
// errors from warnings.
func ValidateAll(g *DesignGraph) ValidationResult {
	tier1 := Validate(g)
	tier2Errs, tier2Warnings := validateGeometry(g)

	var result ValidationResult
	for _, e := range tier1 {
		if e.Severity == SeverityWarning {
			result.Warnings = append(result.Warnings, ValidationWarning{
				NodeID:  e.NodeID,
				Message: e.Message,
			})
		} else {
			result.Errors = append(result.Errors, e)
		}
	}

	result.Errors = append(result.Errors, tier2Errs...)
	result.Warnings = append(result.Warnings, tier2Warnings...)

	return result
}

// validateTree checks that the nodes form a tree hanging off the roots:
// every root and child reference resolves, no node is its own ancestor or
// has two parents, and names are unique. Nodes the roots never reach are
// reported as orphan warnings.
func validateTree(g *DesignGraph) []ValidationError {
	var errs []ValidationError
	fail := func(id NodeID, format string, args ...any) {
		errs = append(errs, ValidationError{NodeID: id, Message: fmt.Sprintf(format, args...), Severity: SeverityError})
	}

	attached := make(map[NodeID]bool, len(g.Nodes))
	onPath := make(map[NodeID]bool)
	var descend func(id NodeID)
	descend = func(id NodeID) {
		onPath[id] = true
		for _, cid := range g.Nodes[id].Children {
			switch c, ok := g.Nodes[cid]; {
			case !ok:
				fail(id, "child reference %s does not exist", cid.Short())
			case onPath[cid]:
				fail(cid, "cycle detected: %q is its own ancestor", c.Name)
			case attached[cid] || g.isRoot(cid):
				fail(cid, "%q is attached to more than one parent", c.Name)
			default:
				attached[cid] = true
				descend(cid)
			}
		}
		onPath[id] = false
	}
	for _, rid := range g.Roots {
		if _, ok := g.Nodes[rid]; !ok {
			fail(ZeroID, "root reference %s does not exist", rid.Short())
			continue
		}
		descend(rid)
	}

	owners := make(map[string]int, len(g.Nodes))
	for id, n := range g.Nodes {
		if n.Name != "" {
			owners[n.Name]++
		}
		if !attached[id] && !g.isRoot(id) {
			errs = append(errs, ValidationError{
				NodeID:   id,
				Message:  fmt.Sprintf("node %q is not reachable from any root (orphan)", n.Name),
				Severity: SeverityWarning,
			})
		}
	}
	for name, n := range owners {
		if n > 1 {
			fail(ZeroID, "duplicate name %q assigned to %d nodes", name, n)
		}
	}

	return errs
}

func (g *DesignGraph) isRoot(id NodeID) bool {
	for _, rid := range g.Roots {
		if rid == id {
			return true
		}
	}
	return false
}

// validatePairs checks that every pair node has exactly two children of
// the same kind.
func validatePairs(g *DesignGraph) []ValidationError {
	var errs []ValidationError

	for _, node := range g.Nodes {
		if node.Kind != NodePair {
			continue
		}
		if len(node.Children) != 2 {
			errs = append(errs, ValidationError{
				NodeID:   node.ID,
				Message:  fmt.Sprintf("pair %q has %d sides, want 2", node.Name, len(node.Children)),
				Severity: SeverityError,
			})
			continue
		}
		left, right := g.Nodes[node.Children[0]], g.Nodes[node.Children[1]]
		if left != nil && right != nil && left.Kind != right.Kind {
			errs = append(errs, ValidationError{
				NodeID:   node.ID,
				Message:  fmt.Sprintf("pair %q mixes %s and %s sides", node.Name, left.Kind, right.Kind),
				Severity: SeverityError,
			})
		}
	}

	return errs
}
