package graph

import (
	"fmt"

	"github.com/chazu/sscha/pkg/geom"
)

// ---------------------------------------------------------------------------
// Tier 2: geometric validation (errors + warnings)
// ---------------------------------------------------------------------------

var axisNames = [5]string{"x", "y", "z", "w", "v"}

// validateGeometry runs all Tier 2 geometric checks.
func validateGeometry(g *DesignGraph) ([]ValidationError, []ValidationWarning) {
	var errs []ValidationError
	var warnings []ValidationWarning

	errs = append(errs, validateExtents(g)...)
	errs = append(errs, validateRadii(g)...)
	errs = append(errs, validateQuadSize(g)...)

	warnings = append(warnings, validateSegmentLength(g)...)
	warnings = append(warnings, validateQuadNormal(g)...)
	warnings = append(warnings, validateSlice(g)...)

	return errs, warnings
}

// validateExtents checks that every box half-extent is non-negative.
func validateExtents(g *DesignGraph) []ValidationError {
	var errs []ValidationError

	for _, node := range g.Nodes {
		bd, ok := node.Data.(BoxData)
		if !ok {
			continue
		}
		for i, h := range bd.HalfExtents {
			if h < 0 {
				errs = append(errs, ValidationError{
					NodeID:   node.ID,
					Message:  fmt.Sprintf("%s half-extent %s is %.4f, must be non-negative", node.Name, axisNames[i], h),
					Severity: SeverityError,
				})
			}
		}
	}

	return errs
}

// validateRadii checks that cylinder radii are non-negative.
func validateRadii(g *DesignGraph) []ValidationError {
	var errs []ValidationError

	for _, node := range g.Nodes {
		cd, ok := node.Data.(CylinderData)
		if !ok {
			continue
		}
		if cd.Radius < 0 {
			errs = append(errs, ValidationError{
				NodeID:   node.ID,
				Message:  fmt.Sprintf("%s radius is %.4f, must be non-negative", node.Name, cd.Radius),
				Severity: SeverityError,
			})
		}
	}

	return errs
}

// validateQuadSize checks that patch width and height are non-negative.
func validateQuadSize(g *DesignGraph) []ValidationError {
	var errs []ValidationError

	for _, node := range g.Nodes {
		qd, ok := node.Data.(QuadData)
		if !ok {
			continue
		}
		if qd.Width < 0 || qd.Height < 0 {
			errs = append(errs, ValidationError{
				NodeID:   node.ID,
				Message:  fmt.Sprintf("%s size is %.4fx%.4f, must be non-negative", node.Name, qd.Width, qd.Height),
				Severity: SeverityError,
			})
		}
	}

	return errs
}

// validateSegmentLength warns about zero-length cylinders, which collapse
// to their two endpoints.
func validateSegmentLength(g *DesignGraph) []ValidationWarning {
	var warnings []ValidationWarning

	for _, node := range g.Nodes {
		cd, ok := node.Data.(CylinderData)
		if !ok {
			continue
		}
		if cd.Axis().Norm() < geom.Epsilon {
			warnings = append(warnings, ValidationWarning{
				NodeID:  node.ID,
				Message: fmt.Sprintf("%s has zero length; only its endpoints are generated", node.Name),
			})
		}
	}

	return warnings
}

// validateQuadNormal warns when a patch was built from a degenerate normal
// and fell back to the x/y plane.
func validateQuadNormal(g *DesignGraph) []ValidationWarning {
	var warnings []ValidationWarning

	for _, node := range g.Nodes {
		qd, ok := node.Data.(QuadData)
		if !ok {
			continue
		}
		if qd.Normal.IsDegenerate() {
			warnings = append(warnings, ValidationWarning{
				NodeID:  node.ID,
				Message: fmt.Sprintf("%s normal is degenerate; using the x/y plane", node.Name),
			})
		}
	}

	return warnings
}

// validateSlice warns about parts whose anchors leave the graph's (w, v)
// slice.
func validateSlice(g *DesignGraph) []ValidationWarning {
	if g.Slice == nil {
		return nil
	}
	var warnings []ValidationWarning

	off := func(p geom.Point) bool {
		return p.W != g.Slice.W || p.V != g.Slice.V
	}

	for _, node := range g.Nodes {
		var anchors []geom.Point
		switch d := node.Data.(type) {
		case BoxData:
			anchors = []geom.Point{d.Center}
		case CylinderData:
			anchors = []geom.Point{d.Origin, d.End}
		case QuadData:
			anchors = []geom.Point{d.Plane.Origin}
		}
		for _, p := range anchors {
			if off(p) {
				warnings = append(warnings, ValidationWarning{
					NodeID: node.ID,
					Message: fmt.Sprintf("%s anchor %v is off the (w=%g, v=%g) slice",
						node.Name, p, g.Slice.W, g.Slice.V),
				})
				break
			}
		}
	}

	return warnings
}
