// Package kernel defines the solid-modeling interface used to inspect the
// spatial (x, y, z) slice of a figure. Implementations live in
// subpackages; the rest of the module only sees Kernel and Solid.
package kernel

// Solid is an opaque handle to a kernel solid.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel builds and meshes 3D solids.
type Kernel interface {
	// Primitives, centered on the origin.
	Box(hx, hy, hz float64) (Solid, error)
	Cylinder(height, radius float64, segments int) (Solid, error) // along +Z

	Union(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Orient(s Solid, dir [3]float64) Solid // rotates +Z onto dir

	ToMesh(s Solid) (*Mesh, error)
}
