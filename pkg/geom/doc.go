// Package geom defines the 5D value types the figure toolkit is built from.
// Coordinates are (x, y, z, w, v): x, y and z are spatial, w and v are the
// extended axes. Points, vectors and planes are immutable values.
package geom
