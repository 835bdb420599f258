// Package body assembles a humanoid figure in 5D from box, cylinder and
// planar parts. Every part sits on one fixed (w, v) slice chosen at
// construction; the figure's proportions scale uniformly with Config.Scale.
package body
