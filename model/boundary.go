package model

// BoundaryPolicy maps a candidate cell to itself when it is on the grid.
// ok is false when the cell falls off the grid and must be treated as dead.
type BoundaryPolicy interface {
	Clip(c Cell) (clipped Cell, ok bool)
}

// Clipper discards cells outside [0, Width) x [0, Height). Nothing wraps around.
//
// Width and Height should be >= 1; a degenerate clipper simply accepts no cells.
type Clipper struct {
	Width  int
	Height int
}

// NewClipper creates a clipping policy for a width x height grid
func NewClipper(width, height int) Clipper {
	return Clipper{Width: width, Height: height}
}

// Clip returns c unchanged if it is in bounds
func (cl Clipper) Clip(c Cell) (Cell, bool) {
	if c.X >= 0 && c.X < cl.Width && c.Y >= 0 && c.Y < cl.Height {
		return c, true
	}
	return Cell{}, false
}

// Unbounded accepts every cell. Useful for patterns that should never touch an edge.
type Unbounded struct{}

// Clip always returns c
func (Unbounded) Clip(c Cell) (Cell, bool) {
	return c, true
}
