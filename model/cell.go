package model

import "github.com/sheikhrachel/term-life/model/state"

// CellState re-exports state.CellState so callers only need to import model
type CellState = state.CellState

const (
	Survived = state.Survived
	Born     = state.Born
	Stable   = state.Stable

	// NumStates is the number of cell states a renderer must draw
	NumStates = state.NumStates
)

// Cell is a grid position. It has no bounds of its own; a BoundaryPolicy decides whether it is valid.
type Cell struct {
	X, Y int
}

// Neighbors returns the 8 Moore neighbors of c, possibly out of bounds
func Neighbors(c Cell) [8]Cell {
	return [8]Cell{
		{c.X + 1, c.Y},
		{c.X - 1, c.Y},
		{c.X, c.Y + 1},
		{c.X, c.Y - 1},
		{c.X + 1, c.Y + 1},
		{c.X + 1, c.Y - 1},
		{c.X - 1, c.Y + 1},
		{c.X - 1, c.Y - 1},
	}
}
