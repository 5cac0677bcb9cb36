package rules

import "github.com/sheikhrachel/term-life/model/state"

/*
NextState applies Conway's Game of Life rules to a single cell and reports the state it takes next.

Precedence:
  - 3 neighbors, already alive: Survived
  - 3 neighbors, dead: Born
  - 2 neighbors, already alive: Stable
  - anything else: the cell is absent next generation (ok == false)
*/
func NextState(neighbors int, alive bool) (next state.CellState, ok bool) {
	switch {
	case neighbors == 3 && alive:
		return state.Survived, true
	case neighbors == 3:
		return state.Born, true
	case neighbors == 2 && alive:
		return state.Stable, true
	}
	return 0, false
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine whether a cell lives.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	_, ok := NextState(neighbors, alive)
	return ok
}
