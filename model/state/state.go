package state

// CellState tells the renderer how a live cell came to be alive. It only picks a color.
type CellState uint8

const (
	// Survived is a live cell kept alive by exactly 3 live neighbors
	Survived CellState = iota
	// Born is a dead cell brought to life by exactly 3 live neighbors
	Born
	// Stable is a live cell kept alive by exactly 2 live neighbors
	Stable
)

// NumStates is the number of CellState variants a renderer must map.
const NumStates = 3

func (s CellState) String() string {
	switch s {
	case Survived:
		return "survived"
	case Born:
		return "born"
	case Stable:
		return "stable"
	}
	return "unknown"
}
