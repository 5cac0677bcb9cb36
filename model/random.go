package model

// Rand is the injected random source. *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform int in [0, n)
	Intn(n int) int
}

// RandomBoard returns a board of maxX*maxY/loadFactor cells drawn uniformly from
// [0, maxX] x [0, maxY], bounds inclusive. Smaller load factors give denser boards.
// Duplicate draws collapse, so the board may hold fewer cells than requested.
func RandomBoard(rng Rand, maxX, maxY int, loadFactor int) Board {
	if maxX < 0 || maxY < 0 || loadFactor <= 0 {
		return Board{}
	}

	count := maxX * maxY / loadFactor
	board := make(Board, count)
	for range count {
		c := Cell{X: rng.Intn(maxX + 1), Y: rng.Intn(maxY + 1)}
		board[c] = Stable
	}
	return board
}
