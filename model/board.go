package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/term-life/rules"
	"github.com/sheikhrachel/term-life/utils"
)

// Board maps every live cell to its state. Dead cells are never stored.
type Board map[Cell]CellState

// Population returns the number of live cells
func (b Board) Population() int {
	return len(b)
}

// Alive reports whether c is a live cell
func (b Board) Alive(c Cell) bool {
	_, ok := b[c]
	return ok
}

// Merge copies every cell of other into b, overwriting states on collision
func (b Board) Merge(other Board) {
	for c, s := range other {
		b[c] = s
	}
}

// Clone returns an independent copy of the board
func (b Board) Clone() Board {
	out := make(Board, len(b))
	out.Merge(b)
	return out
}

// candidates returns every live cell plus its unclipped neighbors.
// Dead cells with no live neighbor can't change state, so they are never examined.
func (b Board) candidates() []Cell {
	seen := make(map[Cell]struct{}, len(b)*9)
	for c := range b {
		seen[c] = struct{}{}
		for _, n := range Neighbors(c) {
			seen[n] = struct{}{}
		}
	}

	out := make([]Cell, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	return out
}

// liveNeighbors counts the in-bounds neighbors of c that are alive in b
func (b Board) liveNeighbors(c Cell, clip BoundaryPolicy) (count int) {
	for _, n := range Neighbors(c) {
		clipped, ok := clip.Clip(n)
		if !ok {
			continue
		}
		if b.Alive(clipped) {
			count++
		}
	}
	return
}

// step decides the next state of each cell in points and writes survivors into next.
// It only reads from b, so several steps over disjoint points may run at once.
func (b Board) step(points []Cell, clip BoundaryPolicy, next Board) {
	for _, p := range points {
		s, ok := rules.NextState(b.liveNeighbors(p, clip), b.Alive(p))
		if !ok {
			continue
		}
		if clipped, ok := clip.Clip(p); ok {
			next[clipped] = s
		}
	}
}

// Advance returns the board one generation later. The input board is left untouched.
func Advance(board Board, clip BoundaryPolicy) Board {
	return advanceInto(board, clip, make(Board, len(board)))
}

func advanceInto(board Board, clip BoundaryPolicy, next Board) Board {
	board.step(board.candidates(), clip, next)
	return next
}

// AdvanceParallel computes the same generation as Advance with the candidate set
// split across workers. Each worker fills its own partial board.
func AdvanceParallel(board Board, clip BoundaryPolicy, workers int) (Board, error) {
	return advanceParallelInto(board, clip, workers, make(Board, len(board)))
}

func advanceParallelInto(board Board, clip BoundaryPolicy, workers int, next Board) (Board, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		eg             errgroup.Group
		points         = board.candidates()
		pointsPerChunk = (len(points) + workers - 1) / workers // Ceiling division
		partials       = make([]Board, workers)
	)

	for i := range workers {
		var (
			start = i * pointsPerChunk
			end   = min(start+pointsPerChunk, len(points))
		)
		if start >= len(points) {
			break
		}

		eg.Go(func() error {
			partial := make(Board)
			board.step(points[start:end], clip, partial)
			partials[i] = partial
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[AdvanceParallel] worker failed")
	}

	for _, partial := range partials {
		next.Merge(partial)
	}
	return next, nil
}

// NextBoard calculates the next generation based on configuration.
// The new board is taken from pool when pool is non-nil.
func NextBoard(board Board, clip BoundaryPolicy, config utils.Config, pool *BoardPool) (Board, error) {
	next := pool.Get()
	if config.UseParallel {
		return advanceParallelInto(board, clip, config.Workers, next)
	}
	return advanceInto(board, clip, next), nil
}
