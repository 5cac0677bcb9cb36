package model

import (
	"testing"

	"github.com/sheikhrachel/term-life/utils"
)

func boardOf(cells ...Cell) Board {
	b := make(Board, len(cells))
	for _, c := range cells {
		b[c] = Stable
	}
	return b
}

func sameCells(a, b Board) bool {
	if len(a) != len(b) {
		return false
	}
	for c := range a {
		if !b.Alive(c) {
			return false
		}
	}
	return true
}

func TestNeighbors(t *testing.T) {
	center := Cell{X: 4, Y: 7}
	seen := make(map[Cell]bool)
	for _, n := range Neighbors(center) {
		if n == center {
			t.Fatalf("Neighbors(%v) includes the cell itself", center)
		}
		dx, dy := n.X-center.X, n.Y-center.Y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Errorf("Neighbors(%v) returned non-adjacent %v", center, n)
		}
		seen[n] = true
	}
	if len(seen) != 8 {
		t.Errorf("Neighbors(%v) returned %d distinct cells, want 8", center, len(seen))
	}
}

func TestClipper(t *testing.T) {
	clip := NewClipper(10, 5)
	tests := []struct {
		cell Cell
		want bool
	}{
		{Cell{0, 0}, true},
		{Cell{9, 4}, true},
		{Cell{-1, 0}, false},
		{Cell{0, -1}, false},
		{Cell{10, 0}, false},
		{Cell{0, 5}, false},
	}
	for _, tt := range tests {
		got, ok := clip.Clip(tt.cell)
		if ok != tt.want {
			t.Errorf("Clip(%v) ok = %v, want %v", tt.cell, ok, tt.want)
		}
		if ok && got != tt.cell {
			t.Errorf("Clip(%v) = %v, want the cell unchanged", tt.cell, got)
		}
	}
}

func TestAdvanceIsolatedCellDies(t *testing.T) {
	next := Advance(boardOf(Cell{5, 5}), NewClipper(10, 10))
	if next.Population() != 0 {
		t.Errorf("isolated cell: got population %d, want 0", next.Population())
	}
}

func TestAdvanceBirth(t *testing.T) {
	p := Cell{5, 5}
	board := boardOf(Cell{4, 4}, Cell{6, 4}, Cell{5, 6})

	next := Advance(board, NewClipper(10, 10))
	s, ok := next[p]
	if !ok {
		t.Fatalf("cell %v with 3 live neighbors was not born", p)
	}
	if s != Born {
		t.Errorf("cell %v state = %v, want %v", p, s, Born)
	}
}

func TestAdvanceSurvivalStates(t *testing.T) {
	clip := NewClipper(20, 20)
	center := Cell{10, 10}
	around := Neighbors(center)

	tests := []struct {
		name      string
		neighbors int
		want      CellState
		wantAlive bool
	}{
		{"zero neighbors", 0, 0, false},
		{"one neighbor", 1, 0, false},
		{"two neighbors", 2, Stable, true},
		{"three neighbors", 3, Survived, true},
		{"four neighbors", 4, 0, false},
		{"eight neighbors", 8, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardOf(center)
			for _, n := range around[:tt.neighbors] {
				board[n] = Stable
			}

			s, ok := Advance(board, clip)[center]
			if ok != tt.wantAlive {
				t.Fatalf("center alive = %v, want %v", ok, tt.wantAlive)
			}
			if ok && s != tt.want {
				t.Errorf("center state = %v, want %v", s, tt.want)
			}
		})
	}
}

func TestAdvanceClipsAtEdge(t *testing.T) {
	clip := NewClipper(10, 10)
	// Vertical blinker on the left edge would grow into x = -1 if wrapped or unclipped
	board := boardOf(Cell{0, 3}, Cell{0, 4}, Cell{0, 5}, Cell{1, 4})

	for range 5 {
		board = Advance(board, clip)
		for c := range board {
			if _, ok := clip.Clip(c); !ok {
				t.Fatalf("out of bounds cell %v in output", c)
			}
			if c.X == -1 {
				t.Fatalf("cell wrapped to x = -1: %v", c)
			}
		}
	}
}

func TestAdvanceDropsOutOfBoundsInput(t *testing.T) {
	// A board holding an out-of-range cell still yields only in-range cells
	board := boardOf(Cell{-1, 0}, Cell{-1, 1}, Cell{-1, 2})
	next := Advance(board, NewClipper(5, 5))
	for c := range next {
		if c.X < 0 {
			t.Errorf("out of bounds cell %v survived clipping", c)
		}
	}
}

func TestAdvanceIsDeterministicAndPure(t *testing.T) {
	board := boardOf(Cell{1, 0}, Cell{2, 1}, Cell{0, 2}, Cell{1, 2}, Cell{2, 2}, Cell{7, 7}, Cell{7, 8}, Cell{7, 9})
	before := board.Clone()
	clip := NewClipper(12, 12)

	first := Advance(board, clip)
	second := Advance(board, clip)

	if len(first) != len(second) {
		t.Fatalf("repeated Advance gave %d and %d cells", len(first), len(second))
	}
	for c, s := range first {
		if second[c] != s || !second.Alive(c) {
			t.Errorf("cell %v differs between runs", c)
		}
	}
	if len(board) != len(before) {
		t.Fatalf("Advance mutated its input")
	}
	for c, s := range before {
		if board[c] != s {
			t.Errorf("Advance mutated input cell %v", c)
		}
	}
}

func TestAdvanceGliderTranslates(t *testing.T) {
	glider := boardOf(Cell{1, 0}, Cell{2, 1}, Cell{0, 2}, Cell{1, 2}, Cell{2, 2})
	clip := NewClipper(50, 50)

	board := glider
	for range 4 {
		board = Advance(board, clip)
	}

	want := make(Board, len(glider))
	for c := range glider {
		want[Cell{c.X + 1, c.Y + 1}] = Stable
	}
	if !sameCells(board, want) {
		t.Errorf("glider after 4 generations = %v, want %v", board, want)
	}
}

func TestAdvanceBlinkerStates(t *testing.T) {
	board := boardOf(Cell{4, 5}, Cell{5, 5}, Cell{6, 5})
	next := Advance(board, Unbounded{})

	want := Board{
		{5, 4}: Born,
		{5, 5}: Stable,
		{5, 6}: Born,
	}
	if len(next) != len(want) {
		t.Fatalf("blinker: got %v, want %v", next, want)
	}
	for c, s := range want {
		if next[c] != s || !next.Alive(c) {
			t.Errorf("blinker cell %v = %v, want %v", c, next[c], s)
		}
	}
}

func TestAdvanceParallelMatchesSerial(t *testing.T) {
	board := RandomBoard(&seqRand{}, 30, 20, 3)
	clip := NewClipper(31, 21)
	want := Advance(board, clip)

	for _, workers := range []int{0, 1, 3, 64} {
		got, err := AdvanceParallel(board, clip, workers)
		if err != nil {
			t.Fatalf("AdvanceParallel(workers=%d) error: %v", workers, err)
		}
		if len(got) != len(want) {
			t.Fatalf("workers=%d: got %d cells, want %d", workers, len(got), len(want))
		}
		for c, s := range want {
			if got[c] != s || !got.Alive(c) {
				t.Errorf("workers=%d: cell %v = %v, want %v", workers, c, got[c], s)
			}
		}
	}
}

func TestAdvanceParallelEmptyBoard(t *testing.T) {
	got, err := AdvanceParallel(Board{}, NewClipper(5, 5), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Population() != 0 {
		t.Errorf("empty board advanced to %d cells", got.Population())
	}
}

func TestNextBoardUsesPool(t *testing.T) {
	pool := NewBoardPool()
	board := boardOf(Cell{4, 5}, Cell{5, 5}, Cell{6, 5})
	clip := NewClipper(10, 10)

	for _, parallel := range []bool{false, true} {
		config := utils.DefaultConfig()
		config.UseParallel = parallel
		config.Workers = 2

		next, err := NextBoard(board, clip, config, pool)
		if err != nil {
			t.Fatalf("parallel=%v: unexpected error: %v", parallel, err)
		}
		if !sameCells(next, Advance(board, clip)) {
			t.Errorf("parallel=%v: NextBoard = %v", parallel, next)
		}
		BoardToPool(next, pool)
	}

	next, err := NextBoard(board, clip, utils.DefaultConfig(), nil)
	if err != nil || next.Population() != 3 {
		t.Errorf("nil pool: got %v, %v", next, err)
	}
}

func TestBoardMerge(t *testing.T) {
	b := Board{{1, 1}: Born}
	b.Merge(Board{{1, 1}: Stable, {2, 2}: Survived})

	if b.Population() != 2 {
		t.Fatalf("population = %d, want 2", b.Population())
	}
	if b[Cell{1, 1}] != Stable {
		t.Errorf("merged cell kept old state %v", b[Cell{1, 1}])
	}
}
