package model

import "sync"

// BoardToPool returns a board to the pool for reuse
func BoardToPool(board Board, pool *BoardPool) {
	if pool == nil {
		return
	}

	pool.Put(board)
}

// BoardPool recycles board maps between generations
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(Board)
			},
		},
	}
}

// Get retrieves an empty board from the pool. A nil pool allocates a fresh one.
func (p *BoardPool) Get() Board {
	if p == nil {
		return make(Board)
	}
	return p.pool.Get().(Board)
}

// Put returns a board to the pool, clearing its cells
func (p *BoardPool) Put(b Board) {
	if b == nil {
		return
	}
	clear(b)
	p.pool.Put(b)
}
