package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/term-life/model"
	"github.com/sheikhrachel/term-life/utils"
)

// game holds everything the frame loop mutates
type game struct {
	config   utils.Config
	renderer *model.TerminalRenderer
	pool     *model.BoardPool
	stats    *utils.Stats
	rng      *rand.Rand
	detector *model.BoredomDetector
	clip     model.Clipper
	board    model.Board

	width, height int
	generation    int
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, renderer *model.TerminalRenderer) *game {
	var pool *model.BoardPool
	if config.UseMemoryPool {
		pool = model.NewBoardPool()
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	width, height := gridSize(config, renderer)
	return &game{
		config:   config,
		renderer: renderer,
		pool:     pool,
		stats:    utils.NewStats(),
		rng:      rng,
		detector: model.NewBoredomDetector(rng),
		clip:     model.NewClipper(width, height),
		board:    model.RandomBoard(rng, width-1, height-1, config.LoadFactor),
		width:    width,
		height:   height,
	}
}

// gridSize takes the terminal dimensions unless the config pins them
func gridSize(config utils.Config, renderer *model.TerminalRenderer) (width, height int) {
	width, height = renderer.Size()
	if config.Width > 0 {
		width = config.Width
	}
	if config.Height > 0 {
		height = config.Height
	}
	return width, height
}

// step advances one frame: next generation, draw, maybe nudge, flush.
func (g *game) step() error {
	next, err := model.NextBoard(g.board, g.clip, g.config, g.pool)
	if err != nil {
		return err
	}
	model.BoardToPool(g.board, g.pool)
	g.board = next
	g.generation++

	g.renderer.Draw(g.board)

	// If the pattern is stuck in a loop, give it a nudge
	if g.detector.IsBored(g.board) {
		g.board.Merge(model.RandomBoard(g.rng, g.width-1, g.height-1, g.config.NudgingLoadFactor))
		g.stats.Nudged()
	}

	g.renderer.Show()
	return nil
}

// reachedLimit reports whether MaxGenerations has been hit
func (g *game) reachedLimit() bool {
	return g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations
}

// isQuitKey reports whether ev asks the program to stop
func isQuitKey(ev tcell.Event) bool {
	keyEv, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	return keyEv.Key() == tcell.KeyCtrlC || keyEv.Key() == tcell.KeyEscape || keyEv.Rune() == 'q'
}

// pollQuit forwards quit keys from the screen until the screen is finalized
func pollQuit(screen tcell.Screen, quit chan<- struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if isQuitKey(ev) {
			select {
			case quit <- struct{}{}:
			default:
			}
			return
		}
	}
}

// displayFinalStats prints a summary once the terminal has been restored
func displayFinalStats(g *game) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		g.generation, time.Since(g.stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, %d nudges\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Nudges)
}
