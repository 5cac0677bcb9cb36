package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/term-life/model"
	"github.com/sheikhrachel/term-life/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			fmt.Println("Ignoring config:", err)
		}
		config = utils.DefaultConfig()
	}

	renderer, err := model.OpenTerminal()
	if err != nil {
		log.Fatalf("opening terminal: %v", err)
	}

	g := initializeGame(config, renderer)
	run(g)

	renderer.Fini()
	displayFinalStats(g)
}

// run loops over frames until a quit key, a signal, or the generation limit
func run(g *game) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	quit := make(chan struct{}, 1)
	go pollQuit(g.renderer.Screen(), quit)

	lastFrameTime := time.Now()
	for {
		select {
		case <-sigChan:
			return
		case <-quit:
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		frameEnd := frameStart.Add(g.config.FrameRate)

		if err := g.step(); err != nil {
			g.renderer.Fini()
			log.Fatalf("advancing generation %d: %v", g.generation, err)
		}
		g.stats.Update(g.generation, g.board.Population(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if g.reachedLimit() {
			return
		}

		utils.SleepUntil(frameEnd)
		g.renderer.Clear(g.height)
	}
}
