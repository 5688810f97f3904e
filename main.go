/*
glpong runs one of the games built on the engine package: Pong or the
rotating cubes scene, picked by the `game` key of the config file.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/glpong/engine"
	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/games/cubes"
	"github.com/spaghettifunk/glpong/games/pong"
)

func main() {
	configPath := flag.String("config", "assets/config.toml", "path to the TOML config")
	game := flag.String("game", "", "overrides the game from the config (pong or cubes)")
	flag.Parse()

	config, err := engine.LoadConfig(*configPath)
	if err != nil {
		core.LogFatal("failed to load config: %s", err)
	}
	if *game != "" {
		config.Game = *game
		if err := config.Validate(); err != nil {
			core.LogFatal("%s", err)
		}
	}

	var g *engine.Game
	switch config.Game {
	case engine.GAME_CUBES:
		g = cubes.New(config).Game
	default:
		g = pong.New(config).Game
	}

	e, err := engine.New(g)
	if err != nil {
		core.LogFatal("failed to create the engine: %s", err)
	}

	if err := e.Initialize(); err != nil {
		core.LogFatal("failed to initialize the engine: %s", err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// the window and GL context belong to the main thread, so the goroutine only
	// stops the loop and Shutdown runs below
	go func() {
		<-sigCh
		e.Stop()
	}()

	runErr := e.Run()
	if err := e.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err)
	}
	if runErr != nil {
		os.Exit(1)
	}
}
