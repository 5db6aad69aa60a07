package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"time"

	"floatinghearts/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	count := flag.Int("count", 0, "number of hearts (overrides config)")
	seed := flag.Int64("seed", 0, "random seed (overrides config, 0 uses the clock)")
	flag.Parse()

	config := game.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = game.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *count > 0 {
		config.Count = *count
	}
	if *seed != 0 {
		config.Seed = *seed
	}
	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	var profiler *game.Profiler
	if config.ProfileDir != "" {
		var err error
		profiler, err = game.NewProfiler(config.ProfileDir)
		if err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("Starting %d hearts on %dx%d (seed %d)", config.Count, config.ScreenWidth, config.ScreenHeight, config.Seed)
	g := game.NewGame(config, rand.New(rand.NewSource(config.Seed)), profiler)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Floating Hearts")
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	if profiler != nil {
		profiler.Wait()
	}
}
