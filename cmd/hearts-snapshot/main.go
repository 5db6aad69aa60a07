package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"floatinghearts/game"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	frames := flag.Int("frames", 120, "number of ticks to run")
	every := flag.Int("every", 30, "write a PNG every N ticks")
	out := flag.String("out", "snapshots", "output directory")
	width := flag.Int("width", 0, "surface width (overrides config)")
	height := flag.Int("height", 0, "surface height (overrides config)")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	config := game.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = game.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *width > 0 {
		config.ScreenWidth = *width
	}
	if *height > 0 {
		config.ScreenHeight = *height
	}
	config.Seed = *seed
	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}
	if *frames <= 0 || *every <= 0 {
		log.Fatalf("frames and every must be positive, got %d and %d", *frames, *every)
	}

	if err := os.MkdirAll(*out, 0755); err != nil {
		log.Fatalf("Failed to create output dir: %v", err)
	}

	written, err := render(config, *frames, *every, *out)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %d snapshots to %s", written, *out)
}

// render runs the animation headless, writing every n-th frame as a PNG
func render(config game.Config, frames, every int, dir string) (int, error) {
	surface := game.NewRasterSurface(config.ScreenWidth, config.ScreenHeight, config.BackgroundColor())
	width, height := surface.Size()
	field := game.NewFieldFromConfig(config, width, height, rand.New(rand.NewSource(config.Seed)))

	scheduler := &game.FrameScheduler{}
	animator := game.NewAnimator(field, surface, scheduler)

	written := 0
	var saveErr error
	animator.OnFrame(func(int) {
		n := animator.Frames()
		if saveErr != nil || n%uint64(every) != 0 {
			return
		}
		name := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", n))
		if err := surface.SavePNG(name); err != nil {
			saveErr = err
			return
		}
		written++
	})
	animator.Start()

	for i := 0; i < frames && saveErr == nil; i++ {
		scheduler.Fire()
	}
	return written, saveErr
}
