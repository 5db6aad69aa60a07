package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"floatinghearts/game"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	count := flag.Int("count", 0, "number of hearts (overrides config)")
	seed := flag.Int64("seed", 0, "random seed (overrides config, 0 uses the clock)")
	tps := flag.Int("tps", 0, "frames per second (overrides config)")
	logPath := flag.String("log", "", "log file; logging is discarded while the screen is active otherwise")
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
	if *tps > 0 {
		config.TPS = *tps
	}
	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "hearts-term: %v\n", err)
		os.Exit(1)
	}
}

func run(config game.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	surface := game.NewTerminalSurface(screen, config.BackgroundColor())
	width, height := surface.Size()
	field := game.NewFieldFromConfig(config, width, height, rand.New(rand.NewSource(config.Seed)))
	log.Printf("Starting %d hearts on %dx%d virtual pixels (seed %d)", config.Count, width, height, config.Seed)

	scheduler := game.NewTickerScheduler(config.TPS)
	animator := game.NewAnimator(field, surface, scheduler)
	animator.OnFrame(func(int) { surface.Present() })
	animator.Start()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if isQuit(ev) {
				cancel()
				return
			}
		}
	}()

	err = scheduler.Run(ctx)
	log.Printf("Stopped after %d frames", animator.Frames())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func isQuit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q'
	}
	return false
}
