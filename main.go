package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/orbitsim/obj"
	"github.com/milk9111/orbitsim/prefabs"
	"github.com/milk9111/orbitsim/system"
)

func main() {
	debug := flag.Bool("debug", false, "log merges and shots, show tick and FPS")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	scenarioName := flag.String("scenario", "", "scenario name in prefabs/scenarios (basename, .yaml optional)")
	headless := flag.Bool("headless", false, "run without a window and log the final state")
	ticks := flag.Int("ticks", 5000, "ticks to run in headless mode")
	watch := flag.Bool("watch", true, "reload the body catalog when prefabs/bodies.yaml changes")
	flag.Parse()

	cfg, err := prefabs.LoadConfigSpec()
	if err != nil {
		log.Fatal(err)
	}
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		log.Fatal(err)
	}

	name := *scenarioName
	if name == "" {
		names, err := prefabs.ListScenarios()
		if err != nil {
			log.Fatal(err)
		}
		name, err = promptScenario(os.Stdin, os.Stdout, names)
		if err != nil {
			log.Fatal(err)
		}
	}

	scenario, err := prefabs.LoadScenario(name, catalog)
	if err != nil {
		log.Fatal(err)
	}
	world, err := system.NewWorld(scenario, cfg)
	if err != nil {
		log.Fatal(err)
	}
	world.Collision.Debug = *debug

	queue := obj.NewCommandQueue()
	loop, err := system.NewLoop(world, catalog, queue, cfg)
	if err != nil {
		log.Fatal(err)
	}
	loop.Debug = *debug

	if *headless {
		loop.RunTicks(*ticks, time.Now())
		for _, line := range describeWorld(world) {
			log.Print(line)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *watch {
		if w, err := prefabs.NewWatcher(); err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			defer w.Close()
			go system.ForwardPrefabChanges(ctx, w.Changes, w.Errors, queue)
		}
	}

	game := NewGame(queue, cfg.ViewportSize, *debug)
	loop.Renderer = game
	title, _ := startLoop(ctx, loop)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowSize(cfg.ViewportSize, cfg.ViewportSize)
	ebiten.SetWindowTitle(title)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// startLoop runs loop on its own goroutine. The title is read first: once
// the loop runs, only Frames carry it across goroutines.
func startLoop(ctx context.Context, loop *system.Loop) (string, <-chan struct{}) {
	title := loop.Title()
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("loop: %v", err)
		}
	}()
	return title, done
}

// describeWorld summarises every body, for headless runs.
func describeWorld(w *system.World) []string {
	_, particles := w.Bodies()
	lines := make([]string, 0, len(particles)+1)
	lines = append(lines, fmt.Sprintf("%s: %d bodies", w.Scenario.Name, len(particles)))
	for _, p := range particles {
		lines = append(lines, fmt.Sprintf("%s mass=%.4g r=(%.4g, %.4g) v=(%.4g, %.4g)",
			p.Body.Name, p.Body.Mass, p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y))
	}
	return lines
}
