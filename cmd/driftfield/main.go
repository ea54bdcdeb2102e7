// Command driftfield draws the ambient particle field in the terminal
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/driftfield/audio"
	"github.com/lixenwraith/driftfield/config"
	"github.com/lixenwraith/driftfield/core"
	"github.com/lixenwraith/driftfield/engine"
	"github.com/lixenwraith/driftfield/event"
	"github.com/lixenwraith/driftfield/render"
	"github.com/lixenwraith/driftfield/status"
	"github.com/lixenwraith/driftfield/terminal"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func main() {
	// Restore the terminal before reporting a crash on the main goroutine
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flags := config.BindFlags(flag.CommandLine)
	flag.Parse()

	if logFile := setupLogging(flags.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "driftfield: %v\n", err)
		os.Exit(1)
	}
}

func run(flags *config.Flags) error {
	cfg, err := config.Load(flags.Path)
	if err != nil {
		return err
	}
	if err := flags.Apply(flag.CommandLine, &cfg); err != nil {
		return err
	}
	if flags.WriteConfig != "" {
		return config.Write(flags.WriteConfig, cfg)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	palette, _ := render.LookupPalette(cfg.Palette)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	chime := audio.NewChime(cfg.ChimeSettings())
	if err := chime.Init(); err != nil {
		// Non-fatal, the field runs silent
		log.Printf("audio: %v", err)
	}
	defer chime.Close()

	reg := status.NewRegistry()
	hub := event.NewHub()
	hud := terminal.NewHUD(render.NewCellSurface(screen), reg, cfg.HUD)

	driver := engine.NewTickerDriver(engine.IntervalForFPS(cfg.FPS))
	defer driver.Stop()

	ctrl := engine.NewController(hud, driver, hub, engine.ControllerOptions{
		Simulation: engine.Options{
			Seed:     cfg.Seed,
			Status:   reg,
			Palette:  palette,
			OnAbsorb: chime.Absorb,
		},
		MaxDPR:        cfg.MaxDPR,
		ReducedMotion: cfg.ReducedMotion,
	})

	host := terminal.NewHost(screen, hub, hud, terminal.HostOptions{
		PauseOnBlur:   cfg.PauseOnBlur,
		ReducedMotion: cfg.ReducedMotion,
		Smoothing:     true,
		FPS:           cfg.FPS,
	})

	if err := ctrl.Mount(); err != nil {
		return err
	}
	defer ctrl.Unmount()

	log.Printf("driftfield: running palette=%s fps=%d seed=%d", cfg.Palette, cfg.FPS, cfg.Seed)
	host.Run()

	snap := reg.Snapshot()
	log.Printf("driftfield: exit merges=%d absorbed=%d recycled=%d reseeds=%d", snap.Merges, snap.Absorbed, snap.Recycled, snap.Reseeds)
	return nil
}
