// Command driftfield-window draws the particle field in an SDL window
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/tfriedel6/canvas/sdlcanvas"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/lixenwraith/driftfield/audio"
	"github.com/lixenwraith/driftfield/config"
	"github.com/lixenwraith/driftfield/core"
	"github.com/lixenwraith/driftfield/engine"
	"github.com/lixenwraith/driftfield/event"
	"github.com/lixenwraith/driftfield/render"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flags := config.BindFlags(flag.CommandLine)
	flag.Parse()

	if flags.Debug {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "driftfield-window: %v\n", err)
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

	wnd, cv, err := sdlcanvas.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer wnd.Destroy()

	chime := audio.NewChime(cfg.ChimeSettings())
	if err := chime.Init(); err != nil {
		log.Printf("audio: %v", err)
	}
	defer chime.Close()

	palette, _ := render.LookupPalette(cfg.Palette)
	hub := event.NewHub()
	driver := engine.NewManualDriver()
	ctrl := engine.NewController(render.NewCanvasSurface(cv), driver, hub, engine.ControllerOptions{
		Simulation: engine.Options{
			Seed:     cfg.Seed,
			Palette:  palette,
			OnAbsorb: chime.Absorb,
		},
		MaxDPR:        cfg.MaxDPR,
		ReducedMotion: cfg.ReducedMotion,
	})

	host := newWindowHost(hub, cfg.PauseOnBlur, cfg.ReducedMotion)
	wnd.MouseMove = host.mouseMove
	wnd.KeyDown = func(_ int, rn rune, name string) {
		if !host.key(rn, name) {
			wnd.Close()
		}
	}
	wnd.Event = func(e sdl.Event) {
		if we, ok := e.(*sdl.WindowEvent); ok {
			host.windowEvent(we)
		}
	}
	host.publishPreferences()

	if err := ctrl.Mount(); err != nil {
		return err
	}
	defer ctrl.Unmount()

	// The main loop swaps buffers on vsync, so every iteration must draw a full frame
	wnd.MainLoop(func() {
		host.resize(cv.Width(), cv.Height())
		driver.AdvanceAt(time.Now())
	})

	log.Printf("driftfield-window: closed after %d frames", driver.Frames)
	return nil
}
