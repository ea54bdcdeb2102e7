// Command driftfield-snapshot renders the field headlessly and writes a PNG
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"

	"github.com/lixenwraith/driftfield/config"
	"github.com/lixenwraith/driftfield/engine"
	"github.com/lixenwraith/driftfield/event"
	"github.com/lixenwraith/driftfield/render"
	"github.com/lixenwraith/driftfield/status"
)

func main() {
	flags := config.BindFlags(flag.CommandLine)
	output := flag.String("o", "", "output PNG (default from config)")
	frames := flag.Int("frames", 0, "frames to simulate before capture (default from config)")
	flag.Parse()

	if flags.Debug {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	if err := run(flags, *output, *frames); err != nil {
		fmt.Fprintf(os.Stderr, "driftfield-snapshot: %v\n", err)
		os.Exit(1)
	}
}

func run(flags *config.Flags, output string, frames int) error {
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

	snap := cfg.Snapshot
	if output != "" {
		snap.Output = output
	}
	if frames > 0 {
		snap.Frames = frames
	}

	palette, _ := render.LookupPalette(cfg.Palette)
	reg := status.NewRegistry()
	img, err := renderSnapshot(snap, engine.ControllerOptions{
		Simulation:    engine.Options{Seed: cfg.Seed, Palette: palette, Status: reg},
		MaxDPR:        cfg.MaxDPR,
		ReducedMotion: cfg.ReducedMotion,
	})
	if err != nil {
		return err
	}

	if err := writePNG(snap.Output, img); err != nil {
		return err
	}
	s := reg.Snapshot()
	fmt.Printf("%s: %dx%d, %d frames, %d particles, %d merges, %d absorbed\n",
		snap.Output, img.Bounds().Dx(), img.Bounds().Dy(), snap.Frames, s.Live, s.Merges, s.Absorbed)
	return nil
}

// renderSnapshot simulates snap.Frames frames on a software canvas and returns the backing image
// The canvas is sized in device pixels; the controller scales drawing by the capped DPR
func renderSnapshot(snap config.SnapshotConfig, opts engine.ControllerOptions) (*image.RGBA, error) {
	scale := snap.DPR
	if scale <= 0 {
		scale = 1
	}
	if opts.ReducedMotion && scale > 1 {
		scale = 1
	}
	if opts.MaxDPR > 0 && scale > opts.MaxDPR {
		scale = opts.MaxDPR
	}
	backend := softwarebackend.New(int(float64(snap.Width)*scale), int(float64(snap.Height)*scale))
	cv := canvas.New(backend)

	hub := event.NewHub()
	hub.Publish(event.Event{Type: event.Resize, W: float64(snap.Width), H: float64(snap.Height), DPR: snap.DPR})
	hub.Publish(event.Event{Type: event.ReducedMotion, Flag: opts.ReducedMotion})

	driver := engine.NewManualDriver()
	ctrl := engine.NewController(render.NewCanvasSurface(cv), driver, hub, opts)
	if err := ctrl.Mount(); err != nil {
		return nil, err
	}
	defer ctrl.Unmount()

	if ran := driver.AdvanceN(snap.Frames); ran != snap.Frames {
		return nil, fmt.Errorf("frame loop stopped after %d of %d frames", ran, snap.Frames)
	}
	return backend.Image, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
