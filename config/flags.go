package config

import "flag"

// Flags holds command-line overrides; only flags actually given are applied
type Flags struct {
	Path        string
	Debug       bool
	WriteConfig string

	fps         int
	seed        uint64
	maxDPR      float64
	palette     string
	reduced     bool
	hud         bool
	chime       bool
	pauseOnBlur bool
}

// BindFlags registers the shared flags on fs
func BindFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	d := Default()
	fs.StringVar(&f.Path, "config", "", "TOML config file (default $"+EnvPrefix+"CONFIG)")
	fs.BoolVar(&f.Debug, "debug", false, "write a debug log to logs/")
	fs.StringVar(&f.WriteConfig, "write-config", "", "write the resolved configuration to this file and exit")
	fs.IntVar(&f.fps, "fps", d.FPS, "frame rate")
	fs.Uint64Var(&f.seed, "seed", 0, "random seed, 0 seeds from the clock")
	fs.Float64Var(&f.maxDPR, "max-dpr", d.MaxDPR, "device pixel ratio cap")
	fs.StringVar(&f.palette, "palette", d.Palette, "color palette")
	fs.BoolVar(&f.reduced, "reduced-motion", d.ReducedMotion, "start with reduced motion")
	fs.BoolVar(&f.hud, "hud", d.HUD, "show the metrics overlay")
	fs.BoolVar(&f.chime, "chime", d.Chime.Enabled, "play a tone when a particle is absorbed")
	fs.BoolVar(&f.pauseOnBlur, "pause-on-blur", d.PauseOnBlur, "pause while the terminal or window is unfocused")
	return f
}

// Apply copies the flags set on fs into cfg and revalidates
func (f *Flags) Apply(fs *flag.FlagSet, cfg *Config) error {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "fps":
			cfg.FPS = f.fps
		case "seed":
			cfg.Seed = f.seed
		case "max-dpr":
			cfg.MaxDPR = f.maxDPR
		case "palette":
			cfg.Palette = f.palette
		case "reduced-motion":
			cfg.ReducedMotion = f.reduced
		case "hud":
			cfg.HUD = f.hud
		case "chime":
			cfg.Chime.Enabled = f.chime
		case "pause-on-blur":
			cfg.PauseOnBlur = f.pauseOnBlur
		}
	})
	return cfg.Validate()
}
