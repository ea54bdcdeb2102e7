// Package config resolves runtime settings from defaults, a TOML file and the environment
// Command-line flags are applied last by each binary
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/driftfield/audio"
	"github.com/lixenwraith/driftfield/parameter"
	"github.com/lixenwraith/driftfield/render"
)

// ErrInvalid marks a value that parsed but is out of range or unknown
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix prefixes every environment override
const EnvPrefix = "DRIFTFIELD_"

// Config is the full runtime configuration
type Config struct {
	FPS           int     `toml:"fps"`
	Seed          uint64  `toml:"seed"`
	MaxDPR        float64 `toml:"max_dpr"`
	ReducedMotion bool    `toml:"reduced_motion"`
	Palette       string  `toml:"palette"`

	// PauseOnBlur maps terminal focus loss to page visibility
	PauseOnBlur bool `toml:"pause_on_blur"`
	HUD         bool `toml:"hud"`

	Chime    ChimeConfig    `toml:"chime"`
	Window   WindowConfig   `toml:"window"`
	Snapshot SnapshotConfig `toml:"snapshot"`
}

type ChimeConfig struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"`
	IntervalMs int     `toml:"interval_ms"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type SnapshotConfig struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	DPR    float64 `toml:"dpr"`
	Frames int     `toml:"frames"`
	Output string  `toml:"output"`
}

// Default returns the built-in configuration
func Default() Config {
	chime := audio.DefaultChimeConfig()
	return Config{
		FPS:         parameter.DefaultFPS,
		MaxDPR:      parameter.MaxDPR,
		Palette:     render.DefaultPalette,
		PauseOnBlur: true,
		Chime: ChimeConfig{
			Enabled:    false,
			Volume:     chime.Volume,
			IntervalMs: int(chime.MinInterval / time.Millisecond),
		},
		Window: WindowConfig{
			Title:  "driftfield",
			Width:  1280,
			Height: 800,
		},
		Snapshot: SnapshotConfig{
			Width:  1280,
			Height: 800,
			DPR:    1,
			Frames: 240,
			Output: "driftfield.png",
		},
	}
}

// Load resolves defaults, then the TOML file at path (or $DRIFTFIELD_CONFIG), then the environment
func Load(path string) (Config, error) {
	return LoadWith(path, os.LookupEnv)
}

// LoadWith is Load with an injectable environment lookup
func LoadWith(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path == "" {
		path, _ = lookup(EnvPrefix + "CONFIG")
	}
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return cfg, err
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(names, ", "))
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) {
		if v, ok := lookup(EnvPrefix + name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = b
		}
	}
	integer := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}

	integer("FPS", &c.FPS)
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSEED: %w", EnvPrefix, err))
		} else {
			c.Seed = n
		}
	}
	if v, ok := lookup(EnvPrefix + "MAX_DPR"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sMAX_DPR: %w", EnvPrefix, err))
		} else {
			c.MaxDPR = f
		}
	}
	boolean("REDUCED_MOTION", &c.ReducedMotion)
	str("PALETTE", &c.Palette)
	boolean("CHIME", &c.Chime.Enabled)
	boolean("PAUSE_ON_BLUR", &c.PauseOnBlur)
	boolean("HUD", &c.HUD)

	return errors.Join(errs...)
}

// Validate reports every out-of-range value, each wrapping ErrInvalid
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.FPS < parameter.MinFPS || c.FPS > parameter.MaxFPS {
		bad("fps %d outside [%d, %d]", c.FPS, parameter.MinFPS, parameter.MaxFPS)
	}
	if c.MaxDPR < 1 || c.MaxDPR > 4 {
		bad("max_dpr %.2f outside [1, 4]", c.MaxDPR)
	}
	if _, ok := render.LookupPalette(c.Palette); !ok {
		bad("palette %q, want one of %s", c.Palette, strings.Join(render.PaletteNames(), ", "))
	}
	if c.Chime.IntervalMs < 0 {
		bad("chime.interval_ms %d is negative", c.Chime.IntervalMs)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Snapshot.Width <= 0 || c.Snapshot.Height <= 0 {
		bad("snapshot size %dx%d", c.Snapshot.Width, c.Snapshot.Height)
	}
	if c.Snapshot.Frames < 1 {
		bad("snapshot.frames %d, want at least 1", c.Snapshot.Frames)
	}
	if c.Snapshot.DPR < 1 || c.Snapshot.DPR > 4 {
		bad("snapshot.dpr %.2f outside [1, 4]", c.Snapshot.DPR)
	}
	return errors.Join(errs...)
}

// ChimeSettings converts to the audio package form
func (c Config) ChimeSettings() audio.ChimeConfig {
	return audio.ChimeConfig{
		Enabled:     c.Chime.Enabled,
		Volume:      c.Chime.Volume,
		MinInterval: time.Duration(c.Chime.IntervalMs) * time.Millisecond,
	}
}

// Write encodes cfg as TOML to path, for --write-config
func Write(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
