package config

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func parseFlags(t *testing.T, args ...string) (*flag.FlagSet, *Flags) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return fs, f
}

func TestFlagsOnlyOverrideWhatIsSet(t *testing.T) {
	cfg := Default()
	cfg.Palette = "ember"
	cfg.FPS = 30

	fs, f := parseFlags(t, "--seed", "42", "--hud", "--chime")
	if err := f.Apply(fs, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 42 || !cfg.HUD || !cfg.Chime.Enabled {
		t.Errorf("set flags not applied: %+v", cfg)
	}
	if cfg.Palette != "ember" || cfg.FPS != 30 {
		t.Errorf("unset flags overrode file values: palette %q fps %d", cfg.Palette, cfg.FPS)
	}
}

func TestFlagsPathAndDebug(t *testing.T) {
	fs, f := parseFlags(t, "--config", "field.toml", "--debug", "--write-config", "out.toml", "--pause-on-blur=false")
	if f.Path != "field.toml" || !f.Debug || f.WriteConfig != "out.toml" {
		t.Errorf("flags = %+v", f)
	}
	cfg := Default()
	if err := f.Apply(fs, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.PauseOnBlur {
		t.Error("pause-on-blur=false not applied")
	}
}

func TestFlagsValidate(t *testing.T) {
	fs, f := parseFlags(t, "--palette", "neon", "--fps", "1000")
	cfg := Default()
	err := f.Apply(fs, &cfg)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}
