package terminal

import (
	"strings"
	"testing"

	"github.com/lixenwraith/driftfield/render"
	"github.com/lixenwraith/driftfield/status"
)

func TestHUDLines(t *testing.T) {
	lines := HUDLines(status.Snapshot{
		Live: 120, Target: 160, FPS: 59.6, FrameMs: 0.42,
		Merges: 3, Absorbed: 7, Recycled: 2,
		Palette: "ember", DPR: 2, Reseeds: 1, Running: true,
	})
	want := []string{"particles 120/160", "60 fps", "merges 3", "absorbed 7", "ember", "motion full", "scale 2", "running"}
	joined := strings.Join(lines, "\n")
	for _, w := range want {
		if !strings.Contains(joined, w) {
			t.Errorf("HUD missing %q in:\n%s", w, joined)
		}
	}

	paused := strings.Join(HUDLines(status.Snapshot{ReducedMotion: true}), "\n")
	if !strings.Contains(paused, "paused") || !strings.Contains(paused, "motion reduced") {
		t.Errorf("paused HUD = %s", paused)
	}
}

func TestHUDPresent(t *testing.T) {
	screen := newTestScreen(t, 60, 10)
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyParticlesLive).Store(42)
	hud := NewHUD(render.NewCellSurface(screen), reg, true)

	var s render.Surface = hud
	s.Clear(render.RGBBlack)
	s.Present()

	var row strings.Builder
	for col := 1; col < 13; col++ {
		r, _, _, _ := screen.GetContent(col, 0)
		row.WriteRune(r)
	}
	if got := row.String(); got != "particles 42" {
		t.Errorf("row 0 = %q", got)
	}

	if hud.Toggle() {
		t.Fatal("toggle should hide")
	}
	s.Clear(render.RGBBlack)
	s.Present()
	if r, _, _, _ := screen.GetContent(1, 0); r == 'p' {
		t.Error("hidden HUD still drawn")
	}
}
