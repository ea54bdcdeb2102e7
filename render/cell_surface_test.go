package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func TestCellSurfaceMapsLogicalToHalfBlocks(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	s := NewCellSurface(screen)

	if w, h := s.Size(); w != 160 || h != 160 {
		t.Fatalf("logical size = %dx%d, want 160x160", w, h)
	}
	if w, h := s.Raster().Size(); w != 20 || h != 20 {
		t.Fatalf("raster = %dx%d, want 20x20", w, h)
	}

	s.Clear(RGBBlack)
	// Logical (84, 44) lands in device pixel (10, 5): cell row 2, bottom half
	s.FillCircle(84, 44, 1, RGBWhite.WithAlpha(1))
	s.Present()

	mainc, _, style, _ := screen.GetContent(10, 2)
	if mainc != halfBlock {
		t.Fatalf("cell rune = %q, want half block", mainc)
	}
	fg, bg, _ := style.Decompose()
	if TcellToRGB(bg) == RGBBlack {
		t.Error("bottom half should be lit")
	}
	if TcellToRGB(fg) != RGBBlack {
		t.Error("top half should stay dark")
	}
}

func TestCellSurfaceText(t *testing.T) {
	screen := newTestScreen(t, 20, 5)
	s := NewCellSurface(screen)
	s.Clear(RGBBlack)
	s.Text(1, 0, "hud", RGBWhite)
	s.Text(18, 0, "clip", RGBWhite)
	s.Present()

	for i, want := range "hud" {
		if r, _, _, _ := screen.GetContent(1+i, 0); r != want {
			t.Errorf("col %d = %q, want %q", 1+i, r, want)
		}
	}
	if r, _, _, _ := screen.GetContent(19, 0); r != 'l' {
		t.Errorf("clipped text = %q, want 'l'", r)
	}

	// Text is per frame
	s.Clear(RGBBlack)
	s.Present()
	if r, _, _, _ := screen.GetContent(1, 0); r != halfBlock {
		t.Errorf("text persisted across frames: %q", r)
	}
}

func TestCellSurfaceResizeTracksScreen(t *testing.T) {
	screen := newTestScreen(t, 10, 4)
	s := NewCellSurface(screen)
	screen.SetSize(30, 12)
	s.Resize(240, 192, 2)
	if w, h := s.Raster().Size(); w != 30 || h != 24 {
		t.Errorf("raster = %dx%d, want 30x24", w, h)
	}
	if s.Scale() != 2 {
		t.Errorf("scale = %f, want 2", s.Scale())
	}
}
