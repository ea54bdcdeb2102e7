package render

import "testing"

func TestRecorderCounts(t *testing.T) {
	rec := NewRecorder(100, 50)
	var s Surface = rec

	s.Clear(RGBBlack)
	s.FillCircle(1, 2, 3, RGBWhite.WithAlpha(1))
	s.FillRadialGradient(1, 2, 9, Stop{Offset: 0, Color: RGBWhite.WithAlpha(1)})
	s.StrokeLine(0, 0, 1, 1, 1, RGBWhite.WithAlpha(0.5))
	s.Present()

	if rec.Count(OpFillCircle) != 1 || rec.Count(OpFillRadial) != 1 || rec.Count(OpStrokeLine) != 1 {
		t.Errorf("ops = %+v", rec.Ops)
	}
	if rec.Ops[2].R != 9 || len(rec.Ops[2].Stops) != 1 {
		t.Errorf("radial op = %+v", rec.Ops[2])
	}

	s.Resize(200, 100, 2)
	if w, h := s.Size(); w != 200 || h != 100 || rec.Scale() != 2 || rec.Resizes != 1 {
		t.Errorf("resize not recorded: %dx%d@%f", w, h, rec.Scale())
	}

	rec.Reset()
	if len(rec.Ops) != 0 {
		t.Error("reset should drop ops")
	}
}
