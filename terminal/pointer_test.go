package terminal

import "testing"

func TestCellCenter(t *testing.T) {
	tests := []struct {
		col, row int
		x, y     float64
	}{
		{0, 0, 4, 8},
		{3, 2, 28, 40},
		{99, 0, 796, 8},
	}
	for _, tt := range tests {
		if x, y := CellCenter(tt.col, tt.row); x != tt.x || y != tt.y {
			t.Errorf("CellCenter(%d, %d) = (%v, %v), want (%v, %v)", tt.col, tt.row, x, y, tt.x, tt.y)
		}
	}
}

func TestPointerSmootherEases(t *testing.T) {
	p := NewPointerSmoother(60)
	if _, _, moved := p.Step(); moved {
		t.Fatal("unprimed smoother moved")
	}

	p.Target(100, 50)
	if x, y, moved := p.Step(); !moved || x != 100 || y != 50 {
		t.Fatalf("first target should snap, got (%v, %v) moved=%v", x, y, moved)
	}
	if _, _, moved := p.Step(); moved {
		t.Fatal("settled smoother moved")
	}

	p.Target(200, 50)
	prev := 100.0
	settled := false
	for i := 0; i < 180; i++ {
		x, _, moved := p.Step()
		if !moved {
			settled = true
			break
		}
		if x < prev-1e-9 || x > 200.5 {
			t.Fatalf("step %d: x = %v after %v", i, x, prev)
		}
		prev = x
	}
	if !settled {
		t.Fatal("smoother never settled")
	}
	if x, y, _ := p.Position(); x != 200 || y != 50 {
		t.Errorf("settled at (%v, %v), want (200, 50)", x, y)
	}
}

func TestPointerSmootherReset(t *testing.T) {
	p := NewPointerSmoother(0)
	p.Target(10, 10)
	p.Step()
	p.Reset()
	if _, _, primed := p.Position(); primed {
		t.Fatal("reset smoother still primed")
	}
	p.Target(500, 500)
	if x, y, _ := p.Step(); x != 500 || y != 500 {
		t.Errorf("target after reset = (%v, %v), want snap to (500, 500)", x, y)
	}
}
