package geometry

import (
	"math"
	"testing"

	"github.com/hailam/circularchess/internal/board"
)

func TestRingRadius(t *testing.T) {
	l := NewLayout(500, 500, 1000)

	if l.RingRadius(0) != 100 {
		t.Errorf("RingRadius(0) = %v, want 100", l.RingRadius(0))
	}
	if l.RingRadius(board.Rings) != 450 {
		t.Errorf("RingRadius(%d) = %v, want 450", board.Rings, l.RingRadius(board.Rings))
	}
	if l.RingStep() != 87.5 {
		t.Errorf("RingStep = %v, want 87.5", l.RingStep())
	}
}

func TestSquareCenterOrientation(t *testing.T) {
	l := NewLayout(0, 0, 1000)

	tests := []struct {
		name string
		sq   string
		// quadrant signs of the center
		sx, sy float64
	}{
		{"a is just right of top", "a1", 1, -1},
		{"p is just left of top", "p4", -1, -1},
		{"e starts at three o'clock", "e2", 1, 1},
		{"i is just left of bottom", "i3", -1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sq, err := board.ParseSquare(tc.sq)
			if err != nil {
				t.Fatal(err)
			}
			p := l.SquareCenter(sq)
			if math.Signbit(p.X) != (tc.sx < 0) || math.Signbit(p.Y) != (tc.sy < 0) {
				t.Errorf("SquareCenter(%s) = %+v", tc.sq, p)
			}
		})
	}
}

func TestPointToSquareInverse(t *testing.T) {
	l := NewLayout(320, 240, 480)

	for sq := board.Square(0); sq < board.SquareCount; sq++ {
		c := l.SquareCenter(sq)
		if got := l.PointToSquare(c.X, c.Y); got != sq {
			t.Errorf("PointToSquare(center of %v) = %v", sq, got)
		}
	}
}

func TestPointToSquareOffBoard(t *testing.T) {
	l := NewLayout(500, 500, 1000)

	tests := []struct {
		name string
		x, y float64
	}{
		{"center", 500, 500},
		{"inside hole", 550, 500},
		{"outer edge", 950, 500},
		{"corner", 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.PointToSquare(tc.x, tc.y); got != board.NoSquare {
				t.Errorf("PointToSquare(%v, %v) = %v, want NoSquare", tc.x, tc.y, got)
			}
		})
	}
}

func TestWedge(t *testing.T) {
	l := NewLayout(0, 0, 1000)
	sq := board.NewSquare(2, 5)

	pts := l.Wedge(sq, 4)
	if len(pts) != 10 {
		t.Fatalf("len = %d, want 10", len(pts))
	}

	inner, outer := l.RingRadius(2), l.RingRadius(3)
	for i, p := range pts {
		r := math.Hypot(p.X, p.Y)
		want := outer
		if i >= 5 {
			want = inner
		}
		if math.Abs(r-want) > 1e-9 {
			t.Errorf("point %d radius %v, want %v", i, r, want)
		}
		// Nudge toward the wedge center so edge points land inside it.
		c := l.SquareCenter(sq)
		if got := l.PointToSquare(p.X*0.99+c.X*0.01, p.Y*0.99+c.Y*0.01); got != sq {
			t.Errorf("point %d maps to %v, want %v", i, got, sq)
		}
	}
}

func TestIsLightSquare(t *testing.T) {
	for sq := board.Square(0); sq < board.SquareCount; sq++ {
		if sq.File() == 0 {
			continue
		}
		west := board.NewSquare(sq.Ring(), sq.File()-1)
		if IsLightSquare(sq) == IsLightSquare(west) {
			t.Fatalf("%v and %v share a color", sq, west)
		}
	}
	// 16 files is even so the seam between p and a alternates too.
	if IsLightSquare(board.NewSquare(0, 0)) == IsLightSquare(board.NewSquare(0, 15)) {
		t.Error("a1 and p1 share a color")
	}
}

func TestThemes(t *testing.T) {
	th, err := ThemeByName("Dark")
	if err != nil || th.Name != "dark" {
		t.Errorf("ThemeByName(Dark) = %v, %v", th.Name, err)
	}
	if !th.IsDark() {
		t.Error("dark theme background should be dark")
	}

	if _, err := ThemeByName("neon"); err == nil {
		t.Error("unknown theme should fail")
	}

	seen := map[string]bool{}
	name := Themes[0].Name
	for range Themes {
		seen[name] = true
		name = NextTheme(name).Name
	}
	if len(seen) != len(Themes) || name != Themes[0].Name {
		t.Errorf("NextTheme does not cycle through every theme: %v", seen)
	}

	light, _ := ThemeByName("light")
	if light.IsDark() {
		t.Error("light theme reported as dark")
	}
	if light.SquareColor(true) != light.Light || light.SquareColor(false) != light.Dark {
		t.Error("SquareColor mismatch")
	}
}
