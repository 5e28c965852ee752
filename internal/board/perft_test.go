package board

import "testing"

// TestPerftStartingPosition tests move generation from the starting positions.
func TestPerftStartingPosition(t *testing.T) {
	tests := []struct {
		mode     Mode
		depth    int
		expected int64
	}{
		{Standard, 1, 14},
		{Standard, 2, 140},
		{Standard, 3, 2080},
		{Citadel, 1, 10},
		{Citadel, 2, 100},
		{Citadel, 3, 1150},
	}

	for _, tc := range tests {
		t.Run(tc.mode.String(), func(t *testing.T) {
			got := Perft(Initial(tc.mode), tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftModernMatchesStandard checks that modern mode plays exactly like
// standard mode.
func TestPerftModernMatchesStandard(t *testing.T) {
	for depth := 1; depth <= 3; depth++ {
		standard := Perft(Initial(Standard), depth)
		modern := Perft(Initial(Modern), depth)
		if standard != modern {
			t.Errorf("depth %d: standard %d, modern %d", depth, standard, modern)
		}
	}
}

func TestPerftDivide(t *testing.T) {
	s := Initial(Standard)
	divide := PerftDivide(s, 2)

	var total int64
	for _, n := range divide {
		total += n
	}
	if total != Perft(s, 2) {
		t.Errorf("divide sums to %d, want %d", total, Perft(s, 2))
	}
	if len(divide) != s.GenerateMoves().Len() {
		t.Errorf("divide has %d root moves, want %d", len(divide), s.GenerateMoves().Len())
	}
	if Perft(s, 0) != 1 {
		t.Error("perft(0) should be 1")
	}
}

func BenchmarkPerft(b *testing.B) {
	s := Initial(Standard)
	for i := 0; i < b.N; i++ {
		Perft(s, 3)
	}
}
