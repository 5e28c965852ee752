package board

import (
	"slices"
	"strings"
	"testing"
)

func TestToSAN(t *testing.T) {
	tests := []struct {
		name string
		rln  string
		move string
		want string
	}{
		{"pawn push", StartRLN, "b1c1", "c1"},
		{"knight", StartRLN, "a3c4", "Nc4"},
		{"rook capture", "16/16/16/R2p12 w", "a1d1", "Rxd1"},
		{"pawn capture", "16/3n12/2P13/16 w", "c2d3", "cxd3"},
		// Knights on b4 and f4 both reach d3: the file tells them apart.
		{"file disambiguation", "1N3N10/16/16/16 w", "b4d3", "Nbd3"},
		// Rooks on a1 and a4 both reach a2: the ring tells them apart.
		{"ring disambiguation", "R15/16/16/R15 w", "a1a2", "R1a2"},
		// Knights on a1 and e1 both reach c2.
		{"knight pair", "16/16/16/N3N11 w", "e1c2", "Nec2"},
		// Pawns on g1 and i1 push towards each other onto h1.
		{"pawn push disambiguation", "16/16/16/6P1P7 w", "g1h1", "gh1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := mustParseRLN(t, tc.rln)
			m, err := ParseMove(tc.move)
			if err != nil {
				t.Fatal(err)
			}
			if !s.IsLegalMove(m.From(), m.To()) {
				t.Fatalf("%s is not legal in %s", tc.move, tc.rln)
			}
			if got := m.ToSAN(s); got != tc.want {
				t.Errorf("ToSAN = %q, want %q", got, tc.want)
			}

			parsed, err := ParseSAN(tc.want, s)
			if err != nil {
				t.Fatalf("ParseSAN(%q): %v", tc.want, err)
			}
			if parsed != m {
				t.Errorf("ParseSAN(%q) = %v, want %v", tc.want, parsed, m)
			}
		})
	}
}

func TestParseSANErrors(t *testing.T) {
	s := Initial(Standard)
	for _, bad := range []string{"", "Z", "Xc1", "Kc1", "e9", "Nq3"} {
		if _, err := ParseSAN(bad, s); err == nil {
			t.Errorf("ParseSAN(%q) should fail", bad)
		}
	}
}

func TestParseSANAmbiguous(t *testing.T) {
	tests := []struct {
		rln string
		san string
	}{
		{"16/16/16/N3N11 w", "Nc2"},
		{"16/16/16/6P1P7 w", "h1"},
	}

	for _, tc := range tests {
		t.Run(tc.san, func(t *testing.T) {
			s := mustParseRLN(t, tc.rln)
			m, err := ParseSAN(tc.san, s)
			if err == nil {
				t.Fatalf("ParseSAN(%q) = %v, want an ambiguity error", tc.san, m)
			}
			if !strings.Contains(err.Error(), "ambiguous") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestMovesToSAN(t *testing.T) {
	s := Initial(Standard)
	moves := []Move{
		NewMove(NewSquare(0, 1), NewSquare(0, 2)),
		NewMove(NewSquare(0, 6), NewSquare(0, 5)),
	}
	want := []string{"c1", "f1"}
	if got := MovesToSAN(s, moves); !slices.Equal(got, want) {
		t.Errorf("MovesToSAN = %v, want %v", got, want)
	}
}
