package game

import (
	"bytes"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/hailam/circularchess/internal/board"
)

// playFirst plays the first generated move n times.
func playFirst(t *testing.T, s *Session, n int) {
	t.Helper()
	for range n {
		moves := s.State().GenerateMoves()
		if moves.Len() == 0 {
			t.Fatalf("no moves at ply %d", s.Ply())
		}
		if err := s.PlayMove(moves.Get(0)); err != nil {
			t.Fatal(err)
		}
	}
}

func TestExportImport(t *testing.T) {
	for _, mode := range board.Modes {
		t.Run(mode.String(), func(t *testing.T) {
			s := NewSession(mode)
			playFirst(t, s, 5)

			var buf bytes.Buffer
			if err := s.Export(&buf); err != nil {
				t.Fatalf("Export: %v", err)
			}
			out := buf.String()
			if !strings.Contains(out, `[Mode "`+mode.String()+`"]`) {
				t.Errorf("missing mode tag:\n%s", out)
			}
			if !strings.Contains(out, `[Plies "5"]`) || !strings.Contains(out, "3. ") {
				t.Errorf("unexpected record:\n%s", out)
			}

			got, err := Import(&buf)
			if err != nil {
				t.Fatalf("Import: %v\n%s", err, out)
			}
			if got.State() != s.State() {
				t.Errorf("imported state differs:\n%v\nwant\n%v", got.State(), s.State())
			}
			if !slices.Equal(got.SAN(), s.SAN()) {
				t.Errorf("SAN = %v, want %v", got.SAN(), s.SAN())
			}
		})
	}
}

func TestExportImportForced(t *testing.T) {
	s := NewSession(board.Standard)
	if err := s.Force(sq(t, "b1"), sq(t, "e1")); err != nil {
		t.Fatal(err)
	}
	playFirst(t, s, 2)

	var buf bytes.Buffer
	if err := s.Export(&buf); err != nil {
		t.Fatalf("Export: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "1. b1e1"+ForcedMark+" ") {
		t.Errorf("forced move not marked:\n%s", out)
	}

	got, err := Import(&buf)
	if err != nil {
		t.Fatalf("Import: %v\n%s", err, out)
	}
	if got.State() != s.State() {
		t.Errorf("imported state differs:\n%v\nwant\n%v", got.State(), s.State())
	}
	if !slices.Equal(got.Moves(), s.Moves()) {
		t.Errorf("Moves = %v, want %v", got.Moves(), s.Moves())
	}
}

func TestExportBlackFirst(t *testing.T) {
	start, err := board.ParseRLN(strings.Replace(board.StartRLN, " w ", " b ", 1))
	if err != nil {
		t.Fatal(err)
	}
	s := NewSessionFrom(start)
	playFirst(t, s, 2)

	var buf bytes.Buffer
	if err := s.Export(&buf); err != nil {
		t.Fatal(err)
	}
	sans := s.SAN()
	want := "1... " + sans[0] + " 2. " + sans[1] + "\n"
	if !strings.HasSuffix(buf.String(), want) {
		t.Errorf("moves line = %q, want suffix %q", buf.String(), want)
	}

	got, err := Import(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.State() != s.State() {
		t.Error("black-first game did not round trip")
	}
}

func TestImportErrors(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{"bad tag", "[Mode citadel]\n"},
		{"bad start", "[Start \"xyz\"]\n"},
		{"mode mismatch", "[Mode \"citadel\"]\n[Start \"" + board.StartRLN + "\"]\n"},
		{"illegal move", "1. Kz9\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Import(strings.NewReader(tc.record)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestExportFile(t *testing.T) {
	s := NewSession(board.Citadel)
	playFirst(t, s, 1)

	path, err := s.ExportFile(t.TempDir())
	if err != nil {
		t.Fatalf("ExportFile: %v", err)
	}
	if !strings.Contains(path, "circular-citadel-") {
		t.Errorf("unexpected name %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := Import(f)
	if err != nil {
		t.Fatal(err)
	}
	if got.Ply() != 1 || got.Mode() != board.Citadel {
		t.Errorf("Ply = %d, Mode = %v", got.Ply(), got.Mode())
	}
}
