package game

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hailam/circularchess/internal/board"
)

// Export writes the game as a small tagged text record: a header carrying
// the mode and the starting position in RLN, then the numbered SAN moves.
// Forced moves appear in coordinate form followed by ForcedMark.
//
//	[Mode "citadel"]
//	[Start "..."]
//	[Date "2026.01.02"]
//	[Plies "3"]
//
//	1. Nd3 Nd2 2. Rb1
func (s *Session) Export(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "[Mode %q]\n", s.Mode().String())
	fmt.Fprintf(bw, "[Start %q]\n", s.Start().RLN())
	fmt.Fprintf(bw, "[Date %q]\n", s.started.Format("2006.01.02"))
	fmt.Fprintf(bw, "[Plies %q]\n\n", fmt.Sprint(s.ply))

	sans := s.SAN()
	first := s.Start().Turn()
	num := 1
	for i, san := range sans {
		// Move numbers count white moves; a game that starts with black
		// opens with "1..." instead.
		white := (i%2 == 0) == (first == board.White)
		switch {
		case i == 0 && !white:
			fmt.Fprintf(bw, "%d... ", num)
		case white:
			if i > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%d. ", num)
		default:
			bw.WriteByte(' ')
		}
		bw.WriteString(san)
		if !white {
			num++
		}
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// ExportFile writes the game into dir under a timestamped name and returns
// the path.
func (s *Session) ExportFile(dir string) (string, error) {
	name := fmt.Sprintf("circular-%s-%s.txt", s.Mode(), time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export: %w", err)
	}
	if err := s.Export(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export: %w", err)
	}
	return path, nil
}

// Import reads a record written by Export and replays it.
func Import(r io.Reader) (*Session, error) {
	var (
		start = board.StartRLN
		mode  = ""
		body  strings.Builder
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "[") {
			key, value, err := parseTag(line)
			if err != nil {
				return nil, err
			}
			switch key {
			case "Start":
				start = value
			case "Mode":
				mode = value
			}
			continue
		}
		body.WriteString(line)
		body.WriteByte(' ')
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	state, err := board.ParseRLN(start)
	if err != nil {
		return nil, fmt.Errorf("start position: %w", err)
	}
	if mode != "" {
		m, err := board.ParseMode(mode)
		if err != nil {
			return nil, err
		}
		if m != state.Mode() {
			return nil, fmt.Errorf("mode %s does not match start position (%s)", m, state.Mode())
		}
	}

	sess := NewSessionFrom(state)
	for _, tok := range strings.Fields(body.String()) {
		if strings.HasSuffix(tok, ".") {
			continue
		}
		play := sess.PlaySAN
		if strings.HasSuffix(tok, ForcedMark) {
			play = sess.PlayForced
		}
		if err := play(tok); err != nil {
			return nil, fmt.Errorf("ply %d: %w", sess.Ply()+1, err)
		}
	}
	return sess, nil
}

func parseTag(line string) (key, value string, err error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
	key, quoted, ok := strings.Cut(inner, " ")
	if !ok || len(quoted) < 2 || quoted[0] != '"' || quoted[len(quoted)-1] != '"' {
		return "", "", fmt.Errorf("malformed tag: %s", line)
	}
	return key, quoted[1 : len(quoted)-1], nil
}
