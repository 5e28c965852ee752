// Package protocol implements a line-oriented text protocol for playing and
// inspecting circular chess games from a terminal or a script.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/hailam/circularchess/internal/board"
	"github.com/hailam/circularchess/internal/game"
)

const helpText = `commands:
  new [mode]                          start a new game (standard, modern, citadel)
  position startpos [mode] [moves ...] set up the initial position and play moves
  position rln <rln> [moves ...]      set up a position from ring layout notation
  citadels <squares|->                set the citadel squares of the current position
  d                                   display the current position
  moves <square>                      list legal destinations of a piece
  all                                 list every legal move of the side to move
  move <move>                         play a move (b1c1 or c1)
  force <move>                        relocate a piece without rule checks
  undo | redo                         step through the game history
  status                              show whose turn it is
  history                             show the moves played
  export [file]                       write the game record to a file or the output
  load <file>                         replace the game with a saved record
  perft <depth> | divide <depth>      count leaf nodes of the move tree
  quit                                exit`

// Protocol reads commands from an input and writes responses to an output.
type Protocol struct {
	session *game.Session
	in      io.Reader
	out     io.Writer
}

// New creates a protocol handler playing the initial position of mode.
func New(mode board.Mode, in io.Reader, out io.Writer) *Protocol {
	return &Protocol{
		session: game.NewSession(mode),
		in:      in,
		out:     out,
	}
}

// Session returns the game the protocol is driving.
func (p *Protocol) Session() *game.Session {
	return p.session
}

// Run reads commands until the input ends or "quit" is received.
func (p *Protocol) Run() error {
	scanner := bufio.NewScanner(p.in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		if cmd == "quit" {
			return nil
		}
		p.Execute(cmd, args)
	}

	return scanner.Err()
}

// Execute runs a single command.
func (p *Protocol) Execute(cmd string, args []string) {
	switch cmd {
	case "new":
		p.handleNew(args)
	case "position":
		p.handlePosition(args)
	case "citadels":
		p.handleCitadels(args)
	case "d":
		p.handleDisplay()
	case "moves":
		p.handleMoves(args)
	case "all":
		p.handleAll()
	case "move":
		p.handleMove(args, false)
	case "force":
		p.handleMove(args, true)
	case "undo":
		if !p.session.Undo() {
			p.errorf("nothing to undo")
		}
	case "redo":
		if !p.session.Redo() {
			p.errorf("nothing to redo")
		}
	case "status":
		p.println(p.session.Status())
	case "history":
		p.handleHistory()
	case "export":
		p.handleExport(args)
	case "load":
		p.handleLoad(args)
	case "perft":
		p.handlePerft(args, false)
	case "divide":
		p.handlePerft(args, true)
	case "help":
		p.println(helpText)
	default:
		p.errorf("unknown command: %s", cmd)
	}
}

func (p *Protocol) println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Protocol) printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

func (p *Protocol) errorf(format string, a ...any) {
	fmt.Fprintf(p.out, "error: "+format+"\n", a...)
}

// handleNew starts a new game, keeping the mode unless one is given.
func (p *Protocol) handleNew(args []string) {
	mode := p.session.Mode()
	if len(args) > 0 {
		m, err := board.ParseMode(args[0])
		if err != nil {
			p.errorf("%v", err)
			return
		}
		mode = m
	}
	p.session.Reset(mode)
}

// handlePosition parses and sets up a position.
// Formats:
//   - position startpos [mode]
//   - position startpos [mode] moves b1c1 g1f1
//   - position rln <rln>
//   - position rln <rln> moves b1c1
func (p *Protocol) handlePosition(args []string) {
	if len(args) == 0 {
		p.errorf("position needs startpos or rln")
		return
	}

	setup, moves := args, []string(nil)
	if i := slices.Index(args, "moves"); i >= 0 {
		setup, moves = args[:i], args[i+1:]
	}
	if len(setup) == 0 {
		p.errorf("position needs startpos or rln")
		return
	}

	var state board.GameState
	switch setup[0] {
	case "startpos":
		mode := p.session.Mode()
		if len(setup) > 1 {
			m, err := board.ParseMode(setup[1])
			if err != nil {
				p.errorf("%v", err)
				return
			}
			mode = m
		}
		state = board.Initial(mode)
	case "rln":
		s, err := board.ParseRLN(strings.Join(setup[1:], " "))
		if err != nil {
			p.errorf("invalid RLN: %v", err)
			return
		}
		state = s
	default:
		p.errorf("position needs startpos or rln, got %s", setup[0])
		return
	}

	p.session.Load(state)

	for _, moveStr := range moves {
		if err := p.play(moveStr, false); err != nil {
			p.errorf("%s: %v", moveStr, err)
			return
		}
	}
}

// handleCitadels replaces the citadel squares of the current position and
// restarts the history from it.
func (p *Protocol) handleCitadels(args []string) {
	if len(args) != 1 {
		p.errorf("citadels needs a comma-separated square list or -")
		return
	}

	bb := board.Empty
	if args[0] != "-" {
		for _, name := range strings.Split(args[0], ",") {
			sq, err := board.ParseSquare(name)
			if err != nil {
				p.errorf("%v", err)
				return
			}
			bb = bb.Set(sq)
		}
	}
	p.session.Load(p.session.State().WithCitadelSquares(bb))
}

func (p *Protocol) handleDisplay() {
	state := p.session.State()
	p.println(state.String())
	p.printf("RLN: %s\n", state.RLN())
}

func (p *Protocol) handleMoves(args []string) {
	if len(args) != 1 {
		p.errorf("moves needs a square")
		return
	}
	sq, err := board.ParseSquare(args[0])
	if err != nil {
		p.errorf("%v", err)
		return
	}
	p.printf("%s: %s\n", sq, formatSquares(p.session.Select(sq)))
}

func (p *Protocol) handleAll() {
	all := p.session.State().AllLegalMoves()
	from := make([]board.Square, 0, len(all))
	for sq := range all {
		from = append(from, sq)
	}
	slices.Sort(from)

	for _, sq := range from {
		p.printf("%s: %s\n", sq, formatSquares(all[sq]))
	}
	p.printf("total: %d\n", p.session.State().GenerateMoves().Len())
}

func (p *Protocol) handleMove(args []string, force bool) {
	if len(args) != 1 {
		p.errorf("expected exactly one move")
		return
	}
	if err := p.play(args[0], force); err != nil {
		p.errorf("%v", err)
		return
	}
	p.println("ok")
}

// play accepts coordinate notation (b1c1) and, unless forcing, short
// algebraic notation (c1, Nc4).
func (p *Protocol) play(moveStr string, force bool) error {
	m, err := board.ParseMove(moveStr)
	if err != nil {
		if force {
			return err
		}
		return p.session.PlaySAN(moveStr)
	}
	if force {
		return p.session.Force(m.From(), m.To())
	}
	return p.session.PlayMove(m)
}

func (p *Protocol) handleHistory() {
	sans := p.session.SAN()
	if len(sans) == 0 {
		p.println("(no moves)")
		return
	}

	white := p.session.Start().Turn() == board.White
	var sb strings.Builder
	for i, san := range sans {
		moveNo := i/2 + 1
		if white && i%2 == 0 {
			fmt.Fprintf(&sb, "%d. ", moveNo)
		} else if !white && i == 0 {
			sb.WriteString("1... ")
		} else if !white && i%2 == 1 {
			fmt.Fprintf(&sb, "%d. ", (i+1)/2+1)
		}
		sb.WriteString(san)
		if i < len(sans)-1 {
			sb.WriteByte(' ')
		}
	}
	p.println(sb.String())
}

func (p *Protocol) handlePerft(args []string, divide bool) {
	depth := 3
	if len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil || d < 0 {
			p.errorf("invalid depth: %s", args[0])
			return
		}
		depth = d
	}

	state := p.session.State()
	start := time.Now()

	var nodes int64
	if divide {
		counts := board.PerftDivide(state, depth)
		for _, m := range state.GenerateMoves().Slice() {
			p.printf("%s: %d\n", m, counts[m])
			nodes += counts[m]
		}
	} else {
		nodes = board.Perft(state, depth)
	}
	elapsed := time.Since(start)

	p.printf("Nodes: %d\n", nodes)
	p.printf("Time: %v\n", elapsed)
	if elapsed > 0 {
		nps := float64(nodes) / elapsed.Seconds()
		p.printf("NPS: %.0f\n", nps)
	}
}

// formatSquares lists the squares of a bitboard, or "(none)".
func formatSquares(bb board.Bitboard) string {
	if bb.IsEmpty() {
		return "(none)"
	}
	names := make([]string, 0, bb.PopCount())
	for sq := range bb.All() {
		names = append(names, sq.String())
	}
	return strings.Join(names, " ")
}

func (p *Protocol) handleExport(args []string) {
	if len(args) == 0 {
		if err := p.session.Export(p.out); err != nil {
			p.errorf("%v", err)
		}
		return
	}

	f, err := os.Create(args[0])
	if err != nil {
		p.errorf("%v", err)
		return
	}
	if err := p.session.Export(f); err != nil {
		f.Close()
		p.errorf("%v", err)
		return
	}
	if err := f.Close(); err != nil {
		p.errorf("%v", err)
		return
	}
	p.printf("saved %d moves to %s\n", p.session.Ply(), args[0])
}

func (p *Protocol) handleLoad(args []string) {
	if len(args) == 0 {
		p.errorf("usage: load <file>")
		return
	}

	f, err := os.Open(args[0])
	if err != nil {
		p.errorf("%v", err)
		return
	}
	defer f.Close()

	s, err := game.Import(f)
	if err != nil {
		p.errorf("%v", err)
		return
	}
	p.session = s
	p.printf("loaded %s game, %d moves\n", s.Mode(), s.Ply())
}
