package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/hailam/circularchess/internal/board"
	"github.com/hailam/circularchess/internal/game"
	"github.com/hailam/circularchess/internal/geometry"
	"github.com/hailam/circularchess/internal/pieceset"
	"github.com/hailam/circularchess/internal/storage"
	"github.com/hajimehoshi/ebiten/v2"
)

// UI Constants
const (
	ScreenWidth  = 960
	ScreenHeight = 640 // Match board height to eliminate unused space
	BoardSize    = 640
	PanelWidth   = ScreenWidth - BoardSize
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Game.Layout() and used by widgets and modals.
var UIScale float64 = 1.0

// Game implements ebiten.Game interface.
type Game struct {
	session *game.Session

	// UI state
	selectedSquare board.Square
	targets        board.Bitboard
	dragging       bool
	dragPiece      board.Piece
	dragSquare     board.Square

	// Storage
	storage *storage.Storage
	prefs   *storage.UserPreferences
	stats   string

	// Components
	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	feedback *FeedbackManager

	// Modals
	settingsModal *SettingsModal
	welcomeScreen *WelcomeScreen
	downloader    *Downloader

	// recorded is set once the current game is in the statistics.
	recorded bool

	// HiDPI scaling
	scale float64
}

// NewGame creates the application state and starts the artwork download.
func NewGame() *Game {
	g := &Game{
		selectedSquare: board.NoSquare,
		dragSquare:     board.NoSquare,
		input:          NewInputHandler(),
		feedback:       NewFeedbackManager(),
		settingsModal:  NewSettingsModal(),
		welcomeScreen:  NewWelcomeScreen(),
	}

	var err error
	g.storage, err = storage.NewStorage()
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
	}

	// A nil *Storage inside the interface would not compare equal to nil.
	var cache pieceset.Cache
	if g.storage != nil {
		cache = g.storage
	}
	loader := pieceset.NewLoader(cache, nil)
	layout := geometry.NewLayout(BoardSize/2, BoardSize/2, BoardSize)
	sprites := NewSpriteManager(loader, int(layout.PieceSize()))
	g.renderer = NewRenderer(sprites, BoardSize)
	g.downloader = NewDownloader(loader, sprites)
	g.settingsModal.SetRefreshHandler(g.downloader.Refresh)

	g.loadPreferences()
	g.panel = NewPanel(g)
	g.refreshStats()

	g.downloader.Start()
	g.checkFirstLaunch()

	return g
}

// loadPreferences loads user preferences and applies them.
func (g *Game) loadPreferences() {
	g.prefs = storage.DefaultPreferences()
	if g.storage != nil {
		prefs, err := g.storage.LoadPreferences()
		if err != nil {
			log.Printf("Warning: Failed to load preferences: %v", err)
		} else {
			g.prefs = prefs
		}
	}

	mode, err := board.ParseMode(g.prefs.Mode)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	g.session = game.NewSession(mode)
	g.applyPreferences()
}

// applyPreferences pushes the display and audio settings to the components.
func (g *Game) applyPreferences() {
	theme, err := geometry.ThemeByName(g.prefs.Theme)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	g.renderer.SetTheme(theme)
	g.renderer.SetShowCoordinates(g.prefs.ShowCoordinates)
	g.feedback.Audio().SetEnabled(g.prefs.SoundEnabled)
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}

	g.prefs.Mode = g.session.Mode().String()
	g.prefs.ShowCoordinates = g.renderer.ShowCoordinates()
	g.prefs.LastPlayed = time.Now()

	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// checkFirstLaunch shows welcome screen on first launch.
func (g *Game) checkFirstLaunch() {
	if g.storage == nil {
		return
	}

	isFirst, err := g.storage.IsFirstLaunch()
	if err != nil {
		log.Printf("Warning: Failed to check first launch: %v", err)
		return
	}

	if isFirst {
		g.welcomeScreen.Show(g.session.Mode(), func(mode board.Mode) {
			if err := g.storage.MarkFirstLaunchComplete(); err != nil {
				log.Printf("Warning: Failed to mark first launch complete: %v", err)
			}
			g.NewGameAction(mode)
		})
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	// Modals block other input
	switch {
	case g.welcomeScreen.IsVisible():
		g.welcomeScreen.Update(g.input)
	case g.settingsModal.IsVisible():
		g.settingsModal.Update(g.input)
	case g.downloader.Update(g.input):
	case g.panel.HandleInput(g.input):
	default:
		g.handleAction(g.input.Action())
		g.handleBoardInput()
	}

	g.updateCursor()
	return nil
}

// handleAction runs a keyboard command.
func (g *Game) handleAction(a Action) {
	switch a {
	case ActionUndo:
		g.UndoAction()
	case ActionRedo:
		g.RedoAction()
	case ActionNewGame:
		g.NewGameAction(g.session.Mode())
	case ActionExport:
		g.ExportAction()
	case ActionCancel:
		g.clearSelection()
	case ActionToggleCoordinates:
		g.renderer.SetShowCoordinates(!g.renderer.ShowCoordinates())
		g.savePreferences()
	}
}

// updateCursor sets the cursor shape based on what's being hovered.
func (g *Game) updateCursor() {
	var anyHovered bool
	switch {
	case g.welcomeScreen.IsVisible():
		anyHovered = g.welcomeScreen.AnyButtonHovered()
	case g.settingsModal.IsVisible():
		anyHovered = g.settingsModal.AnyButtonHovered()
	default:
		anyHovered = g.panel.AnyButtonHovered() || g.downloader.AnyButtonHovered()
	}

	if anyHovered {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	state := g.session.State()

	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen)
	g.renderer.DrawHighlights(screen, state, g.selectedSquare, g.targets, g.session.LastMove())

	skip := board.NoSquare
	if g.dragging {
		skip = g.dragSquare
	}
	g.renderer.DrawPieces(screen, state, skip, g.feedback.Animations())

	if g.dragging {
		mx, my := g.input.MousePosition()
		g.renderer.DrawDraggedPiece(screen, g.dragPiece, mx, my)
	}

	g.feedback.Draw(screen, g.renderer)
	g.downloader.Draw(screen)
	g.panel.Draw(screen)

	g.settingsModal.Draw(screen)
	g.welcomeScreen.Draw(screen)
}

// Layout returns the game's screen dimensions.
// Width is dynamic based on panel collapsed state.
// Uses device scale factor for crisp rendering on HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	UIScale = g.scale

	if g.panel != nil && g.panel.Collapsed() {
		return int(float64(BoardSize+CollapsedWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
	}
	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}

// handleBoardInput processes mouse interactions with the board.
func (g *Game) handleBoardInput() {
	if g.GameOver() {
		return
	}

	mx, my := g.input.MousePosition()
	if mx >= BoardSize || my >= BoardSize {
		if g.dragging && g.input.IsLeftJustReleased() {
			g.clearSelection()
		}
		return
	}

	state := g.session.State()

	if g.input.IsLeftJustPressed() {
		sq := g.renderer.ScreenToSquare(mx, my)
		if sq == board.NoSquare {
			g.clearSelection()
			return
		}

		piece := state.PieceAt(sq)

		// Clicking one of our own pieces selects it
		if piece != board.NoPiece && piece.Color() == state.Turn() {
			g.selectSquare(sq)
			g.startDrag(sq)
			return
		}

		// A second click plays the move; anywhere else just drops the selection
		if g.selectedSquare != board.NoSquare && g.targets.IsSet(sq) {
			g.makeMove(g.selectedSquare, sq)
			return
		}

		if piece != board.NoPiece && g.selectedSquare == board.NoSquare {
			g.feedback.OnInvalidMove(sq, board.NoSquare, ReasonNotYourTurn)
		}
		g.clearSelection()
	}

	if g.dragging && g.input.IsLeftJustReleased() {
		target := g.renderer.ScreenToSquare(mx, my)
		if target == g.dragSquare || target == board.NoSquare {
			// Dropped back in place: keep the selection for a second click
			g.dragging = false
			return
		}
		g.tryMove(g.dragSquare, target)
	}
}

// tryMove plays from-to if legal and otherwise explains the rejection.
func (g *Game) tryMove(from, to board.Square) {
	if g.targets.IsSet(to) {
		g.makeMove(from, to)
		return
	}
	g.feedback.OnInvalidMove(from, to, g.determineInvalidMoveReason(from, to))
	g.clearSelection()
}

// determineInvalidMoveReason analyzes why a move from src to dst is invalid.
func (g *Game) determineInvalidMoveReason(src, dst board.Square) InvalidMoveReason {
	state := g.session.State()
	piece := state.PieceAt(src)
	switch {
	case piece == board.NoPiece:
		return ReasonUnknown
	case piece.Color() != state.Turn():
		return ReasonNotYourTurn
	}

	if dest := state.PieceAt(dst); dest != board.NoPiece && dest.Color() == piece.Color() {
		return ReasonBlockedByOwnPiece
	}
	if state.Mode() == board.Citadel && state.CitadelSquares().IsSet(dst) {
		return ReasonCitadel
	}
	return ReasonInvalidPieceMovement
}

// selectSquare selects a square and looks up its legal destinations.
func (g *Game) selectSquare(sq board.Square) {
	g.selectedSquare = sq
	g.targets = g.session.Select(sq)
}

// clearSelection clears the current selection.
func (g *Game) clearSelection() {
	g.selectedSquare = board.NoSquare
	g.targets = board.Empty
	g.dragging = false
	g.dragPiece = board.NoPiece
	g.dragSquare = board.NoSquare
}

// startDrag begins dragging a piece.
func (g *Game) startDrag(sq board.Square) {
	g.dragging = true
	g.dragPiece = g.session.State().PieceAt(sq)
	g.dragSquare = sq
}

// makeMove applies a move to the game.
func (g *Game) makeMove(from, to board.Square) {
	isCapture := board.NewMove(from, to).IsCapture(g.session.State())

	if err := g.session.Play(from, to); err != nil {
		log.Printf("Warning: rejected move %s%s: %v", from, to, err)
		g.feedback.OnInvalidMove(from, to, ReasonUnknown)
		g.clearSelection()
		return
	}

	g.clearSelection()
	g.panel.ScrollToEnd()
	g.feedback.OnMoveMade(isCapture)
	g.checkGameEnd()
}

// checkGameEnd announces a finished game and records it once.
func (g *Game) checkGameEnd() {
	state := g.session.State()
	switch {
	case state.IsDraw():
		g.feedback.Toast("Draw: a king reached the citadel", ToastSuccess)
	case !state.HasMoves():
		g.feedback.OnNoMoves(state.Turn())
	default:
		return
	}
	g.recordGame()
}

// recordGame adds the current game to the statistics.
func (g *Game) recordGame() {
	if g.recorded || g.storage == nil || g.session.Ply() == 0 {
		return
	}
	g.recorded = true

	err := g.storage.RecordGame(storage.GameRecord{
		Mode:     g.session.Mode().String(),
		Moves:    g.session.Ply(),
		Duration: g.session.Duration(),
	})
	if err != nil {
		log.Printf("Warning: Failed to record game: %v", err)
	}
	g.refreshStats()
}

// refreshStats reloads the summary line shown in the panel.
func (g *Game) refreshStats() {
	if g.storage == nil {
		g.stats = "Statistics unavailable"
		return
	}
	stats, err := g.storage.LoadStats()
	if err != nil {
		log.Printf("Warning: Failed to load stats: %v", err)
	}
	g.stats = fmt.Sprintf("Games: %d  Avg moves: %.0f", stats.GamesPlayed, stats.AverageMoves())
}

// NewGameAction starts a new game in the given mode. An unfinished game with
// moves still counts towards the statistics.
func (g *Game) NewGameAction(mode board.Mode) {
	g.recordGame()

	g.session.Reset(mode)
	g.recorded = false
	g.clearSelection()
	g.panel.ScrollToEnd()
	g.savePreferences()
}

// UndoAction steps back one move.
func (g *Game) UndoAction() {
	if g.session.Undo() {
		g.clearSelection()
		g.feedback.OnUndo()
	}
}

// RedoAction replays an undone move.
func (g *Game) RedoAction() {
	if g.session.Redo() {
		g.clearSelection()
		g.feedback.OnUndo()
		g.panel.ScrollToEnd()
	}
}

// ExportAction writes the game record to the export directory.
func (g *Game) ExportAction() {
	dir, err := storage.GetExportDir()
	if err != nil {
		log.Printf("Warning: Failed to get export dir: %v", err)
		g.feedback.Toast("Export failed", ToastError)
		return
	}
	path, err := g.session.ExportFile(dir)
	if err != nil {
		log.Printf("Warning: Failed to export game: %v", err)
		g.feedback.Toast("Export failed", ToastError)
		return
	}
	log.Printf("Exported game to %s", path)
	g.feedback.Toast("Game exported", ToastSuccess)
}

// ShowSettings opens the settings modal.
func (g *Game) ShowSettings() {
	g.clearSelection()
	g.settingsModal.Show(g.prefs, func(prefs *storage.UserPreferences) {
		g.prefs = prefs
		g.applyPreferences()
		g.savePreferences()
	}, nil)
}

// Mode returns the ruleset of the current game.
func (g *Game) Mode() board.Mode {
	return g.session.Mode()
}

// SANHistory returns the moves played so far.
func (g *Game) SANHistory() []string {
	return g.session.SAN()
}

// StartTurn returns the side that moved first.
func (g *Game) StartTurn() board.Color {
	return g.session.Start().Turn()
}

// CanUndo reports whether there is a move to take back.
func (g *Game) CanUndo() bool {
	return g.session.CanUndo()
}

// CanRedo reports whether there is an undone move.
func (g *Game) CanRedo() bool {
	return g.session.CanRedo()
}

// GameOver returns true if the side to move cannot play or the game is drawn.
func (g *Game) GameOver() bool {
	state := g.session.State()
	return state.IsDraw() || !state.HasMoves()
}

// Status returns the one-line game status.
func (g *Game) Status() string {
	return g.session.Status()
}

// StatsSummary returns the statistics line for the panel.
func (g *Game) StatsSummary() string {
	return g.stats
}

// Close records the running game and releases resources.
func (g *Game) Close() {
	g.downloader.Cancel()
	g.recordGame()
	g.savePreferences()
	if g.storage != nil {
		if err := g.storage.Close(); err != nil {
			log.Printf("Warning: Failed to close storage: %v", err)
		}
	}
}
