package ui

import (
	"github.com/hailam/circularchess/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Welcome screen dimensions
const (
	WelcomeWidth  = 400
	WelcomeHeight = 360
	WelcomePadX   = 32
	WelcomePadY   = 24
)

// WelcomeScreen is shown on first launch.
type WelcomeScreen struct {
	visible bool

	// Position (centered on screen)
	x, y int

	modeRadio *RadioGroup
	startBtn  *ModalButton

	onComplete func(mode board.Mode)
}

// NewWelcomeScreen creates a new welcome screen.
func NewWelcomeScreen() *WelcomeScreen {
	ws := &WelcomeScreen{
		x: (ScreenWidth - WelcomeWidth) / 2,
		y: (ScreenHeight - WelcomeHeight) / 2,
	}

	options := make([]RadioOption, len(board.Modes))
	for i, m := range board.Modes {
		options[i] = RadioOption{Label: m.Title(), Value: int(m)}
	}
	ws.modeRadio = NewRadioGroup(ws.x+WelcomePadX, ws.y+150, WelcomeWidth-WelcomePadX*2, options, 0)

	btnW, btnH := 160, 44
	ws.startBtn = NewModalButton(ws.x+(WelcomeWidth-btnW)/2, ws.y+WelcomeHeight-WelcomePadY-btnH,
		btnW, btnH, "Start Playing", true, ws.handleStart)
	return ws
}

// Show displays the welcome screen.
func (ws *WelcomeScreen) Show(mode board.Mode, onComplete func(mode board.Mode)) {
	ws.visible = true
	ws.onComplete = onComplete
	ws.modeRadio.Select(int(mode))
}

// Hide closes the welcome screen.
func (ws *WelcomeScreen) Hide() {
	ws.visible = false
}

// IsVisible returns true if the screen is visible.
func (ws *WelcomeScreen) IsVisible() bool {
	return ws.visible
}

func (ws *WelcomeScreen) handleStart() {
	if ws.onComplete != nil {
		ws.onComplete(board.Mode(ws.modeRadio.Value()))
	}
	ws.Hide()
}

// Update handles input for the welcome screen.
func (ws *WelcomeScreen) Update(input *InputHandler) bool {
	if !ws.visible {
		return false
	}

	if isEnterJustPressed() {
		ws.handleStart()
		return true
	}

	ws.modeRadio.Update(input)
	ws.startBtn.Update(input)

	// Welcome screen consumes all input
	return true
}

// AnyButtonHovered returns true if any button in the screen is hovered.
func (ws *WelcomeScreen) AnyButtonHovered() bool {
	if !ws.visible {
		return false
	}
	return ws.startBtn.IsHovered() || ws.modeRadio.hovered >= 0
}

// Draw renders the welcome screen.
func (ws *WelcomeScreen) Draw(screen *ebiten.Image) {
	if !ws.visible {
		return
	}

	fillRect(screen, 0, 0, ScreenWidth, ScreenHeight, modalOverlay)
	fillRect(screen, ws.x, ws.y, WelcomeWidth, WelcomeHeight, modalBg)
	strokeRect(screen, ws.x, ws.y, WelcomeWidth, WelcomeHeight, 2, modalBorder)

	ws.drawBoardIcon(screen)

	cx := ws.x + WelcomeWidth/2
	drawTextCentered(screen, "CIRCULAR CHESS", GetFaceWithSize(24), cx, ws.y+84, textPrimary)
	drawTextCentered(screen, "Welcome! Pick a variant to start with.", GetRegularFace(), cx, ws.y+112, textSecondary)

	DrawSectionHeader(screen, "Variant", ws.x+WelcomePadX, ws.modeRadio.Y-22)
	ws.modeRadio.Draw(screen)
	ws.startBtn.Draw(screen)
}

// drawBoardIcon draws a small ringed disc.
func (ws *WelcomeScreen) drawBoardIcon(screen *ebiten.Image) {
	cx := scaleF(ws.x + WelcomeWidth/2)
	cy := scaleF(ws.y + 42)
	w := float32(2 * UIScale)

	vector.DrawFilledCircle(screen, cx, cy, scaleF(22), accentColor, true)
	vector.StrokeCircle(screen, cx, cy, scaleF(16), w, modalBg, true)
	vector.StrokeCircle(screen, cx, cy, scaleF(10), w, modalBg, true)
	vector.DrawFilledCircle(screen, cx, cy, scaleF(5), modalBg, true)
}
