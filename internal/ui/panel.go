package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hailam/circularchess/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
)

// Panel dimensions
const (
	PanelPadding    = 20
	SectionSpacing  = 24
	ButtonHeight    = 40
	TabHeight       = 34
	CollapsedWidth  = 20
	CollapseButtonW = 16
	CollapseButtonH = 48
	SectionLabelH   = 20
	statusBarH      = 86
	historyRowH     = 22
)

// Panel colors
var (
	panelBg         = color.RGBA{38, 40, 45, 255}
	sectionBg       = color.RGBA{48, 52, 58, 255}
	tabActiveBg     = color.RGBA{76, 132, 96, 255}
	tabInactiveBg   = color.RGBA{50, 54, 60, 255}
	tabHoverBg      = color.RGBA{65, 70, 78, 255}
	buttonBg        = color.RGBA{50, 54, 60, 255}
	buttonHoverBg   = color.RGBA{65, 70, 78, 255}
	buttonPressedBg = color.RGBA{40, 44, 50, 255}
	buttonBorder    = color.RGBA{70, 75, 82, 255}
	buttonDisabled  = color.RGBA{44, 47, 52, 255}
	accentColor     = color.RGBA{76, 175, 120, 255}
	accentHover     = color.RGBA{96, 195, 140, 255}
	accentPressed   = color.RGBA{56, 155, 100, 255}
	textPrimary     = color.RGBA{240, 240, 245, 255}
	textSecondary   = color.RGBA{160, 165, 175, 255}
	textMuted       = color.RGBA{120, 125, 135, 255}
	dividerColor    = color.RGBA{60, 65, 72, 255}
	moveRowAlt      = color.RGBA{44, 48, 54, 255}
	statusGameOver  = color.RGBA{255, 200, 80, 255}
)

// Button represents a clickable UI element.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	Enabled    func() bool
	hovered    bool
	pressed    bool
}

func (b *Button) enabled() bool {
	return b.Enabled == nil || b.Enabled()
}

// Panel represents the side panel with controls and move history.
type Panel struct {
	game      *Game
	collapsed bool

	collapseBtn *Button
	newGameBtn  *Button
	actionBtns  []*Button // undo, redo, export
	settingsBtn *Button
	modeTabs    []*Button // one per board.Modes entry

	scrollY    int
	maxScrollY int
}

// NewPanel creates a new panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}
	p.createButtons()
	return p
}

// createButtons lays out every panel button.
func (p *Panel) createButtons() {
	tabY := (ScreenHeight - CollapseButtonH) / 2
	collapseX := BoardSize
	if p.collapsed {
		collapseX = BoardSize + 2
	}
	p.collapseBtn = &Button{
		X: collapseX, Y: tabY, W: CollapseButtonW, H: CollapseButtonH,
		OnClick: p.toggleCollapse,
	}

	contentX := BoardSize + PanelPadding
	contentW := PanelWidth - PanelPadding*2

	y := PanelPadding + 8
	p.newGameBtn = &Button{
		X: contentX, Y: y, W: contentW, H: ButtonHeight,
		Label:   "New Game",
		OnClick: func() { p.game.NewGameAction(p.game.Mode()) },
	}

	y += ButtonHeight + 8
	third := contentW / 3
	p.actionBtns = []*Button{
		{X: contentX, Y: y, W: third - 4, H: TabHeight, Label: "Undo",
			OnClick: p.game.UndoAction, Enabled: p.game.CanUndo},
		{X: contentX + third + 2, Y: y, W: third - 4, H: TabHeight, Label: "Redo",
			OnClick: p.game.RedoAction, Enabled: p.game.CanRedo},
		{X: contentX + 2*third + 4, Y: y, W: third - 4, H: TabHeight, Label: "Export",
			OnClick: p.game.ExportAction},
	}

	y += TabHeight + 8
	p.settingsBtn = &Button{
		X: contentX, Y: y, W: contentW, H: TabHeight,
		Label:   "Settings",
		OnClick: p.game.ShowSettings,
	}

	y += TabHeight + SectionSpacing + SectionLabelH
	tabW := contentW / len(board.Modes)
	p.modeTabs = make([]*Button, len(board.Modes))
	for i, mode := range board.Modes {
		name := mode.String()
		p.modeTabs[i] = &Button{
			X: contentX + i*tabW, Y: y, W: tabW, H: TabHeight,
			Label:   strings.ToUpper(name[:1]) + name[1:],
			OnClick: func() { p.game.NewGameAction(mode) },
		}
	}
}

func (p *Panel) buttons() []*Button {
	btns := []*Button{p.newGameBtn, p.settingsBtn}
	btns = append(btns, p.actionBtns...)
	return append(btns, p.modeTabs...)
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	mx, my := input.MousePosition()

	p.collapseBtn.hovered = p.isInside(mx, my, p.collapseBtn)
	if input.IsLeftJustPressed() && p.collapseBtn.hovered {
		p.collapseBtn.OnClick()
		return true
	}
	if p.collapsed {
		return false
	}

	if wheel := input.WheelY(); wheel != 0 {
		historyY := p.historyStartY()
		if mx >= BoardSize && my >= historyY && my < ScreenHeight-statusBarH {
			p.scrollY -= int(wheel * 30)
			p.scrollY = max(0, min(p.scrollY, p.maxScrollY))
		}
	}

	for _, btn := range p.buttons() {
		btn.hovered = p.isInside(mx, my, btn) && btn.enabled()
		btn.pressed = input.IsLeftPressed() && btn.hovered
	}

	if input.IsLeftJustPressed() {
		for _, btn := range p.buttons() {
			if btn.hovered {
				btn.OnClick()
				return true
			}
		}
	}

	return mx >= BoardSize && input.IsLeftJustPressed()
}

// AnyButtonHovered returns true if any button in the panel is hovered.
func (p *Panel) AnyButtonHovered() bool {
	if p.collapseBtn.hovered {
		return true
	}
	if p.collapsed {
		return false
	}
	for _, btn := range p.buttons() {
		if btn.hovered {
			return true
		}
	}
	return false
}

func (p *Panel) isInside(mx, my int, btn *Button) bool {
	return mx >= btn.X && mx < btn.X+btn.W && my >= btn.Y && my < btn.Y+btn.H
}

// ScrollToEnd shows the newest moves.
func (p *Panel) ScrollToEnd() {
	p.scrollY = 1 << 30
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	if p.collapsed {
		fillRect(screen, BoardSize, 0, CollapsedWidth, ScreenHeight, panelBg)
		p.drawCollapseButton(screen, true)
		return
	}

	fillRect(screen, BoardSize, 0, PanelWidth, ScreenHeight, panelBg)
	p.drawCollapseButton(screen, false)

	p.drawPrimaryButton(screen, p.newGameBtn)
	for _, btn := range p.actionBtns {
		p.drawSecondaryButton(screen, btn)
	}
	p.drawSecondaryButton(screen, p.settingsBtn)

	contentX := BoardSize + PanelPadding
	DrawSectionHeader(screen, "Variant", contentX, p.modeTabs[0].Y-SectionLabelH)
	p.drawModeTabs(screen)

	historyY := p.historyStartY()
	DrawSectionHeader(screen, "Moves", contentX, historyY)
	p.drawMoveHistory(screen, historyY+SectionLabelH+4)

	p.drawStatusBar(screen)
}

func (p *Panel) historyStartY() int {
	return p.modeTabs[0].Y + p.modeTabs[0].H + SectionSpacing - 4
}

func (p *Panel) drawCollapseButton(screen *ebiten.Image, expand bool) {
	btn := p.collapseBtn

	bgColor := panelBg
	if btn.hovered {
		bgColor = sectionBg
	}
	fillRect(screen, btn.X, btn.Y, btn.W, btn.H, bgColor)

	arrow := "‹"
	if expand {
		arrow = "›"
	}
	textC := textMuted
	if btn.hovered {
		textC = textPrimary
	}
	drawTextCentered(screen, arrow, GetRegularFace(), btn.X+btn.W/2, btn.Y+btn.H/2, textC)
}

func (p *Panel) drawPrimaryButton(screen *ebiten.Image, btn *Button) {
	bgColor := accentColor
	if btn.pressed {
		bgColor = accentPressed
	} else if btn.hovered {
		bgColor = accentHover
	}
	fillRect(screen, btn.X, btn.Y, btn.W, btn.H, bgColor)

	borderC := accentPressed
	if btn.hovered {
		borderC = color.RGBA{116, 215, 160, 255}
	}
	strokeRect(screen, btn.X, btn.Y, btn.W, btn.H, 1, borderC)
	drawTextCentered(screen, btn.Label, GetRegularFace(), btn.X+btn.W/2, btn.Y+btn.H/2, textPrimary)
}

func (p *Panel) drawSecondaryButton(screen *ebiten.Image, btn *Button) {
	bgColor, borderC, textC := buttonBg, buttonBorder, textSecondary
	switch {
	case !btn.enabled():
		bgColor, textC = buttonDisabled, textMuted
	case btn.pressed:
		bgColor = buttonPressedBg
	case btn.hovered:
		bgColor, borderC = buttonHoverBg, accentColor
	}
	fillRect(screen, btn.X, btn.Y, btn.W, btn.H, bgColor)
	strokeRect(screen, btn.X, btn.Y, btn.W, btn.H, 1, borderC)
	drawTextCentered(screen, btn.Label, GetRegularFace(), btn.X+btn.W/2, btn.Y+btn.H/2, textC)
}

func (p *Panel) drawModeTabs(screen *ebiten.Image) {
	current := p.game.Mode()
	for i, btn := range p.modeTabs {
		isActive := board.Modes[i] == current

		bgColor := tabInactiveBg
		switch {
		case isActive:
			bgColor = tabActiveBg
		case btn.pressed:
			bgColor = buttonPressedBg
		case btn.hovered:
			bgColor = tabHoverBg
		}
		fillRect(screen, btn.X, btn.Y, btn.W, btn.H, bgColor)

		borderC := buttonBorder
		if isActive {
			borderC = tabActiveBg
		} else if btn.hovered {
			borderC = accentColor
		}
		strokeRect(screen, btn.X, btn.Y, btn.W, btn.H, 1, borderC)

		textColor := textSecondary
		if isActive {
			textColor = textPrimary
		}
		drawTextCentered(screen, btn.Label, GetRegularFace(), btn.X+btn.W/2, btn.Y+btn.H/2, textColor)
	}
}

func (p *Panel) drawMoveHistory(screen *ebiten.Image, startY int) {
	face := GetRegularFace()
	x := BoardSize + PanelPadding

	moves := p.game.SANHistory()
	if len(moves) == 0 {
		drawText(screen, "No moves yet", face, x, startY+5, textMuted)
		return
	}

	// A game may start with black to move; pad so rows stay white-black.
	offset := 0
	if p.game.StartTurn() == board.Black {
		offset = 1
	}

	maxY := ScreenHeight - statusBarH
	visibleHeight := maxY - startY
	totalRows := (len(moves) + offset + 1) / 2
	contentHeight := totalRows * historyRowH
	p.maxScrollY = max(0, contentHeight-visibleHeight)
	p.scrollY = max(0, min(p.scrollY, p.maxScrollY))

	firstRow := p.scrollY / historyRowH
	y := startY - p.scrollY%historyRowH

	for row := firstRow; row < totalRows; row++ {
		if y > maxY-historyRowH {
			break
		}
		if row%2 == 1 && y >= startY {
			fillRect(screen, x-4, y-2, PanelWidth-PanelPadding*2+8, historyRowH, moveRowAlt)
		}
		if y >= startY {
			drawText(screen, fmt.Sprintf("%d.", row+1), face, x, y, textMuted)
			for col := 0; col < 2; col++ {
				i := row*2 + col - offset
				if i < 0 || i >= len(moves) {
					continue
				}
				drawText(screen, moves[i], face, x+36+col*90, y, textPrimary)
			}
		}
		y += historyRowH
	}

	if p.maxScrollY > 0 {
		pct := float64(p.scrollY) / float64(p.maxScrollY)
		indicatorH := max(20, visibleHeight*visibleHeight/contentHeight)
		indicatorY := startY + int(pct*float64(visibleHeight-indicatorH))
		fillRect(screen, BoardSize+PanelWidth-8, indicatorY, 4, indicatorH, textMuted)
	}
}

func (p *Panel) drawStatusBar(screen *ebiten.Image) {
	statusY := ScreenHeight - statusBarH + 8
	x := BoardSize + PanelPadding
	face := GetRegularFace()

	DrawDivider(screen, x, statusY-8, PanelWidth-PanelPadding*2)

	drawText(screen, p.game.Mode().Title(), face, x, statusY, textSecondary)

	statusColor := textPrimary
	if p.game.GameOver() {
		statusColor = statusGameOver
	}
	drawText(screen, p.game.Status(), face, x, statusY+22, statusColor)
	drawText(screen, p.game.StatsSummary(), face, x, statusY+44, textMuted)
}

// Collapsed returns whether the panel is collapsed.
func (p *Panel) Collapsed() bool {
	return p.collapsed
}

// toggleCollapse toggles the panel collapsed state and resizes the window.
func (p *Panel) toggleCollapse() {
	p.collapsed = !p.collapsed
	p.createButtons()

	if p.collapsed {
		ebiten.SetWindowSize(BoardSize+CollapsedWidth, ScreenHeight)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	}
}
