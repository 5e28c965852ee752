package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	widgetBg      = color.RGBA{48, 52, 58, 255}
	widgetBorder  = color.RGBA{68, 72, 78, 255}
	widgetHoverBg = color.RGBA{65, 70, 78, 255}
	rowHoverBg    = color.RGBA{55, 60, 68, 255}
	radioActive   = color.RGBA{76, 175, 120, 255}
	radioInactive = color.RGBA{70, 75, 82, 255}
	checkboxCheck = color.RGBA{76, 175, 120, 255}
	highlightText = color.RGBA{240, 240, 245, 255}
	primaryGlow   = color.RGBA{116, 215, 160, 255}

	modalOverlay = color.RGBA{0, 0, 0, 180}
	modalBg      = color.RGBA{38, 40, 45, 255}
	modalHeader  = color.RGBA{48, 52, 58, 255}
	modalBorder  = color.RGBA{58, 62, 68, 255}
)

// Layout coordinates are logical pixels; these convert them for drawing on
// the HiDPI backbuffer.
func scaleF(v int) float32 { return float32(float64(v) * UIScale) }

func scaleD(v int) float64 { return float64(v) * UIScale }

func scaleI(v int) int { return int(float64(v) * UIScale) }

// drawTextAt draws s with its top-left corner at a device-pixel position.
func drawTextAt(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// drawText is drawTextAt in logical coordinates.
func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y int, c color.Color) {
	drawTextAt(screen, s, face, scaleD(x), scaleD(y), c)
}

// drawTextCentered centers s on the logical point (cx, cy).
func drawTextCentered(screen *ebiten.Image, s string, face *text.GoTextFace, cx, cy int, c color.Color) {
	if face == nil {
		return
	}
	w, h := MeasureText(s, face)
	drawTextAt(screen, s, face, scaleD(cx)-w/2, scaleD(cy)-h/2, c)
}

// fillDevice fills a rectangle given in backbuffer pixels.
func fillDevice(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

func fillRect(screen *ebiten.Image, x, y, w, h int, c color.Color) {
	fillDevice(screen, scaleD(x), scaleD(y), scaleD(w), scaleD(h), c)
}

func strokeRect(screen *ebiten.Image, x, y, w, h int, width float32, c color.Color) {
	vector.StrokeRect(screen, scaleF(x), scaleF(y), scaleF(w), scaleF(h), width*float32(UIScale), c, false)
}

// drawModalFrame dims the screen and draws an empty dialog with a title bar.
func drawModalFrame(screen *ebiten.Image, x, y, w, h int, title string) {
	fillRect(screen, 0, 0, ScreenWidth, ScreenHeight, modalOverlay)
	fillRect(screen, x, y, w, h, modalBg)
	strokeRect(screen, x, y, w, h, 2, modalBorder)
	fillRect(screen, x, y, w, 44, modalHeader)
	drawTextCentered(screen, title, GetBoldFace(), x+w/2, y+22, textPrimary)
}

// pick chooses between the idle, hover and pressed variants of a color.
func pick(idle, hover, pressed color.RGBA, isHovered, isPressed bool) color.RGBA {
	switch {
	case isPressed:
		return pressed
	case isHovered:
		return hover
	}
	return idle
}

// choices is the selection and hover state shared by option lists.
type choices struct {
	Selected int
	hovered  int
	pressed  int
	count    int
}

func newChoices(n, selected int) choices {
	return choices{Selected: selected, hovered: -1, pressed: -1, count: n}
}

// track updates hover state against the cell rectangles produced by cell
// and reports whether the selection changed.
func (c *choices) track(input *InputHandler, cell func(i int) (x, y, w, h int)) bool {
	c.hovered, c.pressed = -1, -1
	for i := range c.count {
		if !input.IsInBounds(cell(i)) {
			continue
		}
		c.hovered = i
		if input.IsLeftPressed() {
			c.pressed = i
		}
		if input.IsLeftJustPressed() {
			c.Selected = i
			return true
		}
	}
	return false
}

// RadioOption represents a single radio button option.
type RadioOption struct {
	Label string
	Value int
}

// RadioGroup stacks mutually exclusive options vertically.
type RadioGroup struct {
	choices
	X, Y    int
	W       int
	ItemH   int
	Options []RadioOption
}

// NewRadioGroup creates a new radio group.
func NewRadioGroup(x, y, w int, options []RadioOption, selected int) *RadioGroup {
	return &RadioGroup{
		choices: newChoices(len(options), selected),
		X:       x,
		Y:       y,
		W:       w,
		ItemH:   30,
		Options: options,
	}
}

func (rg *RadioGroup) cell(i int) (int, int, int, int) {
	return rg.X, rg.Y + i*rg.ItemH, rg.W, rg.ItemH
}

// Value returns the value of the selected option.
func (rg *RadioGroup) Value() int {
	if rg.Selected < 0 || rg.Selected >= len(rg.Options) {
		return 0
	}
	return rg.Options[rg.Selected].Value
}

// Select selects the option carrying value.
func (rg *RadioGroup) Select(value int) {
	for i, opt := range rg.Options {
		if opt.Value == value {
			rg.Selected = i
			return
		}
	}
}

// Update handles radio group input.
func (rg *RadioGroup) Update(input *InputHandler) bool {
	return rg.track(input, rg.cell)
}

// Draw renders the radio group.
func (rg *RadioGroup) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	for i, opt := range rg.Options {
		_, y, _, _ := rg.cell(i)
		on, over := i == rg.Selected, i == rg.hovered

		if over && !on {
			fillRect(screen, rg.X-4, y, rg.W, rg.ItemH, rowHoverBg)
		}

		cx, cy, r := scaleF(rg.X+10), scaleF(y+rg.ItemH/2), scaleF(8)
		dot := pick(radioInactive, accentColor, radioActive, over, on)
		vector.DrawFilledCircle(screen, cx, cy, r, dot, true)
		if on {
			vector.DrawFilledCircle(screen, cx, cy, r-scaleF(4), highlightText, true)
		}

		label := textSecondary
		if on || over {
			label = textPrimary
		}
		_, h := MeasureText(opt.Label, face)
		drawText(screen, opt.Label, face, rg.X+30, y+rg.ItemH/2-int(h/2/UIScale), label)
	}
}

// ButtonGroup is a horizontal row of toggle buttons.
type ButtonGroup struct {
	choices
	X, Y    int
	ButtonW int
	ButtonH int
	Options []string
}

// NewButtonGroup creates a new button group.
func NewButtonGroup(x, y int, options []string, selected int, buttonW, buttonH int) *ButtonGroup {
	return &ButtonGroup{
		choices: newChoices(len(options), selected),
		X:       x,
		Y:       y,
		ButtonW: buttonW,
		ButtonH: buttonH,
		Options: options,
	}
}

func (bg *ButtonGroup) cell(i int) (int, int, int, int) {
	return bg.X + i*bg.ButtonW, bg.Y, bg.ButtonW, bg.ButtonH
}

// Update handles button group input.
func (bg *ButtonGroup) Update(input *InputHandler) bool {
	return bg.track(input, bg.cell)
}

// Draw renders the button group.
func (bg *ButtonGroup) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	for i, label := range bg.Options {
		x, y, w, h := bg.cell(i)
		on, over := i == bg.Selected, i == bg.hovered

		fill := pick(tabInactiveBg, tabHoverBg, buttonPressedBg, over, i == bg.pressed)
		edge := pick(buttonBorder, accentColor, accentColor, over, false)
		ink := textSecondary
		if on {
			fill, edge, ink = tabActiveBg, tabActiveBg, textPrimary
		}

		fillRect(screen, x, y, w, h, fill)
		strokeRect(screen, x, y, w, h, 1, edge)
		drawTextCentered(screen, label, face, x+w/2, y+h/2, ink)
	}
}

// Checkbox is a toggleable checkbox widget.
type Checkbox struct {
	X, Y    int
	Label   string
	Checked bool
	hovered bool
}

const (
	checkboxSize  = 20
	checkboxHitW  = 220
	checkboxHitH  = 24
	checkboxLabel = 30
)

// NewCheckbox creates a new checkbox.
func NewCheckbox(x, y int, label string, checked bool) *Checkbox {
	return &Checkbox{X: x, Y: y, Label: label, Checked: checked}
}

// Update toggles the box when it is clicked.
func (cb *Checkbox) Update(input *InputHandler) bool {
	cb.hovered = input.IsInBounds(cb.X, cb.Y, checkboxHitW, checkboxHitH)
	if cb.hovered && input.IsLeftJustPressed() {
		cb.Checked = !cb.Checked
		return true
	}
	return false
}

// Draw renders the checkbox.
func (cb *Checkbox) Draw(screen *ebiten.Image) {
	edge := widgetBorder
	if cb.Checked {
		edge = checkboxCheck
	}
	if cb.hovered {
		edge = accentColor
	}
	fillRect(screen, cb.X, cb.Y, checkboxSize, checkboxSize, pick(widgetBg, widgetHoverBg, widgetHoverBg, cb.hovered, false))
	strokeRect(screen, cb.X, cb.Y, checkboxSize, checkboxSize, 2, edge)

	ink := textSecondary
	if cb.Checked {
		ink = textPrimary
		w := float32(2 * UIScale)
		x, y := cb.X, cb.Y
		vector.StrokeLine(screen, scaleF(x+4), scaleF(y+10), scaleF(x+8), scaleF(y+14), w, checkboxCheck, true)
		vector.StrokeLine(screen, scaleF(x+8), scaleF(y+14), scaleF(x+16), scaleF(y+6), w, checkboxCheck, true)
	}
	drawText(screen, cb.Label, GetRegularFace(), cb.X+checkboxLabel, cb.Y+2, ink)
}

// ModalButton is a push button used in dialogs and banners.
type ModalButton struct {
	X, Y, W, H int
	Label      string
	Primary    bool
	OnClick    func()
	hovered    bool
	pressed    bool
}

// NewModalButton creates a new modal button.
func NewModalButton(x, y, w, h int, label string, primary bool, onClick func()) *ModalButton {
	return &ModalButton{X: x, Y: y, W: w, H: h, Label: label, Primary: primary, OnClick: onClick}
}

// IsHovered returns true if the button is hovered.
func (mb *ModalButton) IsHovered() bool { return mb.hovered }

// Update fires OnClick on a press inside the button.
func (mb *ModalButton) Update(input *InputHandler) bool {
	mb.hovered = input.IsInBounds(mb.X, mb.Y, mb.W, mb.H)
	mb.pressed = mb.hovered && input.IsLeftPressed()
	if mb.hovered && input.IsLeftJustPressed() && mb.OnClick != nil {
		mb.OnClick()
		return true
	}
	return false
}

// Draw renders the modal button.
func (mb *ModalButton) Draw(screen *ebiten.Image) {
	fill := pick(buttonBg, buttonHoverBg, buttonPressedBg, mb.hovered, mb.pressed)
	edge := pick(widgetBorder, accentColor, widgetBorder, mb.hovered, mb.pressed)
	if mb.Primary {
		fill = pick(accentColor, accentHover, accentPressed, mb.hovered, mb.pressed)
		edge = pick(accentPressed, primaryGlow, accentPressed, mb.hovered, mb.pressed)
	}
	fillRect(screen, mb.X, mb.Y, mb.W, mb.H, fill)
	strokeRect(screen, mb.X, mb.Y, mb.W, mb.H, 1, edge)
	drawTextCentered(screen, mb.Label, GetRegularFace(), mb.X+mb.W/2, mb.Y+mb.H/2, textPrimary)
}

// DrawDivider draws a horizontal divider line.
func DrawDivider(screen *ebiten.Image, x, y, w int) {
	fillRect(screen, x, y, w, 1, dividerColor)
}

// DrawSectionHeader draws a muted section label.
func DrawSectionHeader(screen *ebiten.Image, label string, x, y int) {
	drawText(screen, label, GetRegularFace(), x, y, textMuted)
}
