package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a keyboard command.
type Action int

const (
	ActionNone Action = iota
	ActionUndo
	ActionRedo
	ActionNewGame
	ActionExport
	ActionCancel
	ActionToggleCoordinates
)

// InputHandler manages mouse and keyboard input.
type InputHandler struct {
	mouseX, mouseY   int // Logical coordinates (unscaled)
	leftPressed      bool
	leftJustPressed  bool
	leftJustReleased bool
	wheelY           float64
	action           Action
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update updates the input state. Call this once per frame.
func (ih *InputHandler) Update() {
	rawX, rawY := ebiten.CursorPosition()

	scale := UIScale
	if scale < 1.0 {
		scale = 1.0
	}
	ih.mouseX = int(float64(rawX) / scale)
	ih.mouseY = int(float64(rawY) / scale)

	ih.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	ih.leftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	ih.leftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	_, ih.wheelY = ebiten.Wheel()

	ih.action = readAction()
}

// readAction maps this frame's key presses to a command. Ctrl or Cmd is
// accepted as the modifier.
func readAction() Action {
	mod := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ActionCancel
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		mod && !shift && inpututil.IsKeyJustPressed(ebiten.KeyZ):
		return ActionUndo
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		mod && inpututil.IsKeyJustPressed(ebiten.KeyY),
		mod && shift && inpututil.IsKeyJustPressed(ebiten.KeyZ):
		return ActionRedo
	case mod && inpututil.IsKeyJustPressed(ebiten.KeyN):
		return ActionNewGame
	case mod && inpututil.IsKeyJustPressed(ebiten.KeyE):
		return ActionExport
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		return ActionToggleCoordinates
	}
	return ActionNone
}

// isEnterJustPressed reports a confirm key in modal dialogs.
func isEnterJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
}

// MousePosition returns the current mouse position in logical coordinates.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.mouseX, ih.mouseY
}

// IsLeftJustPressed returns true if the left mouse button was just pressed.
func (ih *InputHandler) IsLeftJustPressed() bool {
	return ih.leftJustPressed
}

// IsLeftJustReleased returns true if the left mouse button was just released.
func (ih *InputHandler) IsLeftJustReleased() bool {
	return ih.leftJustReleased
}

// IsLeftPressed returns true if the left mouse button is currently pressed.
func (ih *InputHandler) IsLeftPressed() bool {
	return ih.leftPressed
}

// WheelY returns the vertical scroll of this frame.
func (ih *InputHandler) WheelY() float64 {
	return ih.wheelY
}

// Action returns the keyboard command of this frame.
func (ih *InputHandler) Action() Action {
	return ih.action
}

// IsInBounds returns true if the mouse is within the given rectangle.
func (ih *InputHandler) IsInBounds(x, y, w, h int) bool {
	return ih.mouseX >= x && ih.mouseX < x+w && ih.mouseY >= y && ih.mouseY < y+h
}
