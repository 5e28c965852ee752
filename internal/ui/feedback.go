package ui

import (
	"image/color"
	"math"
	"slices"
	"time"

	"github.com/hailam/circularchess/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
)

// InvalidMoveReason represents why a move was rejected.
type InvalidMoveReason int

const (
	ReasonUnknown InvalidMoveReason = iota
	ReasonBlockedByOwnPiece
	ReasonCitadel
	ReasonInvalidPieceMovement
	ReasonNotYourTurn
)

var reasonMessages = map[InvalidMoveReason]string{
	ReasonBlockedByOwnPiece:    "Square occupied by your piece",
	ReasonCitadel:              "Citadel squares cannot be entered",
	ReasonInvalidPieceMovement: "Invalid move for this piece",
	ReasonNotYourTurn:          "Not your turn",
}

// Message returns the text shown to the player.
func (r InvalidMoveReason) Message() string {
	if msg, ok := reasonMessages[r]; ok {
		return msg
	}
	return "Invalid move"
}

// timed is the clock shared by toasts and board effects.
type timed struct {
	start    time.Time
	duration time.Duration
}

func newTimed(d time.Duration) timed {
	return timed{start: time.Now(), duration: d}
}

// progress runs from 0 to 1 over the lifetime.
func (t timed) progress(now time.Time) float64 {
	return now.Sub(t.start).Seconds() / t.duration.Seconds()
}

func (t timed) expired(now time.Time) bool {
	return now.Sub(t.start) >= t.duration
}

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastError
	ToastSuccess
)

type toast struct {
	timed
	message string
	kind    ToastType
}

// toastFade is the fade-in and fade-out time of a toast.
const toastFade = 0.2

// alpha fades the toast in and out.
func (t toast) alpha(now time.Time) float64 {
	elapsed := now.Sub(t.start).Seconds()
	remaining := t.duration.Seconds() - elapsed
	return math.Max(0, math.Min(1, math.Min(elapsed, remaining)/toastFade))
}

// ToastManager keeps the most recent notifications.
type ToastManager struct {
	toasts   []toast
	maxStack int
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{maxStack: 3}
}

// Show displays a message for d.
func (tm *ToastManager) Show(message string, kind ToastType, d time.Duration) {
	tm.toasts = append(tm.toasts, toast{timed: newTimed(d), message: message, kind: kind})
	if over := len(tm.toasts) - tm.maxStack; over > 0 {
		tm.toasts = tm.toasts[over:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := time.Now()
	tm.toasts = slices.DeleteFunc(tm.toasts, func(t toast) bool { return t.expired(now) })
}

var toastPalette = map[ToastType][2]color.RGBA{
	ToastInfo:    {{50, 100, 150, 220}, {255, 255, 255, 255}},
	ToastWarning: {{180, 140, 20, 220}, {40, 30, 0, 255}},
	ToastError:   {{180, 50, 50, 220}, {255, 255, 255, 255}},
	ToastSuccess: {{50, 150, 50, 220}, {255, 255, 255, 255}},
}

// Draw stacks the toasts at the top of the board.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	now := time.Now()
	pad := 12 * UIScale
	y := 40 * UIScale
	for _, t := range tm.toasts {
		a := t.alpha(now)
		colors := toastPalette[t.kind]
		bg, fg := colors[0], colors[1]
		bg.A = uint8(float64(bg.A) * a)
		fg.A = uint8(float64(fg.A) * a)

		w, h := MeasureText(t.message, face)
		boxW, boxH := w+2*pad, h+2*pad
		x := (scaleD(BoardSize) - boxW) / 2

		fillDevice(screen, x, y, boxW, boxH, bg)
		drawTextAt(screen, t.message, face, x+pad, y+pad, fg)
		y += boxH + 8*UIScale
	}
}

// squareEffect animates a single square.
type squareEffect struct {
	timed
	sq board.Square
}

const (
	shakeDuration  = 300 * time.Millisecond
	shakeIntensity = 8.0 // logical pixels
	flashDuration  = 400 * time.Millisecond
)

// AnimationManager runs the shake and flash effects.
type AnimationManager struct {
	shakes  []squareEffect
	flashes []squareEffect
}

// NewAnimationManager creates a new animation manager.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{}
}

// StartShake wobbles the piece on sq.
func (am *AnimationManager) StartShake(sq board.Square) {
	am.shakes = append(am.shakes, squareEffect{newTimed(shakeDuration), sq})
}

// StartFlash tints sq red for a moment.
func (am *AnimationManager) StartFlash(sq board.Square) {
	am.flashes = append(am.flashes, squareEffect{newTimed(flashDuration), sq})
}

// Update removes finished effects.
func (am *AnimationManager) Update() {
	now := time.Now()
	done := func(e squareEffect) bool { return e.expired(now) }
	am.shakes = slices.DeleteFunc(am.shakes, done)
	am.flashes = slices.DeleteFunc(am.flashes, done)
}

// GetShakeOffset returns the current displacement of the piece on sq in
// logical pixels: a damped sine.
func (am *AnimationManager) GetShakeOffset(sq board.Square) float64 {
	now := time.Now()
	for _, s := range am.shakes {
		if s.sq != sq {
			continue
		}
		p := s.progress(now)
		if p >= 1 {
			return 0
		}
		return shakeIntensity * math.Exp(-5*p) * math.Sin(40*p)
	}
	return 0
}

// DrawFlashes renders all active flash overlays.
func (am *AnimationManager) DrawFlashes(screen *ebiten.Image, r *Renderer) {
	now := time.Now()
	for _, f := range am.flashes {
		if p := f.progress(now); p < 1 {
			r.DrawFlash(screen, f.sq, 1-p)
		}
	}
}

// FeedbackManager turns game events into sound, toasts and animations.
type FeedbackManager struct {
	toasts     *ToastManager
	animations *AnimationManager
	audio      *AudioManager
}

// NewFeedbackManager creates a new feedback manager.
func NewFeedbackManager() *FeedbackManager {
	return &FeedbackManager{
		toasts:     NewToastManager(),
		animations: NewAnimationManager(),
		audio:      NewAudioManager(),
	}
}

// Update advances toasts and animations.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
	fm.animations.Update()
}

// Draw renders all feedback overlays.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, r *Renderer) {
	fm.animations.DrawFlashes(screen, r)
	fm.toasts.Draw(screen)
}

// Animations returns the animation manager for renderer integration.
func (fm *FeedbackManager) Animations() *AnimationManager {
	return fm.animations
}

// Audio returns the audio manager for settings access.
func (fm *FeedbackManager) Audio() *AudioManager {
	return fm.audio
}

// Toast shows a message without sound.
func (fm *FeedbackManager) Toast(message string, kind ToastType) {
	fm.toasts.Show(message, kind, 3*time.Second)
}

// OnInvalidMove shakes the piece on from and flashes to, if it is a square.
func (fm *FeedbackManager) OnInvalidMove(from, to board.Square, reason InvalidMoveReason) {
	fm.toasts.Show(reason.Message(), ToastWarning, 2*time.Second)
	fm.animations.StartShake(from)
	if to != board.NoSquare {
		fm.animations.StartFlash(to)
	}
	fm.audio.Play(SoundInvalid)
}

// OnMoveMade plays the move or capture sound.
func (fm *FeedbackManager) OnMoveMade(isCapture bool) {
	sound := SoundMove
	if isCapture {
		sound = SoundCapture
	}
	fm.audio.Play(sound)
}

// OnUndo plays the history step sound.
func (fm *FeedbackManager) OnUndo() {
	fm.audio.Play(SoundUndo)
}

// OnNoMoves announces that side cannot move.
func (fm *FeedbackManager) OnNoMoves(side board.Color) {
	fm.toasts.Show(side.String()+" has no moves", ToastSuccess, 5*time.Second)
	fm.audio.Play(SoundGameEnd)
}
