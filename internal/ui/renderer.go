package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hailam/circularchess/internal/board"
	"github.com/hailam/circularchess/internal/geometry"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay colors that do not depend on the palette.
var (
	lastMoveColor = color.RGBA{180, 190, 100, 90}
	citadelColor  = color.RGBA{160, 60, 200, 110}
	flashColor    = color.RGBA{255, 80, 80, 150}
)

// wedgeSegments is the number of straight pieces approximating each arc.
const wedgeSegments = 8

var whiteSubImage *ebiten.Image

func init() {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Renderer draws the circular board.
type Renderer struct {
	sprites  *SpriteManager
	theme    geometry.Theme
	layout   geometry.Layout // logical pixels
	showRing bool            // coordinate labels

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer creates a renderer for a board of the given logical size.
func NewRenderer(sprites *SpriteManager, boardSize int) *Renderer {
	return &Renderer{
		sprites:  sprites,
		theme:    geometry.Themes[0],
		layout:   geometry.NewLayout(float64(boardSize)/2, float64(boardSize)/2, float64(boardSize)),
		showRing: true,
	}
}

// device returns the layout in backbuffer pixels.
func (r *Renderer) device() geometry.Layout {
	l := r.layout
	return geometry.Layout{CX: l.CX * UIScale, CY: l.CY * UIScale, Outer: l.Outer * UIScale, Hole: l.Hole * UIScale}
}

// SetTheme changes the palette.
func (r *Renderer) SetTheme(t geometry.Theme) {
	r.theme = t
}

// Theme returns the current palette.
func (r *Renderer) Theme() geometry.Theme {
	return r.theme
}

// SetShowCoordinates toggles the file and ring labels.
func (r *Renderer) SetShowCoordinates(show bool) {
	r.showRing = show
}

// ShowCoordinates reports whether labels are drawn.
func (r *Renderer) ShowCoordinates() bool {
	return r.showRing
}

// ScreenToSquare converts logical screen coordinates to a square.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	return r.layout.PointToSquare(float64(x)+0.5, float64(y)+0.5)
}

// DrawBoard draws the background disc, squares, grid and labels.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	l := r.device()
	vector.DrawFilledCircle(screen, float32(l.CX), float32(l.CY), float32(l.Outer+8*UIScale), r.theme.Grid, true)

	for sq := board.Square(0); sq < board.SquareCount; sq++ {
		r.fillSquare(screen, sq, r.theme.SquareColor(geometry.IsLightSquare(sq)))
	}

	vector.DrawFilledCircle(screen, float32(l.CX), float32(l.CY), float32(l.Hole), r.theme.Hole, true)

	width := float32(UIScale)
	for ring := 0; ring <= board.Rings; ring++ {
		vector.StrokeCircle(screen, float32(l.CX), float32(l.CY), float32(l.RingRadius(ring)), width, r.theme.Grid, true)
	}
	for file := 0; file < board.Files; file++ {
		a := l.FileAngle(float64(file))
		p0, p1 := l.Polar(l.Hole, a), l.Polar(l.Outer, a)
		vector.StrokeLine(screen, float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y), width, r.theme.Grid, true)
	}

	if r.showRing {
		r.drawCoordinates(screen, l)
	}
}

// drawCoordinates puts file letters outside the outer ring and ring digits
// along the seam between files p and a.
func (r *Renderer) drawCoordinates(screen *ebiten.Image, l geometry.Layout) {
	face := GetSmallFace()
	if face == nil {
		return
	}
	labelColor := color.RGBA{230, 230, 230, 255}
	if !r.theme.IsDark() {
		labelColor = color.RGBA{40, 40, 40, 255}
	}

	for file := 0; file < board.Files; file++ {
		label := string(rune('a' + file))
		p := l.Polar(l.Outer+16*UIScale, l.FileAngle(float64(file)+0.5))
		w, h := MeasureText(label, face)
		drawTextAt(screen, label, face, p.X-w/2, p.Y-h/2, labelColor)
	}

	for ring := 0; ring < board.Rings; ring++ {
		label := string(rune('1' + ring))
		p := l.Polar(l.RingRadius(ring)+l.RingStep()/2, l.FileAngle(0))
		w, h := MeasureText(label, face)
		drawTextAt(screen, label, face, p.X-w/2, p.Y-h/2, r.theme.Grid)
	}
}

// fillSquare fills a wedge by splitting it into quads along the arc.
func (r *Renderer) fillSquare(screen *ebiten.Image, sq board.Square, c color.Color) {
	if !sq.IsValid() {
		return
	}
	pts := r.device().Wedge(sq, wedgeSegments)
	cr, cg, cb, ca := c.RGBA()
	fr, fg, fb, fa := float32(cr)/0xffff, float32(cg)/0xffff, float32(cb)/0xffff, float32(ca)/0xffff

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	last := len(pts) - 1
	for i := 0; i <= wedgeSegments; i++ {
		outer, inner := pts[i], pts[last-i]
		for _, p := range []geometry.Point{outer, inner} {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX: float32(p.X), DstY: float32(p.Y),
				SrcX: 1, SrcY: 1,
				ColorR: fr, ColorG: fg, ColorB: fb, ColorA: fa,
			})
		}
		if i < wedgeSegments {
			base := uint16(2 * i)
			r.indices = append(r.indices, base, base+2, base+1, base+1, base+2, base+3)
		}
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(r.vertices, r.indices, whiteSubImage, op)
}

// DrawHighlights draws the last move, citadels, the selection and its
// legal destinations.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, s board.GameState, selected board.Square, targets board.Bitboard, lastMove board.Move) {
	if lastMove != board.NoMove {
		r.fillSquare(screen, lastMove.From(), lastMoveColor)
		r.fillSquare(screen, lastMove.To(), lastMoveColor)
	}

	if s.Mode() == board.Citadel {
		for sq := range s.CitadelSquares().All() {
			r.fillSquare(screen, sq, citadelColor)
		}
	}

	if selected != board.NoSquare {
		r.fillSquare(screen, selected, r.theme.Selected)
	}

	l := r.device()
	for sq := range targets.All() {
		if s.PieceAt(sq) != board.NoPiece {
			r.fillSquare(screen, sq, r.theme.Legal)
			continue
		}
		c := l.SquareCenter(sq)
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(l.RingStep()*0.15), r.theme.Legal, true)
	}
}

// DrawFlash draws a fading overlay on a square.
func (r *Renderer) DrawFlash(screen *ebiten.Image, sq board.Square, alpha float64) {
	c := flashColor
	c.A = uint8(float64(c.A) * alpha)
	r.fillSquare(screen, sq, c)
}

// DrawPieces draws all pieces except the one being dragged. Shaking pieces
// are displaced along their ring.
func (r *Renderer) DrawPieces(screen *ebiten.Image, s board.GameState, skip board.Square, anims *AnimationManager) {
	l := r.device()
	for sq := board.Square(0); sq < board.SquareCount; sq++ {
		if sq == skip {
			continue
		}
		p := s.PieceAt(sq)
		if p == board.NoPiece {
			continue
		}

		c := l.SquareCenter(sq)
		if anims != nil {
			if off := anims.GetShakeOffset(sq); off != 0 {
				// Tangent to the ring at the square center.
				a := l.FileAngle(float64(sq.File()) + 0.5)
				c.X -= off * UIScale * math.Sin(a)
				c.Y += off * UIScale * math.Cos(a)
			}
		}
		r.sprites.DrawPieceAt(screen, p, c.X, c.Y)
	}
}

// DrawDraggedPiece draws the piece under the cursor. mouseX, mouseY are
// logical coordinates.
func (r *Renderer) DrawDraggedPiece(screen *ebiten.Image, p board.Piece, mouseX, mouseY int) {
	r.sprites.DrawPieceAt(screen, p, scaleD(mouseX), scaleD(mouseY))
}
