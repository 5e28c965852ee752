package ui

import (
	"context"
	"image"
	"image/color"
	"strings"
	"sync"

	"github.com/hailam/circularchess/internal/board"
	"github.com/hailam/circularchess/internal/pieceset"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpriteManager turns the downloaded piece artwork into textures. Rasterizing
// happens on a worker goroutine; textures are created lazily on the draw
// thread.
type SpriteManager struct {
	loader      *pieceset.Loader
	size        int     // Logical display size
	renderScale float64 // Rasterize above display size for sharp scaling

	mu     sync.Mutex
	raster map[board.Piece]*image.RGBA

	pieces map[board.Piece]*ebiten.Image
}

// NewSpriteManager creates a sprite manager for pieces of the given size.
func NewSpriteManager(loader *pieceset.Loader, size int) *SpriteManager {
	return &SpriteManager{
		loader:      loader,
		size:        size,
		renderScale: 3.0,
		raster:      make(map[board.Piece]*image.RGBA),
		pieces:      make(map[board.Piece]*ebiten.Image),
	}
}

// Prepare rasterizes every piece the loader has. It returns the first
// failure; pieces that fail are drawn with the fallback glyph.
func (sm *SpriteManager) Prepare(ctx context.Context) error {
	renderSize := int(float64(sm.size) * sm.renderScale)

	var firstErr error
	for _, p := range pieceset.Pieces {
		if err := ctx.Err(); err != nil {
			return err
		}
		svg, err := sm.loader.SVG(ctx, p)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		img, err := pieceset.Rasterize(svg, renderSize)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		sm.mu.Lock()
		sm.raster[p] = img
		sm.mu.Unlock()
	}
	return firstErr
}

// GetPiece returns the texture of a piece, or nil while it is unavailable.
func (sm *SpriteManager) GetPiece(p board.Piece) *ebiten.Image {
	if img, ok := sm.pieces[p]; ok {
		return img
	}

	sm.mu.Lock()
	rgba := sm.raster[p]
	sm.mu.Unlock()
	if rgba == nil {
		return nil
	}

	img := ebiten.NewImageFromImage(rgba)
	sm.pieces[p] = img
	return img
}

// Reset drops every texture so the next Prepare starts fresh.
func (sm *SpriteManager) Reset() {
	sm.mu.Lock()
	sm.raster = make(map[board.Piece]*image.RGBA)
	sm.mu.Unlock()

	for _, img := range sm.pieces {
		img.Deallocate()
	}
	sm.pieces = make(map[board.Piece]*ebiten.Image)
}

// DrawPieceAt draws a piece centered on the device-pixel point (cx, cy).
// Without a texture a lettered disc stands in.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, cx, cy float64) {
	if p == board.NoPiece {
		return
	}

	display := float64(sm.size) * UIScale
	sprite := sm.GetPiece(p)
	if sprite == nil {
		sm.drawFallback(screen, p, cx, cy, display)
		return
	}

	op := &ebiten.DrawImageOptions{}
	scale := display / float64(sprite.Bounds().Dx())
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-display/2, cy-display/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

func (sm *SpriteManager) drawFallback(screen *ebiten.Image, p board.Piece, cx, cy, display float64) {
	fill, ink := color.RGBA{250, 250, 250, 255}, color.RGBA{30, 30, 30, 255}
	if p.Color() == board.Black {
		fill, ink = ink, fill
	}
	r := float32(display * 0.4)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), r, fill, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), r, float32(UIScale), color.RGBA{120, 120, 120, 255}, true)

	face := GetFaceWithSize(float64(sm.size) * 0.45)
	if face == nil {
		return
	}
	label := strings.ToUpper(p.String())
	w, h := MeasureText(label, face)
	drawTextAt(screen, label, face, cx-w/2, cy-h/2, ink)
}
