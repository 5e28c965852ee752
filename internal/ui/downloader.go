package ui

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/hailam/circularchess/internal/pieceset"
	"github.com/hajimehoshi/ebiten/v2"
)

// DownloadState represents the current download state.
type DownloadState int

const (
	DownloadIdle DownloadState = iota
	DownloadInProgress
	DownloadComplete
	DownloadError
)

// Banner dimensions, drawn at the bottom of the board.
const (
	bannerWidth  = 360
	bannerHeight = 64
	bannerMargin = 12
)

const downloadTimeout = 2 * time.Minute

// DownloadProgress is a snapshot of the artwork download.
type DownloadProgress struct {
	Fetched int
	Total   int
	State   DownloadState
	Error   error
}

// Downloader fetches the piece artwork in the background and reports its
// progress in a banner. On failure the banner offers a retry; the board stays
// playable with fallback glyphs throughout.
type Downloader struct {
	loader  *pieceset.Loader
	sprites *SpriteManager

	mu       sync.RWMutex
	progress DownloadProgress
	cancel   context.CancelFunc

	x, y       int
	retryBtn   *ModalButton
	dismissBtn *ModalButton
	dismissed  bool
}

// NewDownloader creates a downloader feeding sm.
func NewDownloader(loader *pieceset.Loader, sm *SpriteManager) *Downloader {
	d := &Downloader{
		loader:  loader,
		sprites: sm,
		x:       (BoardSize - bannerWidth) / 2,
		y:       ScreenHeight - bannerHeight - bannerMargin,
	}
	btnY := d.y + bannerHeight - 34
	d.retryBtn = NewModalButton(d.x+bannerWidth-176, btnY, 80, 26, "Retry", true, d.Start)
	d.dismissBtn = NewModalButton(d.x+bannerWidth-88, btnY, 80, 26, "Dismiss", false, func() {
		d.dismissed = true
	})
	return d
}

// Start begins a download unless one is running.
func (d *Downloader) Start() {
	d.mu.Lock()
	if d.progress.State == DownloadInProgress {
		d.mu.Unlock()
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), downloadTimeout)
	d.cancel = cancel
	d.progress = DownloadProgress{State: DownloadInProgress, Total: len(pieceset.Pieces)}
	d.dismissed = false
	d.mu.Unlock()

	go d.run(ctx, cancel)
}

func (d *Downloader) run(ctx context.Context, cancel context.CancelFunc) {
	defer cancel()

	err := d.loader.Preload(ctx)
	if perr := d.sprites.Prepare(ctx); err == nil {
		err = perr
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.progress.Fetched = d.loader.Loaded()
	if err != nil {
		log.Printf("Warning: Failed to load piece artwork: %v", err)
		d.progress.State = DownloadError
		d.progress.Error = err
		return
	}
	d.progress.State = DownloadComplete
}

// Refresh discards the cached artwork and downloads it again. It does nothing
// while a download is running.
func (d *Downloader) Refresh() {
	if d.Progress().State == DownloadInProgress {
		return
	}
	if err := d.loader.Clear(); err != nil {
		log.Printf("Warning: Failed to clear piece cache: %v", err)
	}
	d.sprites.Reset()
	d.Start()
}

// Cancel stops a running download.
func (d *Downloader) Cancel() {
	d.mu.RLock()
	cancel := d.cancel
	d.mu.RUnlock()
	if cancel != nil {
		cancel()
	}
}

// Progress returns the current progress.
func (d *Downloader) Progress() DownloadProgress {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p := d.progress
	if p.State == DownloadInProgress {
		p.Fetched = d.loader.Loaded()
	}
	return p
}

// IsVisible reports whether the banner is shown.
func (d *Downloader) IsVisible() bool {
	switch d.Progress().State {
	case DownloadInProgress:
		return true
	case DownloadError:
		return !d.dismissed
	}
	return false
}

// Update handles the banner buttons. It returns true if input was consumed.
func (d *Downloader) Update(input *InputHandler) bool {
	if d.Progress().State != DownloadError || d.dismissed {
		return false
	}
	return d.retryBtn.Update(input) || d.dismissBtn.Update(input)
}

// AnyButtonHovered returns true if a banner button is hovered.
func (d *Downloader) AnyButtonHovered() bool {
	return d.IsVisible() && (d.retryBtn.IsHovered() || d.dismissBtn.IsHovered())
}

// Draw renders the banner.
func (d *Downloader) Draw(screen *ebiten.Image) {
	if !d.IsVisible() {
		return
	}
	progress := d.Progress()

	fillRect(screen, d.x, d.y, bannerWidth, bannerHeight, color.RGBA{38, 40, 45, 230})
	strokeRect(screen, d.x, d.y, bannerWidth, bannerHeight, 1, modalBorder)

	face := GetRegularFace()
	switch progress.State {
	case DownloadInProgress:
		drawText(screen, "Downloading pieces...", face, d.x+16, d.y+10, textPrimary)

		barX, barY, barW, barH := d.x+16, d.y+38, bannerWidth-32, 12
		fillRect(screen, barX, barY, barW, barH, widgetBg)
		strokeRect(screen, barX, barY, barW, barH, 1, widgetBorder)
		if progress.Total > 0 {
			fill := (barW - 4) * progress.Fetched / progress.Total
			fillRect(screen, barX+2, barY+2, fill, barH-4, accentColor)
		}
		drawText(screen, fmt.Sprintf("%d / %d", progress.Fetched, progress.Total), face, d.x+bannerWidth-70, d.y+10, textSecondary)

	case DownloadError:
		drawText(screen, "Piece download failed", face, d.x+16, d.y+10, color.RGBA{255, 100, 100, 255})
		drawText(screen, "Using letters for now.", face, d.x+16, d.y+34, textMuted)
		d.retryBtn.Draw(screen)
		d.dismissBtn.Draw(screen)
	}
}
