// Package pieceset fetches, caches and rasterizes the piece artwork.
//
// The SVG for each piece is looked up in memory, then in a persistent cache,
// and downloaded from Wikimedia Commons only when both miss.
package pieceset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/hailam/circularchess/internal/board"
	"golang.org/x/sync/errgroup"
)

// Cache keys carry a version; bump it to force a fresh download of every piece.
const (
	KeyPrefix = "piece-svg-"
	Version   = "1"
)

// maxSVGSize bounds a single download.
const maxSVGSize = 1 << 20

// maxFetches bounds concurrent downloads during Preload.
const maxFetches = 4

const userAgent = "circularchess/1.0 (piece artwork cache)"

// ErrNotSVG is returned when a download or cache entry is not an SVG document.
var ErrNotSVG = errors.New("pieceset: not an SVG document")

// DefaultURLs are the Wikimedia Commons standard piece drawings.
var DefaultURLs = map[board.Piece]string{
	board.WhiteKing:   "https://upload.wikimedia.org/wikipedia/commons/4/42/Chess_klt45.svg",
	board.WhiteQueen:  "https://upload.wikimedia.org/wikipedia/commons/1/15/Chess_qlt45.svg",
	board.WhiteRook:   "https://upload.wikimedia.org/wikipedia/commons/7/72/Chess_rlt45.svg",
	board.WhiteBishop: "https://upload.wikimedia.org/wikipedia/commons/b/b1/Chess_blt45.svg",
	board.WhiteKnight: "https://upload.wikimedia.org/wikipedia/commons/7/70/Chess_nlt45.svg",
	board.WhitePawn:   "https://upload.wikimedia.org/wikipedia/commons/4/45/Chess_plt45.svg",
	board.BlackKing:   "https://upload.wikimedia.org/wikipedia/commons/f/f0/Chess_kdt45.svg",
	board.BlackQueen:  "https://upload.wikimedia.org/wikipedia/commons/4/47/Chess_qdt45.svg",
	board.BlackRook:   "https://upload.wikimedia.org/wikipedia/commons/f/ff/Chess_rdt45.svg",
	board.BlackBishop: "https://upload.wikimedia.org/wikipedia/commons/9/98/Chess_bdt45.svg",
	board.BlackKnight: "https://upload.wikimedia.org/wikipedia/commons/e/ef/Chess_ndt45.svg",
	board.BlackPawn:   "https://upload.wikimedia.org/wikipedia/commons/c/c7/Chess_pdt45.svg",
}

// Pieces lists all twelve pieces in encoding order.
var Pieces = []board.Piece{
	board.WhitePawn, board.WhiteKnight, board.WhiteBishop,
	board.WhiteRook, board.WhiteQueen, board.WhiteKing,
	board.BlackPawn, board.BlackKnight, board.BlackBishop,
	board.BlackRook, board.BlackQueen, board.BlackKing,
}

// Cache is a persistent key-value store for downloaded artwork.
// storage.Storage implements it.
type Cache interface {
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
	DeletePrefix(prefix string) (int, error)
}

// Key returns the cache key of a piece, e.g. "piece-svg-1-white-king".
func Key(p board.Piece) string {
	return fmt.Sprintf("%s%s-%s-%s", KeyPrefix, Version, colorName(p.Color()), typeName(p.Type()))
}

func colorName(c board.Color) string {
	if c == board.White {
		return "white"
	}
	return "black"
}

func typeName(pt board.PieceType) string {
	switch pt {
	case board.Pawn:
		return "pawn"
	case board.Knight:
		return "knight"
	case board.Bishop:
		return "bishop"
	case board.Rook:
		return "rook"
	case board.Queen:
		return "queen"
	default:
		return "king"
	}
}

// Loader resolves piece SVGs. It is safe for concurrent use.
type Loader struct {
	client *http.Client
	cache  Cache

	mu   sync.RWMutex
	urls map[board.Piece]string
	mem  map[board.Piece][]byte
}

// NewLoader creates a loader. cache may be nil, in which case only the
// in-memory copy is kept. A nil client selects a client with a 30 second
// timeout.
func NewLoader(cache Cache, client *http.Client) *Loader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	urls := make(map[board.Piece]string, len(DefaultURLs))
	for p, u := range DefaultURLs {
		urls[p] = u
	}

	return &Loader{
		client: client,
		cache:  cache,
		urls:   urls,
		mem:    make(map[board.Piece][]byte),
	}
}

// SetURL changes the download location of a piece.
func (l *Loader) SetURL(p board.Piece, url string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.urls[p] = url
}

// SVG returns the SVG document of a piece.
func (l *Loader) SVG(ctx context.Context, p board.Piece) ([]byte, error) {
	if p >= board.NoPiece {
		return nil, fmt.Errorf("pieceset: invalid piece %d", p)
	}

	l.mu.RLock()
	data, ok := l.mem[p]
	url := l.urls[p]
	l.mu.RUnlock()
	if ok {
		return data, nil
	}

	key := Key(p)
	if l.cache != nil {
		if data, err := l.cache.Get(key); err == nil && isSVG(data) {
			l.remember(p, data)
			return data, nil
		}
	}

	if url == "" {
		return nil, fmt.Errorf("pieceset: no URL for %s", p.Name())
	}

	data, err := l.download(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", p.Name(), err)
	}

	if l.cache != nil {
		if err := l.cache.Put(key, data); err != nil {
			return nil, fmt.Errorf("cache %s: %w", p.Name(), err)
		}
	}
	l.remember(p, data)

	return data, nil
}

func (l *Loader) remember(p board.Piece, data []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mem[p] = data
}

// download fetches one SVG document.
func (l *Loader) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSVGSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxSVGSize {
		return nil, fmt.Errorf("document larger than %d bytes", maxSVGSize)
	}
	if !isSVG(data) {
		return nil, ErrNotSVG
	}

	return data, nil
}

// Preload fetches every piece with at most maxFetches requests in flight.
// Failures do not stop the other downloads; they are returned joined together.
func (l *Loader) Preload(ctx context.Context) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	g.SetLimit(maxFetches)

	for _, p := range Pieces {
		g.Go(func() error {
			if _, err := l.SVG(ctx, p); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

// Loaded returns how many pieces are held in memory.
func (l *Loader) Loaded() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.mem)
}

// Clear drops the in-memory copies and every cached piece.
func (l *Loader) Clear() error {
	l.mu.Lock()
	l.mem = make(map[board.Piece][]byte)
	l.mu.Unlock()

	if l.cache == nil {
		return nil
	}
	if _, err := l.cache.DeletePrefix(KeyPrefix); err != nil {
		return fmt.Errorf("clear piece cache: %w", err)
	}
	return nil
}

func isSVG(data []byte) bool {
	return bytes.Contains(data, []byte("<svg"))
}
