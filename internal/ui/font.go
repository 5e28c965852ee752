// Package ui implements the circular chess game UI using Ebitengine.
package ui

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource

	// Faces are rebuilt when UIScale changes.
	faceScale   float64
	regularFace *text.GoTextFace
	boldFace    *text.GoTextFace
	smallFace   *text.GoTextFace
)

const (
	defaultFontSize = 14.0
	titleFontSize   = 16.0
	labelFontSize   = 11.0
)

func init() {
	var err error
	regularSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("Failed to load regular font: %v", err)
	}
	boldSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("Failed to load bold font: %v", err)
	}
}

func newFace(src *text.GoTextFaceSource, size float64) *text.GoTextFace {
	if src == nil {
		return nil
	}
	return &text.GoTextFace{Source: src, Size: size * UIScale}
}

func refreshFaces() {
	if faceScale == UIScale && regularFace != nil {
		return
	}
	faceScale = UIScale
	regularFace = newFace(regularSource, defaultFontSize)
	boldFace = newFace(boldSource, titleFontSize)
	smallFace = newFace(regularSource, labelFontSize)
}

// GetRegularFace returns the regular font face at the current scale.
func GetRegularFace() *text.GoTextFace {
	refreshFaces()
	return regularFace
}

// GetBoldFace returns the bold title face at the current scale.
func GetBoldFace() *text.GoTextFace {
	refreshFaces()
	return boldFace
}

// GetSmallFace returns the face used for board coordinates.
func GetSmallFace() *text.GoTextFace {
	refreshFaces()
	return smallFace
}

// GetFaceWithSize returns a bold face with a custom logical size.
func GetFaceWithSize(size float64) *text.GoTextFace {
	return newFace(boldSource, size)
}

// MeasureText returns the width and height of the given text in device pixels.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
