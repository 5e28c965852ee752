// Package geometry maps the circular board onto the screen.
//
// Rings are concentric annuli between a central hole and the outer edge,
// ring 1 innermost. Files are 22.5 degree wedges running clockwise, with
// file a starting at twelve o'clock.
package geometry

import (
	"math"

	"github.com/hailam/circularchess/internal/board"
)

// Proportions of the board relative to its bounding size.
const (
	OuterRatio = 0.45
	HoleRatio  = 0.10
)

const wedgeAngle = 2 * math.Pi / board.Files

// Point is a screen position.
type Point struct {
	X, Y float64
}

// Layout positions a board of a given size around a center point.
type Layout struct {
	CX, CY float64
	Outer  float64
	Hole   float64
}

// NewLayout returns the layout of a board drawn inside a size x size box
// centered on (cx, cy).
func NewLayout(cx, cy, size float64) Layout {
	return Layout{
		CX:    cx,
		CY:    cy,
		Outer: size * OuterRatio,
		Hole:  size * HoleRatio,
	}
}

// RingStep is the radial thickness of one ring.
func (l Layout) RingStep() float64 {
	return (l.Outer - l.Hole) / board.Rings
}

// RingRadius returns the inner radius of a ring. RingRadius(board.Rings) is
// the outer edge of the board.
func (l Layout) RingRadius(ring int) float64 {
	return l.Hole + float64(ring)*l.RingStep()
}

// FileAngle returns the screen angle in radians of a file boundary.
// Fractional files address positions inside a wedge.
func (l Layout) FileAngle(file float64) float64 {
	return file*wedgeAngle - math.Pi/2
}

// Polar converts a radius and angle into a screen point.
func (l Layout) Polar(r, angle float64) Point {
	return Point{
		X: l.CX + r*math.Cos(angle),
		Y: l.CY + r*math.Sin(angle),
	}
}

// SquareCenter returns the midpoint of a square.
func (l Layout) SquareCenter(sq board.Square) Point {
	r := l.RingRadius(sq.Ring()) + l.RingStep()/2
	return l.Polar(r, l.FileAngle(float64(sq.File())+0.5))
}

// PointToSquare returns the square under a screen point, or NoSquare when
// the point lies in the hole or outside the board.
func (l Layout) PointToSquare(x, y float64) board.Square {
	dx, dy := x-l.CX, y-l.CY
	r := math.Hypot(dx, dy)
	if r < l.Hole || r >= l.Outer {
		return board.NoSquare
	}

	ring := int((r - l.Hole) / l.RingStep())
	if ring >= board.Rings {
		ring = board.Rings - 1
	}

	a := math.Atan2(dy, dx) + math.Pi/2
	if a < 0 {
		a += 2 * math.Pi
	}
	file := int(a/wedgeAngle) % board.Files

	return board.NewSquare(ring, file)
}

// Wedge returns the outline of a square as a closed polygon: the outer arc
// clockwise followed by the inner arc back. Each arc has segments+1 points.
func (l Layout) Wedge(sq board.Square, segments int) []Point {
	if segments < 1 {
		segments = 1
	}
	inner := l.RingRadius(sq.Ring())
	outer := inner + l.RingStep()
	f := float64(sq.File())

	pts := make([]Point, 0, 2*(segments+1))
	for i := 0; i <= segments; i++ {
		pts = append(pts, l.Polar(outer, l.FileAngle(f+float64(i)/float64(segments))))
	}
	for i := segments; i >= 0; i-- {
		pts = append(pts, l.Polar(inner, l.FileAngle(f+float64(i)/float64(segments))))
	}
	return pts
}

// PieceSize is the edge length of a piece sprite that fits inside a ring.
func (l Layout) PieceSize() float64 {
	return l.RingStep() * 0.8
}

// IsLightSquare reports the checkering of a square.
func IsLightSquare(sq board.Square) bool {
	return (sq.Ring()+sq.File())%2 == 1
}
