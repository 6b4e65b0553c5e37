// Package render draws predicted paths, projectile trails and scene actors onto a terminal screen.
package render

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ballistics/game"
)

// View is an orthographic projection of the world onto the terminal grid. The world point Origin is
// drawn at the centre of the screen. AxisU runs to the right of the screen and AxisV runs up it.
type View struct {
	Origin mgl32.Vec3
	// Scale is the number of world units covered by one cell.
	Scale float32
	AxisU mgl32.Vec3
	AxisV mgl32.Vec3
}

// NewView returns a View of the named world plane: "xy" looks down on the world, "xz" looks along +Y and
// "yz" looks along -X.
func NewView(plane string, origin mgl32.Vec3, scale float32) (View, error) {
	if !(scale > 0) {
		return View{}, fmt.Errorf("view scale must be positive, got %v", scale)
	}
	v := View{Origin: origin, Scale: scale}
	switch plane {
	case "xy":
		v.AxisU, v.AxisV = game.WorldForward, game.WorldRight
	case "xz":
		v.AxisU, v.AxisV = game.WorldForward, game.WorldUp
	case "yz":
		v.AxisU, v.AxisV = game.WorldRight, game.WorldUp
	default:
		return View{}, fmt.Errorf("unknown view plane %q", plane)
	}
	return v, nil
}

// project returns the continuous cell coordinates of p on a w*h screen. The integer part is the cell.
func (v View) project(p mgl32.Vec3, w, h int) mgl32.Vec3 {
	rel := p.Sub(v.Origin)
	return mgl32.Vec3{
		float32(w/2) + 0.5 + rel.Dot(v.AxisU)/v.Scale,
		float32(h/2) + 0.5 - rel.Dot(v.AxisV)/v.Scale,
		0,
	}
}

// Cell returns the cell p is drawn in on a w*h screen.
func (v View) Cell(p mgl32.Vec3, w, h int) (x, y int) {
	c := v.project(p, w, h)
	return int(math32.Floor(c.X())), int(math32.Floor(c.Y()))
}

// line draws the projection of the segment from start to end with r in style.
func (v View) line(s tcell.Screen, start, end mgl32.Vec3, r rune, style tcell.Style) {
	w, h := s.Size()
	a, b := v.project(start, w, h), v.project(end, w, h)
	if !crosses(a, b, w, h) {
		return
	}
	for pos := range game.CellsBetween(a, b) {
		if !put(s, pos.X(), pos.Y(), r, style) && outside(pos.X(), pos.Y(), w, h, a, b) {
			return
		}
	}
}

// point draws a single rune at the projection of p.
func (v View) point(s tcell.Screen, p mgl32.Vec3, r rune, style tcell.Style) {
	w, h := s.Size()
	x, y := v.Cell(p, w, h)
	put(s, x, y, r, style)
}

// put sets a cell and returns false if it lies off screen.
func put(s tcell.Screen, x, y int, r rune, style tcell.Style) bool {
	w, h := s.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	s.SetContent(x, y, r, nil, style)
	return true
}

// crosses reports whether the bounding rectangle of a and b overlaps the screen.
func crosses(a, b mgl32.Vec3, w, h int) bool {
	return max(a.X(), b.X()) >= 0 && min(a.X(), b.X()) < float32(w) &&
		max(a.Y(), b.Y()) >= 0 && min(a.Y(), b.Y()) < float32(h)
}

// outside reports whether the cell x, y has left the screen in the direction the segment a->b travels,
// after which no further cell can be visible.
func outside(x, y, w, h int, a, b mgl32.Vec3) bool {
	dx, dy := b.X()-a.X(), b.Y()-a.Y()
	return (x < 0 && dx <= 0) || (x >= w && dx >= 0) || (y < 0 && dy <= 0) || (y >= h && dy >= 0)
}
