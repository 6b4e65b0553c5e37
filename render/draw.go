package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ballistics/game"
	"github.com/oomph-ac/ballistics/projectile"
	"github.com/oomph-ac/ballistics/trajectory"
	"github.com/oomph-ac/ballistics/world"
)

const (
	runePath       = '·'
	runeImpact     = 'X'
	runeReflected  = '+'
	runeTrail      = 'o'
	runeProjectile = '@'
	runeStatic     = '#'
	runeDynamic    = '%'
	runeCharacter  = 'P'
)

var (
	stylePath       = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleImpact     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleReflected  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleTrail      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStatic     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleDynamic    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleCharacter  = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleText       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// reflectedMarkerCells is the length, in cells, of the marker drawn along a reflected velocity.
const reflectedMarkerCells = 3

// DrawSample draws every segment of a predicted path.
func (v View) DrawSample(s tcell.Screen, sample trajectory.Sample) {
	for _, seg := range sample.Segments {
		v.line(s, seg.Start, seg.End, runePath, stylePath)
	}
}

// DrawReflection marks the point of impact and the direction the path leaves the surface in.
func (v View) DrawReflection(s tcell.Screen, e *trajectory.ReflectionEvent) {
	if e == nil {
		return
	}
	dir := game.SafeNormalize(e.ReflectedVelocity).Mul(v.Scale * reflectedMarkerCells)
	v.line(s, e.PointOfImpact, e.PointOfImpact.Add(dir), runeReflected, styleReflected)
	v.point(s, e.PointOfImpact, runeImpact, styleImpact)
}

// DrawTrail draws the remembered positions of a projectile, oldest first, with its latest position on top.
func (v View) DrawTrail(s tcell.Screen, t *projectile.Trail) {
	var (
		prev  mgl32.Vec3
		first = true
	)
	for p := range t.Points() {
		if !first {
			v.line(s, prev, p.Position, runeTrail, styleTrail)
		}
		prev, first = p.Position, false
	}
	if latest, ok := t.Latest(); ok {
		v.point(s, latest.Position, runeProjectile, styleProjectile)
	}
}

// DrawActors draws the outline of every actor box. Spawned actors are skipped: their bodies are drawn
// through DrawTrail.
func (v View) DrawActors(s tcell.Screen, actors []world.Actor) {
	for _, a := range actors {
		var (
			r     rune
			style tcell.Style
		)
		switch {
		case a.Character:
			r, style = runeCharacter, styleCharacter
		case !a.Blocking:
			continue
		case a.Simulating:
			r, style = runeDynamic, styleDynamic
		default:
			r, style = runeStatic, styleStatic
		}
		v.box(s, a.Box.Min(), a.Box.Max(), r, style)
	}
}

// box draws the outline of the projection of the box spanning lo and hi.
func (v View) box(s tcell.Screen, lo, hi mgl32.Vec3, r rune, style tcell.Style) {
	w, h := s.Size()
	x0, y0 := v.Cell(lo, w, h)
	x1, y1 := v.Cell(hi, w, h)
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	x0, x1 = max(x0, -1), min(x1, w)
	y0, y1 = max(y0, -1), min(y1, h)
	for x := x0; x <= x1; x++ {
		put(s, x, y0, r, style)
		put(s, x, y1, r, style)
	}
	for y := y0; y <= y1; y++ {
		put(s, x0, y, r, style)
		put(s, x1, y, r, style)
	}
}

// DrawText writes lines of text from the top left corner of the screen.
func DrawText(s tcell.Screen, lines ...string) {
	for y, line := range lines {
		x := 0
		for _, r := range line {
			if !put(s, x, y, r, styleText) {
				break
			}
			x++
		}
	}
}
