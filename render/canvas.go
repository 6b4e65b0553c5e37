package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ballistics/host"
	"github.com/sasha-s/go-deadlock"
)

type debugLine struct {
	start, end mgl32.Vec3
	colour     host.Colour
}

// Canvas collects debug lines between frames. It implements host.DebugDrawer.
type Canvas struct {
	mu    deadlock.Mutex
	lines []debugLine
}

// DrawDebugLine ...
func (c *Canvas) DrawDebugLine(start, end mgl32.Vec3, colour host.Colour) {
	c.mu.Lock()
	c.lines = append(c.lines, debugLine{start: start, end: end, colour: colour})
	c.mu.Unlock()
}

// Len returns the number of lines waiting to be drawn.
func (c *Canvas) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Flush draws every collected line through v in the order it was received and forgets them.
func (c *Canvas) Flush(s tcell.Screen, v View) {
	c.mu.Lock()
	lines := c.lines
	c.lines = nil
	c.mu.Unlock()

	for _, l := range lines {
		r, style := runePath, stylePath
		switch l.colour {
		case host.ColourRed:
			r, style = runeImpact, styleImpact
		case host.ColourYellow:
			r, style = runeReflected, styleReflected
		}
		v.line(s, l.start, l.end, r, style)
	}
}
