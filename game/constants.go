package game

import "github.com/go-gl/mathgl/mgl32"

const (
	// StandardGravity is the magnitude of gravity in world units (centimetres) per second squared.
	StandardGravity = float32(980)
	// Epsilon is the default tolerance used when comparing accumulated float32 positions.
	Epsilon = float32(1e-3)
)

// World axes. The world is Z-up: X points forward, Y points right.
var (
	WorldForward = mgl32.Vec3{1, 0, 0}
	WorldRight   = mgl32.Vec3{0, 1, 0}
	WorldUp      = mgl32.Vec3{0, 0, 1}
)
