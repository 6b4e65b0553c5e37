package game

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// BoxAround returns a bounding box centred on center that extends halfExtents along each axis.
func BoxAround(center, halfExtents mgl32.Vec3) cube.BBox {
	min, max := center.Sub(halfExtents), center.Add(halfExtents)
	return cube.Box(min.X(), min.Y(), min.Z(), max.X(), max.Y(), max.Z())
}

// FaceNormal returns the outward unit normal of a box face. Faces are named on the box's own axes:
// Up/Down lie on Y, South/North on Z and East/West on X.
func FaceNormal(f cube.Face) mgl32.Vec3 {
	switch f {
	case cube.FaceDown:
		return mgl32.Vec3{0, -1, 0}
	case cube.FaceUp:
		return mgl32.Vec3{0, 1, 0}
	case cube.FaceNorth:
		return mgl32.Vec3{0, 0, -1}
	case cube.FaceSouth:
		return mgl32.Vec3{0, 0, 1}
	case cube.FaceWest:
		return mgl32.Vec3{-1, 0, 0}
	case cube.FaceEast:
		return mgl32.Vec3{1, 0, 0}
	}
	return mgl32.Vec3{}
}
