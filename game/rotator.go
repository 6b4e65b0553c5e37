package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Rotator is an orientation expressed in degrees. Pitch rotates about the right axis, Yaw about the up
// axis and Roll about the forward axis of the Z-up world.
type Rotator struct {
	Pitch float32 `toml:"pitch"`
	Yaw   float32 `toml:"yaw"`
	Roll  float32 `toml:"roll"`
}

// axes returns the rows of the rotation matrix, which are the rotated forward, right and up axes.
func (r Rotator) axes() (x, y, z mgl32.Vec3) {
	sp, cp := math32.Sincos(mgl32.DegToRad(r.Pitch))
	sy, cy := math32.Sincos(mgl32.DegToRad(r.Yaw))
	sr, cr := math32.Sincos(mgl32.DegToRad(r.Roll))

	x = mgl32.Vec3{cp * cy, cp * sy, sp}
	y = mgl32.Vec3{sr*sp*cy - cr*sy, sr*sp*sy + cr*cy, -sr * cp}
	z = mgl32.Vec3{-(cr*sp*cy + sr*sy), cy*sr - cr*sp*sy, cr * cp}
	return
}

// RotateVector rotates v from the local space of the rotator into world space.
func (r Rotator) RotateVector(v mgl32.Vec3) mgl32.Vec3 {
	x, y, z := r.axes()
	return x.Mul(v.X()).Add(y.Mul(v.Y())).Add(z.Mul(v.Z()))
}

// Forward returns the unit vector the rotator faces.
func (r Rotator) Forward() mgl32.Vec3 {
	x, _, _ := r.axes()
	return x
}

// Right returns the lateral axis of the rotator.
func (r Rotator) Right() mgl32.Vec3 {
	_, y, _ := r.axes()
	return y
}

// Up ...
func (r Rotator) Up() mgl32.Vec3 {
	_, _, z := r.axes()
	return z
}

// RotatorFromDirection returns the rotator (without roll) that faces dir.
func RotatorFromDirection(dir mgl32.Vec3) Rotator {
	return Rotator{
		Pitch: mgl32.RadToDeg(math32.Atan2(dir.Z(), math32.Sqrt(dir.X()*dir.X()+dir.Y()*dir.Y()))),
		Yaw:   mgl32.RadToDeg(math32.Atan2(dir.Y(), dir.X())),
	}
}
