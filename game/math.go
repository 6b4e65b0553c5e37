package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec3ApproxEq returns true if every component of a and b differs by at most epsilon.
func Vec3ApproxEq(a, b mgl32.Vec3, epsilon float32) bool {
	return math32.Abs(a[0]-b[0]) <= epsilon &&
		math32.Abs(a[1]-b[1]) <= epsilon &&
		math32.Abs(a[2]-b[2]) <= epsilon
}

// Vec3Finite returns false if any component of the vector is NaN or infinite.
func Vec3Finite(v mgl32.Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// SafeNormalize returns the unit vector of v, or the zero vector if v has no length.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l <= 1e-8 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// Reflect reflects v about the plane with the given normal: v - 2(v.n)n. The normal is normalized
// first; a zero normal leaves v untouched.
func Reflect(v, normal mgl32.Vec3) mgl32.Vec3 {
	n := SafeNormalize(normal)
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// ClampLength scales v down so its length does not exceed max. A non-positive max disables the clamp.
func ClampLength(v mgl32.Vec3, max float32) mgl32.Vec3 {
	if max <= 0 {
		return v
	}
	if l := v.Len(); l > max {
		return v.Mul(max / l)
	}
	return v
}

// Compare returns -1 if x < y, 0 if x == y, or 1 if x > y.
func Compare(x, y float32) float32 {
	if x < y {
		return -1
	} else if x == y {
		return 0
	}

	return 1
}
