package game

import (
	"iter"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// CellsBetween yields every unit cell crossed by the segment from start to end, starting with the cell
// holding start. Coordinates are in cell units; callers working in world units divide by their cell
// size first.
// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L67
func CellsBetween(start, end mgl32.Vec3) iter.Seq[cube.Pos] {
	return func(yield func(cube.Pos) bool) {
		current := cube.PosFromVec3(start)
		delta := end.Sub(start)
		if delta.LenSqr() <= 1e-12 {
			yield(current)
			return
		}

		dir := delta.Normalize()
		radius := delta.Len()

		var step [3]int
		var tMax, tDelta [3]float32
		for axis := range 3 {
			step[axis] = int(Compare(dir[axis], 0))
			tMax[axis] = distanceToBoundary(start[axis], dir[axis])
			if dir[axis] != 0 {
				tDelta[axis] = float32(step[axis]) / dir[axis]
			}
		}

		for {
			if !yield(current) {
				return
			}

			axis := 2
			if tMax[0] < tMax[1] && tMax[0] < tMax[2] {
				axis = 0
			} else if tMax[1] < tMax[2] {
				axis = 1
			}
			if tMax[axis] > radius {
				return
			}
			current[axis] += step[axis]
			tMax[axis] += tDelta[axis]
		}
	}
}

// distanceToBoundary returns the distance along the ray until the next integer boundary on one axis.
// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L134
func distanceToBoundary(s, ds float32) float32 {
	if ds == 0 {
		return math32.MaxFloat32
	}

	if ds < 0 {
		s = -s
		ds = -ds

		if math32.Floor(s) == s {
			return 0
		}
	}

	return (1 - (s - math32.Floor(s))) / ds
}
