package weapon

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ballistics/game"
	"github.com/oomph-ac/ballistics/projectile"
	"github.com/oomph-ac/ballistics/trajectory"
)

const (
	DefaultSpeedStep           = float32(100)
	DefaultPrecision           = 500
	DefaultLateralAcceleration = game.StandardGravity
	DefaultDrawDuration        = float32(5)
	DefaultMappingContext      = "fire"
	DefaultFireAction          = "fire"
)

// DefaultMuzzleOffset is the spawn offset of projectiles in camera space: one metre in front of the camera.
var DefaultMuzzleOffset = mgl32.Vec3{100, 0, 0}

// Config holds the tunables of a weapon.
type Config struct {
	// Projectile is the class spawned by Fire. A nil class makes Fire a no-op.
	Projectile *projectile.Config
	// ProjectileSpeed is the launch speed given to every fired projectile.
	ProjectileSpeed float32
	// SpeedStep is how much AdjustProjectileSpeed changes ProjectileSpeed by.
	SpeedStep float32
	// MuzzleOffset is rotated by the camera rotation and added to the owner location to find the spawn point.
	MuzzleOffset mgl32.Vec3

	// FireAnimation is the montage played on Fire. Empty disables it.
	FireAnimation      string
	FireMappingContext string
	FireAction         string

	// InitialSpeed, Gravity and Precision parametrise trajectory predictions. Gravity pulls along world Z.
	InitialSpeed float32
	Gravity      float32
	Precision    int
	// LateralAcceleration is applied along X when key Four (negative) or key Five (positive) is held while
	// predicting.
	LateralAcceleration float32
	// DrawDuration is the duration DrawLine predicts over.
	DrawDuration float32
	// SurfaceOffset overrides the distance a reflected prediction restarts from the surface.
	SurfaceOffset float32
}

// DefaultConfig returns the default weapon, firing the default projectile class.
func DefaultConfig() Config {
	proj := projectile.DefaultConfig()
	return Config{
		Projectile:          &proj,
		ProjectileSpeed:     projectile.DefaultInitialSpeed,
		SpeedStep:           DefaultSpeedStep,
		MuzzleOffset:        DefaultMuzzleOffset,
		FireMappingContext:  DefaultMappingContext,
		FireAction:          DefaultFireAction,
		InitialSpeed:        projectile.DefaultInitialSpeed,
		Gravity:             -game.StandardGravity,
		Precision:           DefaultPrecision,
		LateralAcceleration: DefaultLateralAcceleration,
		DrawDuration:        DefaultDrawDuration,
		SurfaceOffset:       trajectory.DefaultSurfaceOffset,
	}
}
