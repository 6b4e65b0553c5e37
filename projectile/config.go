package projectile

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ballistics/game"
)

const (
	DefaultInitialSpeed      = float32(5000)
	DefaultMaxSpeed          = float32(5000)
	DefaultLifetime          = float32(3)
	DefaultImpulseMultiplier = float32(100)
	DefaultCollisionRadius   = float32(5)
	DefaultTrailCapacity     = 64
)

// Config holds the tunables of a projectile class.
type Config struct {
	// Class is the name the projectile class is spawned under.
	Class string
	// InitialSpeed is the speed along the spawn rotation's forward axis.
	InitialSpeed float32
	// MaxSpeed caps the velocity magnitude after each tick. Zero disables the cap.
	MaxSpeed float32
	// Lifetime is how long the projectile lives before it is destroyed without a collision.
	Lifetime float32
	// ImpulseMultiplier scales the velocity into the impulse applied to a simulating body on impact.
	ImpulseMultiplier float32
	// CollisionRadius is the radius of the projectile's collision sphere.
	CollisionRadius float32
	// TrailCapacity is how many past positions the projectile remembers.
	TrailCapacity int

	// GravityDirection rotates the up axis into the direction custom gravity pulls along.
	GravityDirection game.Rotator
	// GravityMagnitude is the strength of custom gravity.
	GravityMagnitude float32
	// GravityOverride replaces the direction/magnitude pair when it is non-zero.
	GravityOverride mgl32.Vec3
}

// DefaultConfig returns the default projectile class.
func DefaultConfig() Config {
	return Config{
		Class:             "projectile",
		InitialSpeed:      DefaultInitialSpeed,
		MaxSpeed:          DefaultMaxSpeed,
		Lifetime:          DefaultLifetime,
		ImpulseMultiplier: DefaultImpulseMultiplier,
		CollisionRadius:   DefaultCollisionRadius,
		TrailCapacity:     DefaultTrailCapacity,
		GravityDirection:  game.Rotator{Roll: -980},
		GravityMagnitude:  game.StandardGravity,
	}
}

// Gravity returns the constant acceleration applied to the projectile every tick.
func (c Config) Gravity() mgl32.Vec3 {
	if c.GravityOverride != (mgl32.Vec3{}) {
		return c.GravityOverride
	}
	return c.GravityDirection.RotateVector(game.WorldUp).Mul(c.GravityMagnitude)
}
