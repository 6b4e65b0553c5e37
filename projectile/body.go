package projectile

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ballistics/game"
	"github.com/oomph-ac/ballistics/host"
	"github.com/oomph-ac/ballistics/internal"
	"github.com/sirupsen/logrus"
)

// State is the kinematic state of a projectile. It is owned exclusively by its Body.
type State struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Gravity  mgl32.Vec3
	Elapsed  float32
	Lifetime float32
}

// Body is a free-flying point mass under constant custom gravity. It is driven by the host: Tick once per
// simulation frame and OnCollision when the host reports a blocking hit. A Body is not safe for
// concurrent use; the host touches it from its simulation thread only.
type Body struct {
	id    host.ActorID
	conf  Config
	state State

	tick      int64
	destroyed bool
	// expiring is set by the Tick that ran out the lifetime and cleared by any later call.
	expiring  bool
	trail     *Trail

	log logrus.FieldLogger
}

// New spawns a projectile at position facing rotation. Its initial velocity is the forward axis of the
// rotation scaled by the configured initial speed.
func New(id host.ActorID, position mgl32.Vec3, rotation game.Rotator, conf Config, log logrus.FieldLogger) *Body {
	if log == nil {
		log = internal.DiscardLogger()
	}
	b := &Body{
		id:   id,
		conf: conf,
		state: State{
			Position: position,
			Velocity: rotation.Forward().Mul(conf.InitialSpeed),
			Gravity:  conf.Gravity(),
			Lifetime: conf.Lifetime,
		},
		trail: NewTrail(conf.TrailCapacity),
		log:   log.WithField("projectile", id),
	}
	b.trail.Add(TrailPoint{Position: position})
	return b
}

// ID returns the actor ID of the projectile.
func (b *Body) ID() host.ActorID {
	return b.id
}

// SimulatingPhysics always returns false: projectiles move kinematically and never accept impulses.
func (b *Body) SimulatingPhysics() bool {
	return false
}

// State returns a copy of the current kinematic state.
func (b *Body) State() State {
	return b.state
}

// Position ...
func (b *Body) Position() mgl32.Vec3 {
	return b.state.Position
}

// Velocity ...
func (b *Body) Velocity() mgl32.Vec3 {
	return b.state.Velocity
}

// Trail returns the recent positions of the projectile.
func (b *Body) Trail() *Trail {
	return b.trail
}

// Destroyed returns true once the projectile expired or was consumed by a collision.
func (b *Body) Destroyed() bool {
	return b.destroyed
}

// Expiring returns true if the lifetime ran out during the latest Tick. The motion of that tick may still
// be reported to OnCollision until the projectile is ticked again.
func (b *Body) Expiring() bool {
	return b.expiring
}

// Tick advances the projectile by dt: gravity is added to the velocity, then the velocity moves the
// position. It returns false once the projectile is destroyed, either earlier or because its lifetime ran
// out during this tick.
func (b *Body) Tick(dt float32) bool {
	if b.destroyed {
		b.expiring = false
		return false
	}

	b.state.Velocity = game.ClampLength(b.state.Velocity.Add(b.state.Gravity.Mul(dt)), b.conf.MaxSpeed)
	b.state.Position = b.state.Position.Add(b.state.Velocity.Mul(dt))
	b.state.Elapsed += dt
	b.tick++
	b.trail.Add(TrailPoint{Position: b.state.Position, Tick: b.tick})

	if b.state.Lifetime > 0 && b.state.Elapsed >= b.state.Lifetime {
		b.log.Debug("projectile lifetime expired")
		b.destroyed = true
		b.expiring = true
		return false
	}
	return true
}

// OnCollision handles a blocking hit against other at hitPoint. If other is a simulating body other than
// the projectile itself, an impulse of velocity * ImpulseMultiplier is applied to it at hitPoint and the
// projectile destroys itself. Any other collision leaves the projectile untouched. The return value reports
// whether the collision was consumed. A projectile whose lifetime ran out on its latest tick still accepts
// the collision of that tick.
func (b *Body) OnCollision(ph host.PhysicsHost, other host.Body, hitPoint mgl32.Vec3) bool {
	if (b.destroyed && !b.expiring) || other == nil || other.ID() == b.id || !other.SimulatingPhysics() {
		return false
	}

	impulse := b.state.Velocity.Mul(b.conf.ImpulseMultiplier)
	ph.ApplyImpulse(other.ID(), impulse, hitPoint)
	ph.DestroyActor(b.id)
	b.destroyed = true
	b.expiring = false

	b.log.WithFields(logrus.Fields{
		"target":  other.ID(),
		"impulse": impulse,
	}).Debug("projectile transferred impulse")
	return true
}
