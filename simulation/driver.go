// Package simulation drives projectile bodies on behalf of a host that has no physics solver of its own.
package simulation

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ballistics/host"
	"github.com/oomph-ac/ballistics/internal"
	"github.com/oomph-ac/ballistics/projectile"
	"github.com/sirupsen/logrus"
)

// Driver ticks projectile bodies and reports their blocking hits back to them. Every tick each body is
// advanced, its motion is swept through the tracer and the first hit is dispatched to OnCollision.
// Bodies are processed in the order they were added. A Driver is not safe for concurrent use.
type Driver struct {
	tracer   host.Tracer
	physics  host.PhysicsHost
	registry host.ActorRegistry

	bodies []*projectile.Body
	tick   int64

	log logrus.FieldLogger
}

// NewDriver returns a Driver querying and mutating the host through the collaborators passed. A nil logger
// discards every entry.
func NewDriver(tracer host.Tracer, physics host.PhysicsHost, registry host.ActorRegistry, log logrus.FieldLogger) *Driver {
	if log == nil {
		log = internal.DiscardLogger()
	}
	return &Driver{
		tracer:   tracer,
		physics:  physics,
		registry: registry,
		log:      log,
	}
}

// Add starts driving b. Destroyed bodies are ignored.
func (d *Driver) Add(b *projectile.Body) {
	if b == nil || b.Destroyed() {
		return
	}
	d.bodies = append(d.bodies, b)
}

// Len returns the number of live bodies.
func (d *Driver) Len() int {
	return len(d.bodies)
}

// Bodies returns the live bodies in insertion order. The slice must not be modified.
func (d *Driver) Bodies() []*projectile.Body {
	return d.bodies
}

// Tick advances every live body by dt. Bodies whose lifetime runs out are destroyed in the host, bodies
// consumed by a collision destroy themselves. Both are dropped from the driver.
func (d *Driver) Tick(dt float32) {
	d.tick++

	live := d.bodies[:0]
	for _, b := range d.bodies {
		if d.step(b, dt) {
			live = append(live, b)
		}
	}
	clear(d.bodies[len(live):])
	d.bodies = live
}

// step advances a single body and returns true if it is still alive afterwards. The motion of the tick a
// body expires on is still swept, so it can hit what it passed through before it is removed.
func (d *Driver) step(b *projectile.Body, dt float32) bool {
	start := b.Position()
	alive := b.Tick(dt)
	if !alive && !b.Expiring() {
		return false
	}
	end := b.Position()
	if alive {
		d.registry.SetActorLocation(b.ID(), end)
	}

	if d.sweep(b, start, end) {
		d.log.WithFields(logrus.Fields{"projectile": b.ID(), "tick": d.tick}).Debug("projectile consumed by collision")
		return false
	}
	if !alive {
		d.physics.DestroyActor(b.ID())
		d.log.WithFields(logrus.Fields{"projectile": b.ID(), "tick": d.tick}).Debug("projectile expired")
		return false
	}
	return true
}

// sweep traces the motion of b from start to end and dispatches the first blocking hit to it. It returns
// true if the hit consumed the body. The sweep is a point trace: CollisionRadius only sizes the actor
// spawned for the projectile.
func (d *Driver) sweep(b *projectile.Body, start, end mgl32.Vec3) bool {
	hit, ok, err := d.tracer.LineTrace(start, end, []host.ActorID{b.ID()})
	if err != nil {
		d.log.WithFields(logrus.Fields{
			"projectile": b.ID(),
			"tick":       d.tick,
			"error":      err,
		}).Warn("projectile sweep failed, treating tick as a miss")
		return false
	}
	if !ok {
		return false
	}

	other, found := d.registry.Body(hit.Actor)
	if !found {
		return false
	}
	return b.OnCollision(d.physics, other, hit.Point)
}
