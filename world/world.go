// Package world implements an in-memory scene of axis-aligned actors. It provides every host
// collaborator the projectile and the trajectory predictor query, so both can be run headless.
package world

import (
	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/ballistics/assert"
	"github.com/oomph-ac/ballistics/game"
	"github.com/oomph-ac/ballistics/host"
	"github.com/oomph-ac/ballistics/internal"
	"github.com/oomph-ac/ballistics/oerror"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultSpawnRadius is the half extent of the box given to spawned actors.
	DefaultSpawnRadius = float32(5)
	// DefaultSpawnAdjust is the furthest a spawn point is nudged along +Z to clear existing geometry.
	DefaultSpawnAdjust = float32(5)
)

var (
	_ host.Tracer        = (*World)(nil)
	_ host.PhysicsHost   = (*World)(nil)
	_ host.Spawner       = (*World)(nil)
	_ host.ActorRegistry = (*World)(nil)
)

type World struct {
	actors *orderedmap.OrderedMap[host.ActorID, *Actor]
	log    logrus.FieldLogger
	closed bool

	// SpawnRadius and SpawnAdjust may be changed before the world is shared.
	SpawnRadius float32
	SpawnAdjust float32

	deadlock.RWMutex
}

// New returns an empty World. A nil logger discards every entry.
func New(log logrus.FieldLogger) *World {
	if log == nil {
		log = internal.DiscardLogger()
	}
	return &World{
		actors:      orderedmap.NewOrderedMap[host.ActorID, *Actor](),
		log:         log,
		SpawnRadius: DefaultSpawnRadius,
		SpawnAdjust: DefaultSpawnAdjust,
	}
}

// AddStatic adds a blocking actor that never moves and ignores impulses.
func (w *World) AddStatic(name string, box cube.BBox) host.ActorID {
	return w.add(&Actor{Name: name, Class: "static", Box: box, Blocking: true})
}

// AddDynamic adds a blocking actor that accepts impulses.
func (w *World) AddDynamic(name string, box cube.BBox, mass float32) host.ActorID {
	return w.add(&Actor{Name: name, Class: "dynamic", Box: box, Blocking: true, Simulating: true, Mass: mass})
}

// AddCharacter adds a non-blocking character actor that can hold a weapon. Characters are not blocking
// so the projectiles they fire do not collide with them on spawn.
func (w *World) AddCharacter(name string, location, halfExtents mgl32.Vec3, facing, camera game.Rotator, controlled bool) host.ActorID {
	return w.add(&Actor{
		Name:           name,
		Class:          "character",
		Box:            game.BoxAround(location, halfExtents),
		Character:      true,
		HasController:  controlled,
		Rotation:       facing,
		CameraRotation: camera,
	})
}

func (w *World) add(a *Actor) host.ActorID {
	a.ID = host.IDFromName(a.Name)
	assert.IsTrue(a.ID != host.NoActor, "actor %q hashed to the reserved id", a.Name)

	w.Lock()
	defer w.Unlock()

	if _, ok := w.actors.Get(a.ID); ok {
		w.log.WithField("name", a.Name).Warn("replacing actor with the same name")
	}
	w.actors.Set(a.ID, a)
	return a.ID
}

// Actor returns a copy of the actor with the given id.
func (w *World) Actor(id host.ActorID) (Actor, bool) {
	w.RLock()
	defer w.RUnlock()

	a, ok := w.actors.Get(id)
	if !ok {
		return Actor{}, false
	}
	return *a, true
}

// Actors returns a copy of every actor in insertion order.
func (w *World) Actors() []Actor {
	w.RLock()
	defer w.RUnlock()

	list := make([]Actor, 0, w.actors.Len())
	for el := w.actors.Front(); el != nil; el = el.Next() {
		list = append(list, *el.Value)
	}
	return list
}

// LineTrace returns the blocking hit closest to origin along the segment to destination. Actors in
// exclude are skipped. The hit normal is the outward normal of the face that was entered.
func (w *World) LineTrace(origin, destination mgl32.Vec3, exclude []host.ActorID) (host.HitResult, bool, error) {
	w.RLock()
	defer w.RUnlock()

	if w.closed {
		return host.HitResult{}, false, oerror.HostQueryFailure("line trace on a closed world")
	}

	var (
		hit     host.HitResult
		found   bool
		minDist = float32(math32.MaxFloat32)
	)
	for el := w.actors.Front(); el != nil; el = el.Next() {
		a := el.Value
		if !a.Blocking || excluded(a.ID, exclude) {
			continue
		}
		res, ok := trace.BBoxIntercept(a.Box, origin, destination)
		if !ok {
			continue
		}
		if dist := res.Position().Sub(origin).LenSqr(); dist < minDist {
			minDist = dist
			found = true
			hit = host.HitResult{
				Point:  res.Position(),
				Normal: game.FaceNormal(res.Face()),
				Actor:  a.ID,
			}
		}
	}
	return hit, found, nil
}

func excluded(id host.ActorID, exclude []host.ActorID) bool {
	for _, e := range exclude {
		if e == id {
			return true
		}
	}
	return false
}

// ApplyImpulse adds impulse to a simulating actor and changes its velocity by impulse/mass. Impulses on
// unknown or non-simulating actors are dropped.
func (w *World) ApplyImpulse(target host.ActorID, impulse, at mgl32.Vec3) {
	w.Lock()
	defer w.Unlock()

	a, ok := w.actors.Get(target)
	if !ok || !a.Simulating {
		return
	}
	mass := a.Mass
	if mass <= 0 {
		mass = 1
	}
	a.Impulse = a.Impulse.Add(impulse)
	a.Velocity = a.Velocity.Add(impulse.Mul(1 / mass))
	a.Hits++

	w.log.WithFields(logrus.Fields{
		"actor":   a.Name,
		"impulse": impulse,
		"at":      at,
	}).Debug("impulse applied")
}

// DestroyActor removes the actor from the scene. Unknown ids are ignored.
func (w *World) DestroyActor(id host.ActorID) {
	w.Lock()
	defer w.Unlock()

	if a, ok := w.actors.Get(id); ok {
		w.actors.Delete(id)
		w.log.WithField("actor", a.Name).Debug("actor destroyed")
	}
}

// SpawnActor adds a non-blocking actor of the given class. The spawn box is a cube of SpawnRadius half
// extent around position. When it overlaps blocking geometry the policy decides whether the point is
// nudged up along +Z (at most SpawnAdjust) and whether the spawn is refused.
func (w *World) SpawnActor(class string, position mgl32.Vec3, rotation game.Rotator, policy host.CollisionPolicy) (host.ActorID, bool) {
	w.Lock()
	defer w.Unlock()

	if w.closed {
		return host.NoActor, false
	}

	half := mgl32.Vec3{w.SpawnRadius, w.SpawnRadius, w.SpawnRadius}
	box := game.BoxAround(position, half)
	if w.colliding(box) {
		switch policy {
		case host.CollisionAdjustIfPossibleButAlwaysSpawn, host.CollisionAdjustIfPossibleButDontSpawnIfColliding:
			if adjusted, ok := w.adjust(box); ok {
				box = adjusted
				break
			}
			if policy == host.CollisionAdjustIfPossibleButDontSpawnIfColliding {
				w.log.WithField("class", class).Debug("spawn refused: point is inside geometry")
				return host.NoActor, false
			}
		case host.CollisionDontSpawnIfColliding:
			w.log.WithField("class", class).Debug("spawn refused: point is inside geometry")
			return host.NoActor, false
		}
	}

	name := class + "-" + uuid.NewString()
	a := &Actor{
		ID:       host.IDFromName(name),
		Name:     name,
		Class:    class,
		Box:      box,
		Rotation: rotation,
	}
	w.actors.Set(a.ID, a)
	return a.ID, true
}

// colliding returns true if box overlaps any blocking actor. The lock must be held.
func (w *World) colliding(box cube.BBox) bool {
	for el := w.actors.Front(); el != nil; el = el.Next() {
		if el.Value.Blocking && el.Value.Box.IntersectsWith(box) {
			return true
		}
	}
	return false
}

// adjust lifts box above every blocking actor it overlaps. It fails when that takes more than
// SpawnAdjust or when the lifted box still collides. The lock must be held.
func (w *World) adjust(box cube.BBox) (cube.BBox, bool) {
	var lift float32
	for el := w.actors.Front(); el != nil; el = el.Next() {
		a := el.Value
		if !a.Blocking || !a.Box.IntersectsWith(box) {
			continue
		}
		lift = max(lift, a.Box.Max().Z()-box.Min().Z()+game.Epsilon)
	}
	if lift > w.SpawnAdjust {
		return box, false
	}
	moved := box.Translate(mgl32.Vec3{0, 0, lift})
	if w.colliding(moved) {
		return box, false
	}
	return moved, true
}

// Body returns the capability view of an actor.
func (w *World) Body(id host.ActorID) (host.Body, bool) {
	w.RLock()
	defer w.RUnlock()

	a, ok := w.actors.Get(id)
	if !ok {
		return nil, false
	}
	return body{id: a.ID, simulating: a.Simulating}, true
}

// Character returns a snapshot of a character actor.
func (w *World) Character(id host.ActorID) (host.Character, bool) {
	w.RLock()
	defer w.RUnlock()

	a, ok := w.actors.Get(id)
	if !ok || !a.Character {
		return host.Character{}, false
	}
	return host.Character{
		ID:             a.ID,
		Location:       a.Location(),
		Rotation:       a.Rotation,
		CameraRotation: a.CameraRotation,
		HasController:  a.HasController,
	}, true
}

// SetActorLocation moves the centre of the actor's box to location.
func (w *World) SetActorLocation(id host.ActorID, location mgl32.Vec3) bool {
	w.Lock()
	defer w.Unlock()

	a, ok := w.actors.Get(id)
	if !ok {
		return false
	}
	a.Box = game.BoxAround(location, a.halfExtents())
	return true
}

// Close marks the world as closed. Later line traces fail and spawns are refused.
func (w *World) Close() {
	w.Lock()
	w.closed = true
	w.Unlock()
}
