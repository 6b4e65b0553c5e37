package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ballistics/game"
	"github.com/oomph-ac/ballistics/host"
)

// Actor is an axis-aligned actor in the reference scene.
type Actor struct {
	ID    host.ActorID
	Name  string
	Class string

	// Box is the world-space bounding box of the actor.
	Box cube.BBox
	// Blocking actors are returned by line traces. Spawned actors such as projectiles are not blocking.
	Blocking bool
	// Simulating actors are dynamically simulated and accept impulses.
	Simulating bool
	// Mass converts impulses into velocity changes. Non-positive masses are treated as 1.
	Mass float32

	Rotation game.Rotator
	Velocity mgl32.Vec3
	// Impulse is the sum of every impulse the actor received.
	Impulse mgl32.Vec3
	Hits    int

	// Character marks actors that can hold a weapon.
	Character      bool
	HasController  bool
	CameraRotation game.Rotator
}

// Location returns the centre of the actor's bounding box.
func (a Actor) Location() mgl32.Vec3 {
	return a.Box.Min().Add(a.Box.Max()).Mul(0.5)
}

// halfExtents ...
func (a Actor) halfExtents() mgl32.Vec3 {
	return a.Box.Max().Sub(a.Box.Min()).Mul(0.5)
}

// body is the capability view of an actor handed to projectiles.
type body struct {
	id         host.ActorID
	simulating bool
}

func (b body) ID() host.ActorID {
	return b.id
}

func (b body) SimulatingPhysics() bool {
	return b.simulating
}
