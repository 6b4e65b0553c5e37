// Package host declares the collaborators that the surrounding engine provides to the gameplay core:
// scene queries, impulse application, actor spawning, input, animation and debug drawing.
package host

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ballistics/game"
	"github.com/zeebo/xxh3"
)

//go:generate go tool mockgen -destination=./mocks/host_mock.go -package=mocks . Tracer,PhysicsHost,Spawner,Input,AnimationHost,DebugDrawer,ActorRegistry,Body

// ActorID identifies an actor in the host scene.
type ActorID uint64

// NoActor is the zero ActorID, never assigned to an actor.
const NoActor ActorID = 0

// IDFromName derives the ActorID of a named actor.
func IDFromName(name string) ActorID {
	return ActorID(xxh3.HashString(name))
}

// HitResult is the outcome of a positive collision query.
type HitResult struct {
	Point  mgl32.Vec3
	Normal mgl32.Vec3
	Actor  ActorID
}

// CollisionPolicy tells the host how to handle a spawn point that overlaps existing geometry.
type CollisionPolicy uint8

const (
	CollisionAlwaysSpawn CollisionPolicy = iota
	CollisionAdjustIfPossibleButAlwaysSpawn
	CollisionAdjustIfPossibleButDontSpawnIfColliding
	CollisionDontSpawnIfColliding
)

// Key is an input key polled through Input.
type Key uint8

const (
	KeyOne Key = iota + 1
	KeyTwo
	KeyFour
	KeyFive
)

// Tracer runs synchronous collision queries against the scene.
type Tracer interface {
	// LineTrace returns the first blocking hit along the segment from origin to destination, skipping
	// every actor in exclude. ok is false when nothing was hit.
	LineTrace(origin, destination mgl32.Vec3, exclude []ActorID) (hit HitResult, ok bool, err error)
}

// PhysicsHost applies the side effects of a projectile collision.
type PhysicsHost interface {
	ApplyImpulse(target ActorID, impulse, at mgl32.Vec3)
	DestroyActor(id ActorID)
}

// Spawner creates actors in the scene.
type Spawner interface {
	// SpawnActor creates an actor of the given class. ok is false if the host refused the spawn, for
	// example because the collision policy forbids spawning inside geometry.
	SpawnActor(class string, position mgl32.Vec3, rotation game.Rotator, policy CollisionPolicy) (id ActorID, ok bool)
}

// Input exposes the input state of the local player controller.
type Input interface {
	IsKeyDown(key Key) bool
	AddMappingContext(context string, priority int)
	RemoveMappingContext(context string)
	BindAction(action string, fn func())
}

// AnimationHost plays cosmetic animations.
type AnimationHost interface {
	PlayMontage(id string, rate float32)
}

// Colour of a debug line.
type Colour uint8

const (
	ColourGreen Colour = iota
	ColourRed
	ColourYellow
)

// DebugDrawer draws transient debug primitives.
type DebugDrawer interface {
	DrawDebugLine(start, end mgl32.Vec3, colour Colour)
}

// Character is a snapshot of a character actor as seen through the ActorRegistry.
type Character struct {
	ID             ActorID
	Location       mgl32.Vec3
	Rotation       game.Rotator
	CameraRotation game.Rotator
	HasController  bool
}

// ActorRegistry resolves non-owning actor references.
type ActorRegistry interface {
	Character(id ActorID) (Character, bool)
	SetActorLocation(id ActorID, location mgl32.Vec3) bool
	Body(id ActorID) (Body, bool)
}

// Body is the capability view of a scene actor that a projectile may collide with.
type Body interface {
	ID() ActorID
	// SimulatingPhysics returns true if the body is dynamically simulated and accepts impulses.
	SimulatingPhysics() bool
}
