package world

import (
	"errors"
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ballistics/game"
	"github.com/oomph-ac/ballistics/host"
	"github.com/oomph-ac/ballistics/oerror"
)

func wallScene() (*World, host.ActorID, host.ActorID) {
	w := New(nil)
	near := w.AddStatic("near", cube.Box(100, -10, -10, 110, 10, 10))
	far := w.AddDynamic("far", cube.Box(200, -10, -10, 210, 10, 10), 2)
	return w, near, far
}

func TestLineTraceReturnsNearestHit(t *testing.T) {
	w, near, far := wallScene()

	hit, ok, err := w.LineTrace(mgl32.Vec3{}, mgl32.Vec3{300, 0, 0}, nil)
	if err != nil || !ok {
		t.Fatalf("expected a hit, got ok=%v err=%v", ok, err)
	}
	if hit.Actor != near {
		t.Fatalf("expected the near wall to be hit first")
	}
	if !game.Vec3ApproxEq(hit.Point, mgl32.Vec3{100, 0, 0}, game.Epsilon) {
		t.Fatalf("unexpected hit point %v", hit.Point)
	}
	if hit.Normal != (mgl32.Vec3{-1, 0, 0}) {
		t.Fatalf("unexpected hit normal %v", hit.Normal)
	}

	hit, ok, _ = w.LineTrace(mgl32.Vec3{}, mgl32.Vec3{300, 0, 0}, []host.ActorID{near})
	if !ok || hit.Actor != far {
		t.Fatalf("expected the far wall once the near wall is ignored, got ok=%v actor=%d", ok, hit.Actor)
	}
	if !game.Vec3ApproxEq(hit.Point, mgl32.Vec3{200, 0, 0}, game.Epsilon) {
		t.Fatalf("unexpected hit point %v", hit.Point)
	}
}

func TestLineTraceMisses(t *testing.T) {
	w, _, _ := wallScene()

	tests := []struct {
		name       string
		start, end mgl32.Vec3
	}{
		{"short of the wall", mgl32.Vec3{}, mgl32.Vec3{50, 0, 0}},
		{"above the wall", mgl32.Vec3{0, 0, 50}, mgl32.Vec3{300, 0, 50}},
		{"away from the wall", mgl32.Vec3{}, mgl32.Vec3{-300, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok, err := w.LineTrace(tt.start, tt.end, nil); ok || err != nil {
				t.Fatalf("expected a miss, got ok=%v err=%v", ok, err)
			}
		})
	}
}

func TestLineTraceSkipsNonBlockingActors(t *testing.T) {
	w := New(nil)
	w.AddCharacter("player", mgl32.Vec3{100, 0, 0}, mgl32.Vec3{10, 10, 10}, game.Rotator{}, game.Rotator{}, true)
	if _, ok, _ := w.LineTrace(mgl32.Vec3{}, mgl32.Vec3{300, 0, 0}, nil); ok {
		t.Fatalf("characters must not block traces")
	}
}

func TestLineTraceOnClosedWorld(t *testing.T) {
	w, _, _ := wallScene()
	w.Close()

	_, ok, err := w.LineTrace(mgl32.Vec3{}, mgl32.Vec3{300, 0, 0}, nil)
	if ok || !errors.Is(err, oerror.ErrHostQueryFailure) {
		t.Fatalf("expected a host query failure, got ok=%v err=%v", ok, err)
	}
	if _, ok := w.SpawnActor("projectile", mgl32.Vec3{}, game.Rotator{}, host.CollisionAlwaysSpawn); ok {
		t.Fatalf("closed world must refuse spawns")
	}
}

func TestApplyImpulse(t *testing.T) {
	w, near, far := wallScene()

	w.ApplyImpulse(far, mgl32.Vec3{500, 0, 0}, mgl32.Vec3{200, 0, 0})
	w.ApplyImpulse(near, mgl32.Vec3{500, 0, 0}, mgl32.Vec3{100, 0, 0})
	w.ApplyImpulse(host.IDFromName("missing"), mgl32.Vec3{500, 0, 0}, mgl32.Vec3{})

	a, _ := w.Actor(far)
	if a.Hits != 1 || a.Impulse != (mgl32.Vec3{500, 0, 0}) || a.Velocity != (mgl32.Vec3{250, 0, 0}) {
		t.Fatalf("unexpected dynamic actor state: hits=%d impulse=%v velocity=%v", a.Hits, a.Impulse, a.Velocity)
	}
	if a, _ := w.Actor(near); a.Hits != 0 || a.Impulse != (mgl32.Vec3{}) {
		t.Fatalf("static actors must ignore impulses")
	}
}

func TestDestroyActor(t *testing.T) {
	w, near, far := wallScene()
	w.DestroyActor(near)
	w.DestroyActor(near)

	if _, ok := w.Actor(near); ok {
		t.Fatalf("destroyed actor still present")
	}
	actors := w.Actors()
	if len(actors) != 1 || actors[0].ID != far {
		t.Fatalf("unexpected actors left: %v", actors)
	}
}

func TestSpawnActorPolicies(t *testing.T) {
	floor := cube.Box(-10, -10, -10, 10, 10, 0)

	tests := []struct {
		name     string
		position mgl32.Vec3
		policy   host.CollisionPolicy
		spawned  bool
		location mgl32.Vec3
	}{
		{"clear point always spawns", mgl32.Vec3{0, 0, 50}, host.CollisionDontSpawnIfColliding, true, mgl32.Vec3{0, 0, 50}},
		{"always spawn keeps point", mgl32.Vec3{0, 0, 2}, host.CollisionAlwaysSpawn, true, mgl32.Vec3{0, 0, 2}},
		{"adjust lifts point", mgl32.Vec3{0, 0, 2}, host.CollisionAdjustIfPossibleButDontSpawnIfColliding, true, mgl32.Vec3{0, 0, 5.001}},
		{"adjust too far refuses", mgl32.Vec3{0, 0, -5}, host.CollisionAdjustIfPossibleButDontSpawnIfColliding, false, mgl32.Vec3{}},
		{"adjust too far still spawns", mgl32.Vec3{0, 0, -5}, host.CollisionAdjustIfPossibleButAlwaysSpawn, true, mgl32.Vec3{0, 0, -5}},
		{"colliding refuses", mgl32.Vec3{0, 0, 2}, host.CollisionDontSpawnIfColliding, false, mgl32.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(nil)
			w.AddStatic("floor", floor)

			id, ok := w.SpawnActor("projectile", tt.position, game.Rotator{}, tt.policy)
			if ok != tt.spawned {
				t.Fatalf("expected spawned=%v, got %v", tt.spawned, ok)
			}
			if !ok {
				if id != host.NoActor || len(w.Actors()) != 1 {
					t.Fatalf("refused spawn must not add an actor")
				}
				return
			}
			a, found := w.Actor(id)
			if !found {
				t.Fatalf("spawned actor missing")
			}
			if a.Blocking || a.Class != "projectile" {
				t.Fatalf("spawned actor must be a non-blocking projectile, got %+v", a)
			}
			if !game.Vec3ApproxEq(a.Location(), tt.location, game.Epsilon) {
				t.Fatalf("expected spawn at %v, got %v", tt.location, a.Location())
			}
		})
	}
}

func TestSpawnedActorsHaveUniqueIDs(t *testing.T) {
	w := New(nil)
	a, _ := w.SpawnActor("projectile", mgl32.Vec3{}, game.Rotator{}, host.CollisionAlwaysSpawn)
	b, _ := w.SpawnActor("projectile", mgl32.Vec3{}, game.Rotator{}, host.CollisionAlwaysSpawn)
	if a == b {
		t.Fatalf("spawned actors share an id")
	}
}

func TestCharacterRegistry(t *testing.T) {
	w, near, _ := wallScene()
	camera := game.Rotator{Pitch: 10, Yaw: 90}
	id := w.AddCharacter("player", mgl32.Vec3{0, 0, 100}, mgl32.Vec3{20, 20, 50}, game.Rotator{Yaw: 90}, camera, true)

	c, ok := w.Character(id)
	if !ok {
		t.Fatalf("expected character")
	}
	if c.Location != (mgl32.Vec3{0, 0, 100}) || c.CameraRotation != camera || !c.HasController {
		t.Fatalf("unexpected character snapshot %+v", c)
	}
	if _, ok := w.Character(near); ok {
		t.Fatalf("a wall is not a character")
	}

	if !w.SetActorLocation(id, mgl32.Vec3{50, 50, 100}) {
		t.Fatalf("expected teleport to succeed")
	}
	c, _ = w.Character(id)
	if c.Location != (mgl32.Vec3{50, 50, 100}) {
		t.Fatalf("unexpected location after teleport %v", c.Location)
	}
	if w.SetActorLocation(host.IDFromName("missing"), mgl32.Vec3{}) {
		t.Fatalf("teleporting a missing actor must fail")
	}
}

func TestBody(t *testing.T) {
	w, near, far := wallScene()

	b, ok := w.Body(far)
	if !ok || b.ID() != far || !b.SimulatingPhysics() {
		t.Fatalf("expected simulating body for dynamic actor")
	}
	b, ok = w.Body(near)
	if !ok || b.SimulatingPhysics() {
		t.Fatalf("expected non-simulating body for static actor")
	}
	if _, ok := w.Body(host.IDFromName("missing")); ok {
		t.Fatalf("expected no body for missing actor")
	}
}
