package weapon_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ballistics/game"
	"github.com/oomph-ac/ballistics/host"
	"github.com/oomph-ac/ballistics/host/mocks"
	"github.com/oomph-ac/ballistics/projectile"
	"github.com/oomph-ac/ballistics/weapon"
	"github.com/oomph-ac/ballistics/world"
	"go.uber.org/mock/gomock"
)

type sliceSink []*projectile.Body

func (s *sliceSink) Add(b *projectile.Body) {
	*s = append(*s, b)
}

var camera = game.Rotator{Yaw: 90}

func scene(controlled bool) (*world.World, host.ActorID) {
	w := world.New(nil)
	player := w.AddCharacter("player", mgl32.Vec3{0, 0, 100}, mgl32.Vec3{20, 20, 90}, game.Rotator{}, camera, controlled)
	return w, player
}

func TestFireSpawnsAtMuzzle(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, player := scene(true)
	spawner := mocks.NewMockSpawner(ctrl)
	anim := mocks.NewMockAnimationHost(ctrl)

	spawner.EXPECT().
		SpawnActor("projectile", gomock.Any(), camera, host.CollisionAdjustIfPossibleButDontSpawnIfColliding).
		DoAndReturn(func(_ string, position mgl32.Vec3, _ game.Rotator, _ host.CollisionPolicy) (host.ActorID, bool) {
			if !game.Vec3ApproxEq(position, mgl32.Vec3{0, 100, 100}, 1e-3) {
				t.Errorf("expected spawn one muzzle offset along the camera, got %v", position)
			}
			return 42, true
		})
	anim.EXPECT().PlayMontage("fire_montage", float32(1))

	conf := weapon.DefaultConfig()
	conf.FireAnimation = "fire_montage"
	var sink sliceSink
	wp := weapon.New(conf, player, weapon.Hosts{Tracer: w, Spawner: spawner, Registry: w, Animation: anim}, &sink, nil)
	wp.AttachWeapon(player)

	body, err := wp.Fire()
	if err != nil {
		t.Fatalf("Fire returned error: %v", err)
	}
	if body == nil || body.ID() != 42 {
		t.Fatalf("expected projectile 42, got %v", body)
	}
	if !game.Vec3ApproxEq(body.Velocity(), mgl32.Vec3{0, 5000, 0}, 1e-1) {
		t.Fatalf("expected launch along the camera at projectile speed, got %v", body.Velocity())
	}
	if len(sink) != 1 || sink[0] != body {
		t.Fatalf("fired projectile was not handed to the sink")
	}
}

func TestFireNoOps(t *testing.T) {
	tests := []struct {
		name       string
		controlled bool
		attach     bool
		noClass    bool
	}{
		{name: "no character attached", controlled: true},
		{name: "character without controller", attach: true},
		{name: "no projectile class", controlled: true, attach: true, noClass: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			w, player := scene(tt.controlled)
			// Neither mock expects a call: gomock fails the test on any spawn or montage.
			spawner := mocks.NewMockSpawner(ctrl)
			anim := mocks.NewMockAnimationHost(ctrl)

			conf := weapon.DefaultConfig()
			conf.FireAnimation = "fire_montage"
			if tt.noClass {
				conf.Projectile = nil
			}
			wp := weapon.New(conf, player, weapon.Hosts{Tracer: w, Spawner: spawner, Registry: w, Animation: anim}, nil, nil)
			if tt.attach {
				wp.AttachWeapon(player)
			}

			body, err := wp.Fire()
			if body != nil || err != nil {
				t.Fatalf("expected a silent no-op, got body=%v err=%v", body, err)
			}
		})
	}
}

func TestFireRefusedSpawnStillAnimates(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, player := scene(true)
	spawner := mocks.NewMockSpawner(ctrl)
	anim := mocks.NewMockAnimationHost(ctrl)

	spawner.EXPECT().SpawnActor(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(host.NoActor, false)
	anim.EXPECT().PlayMontage("fire_montage", float32(1))

	conf := weapon.DefaultConfig()
	conf.FireAnimation = "fire_montage"
	var sink sliceSink
	wp := weapon.New(conf, player, weapon.Hosts{Tracer: w, Spawner: spawner, Registry: w, Animation: anim}, &sink, nil)
	wp.AttachWeapon(player)

	if body, _ := wp.Fire(); body != nil {
		t.Fatalf("expected no projectile for a refused spawn")
	}
	if len(sink) != 0 {
		t.Fatalf("nothing should reach the sink")
	}
}

func TestAttachWeaponBindsFire(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, player := scene(true)
	input := mocks.NewMockInput(ctrl)

	var fire func()
	input.EXPECT().AddMappingContext("fire", 1)
	input.EXPECT().BindAction("fire", gomock.Any()).Do(func(_ string, fn func()) {
		fire = fn
	})
	input.EXPECT().RemoveMappingContext("fire")

	var sink sliceSink
	wp := weapon.New(weapon.DefaultConfig(), player, weapon.Hosts{Tracer: w, Spawner: w, Registry: w, Input: input}, &sink, nil)
	wp.AttachWeapon(player)
	if wp.Character() != player {
		t.Fatalf("expected the weapon to reference the player")
	}
	if fire == nil {
		t.Fatalf("fire action was not bound")
	}

	fire()
	if len(sink) != 1 {
		t.Fatalf("expected the bound action to fire one projectile, got %d", len(sink))
	}
	if _, ok := w.Actor(sink[0].ID()); !ok {
		t.Fatalf("fired projectile is not in the world")
	}

	wp.EndPlay()
}

func TestAttachWeaponUnknownCharacter(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, player := scene(true)
	input := mocks.NewMockInput(ctrl)

	wp := weapon.New(weapon.DefaultConfig(), player, weapon.Hosts{Tracer: w, Registry: w, Input: input}, nil, nil)
	wp.AttachWeapon(host.IDFromName("ghost"))
	if wp.Character() != host.NoActor {
		t.Fatalf("unknown character must not be attached")
	}
	// Nothing attached, so EndPlay must not touch the input either.
	wp.EndPlay()
}

func TestAdjustProjectileSpeed(t *testing.T) {
	tests := []struct {
		name     string
		one, two bool
		want     float32
	}{
		{"key one", true, false, 5100},
		{"key two", false, true, 4900},
		{"key one wins", true, true, 5100},
		{"no key", false, false, 5000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			input := mocks.NewMockInput(ctrl)
			input.EXPECT().IsKeyDown(host.KeyOne).Return(tt.one)
			input.EXPECT().IsKeyDown(host.KeyTwo).Return(tt.two).MaxTimes(1)

			wp := weapon.New(weapon.DefaultConfig(), host.NoActor, weapon.Hosts{Input: input}, nil, nil)
			wp.AdjustProjectileSpeed()
			if got := wp.ProjectileSpeed(); got != tt.want {
				t.Fatalf("projectile speed = %v, want %v", got, tt.want)
			}
		})
	}
}

func predictionConfig() weapon.Config {
	conf := weapon.DefaultConfig()
	conf.InitialSpeed = 500
	conf.Precision = 10
	return conf
}

func TestSimulateProjectileTrajectoryLateralKeys(t *testing.T) {
	tests := []struct {
		name        string
		four, five  bool
		wantLateral float32
	}{
		{"no key", false, false, 0},
		{"key four", true, false, -588},
		{"key five", false, true, 588},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			w := world.New(nil)
			owner := w.AddCharacter("owner", mgl32.Vec3{}, mgl32.Vec3{10, 10, 10}, game.Rotator{}, game.Rotator{}, false)
			input := mocks.NewMockInput(ctrl)
			drawer := mocks.NewMockDebugDrawer(ctrl)

			input.EXPECT().IsKeyDown(host.KeyFour).Return(tt.four)
			input.EXPECT().IsKeyDown(host.KeyFive).Return(tt.five).MaxTimes(1)
			drawer.EXPECT().DrawDebugLine(gomock.Any(), gomock.Any(), host.ColourGreen).Times(10)

			wp := weapon.New(predictionConfig(), owner, weapon.Hosts{Tracer: w, Registry: w, Input: input, Drawer: drawer}, nil, nil)
			sample, reflection, err := wp.SimulateProjectileTrajectory(1)
			if err != nil || reflection != nil {
				t.Fatalf("unexpected result: reflection=%v err=%v", reflection, err)
			}
			end := sample.Segments[sample.Len()-1].End
			if !game.Vec3ApproxEq(end, mgl32.Vec3{tt.wantLateral, 500, -588}, 1e-2) {
				t.Fatalf("unexpected end point %v", end)
			}
		})
	}
}

func TestSimulateProjectileTrajectoryDrawsReflection(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := world.New(nil)
	owner := w.AddCharacter("owner", mgl32.Vec3{}, mgl32.Vec3{10, 10, 10}, game.Rotator{}, game.Rotator{}, false)
	floor := w.AddStatic("floor", cube.Box(-1000, -1000, -300, 1000, 1000, -150))
	drawer := mocks.NewMockDebugDrawer(ctrl)

	drawer.EXPECT().DrawDebugLine(gomock.Any(), gomock.Any(), host.ColourGreen).Times(10)
	drawer.EXPECT().DrawDebugLine(gomock.Any(), gomock.Any(), host.ColourRed).Do(func(start, end mgl32.Vec3, _ host.Colour) {
		if math32.Abs(start.Z()+150) > 1e-2 || math32.Abs(end.Z()+140) > 1e-2 {
			t.Errorf("expected the normal marker from the floor to the restart point, got %v -> %v", start, end)
		}
	})
	drawer.EXPECT().DrawDebugLine(gomock.Any(), gomock.Any(), host.ColourYellow)

	wp := weapon.New(predictionConfig(), owner, weapon.Hosts{Tracer: w, Registry: w, Drawer: drawer}, nil, nil)
	_, reflection, err := wp.SimulateProjectileTrajectory(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reflection == nil {
		t.Fatalf("expected a reflection off the floor")
	}
	if reflection.Actor != floor || reflection.SurfaceNormal != (mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("unexpected reflection %v", reflection)
	}
	if reflection.ReflectedVelocity.Z() <= 0 {
		t.Fatalf("reflected velocity must point away from the floor, got %v", reflection.ReflectedVelocity)
	}
}

func TestDrawLineWithoutOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := world.New(nil)
	drawer := mocks.NewMockDebugDrawer(ctrl)

	wp := weapon.New(weapon.DefaultConfig(), host.IDFromName("nobody"), weapon.Hosts{Tracer: w, Registry: w, Drawer: drawer}, nil, nil)
	sample, reflection, err := wp.DrawLine()
	if sample.Len() != 0 || reflection != nil || err != nil {
		t.Fatalf("expected a silent no-op without an owner")
	}
}

func TestDrawLineUsesDrawDuration(t *testing.T) {
	w := world.New(nil)
	owner := w.AddCharacter("owner", mgl32.Vec3{}, mgl32.Vec3{10, 10, 10}, game.Rotator{}, game.Rotator{}, false)

	wp := weapon.New(weapon.DefaultConfig(), owner, weapon.Hosts{Tracer: w, Registry: w}, nil, nil)
	sample, _, err := wp.DrawLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sample.Len() != weapon.DefaultPrecision {
		t.Fatalf("expected %d segments, got %d", weapon.DefaultPrecision, sample.Len())
	}
	// Lateral launch at 5000 for the default five seconds.
	end := sample.Segments[sample.Len()-1].End
	if math32.Abs(end.Y()-25000) > 1 {
		t.Fatalf("expected y = 25000 after five seconds, got %v", end.Y())
	}
}

func TestSetAIDestination(t *testing.T) {
	w, player := scene(true)
	wall := w.AddStatic("wall", cube.Box(0, 0, 0, 1, 1, 1))

	wp := weapon.New(weapon.DefaultConfig(), player, weapon.Hosts{Registry: w}, nil, nil)
	if !wp.SetAIDestination(mgl32.Vec3{300, 0, 100}) {
		t.Fatalf("expected the owner to be teleported")
	}
	c, _ := w.Character(player)
	if c.Location != (mgl32.Vec3{300, 0, 100}) {
		t.Fatalf("unexpected owner location %v", c.Location)
	}

	other := weapon.New(weapon.DefaultConfig(), wall, weapon.Hosts{Registry: w}, nil, nil)
	if other.SetAIDestination(mgl32.Vec3{}) {
		t.Fatalf("a weapon owned by a non-character must not move it")
	}
}
