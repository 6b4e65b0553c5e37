package projectile_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ballistics/game"
	"github.com/oomph-ac/ballistics/host"
	"github.com/oomph-ac/ballistics/host/mocks"
	"github.com/oomph-ac/ballistics/projectile"
	"go.uber.org/mock/gomock"
)

func testConfig() projectile.Config {
	conf := projectile.DefaultConfig()
	conf.MaxSpeed = 0
	conf.GravityOverride = mgl32.Vec3{0, 0, -980}
	return conf
}

func TestNewFacesRotation(t *testing.T) {
	b := projectile.New(1, mgl32.Vec3{1, 2, 3}, game.Rotator{Yaw: 90}, testConfig(), nil)

	if !game.Vec3ApproxEq(b.Velocity(), mgl32.Vec3{0, 5000, 0}, 1e-2) {
		t.Fatalf("expected velocity along yaw 90 forward, got %v", b.Velocity())
	}
	if b.Position() != (mgl32.Vec3{1, 2, 3}) {
		t.Fatalf("unexpected spawn position %v", b.Position())
	}
	if b.SimulatingPhysics() {
		t.Fatalf("projectiles must not report simulating physics")
	}
}

func TestTickAppliesGravity(t *testing.T) {
	conf := testConfig()
	conf.InitialSpeed = 1000
	b := projectile.New(1, mgl32.Vec3{}, game.Rotator{}, conf, nil)

	const dt = float32(0.1)
	for range 5 {
		if !b.Tick(dt) {
			t.Fatalf("projectile destroyed before its lifetime")
		}
	}

	want := mgl32.Vec3{1000, 0, -980 * 5 * dt}
	if !game.Vec3ApproxEq(b.Velocity(), want, 1e-2) {
		t.Fatalf("velocity = %v, want %v", b.Velocity(), want)
	}
	// Position accumulates the post-gravity velocity of every tick: z = -980*dt^2*(1+2+3+4+5).
	wantZ := float32(-980) * dt * dt * 15
	if !game.Vec3ApproxEq(b.Position(), mgl32.Vec3{500, 0, wantZ}, 1e-2) {
		t.Fatalf("position = %v, want x=500 z=%v", b.Position(), wantZ)
	}
	if got := b.State().Elapsed; !game.Float32ApproxEq(got, 0.5) {
		t.Fatalf("elapsed = %v, want 0.5", got)
	}
}

func TestTickClampsToMaxSpeed(t *testing.T) {
	conf := testConfig()
	conf.MaxSpeed = projectile.DefaultMaxSpeed
	b := projectile.New(1, mgl32.Vec3{}, game.Rotator{}, conf, nil)

	b.Tick(1.0 / 60)
	if l := b.Velocity().Len(); l > conf.MaxSpeed+1e-2 {
		t.Fatalf("velocity magnitude %v exceeds max speed %v", l, conf.MaxSpeed)
	}
}

func TestLifetimeExpiry(t *testing.T) {
	b := projectile.New(1, mgl32.Vec3{}, game.Rotator{}, testConfig(), nil)

	ticks := 0
	for b.Tick(0.25) {
		ticks++
		if ticks > 100 {
			t.Fatalf("projectile never expired")
		}
	}
	// The twelfth tick reaches the default lifetime of 3.
	if ticks != 11 {
		t.Fatalf("expected 11 surviving ticks, got %d", ticks)
	}
	if !b.Destroyed() {
		t.Fatalf("expected projectile to be destroyed")
	}
	if b.Tick(0.25) {
		t.Fatalf("destroyed projectile must not tick")
	}
}

func TestCollisionWithSimulatingBody(t *testing.T) {
	ctrl := gomock.NewController(t)

	b := projectile.New(1, mgl32.Vec3{}, game.Rotator{}, testConfig(), nil)
	hitPoint := mgl32.Vec3{10, 0, 0}

	other := mocks.NewMockBody(ctrl)
	other.EXPECT().ID().Return(host.ActorID(2)).AnyTimes()
	other.EXPECT().SimulatingPhysics().Return(true)

	ph := mocks.NewMockPhysicsHost(ctrl)
	gomock.InOrder(
		ph.EXPECT().ApplyImpulse(host.ActorID(2), b.Velocity().Mul(100), hitPoint),
		ph.EXPECT().DestroyActor(host.ActorID(1)),
	)

	if !b.OnCollision(ph, other, hitPoint) {
		t.Fatalf("expected collision to be consumed")
	}
	if !b.Destroyed() {
		t.Fatalf("expected projectile to be destroyed")
	}
	if b.Tick(0.1) {
		t.Fatalf("destroyed projectile must not tick")
	}
}

func TestCollisionOnExpiringTick(t *testing.T) {
	ctrl := gomock.NewController(t)

	conf := testConfig()
	conf.Lifetime = 0.1
	b := projectile.New(1, mgl32.Vec3{}, game.Rotator{}, conf, nil)
	if b.Tick(0.1) {
		t.Fatalf("expected the lifetime to run out")
	}
	if !b.Expiring() {
		t.Fatalf("expected the projectile to report the tick it expired on")
	}

	other := mocks.NewMockBody(ctrl)
	other.EXPECT().ID().Return(host.ActorID(2)).AnyTimes()
	other.EXPECT().SimulatingPhysics().Return(true).AnyTimes()

	ph := mocks.NewMockPhysicsHost(ctrl)
	ph.EXPECT().ApplyImpulse(host.ActorID(2), gomock.Any(), gomock.Any()).Times(1)
	ph.EXPECT().DestroyActor(host.ActorID(1)).Times(1)

	if !b.OnCollision(ph, other, mgl32.Vec3{}) {
		t.Fatalf("the motion of the expiring tick must still collide")
	}
	if b.Expiring() || b.OnCollision(ph, other, mgl32.Vec3{}) {
		t.Fatalf("a consumed projectile must not collide again")
	}
}

func TestNoCollisionAfterExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No calls are expected on the physics host.
	ph := mocks.NewMockPhysicsHost(ctrl)

	other := mocks.NewMockBody(ctrl)
	other.EXPECT().ID().Return(host.ActorID(2)).AnyTimes()
	other.EXPECT().SimulatingPhysics().Return(true).AnyTimes()

	conf := testConfig()
	conf.Lifetime = 0.1
	b := projectile.New(1, mgl32.Vec3{}, game.Rotator{}, conf, nil)
	b.Tick(0.1)
	b.Tick(0.1)

	if b.Expiring() {
		t.Fatalf("expiry must only be reported for the tick it happened on")
	}
	if b.OnCollision(ph, other, mgl32.Vec3{}) {
		t.Fatalf("an expired projectile must not collide after a later tick")
	}
}

func TestCollisionIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No calls are expected on the physics host for any of these cases.
	ph := mocks.NewMockPhysicsHost(ctrl)

	static := mocks.NewMockBody(ctrl)
	static.EXPECT().ID().Return(host.ActorID(2)).AnyTimes()
	static.EXPECT().SimulatingPhysics().Return(false).AnyTimes()

	self := mocks.NewMockBody(ctrl)
	self.EXPECT().ID().Return(host.ActorID(1)).AnyTimes()
	self.EXPECT().SimulatingPhysics().Return(true).AnyTimes()

	tests := []struct {
		name  string
		other host.Body
	}{
		{"nil", nil},
		{"static", static},
		{"self", self},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := projectile.New(1, mgl32.Vec3{}, game.Rotator{}, testConfig(), nil)
			before := b.State()

			if b.OnCollision(ph, tt.other, mgl32.Vec3{}) {
				t.Fatalf("collision must not be consumed")
			}
			if b.Destroyed() {
				t.Fatalf("projectile must survive")
			}
			if b.State() != before {
				t.Fatalf("state changed: %+v -> %+v", before, b.State())
			}
			if !b.Tick(0.1) {
				t.Fatalf("projectile must keep ticking")
			}
		})
	}
}

func TestDefaultGravity(t *testing.T) {
	g := projectile.DefaultConfig().Gravity()
	if !game.Float32ApproxEq(g.Len()/game.StandardGravity, 1) {
		t.Fatalf("expected gravity magnitude %v, got %v", game.StandardGravity, g.Len())
	}
	if g.X() != 0 {
		t.Fatalf("rolling the up axis must not introduce an X component, got %v", g)
	}
}
