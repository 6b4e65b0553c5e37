// Package weapon implements the first person weapon: it fires projectiles from the attached character's
// camera and draws debug predictions of the path a projectile would take.
package weapon

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ballistics/game"
	"github.com/oomph-ac/ballistics/host"
	"github.com/oomph-ac/ballistics/internal"
	"github.com/oomph-ac/ballistics/oerror"
	"github.com/oomph-ac/ballistics/projectile"
	"github.com/oomph-ac/ballistics/trajectory"
	"github.com/sirupsen/logrus"
)

// reflectionMarkerLength is the length of the debug line drawn along the reflected direction.
const reflectionMarkerLength = float32(50)

// Hosts bundles the collaborators a Weapon talks to. Input, Animation and Drawer are optional.
type Hosts struct {
	Tracer    host.Tracer
	Spawner   host.Spawner
	Registry  host.ActorRegistry
	Input     host.Input
	Animation host.AnimationHost
	Drawer    host.DebugDrawer
}

// Sink receives the projectiles a Weapon spawns so something can drive them.
type Sink interface {
	Add(b *projectile.Body)
}

// Weapon is a weapon component owned by an actor. A Weapon is not safe for concurrent use: the host
// calls it from its game thread, including the fire action bound in AttachWeapon.
type Weapon struct {
	conf  Config
	hosts Hosts
	sink  Sink

	predictor *trajectory.Predictor

	// owner is the actor the component belongs to. Predictions start from it.
	owner host.ActorID
	// character is the non-owning reference set by AttachWeapon.
	character host.ActorID

	log logrus.FieldLogger
}

// New returns a Weapon owned by owner. sink may be nil, in which case spawned projectiles are only
// returned from Fire.
func New(conf Config, owner host.ActorID, hosts Hosts, sink Sink, log logrus.FieldLogger) *Weapon {
	if log == nil {
		log = internal.DiscardLogger()
	}
	return &Weapon{
		conf:  conf,
		hosts: hosts,
		sink:  sink,
		owner: owner,
		predictor: trajectory.NewPredictor(hosts.Tracer, trajectory.Options{
			SurfaceOffset: conf.SurfaceOffset,
			Logger:        log,
		}),
		log: log,
	}
}

// ProjectileSpeed returns the current launch speed of fired projectiles.
func (w *Weapon) ProjectileSpeed() float32 {
	return w.conf.ProjectileSpeed
}

// Character returns the attached character, or host.NoActor.
func (w *Weapon) Character() host.ActorID {
	return w.character
}

// AttachWeapon attaches the weapon to a character. If the character is controlled by a player, the fire
// mapping context is added with priority 1 and the fire action is bound to Fire.
func (w *Weapon) AttachWeapon(character host.ActorID) {
	c, ok := w.lookupCharacter(character)
	if !ok {
		w.missing(oerror.MissingDependency("attach to unknown character %d", character))
		return
	}
	w.character = c.ID

	if !c.HasController || w.hosts.Input == nil {
		return
	}
	w.hosts.Input.AddMappingContext(w.conf.FireMappingContext, 1)
	w.hosts.Input.BindAction(w.conf.FireAction, func() {
		if _, err := w.Fire(); err != nil {
			w.log.WithField("error", err).Warn("bound fire action failed")
		}
	})
}

// Fire spawns a projectile at the muzzle of the attached character, facing the camera, and plays the fire
// animation. Nothing happens if no controlled character is attached or the weapon has no projectile class.
// A spawn refused by the host returns a nil body but still plays the animation.
func (w *Weapon) Fire() (*projectile.Body, error) {
	c, ok := w.lookupCharacter(w.character)
	if !ok || !c.HasController {
		w.missing(oerror.MissingDependency("fire without a controlled character"))
		return nil, nil
	}
	if w.conf.Projectile == nil {
		w.missing(oerror.MissingDependency("fire without a projectile class"))
		return nil, nil
	}
	if w.hosts.Spawner == nil {
		w.missing(oerror.MissingDependency("fire without a spawner"))
		return nil, nil
	}

	body := w.spawn(c)
	if w.conf.FireAnimation != "" && w.hosts.Animation != nil {
		w.hosts.Animation.PlayMontage(w.conf.FireAnimation, 1)
	}
	return body, nil
}

func (w *Weapon) spawn(c host.Character) *projectile.Body {
	rotation := c.CameraRotation
	location := c.Location.Add(rotation.RotateVector(w.conf.MuzzleOffset))

	conf := *w.conf.Projectile
	conf.InitialSpeed = w.conf.ProjectileSpeed

	id, ok := w.hosts.Spawner.SpawnActor(conf.Class, location, rotation, host.CollisionAdjustIfPossibleButDontSpawnIfColliding)
	if !ok {
		w.log.WithField("location", location).Debug("projectile spawn refused")
		return nil
	}

	body := projectile.New(id, location, rotation, conf, w.log)
	if w.sink != nil {
		w.sink.Add(body)
	}
	w.log.WithFields(logrus.Fields{
		"projectile": id,
		"speed":      conf.InitialSpeed,
	}).Debug("projectile fired")
	return body
}

// AdjustProjectileSpeed raises ProjectileSpeed by SpeedStep while key One is held, or lowers it while key
// Two is held. Key One takes precedence.
func (w *Weapon) AdjustProjectileSpeed() {
	if w.hosts.Input == nil {
		return
	}
	if w.hosts.Input.IsKeyDown(host.KeyOne) {
		w.conf.ProjectileSpeed += w.conf.SpeedStep
	} else if w.hosts.Input.IsKeyDown(host.KeyTwo) {
		w.conf.ProjectileSpeed -= w.conf.SpeedStep
	}
}

// SimulateProjectileTrajectory predicts the path of a projectile launched from the owner along its right
// axis over duration seconds, and draws it: every segment in green, the surface normal at the reflection
// point in red and the reflected direction in yellow. While key Four is held the prediction accelerates
// along -X, while key Five is held along +X.
func (w *Weapon) SimulateProjectileTrajectory(duration float32) (trajectory.Sample, *trajectory.ReflectionEvent, error) {
	owner, ok := w.lookupCharacter(w.owner)
	if !ok {
		w.missing(oerror.MissingDependency("predict without an owner"))
		return trajectory.Sample{}, nil, nil
	}
	if w.hosts.Tracer == nil {
		w.missing(oerror.MissingDependency("predict without a tracer"))
		return trajectory.Sample{}, nil, nil
	}

	req := trajectory.Request{
		Origin:         owner.Location,
		RightDirection: owner.Rotation.Right(),
		InitialSpeed:   w.conf.InitialSpeed,
		Acceleration:   mgl32.Vec3{0, 0, w.conf.Gravity},
		TotalDuration:  duration,
		StepCount:      w.conf.Precision,
		Ignore:         []host.ActorID{owner.ID},
	}
	if w.hosts.Input != nil {
		if w.hosts.Input.IsKeyDown(host.KeyFour) {
			req.Acceleration[0] = -w.conf.LateralAcceleration
		} else if w.hosts.Input.IsKeyDown(host.KeyFive) {
			req.Acceleration[0] = w.conf.LateralAcceleration
		}
	}

	sample, reflection, err := w.predictor.Predict(req)
	if err != nil {
		return sample, nil, err
	}
	w.draw(sample, reflection)
	return sample, reflection, nil
}

func (w *Weapon) draw(sample trajectory.Sample, reflection *trajectory.ReflectionEvent) {
	if w.hosts.Drawer == nil {
		return
	}
	for _, seg := range sample.Segments {
		w.hosts.Drawer.DrawDebugLine(seg.Start, seg.End, host.ColourGreen)
	}
	if reflection == nil {
		return
	}
	restart := reflection.PointOfImpact.Add(reflection.SurfaceNormal.Mul(w.predictor.SurfaceOffset()))
	w.hosts.Drawer.DrawDebugLine(reflection.PointOfImpact, restart, host.ColourRed)
	w.hosts.Drawer.DrawDebugLine(restart, restart.Add(game.SafeNormalize(reflection.ReflectedVelocity).Mul(reflectionMarkerLength)), host.ColourYellow)
}

// DrawLine predicts and draws the path over DrawDuration.
func (w *Weapon) DrawLine() (trajectory.Sample, *trajectory.ReflectionEvent, error) {
	return w.SimulateProjectileTrajectory(w.conf.DrawDuration)
}

// EndPlay removes the fire mapping context if a controlled character is attached.
func (w *Weapon) EndPlay() {
	c, ok := w.lookupCharacter(w.character)
	if !ok || !c.HasController || w.hosts.Input == nil {
		return
	}
	w.hosts.Input.RemoveMappingContext(w.conf.FireMappingContext)
}

// SetAIDestination teleports the owner to dest if the owner is a character.
func (w *Weapon) SetAIDestination(dest mgl32.Vec3) bool {
	if _, ok := w.lookupCharacter(w.owner); !ok {
		return false
	}
	return w.hosts.Registry.SetActorLocation(w.owner, dest)
}

func (w *Weapon) lookupCharacter(id host.ActorID) (host.Character, bool) {
	if id == host.NoActor || w.hosts.Registry == nil {
		return host.Character{}, false
	}
	return w.hosts.Registry.Character(id)
}

// missing logs a missing dependency. Operations hitting one are no-ops.
func (w *Weapon) missing(err error) {
	w.log.WithField("error", err).Debug("weapon operation skipped")
}
