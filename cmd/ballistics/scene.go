package main

import (
	"github.com/oomph-ac/ballistics/host"
	"github.com/oomph-ac/ballistics/oerror"
	"github.com/oomph-ac/ballistics/settings"
	"github.com/oomph-ac/ballistics/simulation"
	"github.com/oomph-ac/ballistics/weapon"
	"github.com/oomph-ac/ballistics/world"
	"github.com/sirupsen/logrus"
)

const playerName = "player"

// scene is a populated world with a player holding a weapon. Projectiles the weapon fires are driven by
// the scene's driver.
type scene struct {
	world  *world.World
	player host.ActorID
	driver *simulation.Driver
	weapon *weapon.Weapon
}

// newScene builds the scene described by conf. input, anim and drawer are optional.
func newScene(conf settings.Settings, logger logrus.FieldLogger, input host.Input, anim host.AnimationHost, drawer host.DebugDrawer) (*scene, error) {
	if conf.Simulation.TickRate <= 0 {
		return nil, oerror.InvalidArgument("tick rate must be positive, got %d", conf.Simulation.TickRate)
	}

	w := world.New(logger)
	if conf.Projectile.CollisionRadius > 0 {
		w.SpawnRadius = conf.Projectile.CollisionRadius
	}
	for _, b := range conf.Scene {
		if b.Dynamic {
			w.AddDynamic(b.Name, b.BBox(), b.Mass)
			continue
		}
		w.AddStatic(b.Name, b.BBox())
	}
	p := conf.Player
	player := w.AddCharacter(playerName, p.Location.Vec(), p.HalfExtents.Vec(), p.Facing, p.Camera, true)

	driver := simulation.NewDriver(w, w, w, logger)
	wp := weapon.New(conf.WeaponConfig(), player, weapon.Hosts{
		Tracer:    w,
		Spawner:   w,
		Registry:  w,
		Input:     input,
		Animation: anim,
		Drawer:    drawer,
	}, driver, logger)
	wp.AttachWeapon(player)

	return &scene{world: w, player: player, driver: driver, weapon: wp}, nil
}

// tickDelta returns the duration of one simulation tick.
func tickDelta(conf settings.Settings) float32 {
	return 1 / float32(conf.Simulation.TickRate)
}
