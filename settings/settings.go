package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ballistics/game"
	"github.com/oomph-ac/ballistics/projectile"
	"github.com/oomph-ac/ballistics/trajectory"
	"github.com/oomph-ac/ballistics/weapon"
	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for a run of the ballistics tool.
type Settings struct {
	Log struct {
		// Level is a logrus level name.
		Level string
	}
	Sentry struct {
		// DSN enables error reporting when set.
		DSN         string
		Environment string
	}
	Profiling struct {
		// Address is where statsview listens when PPROF_ENABLED is set.
		Address string
	}
	Projectile ProjectileSettings
	Weapon     WeaponSettings
	Trajectory struct {
		SurfaceOffset float32
	}
	Simulation struct {
		// TickRate is the number of simulation ticks per second.
		TickRate int
		// Duration is how many seconds the fire command simulates for.
		Duration float32
		// Shots is how many projectiles the fire command fires.
		Shots int
	}
	View struct {
		// Scale is the number of world units per terminal cell.
		Scale float32
		// Plane is the world plane the view projects onto: "xy", "xz" or "yz".
		Plane string
	}
	Player      Player
	Scene       []Box
	Predictions []Prediction
}

// ProjectileSettings configure the projectile class fired by the weapon.
type ProjectileSettings struct {
	Class             string
	MaxSpeed          float32
	Lifetime          float32
	ImpulseMultiplier float32
	CollisionRadius   float32
	TrailCapacity     int
	GravityDirection  game.Rotator
	GravityMagnitude  float32
}

// WeaponSettings configure the weapon held by the player.
type WeaponSettings struct {
	ProjectileSpeed     float32
	SpeedStep           float32
	MuzzleOffset        Vec3
	FireAnimation       string
	InitialSpeed        float32
	Gravity             float32
	Precision           int
	LateralAcceleration float32
	DrawDuration        float32
}

// Player is the character holding the weapon.
type Player struct {
	Location    Vec3
	HalfExtents Vec3
	Facing      game.Rotator
	Camera      game.Rotator
}

// Box is an axis-aligned actor of the scene.
type Box struct {
	Name string
	Min  Vec3
	Max  Vec3
	// Dynamic boxes accept impulses.
	Dynamic bool
	Mass    float32
}

// Prediction is a trajectory request evaluated by the predict command.
type Prediction struct {
	Name         string
	Origin       Vec3
	Direction    Vec3
	InitialSpeed float32
	Acceleration Vec3
	Duration     float32
	Steps        int
}

// Vec3 is a vector as written in the settings file.
type Vec3 struct {
	X, Y, Z float32
}

// Vec returns the vector as an mgl32.Vec3.
func (v Vec3) Vec() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// BBox ...
func (b Box) BBox() cube.BBox {
	return cube.Box(b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}

// Request converts the prediction into a trajectory request.
func (p Prediction) Request() trajectory.Request {
	return trajectory.Request{
		Origin:         p.Origin.Vec(),
		RightDirection: p.Direction.Vec(),
		InitialSpeed:   p.InitialSpeed,
		Acceleration:   p.Acceleration.Vec(),
		TotalDuration:  p.Duration,
		StepCount:      p.Steps,
	}
}

// ProjectileConfig returns the projectile class described by the settings.
func (s Settings) ProjectileConfig() projectile.Config {
	conf := projectile.DefaultConfig()
	conf.Class = s.Projectile.Class
	conf.InitialSpeed = s.Weapon.ProjectileSpeed
	conf.MaxSpeed = s.Projectile.MaxSpeed
	conf.Lifetime = s.Projectile.Lifetime
	conf.ImpulseMultiplier = s.Projectile.ImpulseMultiplier
	conf.CollisionRadius = s.Projectile.CollisionRadius
	conf.TrailCapacity = s.Projectile.TrailCapacity
	conf.GravityDirection = s.Projectile.GravityDirection
	conf.GravityMagnitude = s.Projectile.GravityMagnitude
	return conf
}

// WeaponConfig returns the weapon described by the settings. An empty projectile class leaves the weapon
// without one.
func (s Settings) WeaponConfig() weapon.Config {
	conf := weapon.DefaultConfig()
	if s.Projectile.Class == "" {
		conf.Projectile = nil
	} else {
		proj := s.ProjectileConfig()
		conf.Projectile = &proj
	}
	conf.ProjectileSpeed = s.Weapon.ProjectileSpeed
	conf.SpeedStep = s.Weapon.SpeedStep
	conf.MuzzleOffset = s.Weapon.MuzzleOffset.Vec()
	conf.FireAnimation = s.Weapon.FireAnimation
	conf.InitialSpeed = s.Weapon.InitialSpeed
	conf.Gravity = s.Weapon.Gravity
	conf.Precision = s.Weapon.Precision
	conf.LateralAcceleration = s.Weapon.LateralAcceleration
	conf.DrawDuration = s.Weapon.DrawDuration
	conf.SurfaceOffset = s.Trajectory.SurfaceOffset
	return conf
}

// DefaultSettings returns the default settings: the default weapon and projectile, a player standing on a
// floor in front of a wall and a crate, and the reference predictions.
func DefaultSettings() Settings {
	s := Settings{}
	s.Log.Level = "info"
	s.Sentry.Environment = "development"
	s.Profiling.Address = "localhost:18066"

	proj := projectile.DefaultConfig()
	s.Projectile = ProjectileSettings{
		Class:             proj.Class,
		MaxSpeed:          proj.MaxSpeed,
		Lifetime:          proj.Lifetime,
		ImpulseMultiplier: proj.ImpulseMultiplier,
		CollisionRadius:   proj.CollisionRadius,
		TrailCapacity:     proj.TrailCapacity,
		GravityDirection:  proj.GravityDirection,
		GravityMagnitude:  proj.GravityMagnitude,
	}

	wp := weapon.DefaultConfig()
	s.Weapon = WeaponSettings{
		ProjectileSpeed:     wp.ProjectileSpeed,
		SpeedStep:           wp.SpeedStep,
		MuzzleOffset:        Vec3{wp.MuzzleOffset.X(), wp.MuzzleOffset.Y(), wp.MuzzleOffset.Z()},
		InitialSpeed:        wp.InitialSpeed,
		Gravity:             wp.Gravity,
		Precision:           wp.Precision,
		LateralAcceleration: wp.LateralAcceleration,
		DrawDuration:        wp.DrawDuration,
	}
	s.Trajectory.SurfaceOffset = trajectory.DefaultSurfaceOffset

	s.Simulation.TickRate = 60
	s.Simulation.Duration = proj.Lifetime
	s.Simulation.Shots = 1

	s.View.Scale = 100
	s.View.Plane = "yz"

	s.Player = Player{
		Location:    Vec3{0, 0, 100},
		HalfExtents: Vec3{35, 35, 90},
		Camera:      game.Rotator{Yaw: 90},
	}
	s.Scene = []Box{
		{Name: "floor", Min: Vec3{-5000, -5000, -100}, Max: Vec3{5000, 5000, 0}},
		{Name: "wall", Min: Vec3{-500, 3000, 0}, Max: Vec3{500, 3100, 1000}},
		{Name: "crate", Min: Vec3{-50, 1500, 0}, Max: Vec3{50, 1600, 100}, Dynamic: true, Mass: 100},
	}
	s.Predictions = []Prediction{
		{
			Name:         "lob",
			Origin:       Vec3{0, 0, 1000},
			Direction:    Vec3{0, 1, 0},
			InitialSpeed: 500,
			Acceleration: Vec3{0, 0, -game.StandardGravity},
			Duration:     1,
			Steps:        10,
		},
		{
			Name:         "bounce",
			Origin:       Vec3{0, 0, 100},
			Direction:    Vec3{0, 1, 0},
			InitialSpeed: wp.InitialSpeed,
			Acceleration: Vec3{0, 0, wp.Gravity},
			Duration:     wp.DrawDuration,
			Steps:        wp.Precision,
		},
		{
			Name:         "drift",
			Origin:       Vec3{0, 0, 100},
			Direction:    Vec3{0, 1, 0},
			InitialSpeed: wp.InitialSpeed,
			Acceleration: Vec3{-wp.LateralAcceleration, 0, wp.Gravity},
			Duration:     wp.DrawDuration,
			Steps:        wp.Precision,
		},
	}
	return s
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %v", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %v", err)
	}

	var settings Settings
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %v", err)
	}
	return settings, nil
}
