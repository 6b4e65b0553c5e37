package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/oomph-ac/ballistics/host"
	"github.com/oomph-ac/ballistics/render"
	"github.com/oomph-ac/ballistics/settings"
	"github.com/oomph-ac/ballistics/trajectory"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// errQuit is returned by the event loop when the user asks to leave the view.
var errQuit = errors.New("quit")

// action is a request from the event loop to the tick loop, which owns the scene.
type action uint8

const (
	actionFire action = iota
	actionSpeed
	actionNextPrediction
)

// terminalView runs a scene interactively in the terminal.
type terminalView struct {
	conf   settings.Settings
	screen tcell.Screen
	view   render.View
	canvas *render.Canvas
	keys   *keyboard
	scene  *scene
	log    logrus.FieldLogger

	fireAction string
	predictor  *trajectory.Predictor
	requests   []trajectory.Request
	// selected is the index of the configured prediction drawn, or -1.
	selected int

	actions chan action
}

func runView(ctx context.Context, conf settings.Settings, logger logrus.FieldLogger) error {
	keys := newKeyboard()
	canvas := &render.Canvas{}
	s, err := newScene(conf, logger, keys, montageLogger{log: logger}, canvas)
	if err != nil {
		return err
	}
	player, _ := s.world.Actor(s.player)
	view, err := render.NewView(conf.View.Plane, player.Location(), conf.View.Scale)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	v := &terminalView{
		conf:       conf,
		screen:     screen,
		view:       view,
		canvas:     canvas,
		keys:       keys,
		scene:      s,
		log:        logger,
		fireAction: conf.WeaponConfig().FireAction,
		predictor: trajectory.NewPredictor(s.world, trajectory.Options{
			SurfaceOffset: conf.Trajectory.SurfaceOffset,
			Logger:        logger,
		}),
		selected: -1,
		actions:  make(chan action, 16),
	}
	for _, p := range conf.Predictions {
		req := p.Request()
		req.Ignore = []host.ActorID{s.player}
		v.requests = append(v.requests, req)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		// Finalising the screen unblocks PollEvent.
		screen.Fini()
		return nil
	})
	g.Go(v.pollEvents)
	g.Go(func() error {
		return v.tickLoop(gctx)
	})

	err = g.Wait()
	s.weapon.EndPlay()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollEvents translates terminal events into key presses and actions until the screen is finalised.
func (v *terminalView) pollEvents() error {
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return errQuit
			}
			if ev.Key() != tcell.KeyRune {
				continue
			}
			switch ev.Rune() {
			case 'q':
				return errQuit
			case '1':
				v.keys.Press(host.KeyOne)
				v.send(actionSpeed)
			case '2':
				v.keys.Press(host.KeyTwo)
				v.send(actionSpeed)
			case '4':
				v.keys.Press(host.KeyFour)
			case '5':
				v.keys.Press(host.KeyFive)
			case ' ':
				v.send(actionFire)
			case 'p':
				v.send(actionNextPrediction)
			}
		case *tcell.EventResize:
			v.screen.Sync()
		}
	}
}

// send queues a for the tick loop, dropping it if the tick loop is behind.
func (v *terminalView) send(a action) {
	select {
	case v.actions <- a:
	default:
	}
}

func (v *terminalView) tickLoop(ctx context.Context) error {
	dt := tickDelta(v.conf)
	ticker := time.NewTicker(time.Duration(float64(dt) * float64(time.Second)))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case a := <-v.actions:
			v.handle(a)
		case <-ticker.C:
			v.scene.driver.Tick(dt)
			v.draw()
		}
	}
}

func (v *terminalView) handle(a action) {
	switch a {
	case actionFire:
		if !v.keys.Trigger(v.fireAction) {
			v.log.Debug("fire action is not bound")
		}
	case actionSpeed:
		v.scene.weapon.AdjustProjectileSpeed()
	case actionNextPrediction:
		v.selected++
		if v.selected >= len(v.requests) {
			v.selected = -1
		}
	}
}

func (v *terminalView) draw() {
	v.screen.Clear()

	v.view.DrawActors(v.screen, v.scene.world.Actors())
	if _, _, err := v.scene.weapon.DrawLine(); err != nil {
		v.log.WithField("error", err).Warn("weapon prediction failed")
	}
	v.canvas.Flush(v.screen, v.view)
	for _, b := range v.scene.driver.Bodies() {
		v.view.DrawTrail(v.screen, b.Trail())
	}

	prediction := "none"
	if v.selected >= 0 {
		prediction = v.conf.Predictions[v.selected].Name
		sample, reflection, err := v.predictor.Predict(v.requests[v.selected])
		if err != nil {
			prediction += " (" + err.Error() + ")"
		}
		v.view.DrawSample(v.screen, sample)
		v.view.DrawReflection(v.screen, reflection)
	}

	render.DrawText(v.screen,
		fmt.Sprintf("speed %.0f  projectiles %d  prediction %s", v.scene.weapon.ProjectileSpeed(), v.scene.driver.Len(), prediction),
		"space fire  1/2 speed  4/5 drift  p prediction  q quit",
	)
	v.screen.Show()
}
