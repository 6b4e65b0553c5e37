package main

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/ballistics/settings"
	"github.com/sirupsen/logrus"
)

// runFire fires the configured number of shots from the player and simulates them until every projectile
// is gone or the configured duration has passed.
func runFire(conf settings.Settings, logger logrus.FieldLogger) error {
	s, err := newScene(conf, logger, nil, montageLogger{log: logger}, nil)
	if err != nil {
		return err
	}

	for shot := range conf.Simulation.Shots {
		if b, _ := s.weapon.Fire(); b == nil {
			logger.WithField("shot", shot).Warn("weapon did not fire")
		}
	}

	dt := tickDelta(conf)
	ticks := int(math32.Ceil(conf.Simulation.Duration / dt))
	tick := 0
	for ; tick < ticks && s.driver.Len() > 0; tick++ {
		s.driver.Tick(dt)
	}

	for _, a := range s.world.Actors() {
		if a.Hits == 0 {
			continue
		}
		logger.WithFields(logrus.Fields{
			"actor":    a.Name,
			"hits":     a.Hits,
			"impulse":  a.Impulse,
			"velocity": a.Velocity,
		}).Info("actor hit")
	}
	logger.WithFields(logrus.Fields{
		"ticks": tick,
		"live":  s.driver.Len(),
	}).Info("simulation finished")
	return nil
}
