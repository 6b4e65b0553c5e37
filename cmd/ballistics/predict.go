package main

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/ballistics/host"
	"github.com/oomph-ac/ballistics/settings"
	"github.com/oomph-ac/ballistics/trajectory"
	"github.com/sirupsen/logrus"
)

// runPredict evaluates every configured prediction in parallel, then the weapon's own prediction from the
// player, and logs the outcome of each.
func runPredict(conf settings.Settings, logger logrus.FieldLogger) error {
	s, err := newScene(conf, logger, nil, nil, nil)
	if err != nil {
		return err
	}

	p := trajectory.NewPredictor(s.world, trajectory.Options{
		SurfaceOffset: conf.Trajectory.SurfaceOffset,
		Logger:        logger,
	})
	reqs := make([]trajectory.Request, len(conf.Predictions))
	for i, pr := range conf.Predictions {
		reqs[i] = pr.Request()
		reqs[i].Ignore = []host.ActorID{s.player}
	}
	for i, res := range p.PredictAll(reqs) {
		logPrediction(logger.WithField("prediction", conf.Predictions[i].Name), res)
	}

	sample, reflection, err := s.weapon.DrawLine()
	logPrediction(logger.WithField("prediction", "weapon"), trajectory.Result{
		Sample:     sample,
		Reflection: reflection,
		Err:        err,
	})
	return nil
}

func logPrediction(entry *logrus.Entry, res trajectory.Result) {
	if res.Err != nil {
		entry.WithField("error", res.Err).Error("prediction rejected")
		return
	}
	entry = entry.WithField("segments", res.Sample.Len())
	if n := res.Sample.Len(); n > 0 {
		entry = entry.WithField("end", res.Sample.Segments[n-1].End)
	}
	if res.Reflection == nil {
		entry.Info("prediction complete without reflection")
		return
	}
	entry.WithFields(fields(res.Reflection.Fields())).Info("prediction complete")
}

// fields converts ordered log fields into logrus fields.
func fields(m *orderedmap.OrderedMap[string, any]) logrus.Fields {
	f := make(logrus.Fields, m.Len())
	for el := m.Front(); el != nil; el = el.Next() {
		f[el.Key] = el.Value
	}
	return f
}
