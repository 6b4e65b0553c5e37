package trajectory

import (
	"strconv"
	"sync"

	"github.com/chewxy/math32"
	"github.com/getsentry/sentry-go"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ballistics/game"
	"github.com/oomph-ac/ballistics/host"
	"github.com/oomph-ac/ballistics/internal"
	"github.com/oomph-ac/ballistics/oerror"
	"github.com/oomph-ac/ballistics/worker"
	"github.com/sirupsen/logrus"
)

// DefaultSurfaceOffset is how far along the surface normal a reflected path restarts from the impact
// point, so the next segment does not immediately hit the same surface again.
const DefaultSurfaceOffset = float32(10)

// maxPreallocatedSegments bounds the segments reserved up front. Longer samples grow as they are built.
const maxPreallocatedSegments = 4096

// Options configure a Predictor.
type Options struct {
	// SurfaceOffset overrides DefaultSurfaceOffset when positive.
	SurfaceOffset float32
	Logger        logrus.FieldLogger
}

// phase is the state of a single prediction call.
type phase uint8

const (
	phaseAwaitingReflection phase = iota
	phaseReflectionConsumed
)

// Predictor integrates projectile paths against the host scene. It holds no state across calls; a single
// Predictor may serve concurrent calls as long as its Tracer is safe for concurrent use.
type Predictor struct {
	tracer host.Tracer
	offset float32
	log    logrus.FieldLogger
}

// NewPredictor returns a Predictor issuing its collision queries to tracer.
func NewPredictor(tracer host.Tracer, opts Options) *Predictor {
	p := &Predictor{
		tracer: tracer,
		offset: DefaultSurfaceOffset,
		log:    opts.Logger,
	}
	if opts.SurfaceOffset > 0 {
		p.offset = opts.SurfaceOffset
	}
	if p.log == nil {
		p.log = internal.DiscardLogger()
	}
	return p
}

// SurfaceOffset returns the distance a reflected path restarts from the surface it hit.
func (p *Predictor) SurfaceOffset() float32 {
	return p.offset
}

// Predict integrates the path described by req with fixed Euler steps. Every step first adds
// acceleration*dt to the velocity, then advances by velocity*dt + 0.5*acceleration*dt^2. Each segment is
// recorded before it is traced against the scene. The first hit reflects the velocity about the surface
// normal and moves the path to the impact point offset along the normal; later hits are ignored and the
// path passes through them. Failing collision queries count as misses.
//
// Requests with a non-positive step count, duration or initial speed are rejected with an error matching
// oerror.ErrInvalidArgument before anything is computed.
func (p *Predictor) Predict(req Request) (Sample, *ReflectionEvent, error) {
	if err := validate(req); err != nil {
		return Sample{}, nil, err
	}

	var (
		dt         = req.TimeStep()
		halfAccel  = req.Acceleration.Mul(0.5 * dt * dt)
		velocity   = req.RightDirection.Mul(req.InitialSpeed)
		position   = req.Origin
		state      = phaseAwaitingReflection
		reflection *ReflectionEvent
		sample     = Sample{Segments: make([]Segment, 0, min(req.StepCount, maxPreallocatedSegments))}
	)

	for step := range req.StepCount {
		velocity = velocity.Add(req.Acceleration.Mul(dt))
		next := position.Add(velocity.Mul(dt)).Add(halfAccel)
		sample.Segments = append(sample.Segments, Segment{Start: position, End: next})

		hit, ok := p.trace(position, next, req.Ignore, step)
		if ok && state == phaseAwaitingReflection {
			normal := game.SafeNormalize(hit.Normal)
			reflected := game.Reflect(velocity, normal)
			reflection = &ReflectionEvent{
				PointOfImpact:     hit.Point,
				IncomingVelocity:  velocity,
				SurfaceNormal:     normal,
				ReflectedVelocity: reflected,
				Step:              step,
				Actor:             hit.Actor,
			}
			velocity = reflected
			position = hit.Point.Add(normal.Mul(p.offset))
			state = phaseReflectionConsumed

			p.log.WithField("reflection", reflection.String()).Debug("predicted path reflected")
			continue
		}
		position = next
	}
	return sample, reflection, nil
}

// PredictAll evaluates independent requests on the worker pool and returns their results in request
// order. It must not be called from a worker job.
func (p *Predictor) PredictAll(reqs []Request) []Result {
	results := make([]Result, len(reqs))

	var wg sync.WaitGroup
	wg.Add(len(reqs))
	for i, req := range reqs {
		worker.Submit(func() {
			defer wg.Done()
			sample, reflection, err := p.Predict(req)
			results[i] = Result{Sample: sample, Reflection: reflection, Err: err}
		})
	}
	wg.Wait()
	return results
}

// trace runs the collision query for one step. Errors and panics from the host are logged, reported and
// treated as a miss.
func (p *Predictor) trace(start, end mgl32.Vec3, ignore []host.ActorID, step int) (hit host.HitResult, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			p.reportFailure(oerror.HostQueryFailure("line trace panicked: %v", r), step)
			hit, ok = host.HitResult{}, false
		}
	}()

	hit, ok, err := p.tracer.LineTrace(start, end, ignore)
	if err != nil {
		p.reportFailure(oerror.HostQueryFailure("line trace: %v", err), step)
		return host.HitResult{}, false
	}
	return hit, ok
}

func (p *Predictor) reportFailure(err error, step int) {
	p.log.WithFields(logrus.Fields{
		"step":  step,
		"error": err,
	}).Warn("collision query failed, treating step as a miss")

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("component", "trajectory")
		scope.SetTag("step", strconv.Itoa(step))
	})
	hub.CaptureException(err)
}

func validate(req Request) error {
	switch {
	case req.StepCount <= 0:
		return oerror.InvalidArgument("step count must be positive, got %d", req.StepCount)
	case !(req.TotalDuration > 0) || math32.IsInf(req.TotalDuration, 0):
		return oerror.InvalidArgument("total duration must be positive and finite, got %v", req.TotalDuration)
	case !(req.InitialSpeed > 0) || math32.IsInf(req.InitialSpeed, 0):
		return oerror.InvalidArgument("initial speed must be positive and finite, got %v", req.InitialSpeed)
	case !game.Vec3Finite(req.Origin) || !game.Vec3Finite(req.RightDirection) || !game.Vec3Finite(req.Acceleration):
		return oerror.InvalidArgument("origin, direction and acceleration must be finite")
	}
	return nil
}
