package trajectory

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ballistics/host"
)

// Request is the immutable input of a single prediction.
type Request struct {
	Origin mgl32.Vec3
	// RightDirection is the lateral axis of the predicting actor. The launch velocity points along it.
	RightDirection mgl32.Vec3
	InitialSpeed   float32
	Acceleration   mgl32.Vec3
	TotalDuration  float32
	StepCount      int
	// Ignore lists actors the collision query skips, usually the actor the prediction starts from.
	Ignore []host.ActorID
}

// TimeStep returns the duration of a single integration step.
func (r Request) TimeStep() float32 {
	if r.StepCount <= 0 {
		return 0
	}
	return r.TotalDuration / float32(r.StepCount)
}

// Segment is one integration step of a predicted path.
type Segment struct {
	Start mgl32.Vec3
	End   mgl32.Vec3
}

// Sample is the ordered list of segments produced by a prediction. It is meant for visualisation only.
type Sample struct {
	Segments []Segment
}

// Len ...
func (s Sample) Len() int {
	return len(s.Segments)
}

// ReflectionEvent describes the single bounce a prediction may contain.
type ReflectionEvent struct {
	PointOfImpact     mgl32.Vec3
	IncomingVelocity  mgl32.Vec3
	SurfaceNormal     mgl32.Vec3
	ReflectedVelocity mgl32.Vec3
	// Step is the zero-based index of the step whose segment hit the surface.
	Step  int
	Actor host.ActorID
}

// Fields returns the event as ordered key/value pairs for logging.
func (e ReflectionEvent) Fields() *orderedmap.OrderedMap[string, any] {
	data := orderedmap.NewOrderedMap[string, any]()
	data.Set("step", e.Step)
	data.Set("actor", e.Actor)
	data.Set("impact", fmtVec(e.PointOfImpact))
	data.Set("normal", fmtVec(e.SurfaceNormal))
	data.Set("incoming", fmtVec(e.IncomingVelocity))
	data.Set("reflected", fmtVec(e.ReflectedVelocity))
	return data
}

// String ...
func (e ReflectionEvent) String() string {
	fields := e.Fields()
	parts := make([]string, 0, fields.Len())
	for el := fields.Front(); el != nil; el = el.Next() {
		parts = append(parts, fmt.Sprintf("%s=%v", el.Key, el.Value))
	}
	return strings.Join(parts, " ")
}

// Result bundles the output of one prediction evaluated through PredictAll.
type Result struct {
	Sample     Sample
	Reflection *ReflectionEvent
	Err        error
}

func fmtVec(v mgl32.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X(), v.Y(), v.Z())
}
