package stats

// Point is a single (time, value) sample of a Trace.
type Point struct {
	Time  float64
	Value float64
}

// Trace records a time-value step function: each call to Record marks a
// new value that holds until the next recorded point. Mean is the plain
// arithmetic mean of recorded values; TimeAvg is the time-weighted
// average over the recorded span, which is what callers actually want
// for occupancy-style traces (e.g. a queue's size_trace).
type Trace struct {
	points []Point
}

// NewTrace returns an empty trace.
func NewTrace() *Trace {
	return &Trace{}
}

// Record appends (time, value). Callers are expected to record a (stime, 0)
// point at construction time of whatever they're tracing.
func (t *Trace) Record(time, value float64) {
	t.points = append(t.points, Point{Time: time, Value: value})
}

// AsTuple returns a copy of the recorded points in recording order.
func (t *Trace) AsTuple() []Point {
	out := make([]Point, len(t.points))
	copy(out, t.points)
	return out
}

// Len returns the number of recorded points.
func (t *Trace) Len() int { return len(t.points) }

// Mean returns the arithmetic mean of recorded values.
func (t *Trace) Mean() float64 {
	if len(t.points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range t.points {
		sum += p.Value
	}
	return sum / float64(len(t.points))
}

// TimeAvg returns the time-weighted average of the recorded step
// function, integrating each value over the interval until the next
// recorded point. The last point has no following interval and so
// contributes no weight (the trace has no defined end time without a
// final point).
func (t *Trace) TimeAvg() float64 {
	if len(t.points) < 2 {
		return 0
	}
	var weighted, span float64
	for i := 0; i < len(t.points)-1; i++ {
		dt := t.points[i+1].Time - t.points[i].Time
		weighted += t.points[i].Value * dt
		span += dt
	}
	if span == 0 {
		return 0
	}
	return weighted / span
}
