package sampler

// Sampler replaces the "numeric constant, nullary callable, or finite
// sequence" duck typing used for data sizes and intervals: a single
// typed operation that either yields the next value or reports its
// stream exhausted.
type Sampler interface {
	// Sample returns the next value and true, or (0, false) once the
	// underlying stream is exhausted.
	Sample() (float64, bool)
}

type constantSampler struct{ v float64 }

// Constant returns a Sampler that always yields v and never exhausts.
func Constant(v float64) Sampler { return constantSampler{v: v} }

func (c constantSampler) Sample() (float64, bool) { return c.v, true }

type callableSampler struct{ fn func() float64 }

// Callable wraps a generator function as a Sampler that never exhausts.
func Callable(fn func() float64) Sampler { return callableSampler{fn: fn} }

func (c callableSampler) Sample() (float64, bool) { return c.fn(), true }

type sequenceSampler struct {
	values []float64
	next   int
}

// Sequence returns a Sampler that yields values in order and reports
// exhaustion once drained — the typed replacement for a finite iterable
// data-size or interval source.
func Sequence(values []float64) Sampler {
	cp := make([]float64, len(values))
	copy(cp, values)
	return &sequenceSampler{values: cp}
}

func (s *sequenceSampler) Sample() (float64, bool) {
	if s.next >= len(s.values) {
		return 0, false
	}
	v := s.values[s.next]
	s.next++
	return v, true
}
