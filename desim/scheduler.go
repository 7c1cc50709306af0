package desim

import "container/heap"

// event is a single scheduled callback. Ties on time break on seq, the
// monotonic insertion counter, giving deterministic FIFO replay.
type event struct {
	time float64
	seq  uint64
	fn   func()
}

type eventHeap []*event

func (h eventHeap) Len() int { return len(h) }
func (h eventHeap) Less(i, j int) bool {
	if h[i].time != h[j].time {
		return h[i].time < h[j].time
	}
	return h[i].seq < h[j].seq
}
func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x interface{}) {
	*h = append(*h, x.(*event))
}
func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// Scheduler is the single-threaded, cooperative event-driven core. It holds
// a min-heap of pending events ordered by (time, insertion sequence) and
// advances its logical clock strictly forward as it drains them.
type Scheduler struct {
	heap       eventHeap
	seq        uint64
	stime      float64
	stimeLimit float64
	params     interface{}
	logger     Logger
}

// NewScheduler builds a scheduler with the given free-form composer params
// and an injected logger (NopLogger if logger is nil).
func NewScheduler(params interface{}, logger Logger) *Scheduler {
	if logger == nil {
		logger = NopLogger
	}
	return &Scheduler{params: params, logger: logger}
}

// Stime returns the scheduler's current logical clock.
func (s *Scheduler) Stime() float64 { return s.stime }

// Params returns the free-form composer-provided configuration.
func (s *Scheduler) Params() interface{} { return s.params }

// Logger returns the injected logger.
func (s *Scheduler) Logger() Logger { return s.logger }

// Schedule inserts fn to run at stime+delay. Negative delay is a
// programmer error: a scheduled event's timestamp must never precede the
// clock at the moment of scheduling.
func (s *Scheduler) Schedule(delay float64, fn func()) {
	if delay < 0 {
		panic("desim: negative schedule delay")
	}
	s.seq++
	heap.Push(&s.heap, &event{time: s.stime + delay, seq: s.seq, fn: fn})
}

// Run drains the event heap, advancing stime to each event's timestamp
// before invoking it, until the heap empties or stime would exceed
// stimeLimit. Events with time == stimeLimit still fire. A panic raised by
// a callback is reported through the logger and then re-raised.
func (s *Scheduler) Run(stimeLimit float64) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorf("desim: callback panicked at stime %v: %v", s.stime, r)
			panic(r)
		}
	}()
	s.stimeLimit = stimeLimit
	for s.heap.Len() > 0 {
		next := s.heap[0]
		if next.time > stimeLimit {
			break
		}
		heap.Pop(&s.heap)
		s.stime = next.time
		next.fn()
	}
	if s.stime < stimeLimit {
		s.stime = stimeLimit
	}
}
