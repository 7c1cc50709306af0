package netlayer

import (
	"github.com/larioandr/pycsmaca/desim"
	"github.com/larioandr/pycsmaca/stats"
)

// Sink is the terminus of the application layer: it accepts AppData,
// counts it, and records end-to-end delay as the gap between the
// scheduler clock at arrival and the AppData's CreatedAt stamp. The
// stamp is set by whoever builds the AppData (RandomSource uses its
// generation time); Sink only consumes it.
type Sink struct {
	*desim.Base

	numPacketsReceived int
	delayVector        *stats.Statistic
}

// NewSink builds an empty Sink.
func NewSink(sim *desim.Scheduler) *Sink {
	s := &Sink{delayVector: stats.NewStatistic()}
	s.Base = desim.NewBase(sim, s)
	return s
}

// HandleMessage accepts AppData on any inbound connection; anything else
// is a programmer error in the composer's wiring.
func (s *Sink) HandleMessage(msg interface{}, conn *desim.Connection, sender desim.Module) {
	data, ok := msg.(*AppData)
	if !ok {
		panic("Sink: expected AppData")
	}
	s.numPacketsReceived++
	s.delayVector.Append(s.Sim().Stime() - data.CreatedAt())
}

// NumPacketsReceived returns the count of AppData delivered so far.
func (s *Sink) NumPacketsReceived() int { return s.numPacketsReceived }

// DelayVector exposes the end-to-end delay statistic.
func (s *Sink) DelayVector() *stats.Statistic { return s.delayVector }
