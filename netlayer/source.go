package netlayer

import (
	"github.com/larioandr/pycsmaca/desim"
	"github.com/larioandr/pycsmaca/sampler"
	"github.com/larioandr/pycsmaca/stats"
)

// RandomSource generates AppData at stochastic intervals and sizes, and
// emits them on connection 'network'. Either sampler exhausting stops
// generation for good: no more sends, no more rescheduling.
type RandomSource struct {
	*desim.Base

	sourceID int
	destAddr int
	dataSize sampler.Sampler
	interval sampler.Sampler

	arrivalIntervals *stats.Intervals
	dataSizeStat     *stats.Statistic
	numPacketsSent   int
}

// NewRandomSource constructs the source and immediately schedules its
// first _generate call one interval sample from now.
func NewRandomSource(sim *desim.Scheduler, sourceID, destAddr int, dataSize, interval sampler.Sampler) *RandomSource {
	rs := &RandomSource{sourceID: sourceID, destAddr: destAddr, dataSize: dataSize, interval: interval}
	rs.Base = desim.NewBase(sim, rs)
	rs.arrivalIntervals = stats.NewIntervals(sim.Stime())
	rs.dataSizeStat = stats.NewStatistic()
	rs.scheduleNext()
	return rs
}

func (rs *RandomSource) scheduleNext() {
	iv, ok := rs.interval.Sample()
	if !ok {
		return
	}
	rs.Sim().Schedule(iv, rs.generate)
}

func (rs *RandomSource) generate() {
	size, ok := rs.dataSize.Sample()
	if !ok {
		return
	}

	now := rs.Sim().Stime()
	data := NewAppData(rs.sourceID, rs.destAddr, int(size), now)
	rs.arrivalIntervals.Record(now)
	rs.dataSizeStat.Append(size)
	rs.numPacketsSent++

	if conn := rs.Connections().Get("network"); conn != nil {
		conn.Send(rs.Sim(), data)
	}

	rs.scheduleNext()
}

// NumPacketsSent returns the count of AppData generated so far.
func (rs *RandomSource) NumPacketsSent() int { return rs.numPacketsSent }

// ArrivalIntervals exposes the inter-arrival interval statistic.
func (rs *RandomSource) ArrivalIntervals() *stats.Intervals { return rs.arrivalIntervals }

// DataSizeStat exposes the generated-size statistic.
func (rs *RandomSource) DataSizeStat() *stats.Statistic { return rs.dataSizeStat }
