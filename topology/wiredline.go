package topology

import (
	"github.com/larioandr/pycsmaca/desim"
	"github.com/larioandr/pycsmaca/sampler"
)

// WiredLineNetwork is the wired counterpart of
// WirelessHalfDuplexLineNetwork: N stations in a row, each consecutive
// pair joined by a full-duplex Interface+Queue link with propagation
// delay distance/speedOfLight, every station's SwitchTable routing
// hop-by-hop toward the last station's address.
type WiredLineNetwork struct {
	*desim.Base

	Stations []*Station
}

// LineParams is the composer-provided configuration, mirroring the
// keyword params the original WiredLineNetwork test passes through
// simulate()'s params argument.
type LineParams struct {
	NumStations   int
	Bitrate       float64
	HeaderSize    int
	Preamble      float64
	IFS           float64
	Distance      float64
	SpeedOfLight  float64
	DataSize      sampler.Sampler
	Interval      sampler.Sampler
	ActiveSources []int // station indices that generate traffic toward the last station
}

// NewWiredLineNetwork builds and wires the full topology. Every active
// source's destination address is the last station's address; every
// switch's table except the last station's carries exactly the one route
// needed to move traffic toward it, hop by hop (the last station delivers
// locally and has no route).
func NewWiredLineNetwork(sim *desim.Scheduler, p LineParams) *WiredLineNetwork {
	net := &WiredLineNetwork{}
	net.Base = desim.NewBase(sim, net)

	lastAddr := p.NumStations - 1
	active := make(map[int]struct{}, len(p.ActiveSources))
	for _, i := range p.ActiveSources {
		active[i] = struct{}{}
	}

	stations := make([]*Station, p.NumStations)
	for i := 0; i < p.NumStations; i++ {
		_, isActive := active[i]
		name := stationName(i)
		stations[i] = NewStation(sim, name, i, isActive, lastAddr, p.DataSize, p.Interval)
		net.AddChild(name, stations[i])
	}

	propDelay := 0.0
	if p.SpeedOfLight != 0 {
		propDelay = p.Distance / p.SpeedOfLight
	}

	for i := 0; i < p.NumStations-1; i++ {
		a, b := stations[i], stations[i+1]
		ifcA := a.WireTo(b, linkAddr(i, i+1), p.Bitrate, p.HeaderSize, p.Preamble, p.IFS)
		ifcB := b.WireTo(a, linkAddr(i+1, i), p.Bitrate, p.HeaderSize, p.Preamble, p.IFS)

		peerAB := ifcA.Connections().Set("peer", ifcB, true, "peer")
		peerAB.SetDelay(propDelay)
		peerAB.Reverse().SetDelay(propDelay)

		// Station i routes toward lastAddr via its "to_<next>"
		// connection, one hop closer.
		a.Switch.Table().Add(lastAddr, "to_"+b.Name, ifcB.Address())
	}

	// Every station except the last now holds exactly one route, toward
	// lastAddr via its next neighbor; that single entry serves both its
	// own originated traffic and anything it forwards.
	net.Stations = stations
	return net
}

func stationName(i int) string {
	if i == 0 {
		return "sta0"
	}
	return "sta" + itoa(i)
}

func linkAddr(from, to int) int {
	return from*1000 + to
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := []byte{}
	n := i
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
