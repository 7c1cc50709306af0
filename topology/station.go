package topology

import (
	"github.com/larioandr/pycsmaca/desim"
	"github.com/larioandr/pycsmaca/link"
	"github.com/larioandr/pycsmaca/netlayer"
	"github.com/larioandr/pycsmaca/sampler"
)

// Station groups one NetworkService/NetworkSwitch pair, an optional
// RandomSource, a Sink, and one Queue+Interface per neighboring station —
// the composer-level unit wireless_networks.py calls a "station",
// stripped down to the wired case (no radio, no collision domain).
type Station struct {
	*desim.Base

	Name    string
	Address int

	Service *netlayer.NetworkService
	Switch  *netlayer.NetworkSwitch
	Source  *netlayer.RandomSource // nil when this station has no active traffic
	Sink    *netlayer.Sink

	ifaceByPeer map[*Station]*link.Interface
	queueByPeer map[*Station]*link.Queue
}

// NewStation builds a station at address addr. If active, an AppData
// source is wired toward destAddr using the given size/interval samplers.
func NewStation(sim *desim.Scheduler, name string, addr int, active bool, destAddr int, dataSize, interval sampler.Sampler) *Station {
	sta := &Station{Name: name, Address: addr,
		ifaceByPeer: make(map[*Station]*link.Interface),
		queueByPeer: make(map[*Station]*link.Queue),
	}
	sta.Base = desim.NewBase(sim, sta)
	sta.SetName(name)

	sta.Service = netlayer.NewNetworkService(sim)
	sta.Switch = netlayer.NewNetworkSwitch(sim, netlayer.NewSwitchTable())
	sta.Sink = netlayer.NewSink(sim)

	sta.Switch.Connections().Set("user", sta.Service, true, "network")
	sta.Service.Connections().Set("sink", sta.Sink, true, "service")
	sta.Switch.RegisterLocalAddress(addr)

	sta.AddChild("service", sta.Service)
	sta.AddChild("switch", sta.Switch)
	sta.AddChild("sink", sta.Sink)

	if active {
		sta.Source = netlayer.NewRandomSource(sim, addr, destAddr, dataSize, interval)
		sta.Source.Connections().Set("network", sta.Service, true, "source")
		sta.AddChild("source", sta.Source)
	}
	return sta
}

// WireTo builds this station's local half of a link toward neighbor: a
// fresh Queue+Interface pair at ifaceAddr. The caller (the topology
// composer) still has to connect the returned Interface's 'peer'
// connection to the neighbor's own Interface and set its delay.
func (sta *Station) WireTo(neighbor *Station, ifaceAddr int, bitrate float64, headerSize int, preamble, ifs float64) *link.Interface {
	sim := sta.Sim()
	q := link.NewQueue(sim, link.Unbounded)
	ifc := link.NewInterface(sim, ifaceAddr, bitrate, headerSize, preamble, ifs)
	q.SetAddress(ifaceAddr)

	ifc.Connections().Set("queue", q, true, "service")

	connName := "to_" + neighbor.Name
	sta.Switch.Connections().Set(connName, q, true, "switch")
	ifc.Connections().Set("up", sta.Switch, true, "from_"+neighbor.Name)

	sta.ifaceByPeer[neighbor] = ifc
	sta.queueByPeer[neighbor] = q
	sta.AddChild(connName, ifc)

	return ifc
}

// GetInterfaceTo returns the interface wired toward neighbor, or nil.
func (sta *Station) GetInterfaceTo(neighbor *Station) *link.Interface {
	return sta.ifaceByPeer[neighbor]
}

// GetQueueTo returns the egress queue wired toward neighbor, or nil.
func (sta *Station) GetQueueTo(neighbor *Station) *link.Queue {
	return sta.queueByPeer[neighbor]
}
