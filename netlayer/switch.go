package netlayer

import "github.com/larioandr/pycsmaca/desim"

// Addressable is the capability a link-layer module registers with a
// NetworkSwitch so the switch can stamp egress addresses without
// reflecting over connected peers (the REDESIGN FLAG replacement for
// duck-typed `hasattr(module, 'address')` discovery).
type Addressable interface {
	Address() int
}

// NetworkSwitch performs static routing via a SwitchTable, assigns
// source addresses and monotonic per-destination SSNs to
// locally-originated packets, and drops stale duplicates.
type NetworkSwitch struct {
	*desim.Base

	table      *SwitchTable
	localAddrs map[int]struct{}

	// ssns is intentionally the SAME map used both for the inbound
	// stale-duplicate high-water mark (keyed by src_addr) and for
	// outbound SSN assignment on user-originated packets (keyed by
	// dst_addr). This mirrors the observed source behavior exactly,
	// latent bug and all: see the design notes on source-vs-dest key
	// collisions.
	ssns map[int]int
}

// NewNetworkSwitch builds a switch routing through table.
func NewNetworkSwitch(sim *desim.Scheduler, table *SwitchTable) *NetworkSwitch {
	sw := &NetworkSwitch{table: table, localAddrs: make(map[int]struct{}), ssns: make(map[int]int)}
	sw.Base = desim.NewBase(sim, sw)
	return sw
}

// RegisterLocalAddress tells the switch that addr is reachable via the
// 'user' connection — the explicit capability registration replacing
// scanning connected peers for an address attribute.
func (sw *NetworkSwitch) RegisterLocalAddress(addr int) {
	sw.localAddrs[addr] = struct{}{}
}

// Table returns the switch's routing table.
func (sw *NetworkSwitch) Table() *SwitchTable { return sw.table }

func (sw *NetworkSwitch) HandleMessage(msg interface{}, conn *desim.Connection, sender desim.Module) {
	pkt, ok := msg.(*NetworkPacket)
	if !ok {
		panic("NetworkSwitch: expected NetworkPacket")
	}

	// 1. Stale-duplicate filter.
	if pkt.SrcAddr != nil {
		if pkt.SSN == nil {
			panic("NetworkSwitch: packet has src_addr set but no ssn")
		}
		recorded, seen := sw.ssns[*pkt.SrcAddr]
		if seen {
			if *pkt.SSN <= recorded {
				return // stale duplicate, drop silently
			}
		}
		sw.ssns[*pkt.SrcAddr] = *pkt.SSN
	}

	// 2. Local delivery.
	if _, local := sw.localAddrs[pkt.DstAddr]; local {
		if user := sw.Connections().Get("user"); user != nil {
			user.Send(sw.Sim(), pkt)
		}
		return
	}

	// 3. Route lookup.
	link, routed := sw.table.Get(pkt.DstAddr)
	if !routed {
		return // unroutable destination, drop silently
	}
	egressConn := sw.Connections().Get(link.ConnectionName)
	if egressConn == nil {
		return // route points at an unwired connection, drop silently
	}
	egress, addressable := egressConn.Peer().(Addressable)
	if !addressable {
		panic("NetworkSwitch: egress connection peer is not Addressable")
	}

	// 4. Address & SSN assignment.
	if conn == sw.Connections().Get("user") {
		addr := egress.Address()
		pkt.SrcAddr = &addr
		// Keyed by dst_addr, sharing the same map as the inbound
		// filter above — preserved as observed, not split into two maps.
		assigned := sw.ssns[pkt.DstAddr]
		sw.ssns[pkt.DstAddr] = assigned + 1
		ssn := assigned
		pkt.SSN = &ssn
	} else if pkt.SrcAddr == nil || pkt.SSN == nil {
		panic("NetworkSwitch: forwarded packet missing src_addr/ssn")
	}

	// 5. Egress stamping.
	nextHop := link.NextHop
	pkt.RcvAddr = &nextHop
	sndAddr := egress.Address()
	pkt.SndAddr = &sndAddr
	egressConn.Send(sw.Sim(), pkt)
}
