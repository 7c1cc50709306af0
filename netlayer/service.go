package netlayer

import "github.com/larioandr/pycsmaca/desim"

// NetworkService encapsulates AppData heading downward into a
// NetworkPacket, and decapsulates heading upward. It holds no state of
// its own. A message of the wrong type on 'source' (not AppData) or on
// 'network' (not NetworkPacket) panics; messages on any other connection
// are ignored silently.
type NetworkService struct {
	*desim.Base
}

// NewNetworkService builds a NetworkService.
func NewNetworkService(sim *desim.Scheduler) *NetworkService {
	ns := &NetworkService{}
	ns.Base = desim.NewBase(sim, ns)
	return ns
}

func (ns *NetworkService) HandleMessage(msg interface{}, conn *desim.Connection, sender desim.Module) {
	switch conn {
	case ns.Connections().Get("source"):
		data, ok := msg.(*AppData)
		if !ok {
			panic("NetworkService: expected AppData from 'source'")
		}
		pkt := NewNetworkPacket(data.DestAddr(), data)
		if out := ns.Connections().Get("network"); out != nil {
			out.Send(ns.Sim(), pkt)
		}
	case ns.Connections().Get("network"):
		pkt, ok := msg.(*NetworkPacket)
		if !ok {
			panic("NetworkService: expected NetworkPacket from 'network'")
		}
		if out := ns.Connections().Get("sink"); out != nil {
			out.Send(ns.Sim(), pkt.Data)
		}
	default:
		// unrecognized connection: ignore silently, matching observed behavior
	}
}
