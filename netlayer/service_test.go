package netlayer

import (
	"testing"

	"github.com/larioandr/pycsmaca/desim"
	"github.com/stretchr/testify/require"
)

// Testable property #6: round-trip through NetworkService.
func TestNetworkService_EncapsulatesFromSource(t *testing.T) {
	sim := desim.NewScheduler(nil, nil)
	ns := NewNetworkService(sim)
	network := newRecvSpy(sim)
	ns.Connections().Set("source", newRecvSpy(sim), true, "service")
	ns.Connections().Set("network", network, true, "service")

	sourceConn := ns.Connections().Get("source")
	data := NewAppData(1, 5, 20, 0)
	ns.HandleMessage(data, sourceConn, nil)
	sim.Run(0)

	require.Len(t, network.received, 1)
	pkt := network.received[0].(*NetworkPacket)
	require.Equal(t, 5, pkt.DstAddr)
	require.Same(t, data, pkt.Data)
}

func TestNetworkService_DecapsulatesToSink(t *testing.T) {
	sim := desim.NewScheduler(nil, nil)
	ns := NewNetworkService(sim)
	sink := newRecvSpy(sim)
	ns.Connections().Set("network", newRecvSpy(sim), true, "service")
	ns.Connections().Set("sink", sink, true, "service")

	networkConn := ns.Connections().Get("network")
	data := NewAppData(1, 5, 20, 0)
	pkt := NewNetworkPacket(5, data)
	ns.HandleMessage(pkt, networkConn, nil)
	sim.Run(0)

	require.Len(t, sink.received, 1)
	require.Same(t, data, sink.received[0])
}

func TestNetworkService_IgnoresUnknownConnection(t *testing.T) {
	sim := desim.NewScheduler(nil, nil)
	ns := NewNetworkService(sim)
	other := newRecvSpy(sim)
	ns.Connections().Set("other", other, true, "service")

	otherConn := ns.Connections().Get("other")
	require.NotPanics(t, func() {
		ns.HandleMessage("anything", otherConn, nil)
	})
}

func TestSink_CountsAndRecordsDelay(t *testing.T) {
	sim := desim.NewScheduler(nil, nil)
	sink := NewSink(sim)
	data := NewAppData(1, 5, 20, 3)

	sim.Schedule(10, func() {
		sink.HandleMessage(data, nil, nil)
	})
	sim.Run(10)

	require.Equal(t, 1, sink.NumPacketsReceived())
	require.Equal(t, []float64{7}, sink.DelayVector().AsTuple())
}
