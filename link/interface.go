package link

import (
	"math"

	"github.com/larioandr/pycsmaca/desim"
	"github.com/larioandr/pycsmaca/netlayer"
	"github.com/larioandr/pycsmaca/stats"
)

// Interface is the full-duplex wired transceiver: independent TX and RX
// state machines over a single addressable endpoint (confirmed against
// the original test suite, which names this type WiredInterface and
// gives it its own address rather than splitting address and
// transceiver into two modules).
type Interface struct {
	*desim.Base

	address    int
	bitrate    float64 // math.Inf(1) yields zero transmission duration
	headerSize int
	preamble   float64
	ifs        float64

	started bool
	txFrame *WireFrame
	waitIFS bool
	rxFrame *WireFrame

	numTxFrames, numTxBits int
	numRxFrames, numRxBits int

	txBusyTrace *stats.Trace
	rxBusyTrace *stats.Trace
}

// NewInterface builds a transceiver and schedules its start() at the
// current time. bitrate of 0 is treated as infinite (zero-duration
// transmission), matching the spec's stated default.
func NewInterface(sim *desim.Scheduler, address int, bitrate float64, headerSize int, preamble, ifs float64) *Interface {
	if bitrate == 0 {
		bitrate = math.Inf(1)
	}
	ifc := &Interface{address: address, bitrate: bitrate, headerSize: headerSize, preamble: preamble, ifs: ifs}
	ifc.Base = desim.NewBase(sim, ifc)
	ifc.txBusyTrace = stats.NewTrace()
	ifc.rxBusyTrace = stats.NewTrace()
	now := sim.Stime()
	ifc.txBusyTrace.Record(now, 0)
	ifc.rxBusyTrace.Record(now, 0)
	sim.Schedule(0, ifc.start)
	return ifc
}

// Address identifies this interface to a NetworkSwitch.
func (ifc *Interface) Address() int { return ifc.address }

func (ifc *Interface) start() {
	ifc.started = true
	if q, ok := ifc.queue(); ok {
		q.GetNext(ifc)
	}
}

func (ifc *Interface) queue() (*Queue, bool) {
	conn := ifc.Connections().Get("queue")
	if conn == nil {
		return nil, false
	}
	q, ok := conn.Peer().(*Queue)
	return q, ok
}

func (ifc *Interface) txBusy() bool { return ifc.txFrame != nil || ifc.waitIFS }
func (ifc *Interface) rxBusy() bool { return ifc.rxFrame != nil }

// TxBusy reports whether the TX path is currently sending or waiting
// out its inter-frame space.
func (ifc *Interface) TxBusy() bool { return ifc.txBusy() }

// RxBusy reports whether a frame is currently being received.
func (ifc *Interface) RxBusy() bool { return ifc.rxBusy() }

func (ifc *Interface) TxBusyTrace() *stats.Trace { return ifc.txBusyTrace }
func (ifc *Interface) RxBusyTrace() *stats.Trace { return ifc.rxBusyTrace }
func (ifc *Interface) NumTxFrames() int          { return ifc.numTxFrames }
func (ifc *Interface) NumRxFrames() int          { return ifc.numRxFrames }

func (ifc *Interface) HandleMessage(msg interface{}, conn *desim.Connection, sender desim.Module) {
	switch m := msg.(type) {
	case *netlayer.NetworkPacket:
		if conn != ifc.Connections().Get("queue") {
			return
		}
		ifc.handleTxRequest(m)
	case *WireFrame:
		if conn != ifc.Connections().Get("peer") {
			return // no reception on a connection not named 'peer'
		}
		ifc.handleRxStart(m)
	}
}

func (ifc *Interface) handleTxRequest(packet *netlayer.NetworkPacket) {
	if ifc.txBusy() {
		panic("Interface: concurrent TX request")
	}
	now := ifc.Sim().Stime()
	duration := float64(ifc.headerSize+packet.Size())/ifc.bitrate + ifc.preamble
	frame := &WireFrame{Packet: packet, Duration: duration, HeaderSize: ifc.headerSize, Preamble: ifc.preamble}

	ifc.txFrame = frame
	ifc.txBusyTrace.Record(now, 1)
	ifc.numTxFrames++
	ifc.numTxBits += frame.Size()

	if peer := ifc.Connections().Get("peer"); peer != nil {
		peer.Send(ifc.Sim(), frame)
	}
	ifc.Sim().Schedule(duration, ifc.handleTxEnd)
}

func (ifc *Interface) handleTxEnd() {
	ifc.txFrame = nil
	ifc.waitIFS = true
	ifc.txBusyTrace.Record(ifc.Sim().Stime(), 0)
	ifc.Sim().Schedule(ifc.ifs, ifc.handleIFSEnd)
}

func (ifc *Interface) handleIFSEnd() {
	ifc.waitIFS = false
	if q, ok := ifc.queue(); ok {
		q.GetNext(ifc)
	}
}

func (ifc *Interface) handleRxStart(frame *WireFrame) {
	ifc.rxFrame = frame
	ifc.rxBusyTrace.Record(ifc.Sim().Stime(), 1)
	ifc.Sim().Schedule(frame.Duration, func() { ifc.handleRxEnd(frame) })
}

// handleRxEnd unconditionally clears rx_frame and forwards this closure's
// own frame, with no check against whatever currently sits in rx_frame —
// preserved verbatim from the observed (uncorrected) collision behavior:
// a second inbound frame overwrites rx_frame but does not cancel the
// first frame's already-scheduled handleRxEnd.
func (ifc *Interface) handleRxEnd(frame *WireFrame) {
	ifc.rxFrame = nil
	ifc.rxBusyTrace.Record(ifc.Sim().Stime(), 0)
	ifc.numRxFrames++
	ifc.numRxBits += frame.Size()
	if up := ifc.Connections().Get("up"); up != nil {
		up.Send(ifc.Sim(), frame.Packet)
	} else {
		// no upstream wired: drop silently
	}
}
