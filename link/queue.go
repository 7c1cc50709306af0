package link

import (
	"github.com/larioandr/pycsmaca/desim"
	"github.com/larioandr/pycsmaca/netlayer"
	"github.com/larioandr/pycsmaca/stats"
)

// Unbounded marks a Queue with no capacity limit.
const Unbounded = -1

// Queue is a bounded FIFO with pull-based service: a downstream module
// calls GetNext to request the head packet, and if none is buffered it
// is parked as a waiter served the instant a packet arrives. A push
// landing on a waiting puller bypasses the buffer and the traces
// entirely.
type Queue struct {
	*desim.Base

	capacity int
	packets  []*netlayer.NetworkPacket
	waiters  []*desim.Connection
	numDropped int

	sizeTrace    *stats.Trace
	bitsizeTrace *stats.Trace

	// serviceAddr, when set, lets a Queue stand in as the Addressable
	// egress a NetworkSwitch routes through: the queue delegates to the
	// address of the Interface it feeds, rather than the switch needing
	// to see past its own egress connection to the transceiver beyond.
	serviceAddr *int
}

// SetAddress records the address of the Interface this queue feeds,
// making the queue Addressable by delegation.
func (q *Queue) SetAddress(addr int) { q.serviceAddr = &addr }

// Address returns the address of the Interface this queue feeds. Calling
// it before SetAddress is a wiring error.
func (q *Queue) Address() int {
	if q.serviceAddr == nil {
		panic("Queue: Address() called before SetAddress")
	}
	return *q.serviceAddr
}

// HandleMessage accepts an inbound NetworkPacket (from a NetworkSwitch's
// egress connection) and pushes it, same as a direct Push call.
func (q *Queue) HandleMessage(msg interface{}, conn *desim.Connection, sender desim.Module) {
	pkt, ok := msg.(*netlayer.NetworkPacket)
	if !ok {
		panic("Queue: expected NetworkPacket")
	}
	q.Push(pkt)
}

// NewQueue builds a queue with the given capacity (Unbounded for no
// limit), recording the initial zero-size trace samples at construction.
func NewQueue(sim *desim.Scheduler, capacity int) *Queue {
	q := &Queue{capacity: capacity}
	q.Base = desim.NewBase(sim, q)
	q.sizeTrace = stats.NewTrace()
	q.bitsizeTrace = stats.NewTrace()
	now := sim.Stime()
	q.sizeTrace.Record(now, 0)
	q.bitsizeTrace.Record(now, 0)
	return q
}

func (q *Queue) Empty() bool { return len(q.packets) == 0 }
func (q *Queue) Full() bool  { return q.capacity >= 0 && len(q.packets) >= q.capacity }
func (q *Queue) Size() int   { return len(q.packets) }

// Length is an alias for Size, matching both accessor names observed in
// the original test suite.
func (q *Queue) Length() int { return len(q.packets) }

func (q *Queue) Bitsize() int {
	total := 0
	for _, p := range q.packets {
		total += p.Size()
	}
	return total
}

// AsTuple returns a copy of the buffered packets in FIFO order.
func (q *Queue) AsTuple() []*netlayer.NetworkPacket {
	out := make([]*netlayer.NetworkPacket, len(q.packets))
	copy(out, q.packets)
	return out
}

func (q *Queue) NumDropped() int                 { return q.numDropped }
func (q *Queue) SizeTrace() *stats.Trace          { return q.sizeTrace }
func (q *Queue) BitsizeTrace() *stats.Trace       { return q.bitsizeTrace }

func (q *Queue) recordTrace() {
	now := q.Sim().Stime()
	q.sizeTrace.Record(now, float64(len(q.packets)))
	q.bitsizeTrace.Record(now, float64(q.Bitsize()))
}

// Push enqueues packet, handing it directly to a waiting puller if one
// exists (bypassing the buffer and traces), else buffering it if
// capacity allows, else dropping it and incrementing NumDropped.
func (q *Queue) Push(packet *netlayer.NetworkPacket) {
	if len(q.waiters) > 0 {
		conn := q.waiters[0]
		q.waiters = q.waiters[1:]
		conn.Send(q.Sim(), packet)
		return
	}
	if q.Full() {
		q.numDropped++
		return
	}
	q.packets = append(q.packets, packet)
	q.recordTrace()
}

// Pop removes and returns the head packet, recording the new trace
// sample. Popping from an empty queue is a precondition violation.
func (q *Queue) Pop() *netlayer.NetworkPacket {
	if len(q.packets) == 0 {
		panic("Queue: pop from empty queue")
	}
	p := q.packets[0]
	q.packets = q.packets[1:]
	q.recordTrace()
	return p
}

// GetNext requests delivery of the next packet to service. If the queue
// is empty, service's connection is parked as a waiter; otherwise the
// head packet is popped and sent immediately.
func (q *Queue) GetNext(service desim.Module) {
	conn := q.Connections().FindTo(service)
	if conn == nil {
		panic("Queue: no connection wired to service")
	}
	if q.Empty() {
		q.waiters = append(q.waiters, conn)
		return
	}
	p := q.Pop()
	conn.Send(q.Sim(), p)
}
