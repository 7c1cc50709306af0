package netlayer

import "fmt"

// NetworkPacket is the mutable network-layer PDU. It is created with only
// DstAddr and Data by NetworkService; SrcAddr and SSN are assigned at
// first pass through the originating NetworkSwitch, while SndAddr and
// RcvAddr are rewritten at every hop. The pointer fields mirror Python's
// None: nil means unset.
type NetworkPacket struct {
	DstAddr int
	SrcAddr *int
	SndAddr *int
	RcvAddr *int
	SSN     *int
	Data    *AppData
}

// NewNetworkPacket builds a packet as NetworkService does when
// encapsulating outgoing AppData: only the destination and payload set.
func NewNetworkPacket(dstAddr int, data *AppData) *NetworkPacket {
	return &NetworkPacket{DstAddr: dstAddr, Data: data}
}

// Size is part of the wire-format contract: WireFrame.duration depends on
// header_size + packet.size, where packet.size delegates to the payload.
func (p *NetworkPacket) Size() int {
	return p.Data.Size()
}

func intOrNil(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func (p *NetworkPacket) String() string {
	return fmt.Sprintf("NetPkt{DST=%d,SRC=%v,SND=%v,RCV=%v,SSN=%v} | %s",
		p.DstAddr, intOrNil(p.SrcAddr), intOrNil(p.SndAddr), intOrNil(p.RcvAddr), intOrNil(p.SSN), p.Data)
}
