package link

import (
	"fmt"

	"github.com/larioandr/pycsmaca/netlayer"
)

// WireFrame is the transient link-layer unit: a NetworkPacket wrapped
// with the header/preamble/duration accounting needed to model on-wire
// transmission time.
type WireFrame struct {
	Packet     *netlayer.NetworkPacket
	Duration   float64
	HeaderSize int
	Preamble   float64
}

// Size is part of the wire-format contract: header_size + packet.size.
func (f *WireFrame) Size() int {
	return f.HeaderSize + f.Packet.Size()
}

func (f *WireFrame) String() string {
	return fmt.Sprintf("WireFrame[D=%v,HDR=%d,PR=%v  | %s]", f.Duration, f.HeaderSize, f.Preamble, f.Packet)
}
