package netlayer

import "fmt"

// AppData is the immutable application-layer payload. Once constructed it
// is referenced, not copied, through the rest of the stack, and
// surrendered to a Sink at the end of its journey.
type AppData struct {
	sourceID  int
	destAddr  int
	size      int
	createdAt float64
}

// NewAppData builds an AppData generated at createdAt (the scheduler
// clock at the moment RandomSource drew it), used downstream by Sink to
// compute end-to-end delay.
func NewAppData(sourceID, destAddr, size int, createdAt float64) *AppData {
	return &AppData{sourceID: sourceID, destAddr: destAddr, size: size, createdAt: createdAt}
}

func (a *AppData) SourceID() int      { return a.sourceID }
func (a *AppData) DestAddr() int      { return a.destAddr }
func (a *AppData) Size() int          { return a.size }
func (a *AppData) CreatedAt() float64 { return a.createdAt }

func (a *AppData) String() string {
	return fmt.Sprintf("AppData{sid=%d,dst=%d,size=%d}", a.sourceID, a.destAddr, a.size)
}
