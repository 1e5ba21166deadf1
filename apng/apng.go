package apng

import (
	"time"

	"github.com/zsiec/apng/internal/chunk"
)

// APNG is a decoded animation: the global image header, the shared
// palette and transparency, the animation control values, and the frames
// in stream order.
//
// FrameCount is the count declared in acTL. It may disagree with
// len(Frames), which is authoritative.
type APNG struct {
	Width             int
	Height            int
	BitDepth          uint8
	ColorType         ColorType
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
	Palette           []byte // packed RGB triples, nil if no PLTE
	Transparency      []byte // tRNS payload, nil if absent
	FrameCount        uint32
	LoopCount         uint32 // 0 loops forever
	Frames            []*Frame

	header   chunk.IHDR
	metadata [][]byte // framed chunks replayed into every standalone frame
	trailer  [][]byte
}

// Duration is the sum of all frame delays.
func (a *APNG) Duration() time.Duration {
	var d time.Duration
	for _, f := range a.Frames {
		d += f.Delay()
	}
	return d
}

// MetadataChunks returns copies of the chunks carried over verbatim into
// every standalone frame image, in stream order. Each entry includes its
// length, type and checksum.
func (a *APNG) MetadataChunks() [][]byte {
	out := make([][]byte, len(a.metadata))
	for i, m := range a.metadata {
		out[i] = append([]byte(nil), m...)
	}
	return out
}
