package chunk

import (
	"encoding/binary"
	"fmt"
)

// IHDRSize is the fixed payload length of an IHDR chunk.
const IHDRSize = 13

// IHDR is the image header. Fields are kept verbatim; no combination of
// bit depth and color type is rejected here.
type IHDR struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         uint8
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

// ParseIHDR decodes an IHDR payload.
func ParseIHDR(data []byte) (IHDR, error) {
	if len(data) < IHDRSize {
		return IHDR{}, fmt.Errorf("%w: payload length %d, expected %d", ErrInvalidHeader, len(data), IHDRSize)
	}
	return IHDR{
		Width:             binary.BigEndian.Uint32(data[0:4]),
		Height:            binary.BigEndian.Uint32(data[4:8]),
		BitDepth:          data[8],
		ColorType:         data[9],
		CompressionMethod: data[10],
		FilterMethod:      data[11],
		InterlaceMethod:   data[12],
	}, nil
}

// Payload returns the 13-byte IHDR payload.
func (h IHDR) Payload() []byte {
	buf := make([]byte, IHDRSize)
	binary.BigEndian.PutUint32(buf[0:4], h.Width)
	binary.BigEndian.PutUint32(buf[4:8], h.Height)
	buf[8] = h.BitDepth
	buf[9] = h.ColorType
	buf[10] = h.CompressionMethod
	buf[11] = h.FilterMethod
	buf[12] = h.InterlaceMethod
	return buf
}

// Append appends the framed IHDR chunk to dst.
func (h IHDR) Append(dst []byte) []byte {
	return Append(dst, TagIHDR, h.Payload())
}
