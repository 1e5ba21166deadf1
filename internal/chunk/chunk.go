package chunk

import (
	"encoding/binary"
	"fmt"
)

// Signature is the fixed 8-byte prefix of every PNG stream.
const Signature = "\x89PNG\r\n\x1a\n"

const (
	headerSize  = 8 // length + type
	trailerSize = 4 // crc
	overhead    = headerSize + trailerSize
)

// Type classifies a chunk by its four-character tag. Tags the decoder does
// not interpret individually map to TypeOther.
type Type uint8

const (
	TypeOther Type = iota
	TypeIHDR
	TypePLTE
	TypeTRNS
	TypeACTL
	TypeFCTL
	TypeIDAT
	TypeFDAT
	TypeIEND
)

// Chunk tags as they appear on the wire.
const (
	TagIHDR = "IHDR"
	TagPLTE = "PLTE"
	TagTRNS = "tRNS"
	TagACTL = "acTL"
	TagFCTL = "fcTL"
	TagIDAT = "IDAT"
	TagFDAT = "fdAT"
	TagIEND = "IEND"
)

var typeTags = [...]string{
	TypeOther: "",
	TypeIHDR:  TagIHDR,
	TypePLTE:  TagPLTE,
	TypeTRNS:  TagTRNS,
	TypeACTL:  TagACTL,
	TypeFCTL:  TagFCTL,
	TypeIDAT:  TagIDAT,
	TypeFDAT:  TagFDAT,
	TypeIEND:  TagIEND,
}

// TypeOf maps a chunk tag to its Type. Tags are case-sensitive.
func TypeOf(tag string) Type {
	switch tag {
	case TagIHDR:
		return TypeIHDR
	case TagPLTE:
		return TypePLTE
	case TagTRNS:
		return TypeTRNS
	case TagACTL:
		return TypeACTL
	case TagFCTL:
		return TypeFCTL
	case TagIDAT:
		return TypeIDAT
	case TagFDAT:
		return TypeFDAT
	case TagIEND:
		return TypeIEND
	}
	return TypeOther
}

func (t Type) String() string {
	if int(t) < len(typeTags) && t != TypeOther {
		return typeTags[t]
	}
	return "other"
}

// Chunk is one structural unit of a PNG stream. Data and Raw are
// sub-slices of the reader's input buffer and must not be modified.
type Chunk struct {
	Type   Type
	Tag    string
	Data   []byte // payload
	Raw    []byte // length|type|payload|crc exactly as read
	CRC    uint32 // stored checksum, not verified unless requested
	Offset int    // position of the length field in the input
}

// Encode frames data as a chunk with the given four-character tag. Like
// Append, it panics on a malformed tag.
func Encode(tag string, data []byte) []byte {
	return Append(make([]byte, 0, overhead+len(data)), tag, data)
}

// Append appends the framed chunk to dst and returns the extended slice.
// It panics if tag is not exactly 4 bytes.
func Append(dst []byte, tag string, data []byte) []byte {
	if len(tag) != 4 {
		panic(fmt.Sprintf("chunk: tag %q is not 4 bytes", tag))
	}
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(data)))
	start := len(dst)
	dst = append(dst, tag...)
	dst = append(dst, data...)
	return binary.BigEndian.AppendUint32(dst, Checksum(dst[start:]))
}
