package chunk

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Reader walks the chunks of an in-memory PNG stream in order.
type Reader struct {
	data   []byte
	pos    int
	verify bool
}

// NewReader checks the PNG signature at the start of data and returns a
// Reader positioned at the first chunk.
func NewReader(data []byte, opts ...func(*Reader)) (*Reader, error) {
	if len(data) < len(Signature) || string(data[:len(Signature)]) != Signature {
		return nil, ErrInvalidSignature
	}
	r := &Reader{
		data: data,
		pos:  len(Signature),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// ReaderOptVerifyChecksums makes Next compare every stored CRC against the
// computed one. By default stored checksums are skipped over unchecked.
func ReaderOptVerifyChecksums() func(*Reader) {
	return func(r *Reader) {
		r.verify = true
	}
}

// Next returns the next chunk. It returns io.EOF once the read position
// reaches the end of the buffer.
func (r *Reader) Next() (Chunk, error) {
	remaining := len(r.data) - r.pos
	if remaining == 0 {
		return Chunk{}, io.EOF
	}
	if remaining < overhead {
		return Chunk{}, fmt.Errorf("%w: %d trailing bytes at offset %d", ErrTruncated, remaining, r.pos)
	}

	length := binary.BigEndian.Uint32(r.data[r.pos:])
	if uint64(length)+overhead > uint64(remaining) {
		return Chunk{}, fmt.Errorf("%w: length %d at offset %d exceeds remaining %d bytes",
			ErrTruncated, length, r.pos, remaining-overhead)
	}

	end := r.pos + overhead + int(length)
	raw := r.data[r.pos:end:end]
	tag := string(raw[4:8])
	c := Chunk{
		Type:   TypeOf(tag),
		Tag:    tag,
		Data:   raw[headerSize : headerSize+int(length)],
		Raw:    raw,
		CRC:    binary.BigEndian.Uint32(raw[headerSize+int(length):]),
		Offset: r.pos,
	}

	if r.verify {
		if sum := typeChecksum(raw[4:8], c.Data); sum != c.CRC {
			return Chunk{}, fmt.Errorf("%w: %s at offset %d: computed 0x%08X, stored 0x%08X",
				ErrChecksumMismatch, tag, r.pos, sum, c.CRC)
		}
	}

	r.pos = end
	return c, nil
}
