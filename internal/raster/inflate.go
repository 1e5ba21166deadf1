package raster

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// maxDeflateRatio is the largest expansion a deflate stream can achieve.
const maxDeflateRatio = 1032

// Inflate decompresses a zlib stream, stopping after limit bytes. Output
// past limit is never produced, so a stream that expands far beyond what the
// caller needs costs no more than limit bytes of memory.
func Inflate(data []byte, limit int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompressionFailed, err)
	}
	defer zr.Close()

	var buf bytes.Buffer
	// Reservation is bounded by what the input could expand to, not by
	// header dimensions.
	buf.Grow(min(limit, maxDeflateRatio*len(data)))
	if _, err := buf.ReadFrom(io.LimitReader(zr, int64(limit))); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompressionFailed, err)
	}
	return buf.Bytes(), nil
}
