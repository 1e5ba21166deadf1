package apng

import (
	"errors"
	"fmt"

	"github.com/zsiec/apng/internal/chunk"
	"github.com/zsiec/apng/internal/raster"
)

// Sentinel errors returned by Parse. Use errors.Is to distinguish them.
var (
	ErrInvalidSignature  = chunk.ErrInvalidSignature
	ErrTruncated         = chunk.ErrTruncated
	ErrChecksumMismatch  = chunk.ErrChecksumMismatch
	ErrNoFramesExtracted = errors.New("apng: no frames extracted")
	ErrEmptyFrameData    = errors.New("apng: frame has no image data")
	ErrMalformedChunk    = errors.New("apng: malformed chunk")
	ErrSequenceOrder     = errors.New("apng: sequence number out of order")
	ErrOutputDirRequired = errors.New("apng: output directory is required")
)

// Sentinel errors returned when decoding frame pixels.
var (
	ErrUnsupportedBitDepth  = raster.ErrUnsupportedBitDepth
	ErrUnsupportedColorType = raster.ErrUnsupportedColorType
	ErrPaletteRequired      = raster.ErrPaletteRequired
	ErrUnknownFilterType    = raster.ErrUnknownFilterType
	ErrDecompressionFailed  = raster.ErrDecompressionFailed
	ErrShortPixelData       = raster.ErrShortPixelData
	ErrImageTooLarge        = raster.ErrImageTooLarge
)

// FrameError ties a failure to the index of the frame that caused it.
type FrameError struct {
	Index int
	Err   error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("apng: frame %d: %v", e.Index, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}
