package apng

import (
	"bytes"
	"image"
	"sync"
	"time"

	"github.com/zsiec/apng/internal/raster"
)

// Frame is one animation frame. Geometry and timing come from its fcTL;
// the pixel format, palette and transparency from the container.
//
// Frames are safe for concurrent use once Parse has returned.
type Frame struct {
	Width        int
	Height       int
	Left         int
	Top          int
	DelayNum     uint16
	DelayDen     uint16 // never 0 after Parse
	DisposeOp    DisposeOp
	BlendOp      BlendOp
	BitDepth     uint8
	ColorType    ColorType
	Palette      []byte
	Transparency []byte

	data      []byte   // concatenated compressed image data
	parts     [][]byte // per-chunk sub-slices of data, sequence numbers stripped
	interlace uint8
	container *APNG

	once sync.Once
	rgba []byte
	err  error
}

// Delay returns DelayNum/DelayDen seconds. A zero denominator counts as 100.
func (f *Frame) Delay() time.Duration {
	den := f.DelayDen
	if den == 0 {
		den = defaultDelayDen
	}
	return time.Duration(f.DelayNum) * time.Second / time.Duration(den)
}

// HasAlpha reports whether the frame can contain non-opaque pixels.
func (f *Frame) HasAlpha() bool {
	return f.ColorType.HasAlpha() || len(f.Transparency) > 0
}

// Equal reports whether both frames cover the same region with identical
// compressed image data.
func (f *Frame) Equal(other *Frame) bool {
	if other == nil {
		return false
	}
	return f.Width == other.Width &&
		f.Height == other.Height &&
		f.Left == other.Left &&
		f.Top == other.Top &&
		bytes.Equal(f.data, other.data)
}

// Data returns the frame's compressed image data: the payloads of its
// IDAT or fdAT chunks concatenated in order, without sequence numbers.
// The returned slice must not be modified.
func (f *Frame) Data() []byte {
	return f.data
}

// RGBA returns the frame's pixels as Width*Height*4 bytes of
// non-premultiplied RGBA in row-major order. The buffer is computed on
// first call and shared by later calls; it must not be modified.
func (f *Frame) RGBA() ([]byte, error) {
	f.once.Do(func() {
		f.rgba, f.err = raster.Decode(f.data, raster.Params{
			Width:        f.Width,
			Height:       f.Height,
			BitDepth:     f.BitDepth,
			ColorType:    f.ColorType,
			Interlaced:   f.interlace == 1,
			Palette:      f.Palette,
			Transparency: f.Transparency,
		})
	})
	return f.rgba, f.err
}

// Image returns a copy of the frame's pixels as an *image.NRGBA whose
// bounds start at the origin, not at the frame offset.
func (f *Frame) Image() (*image.NRGBA, error) {
	pix, err := f.RGBA()
	if err != nil {
		return nil, err
	}
	return &image.NRGBA{
		Pix:    bytes.Clone(pix),
		Stride: f.Width * 4,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}, nil
}
