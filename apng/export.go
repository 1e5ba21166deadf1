package apng

import (
	"github.com/zsiec/apng/internal/chunk"
)

// PNG returns the frame as a standalone single-image PNG. The header is
// the container's with the frame's own width and height; every retained
// ancillary chunk and the trailer are copied verbatim, and the frame's
// compressed data is emitted as IDAT chunks with the same boundaries it
// had in the animation. The output is deterministic for a given input.
func (f *Frame) PNG() []byte {
	p := f.container
	if p == nil {
		return f.plainPNG()
	}

	h := p.header
	h.Width = uint32(f.Width)
	h.Height = uint32(f.Height)

	size := len(chunk.Signature) + chunk.IHDRSize + 12
	for _, m := range p.metadata {
		size += len(m)
	}
	for _, part := range f.parts {
		size += len(part) + 12
	}
	for _, t := range p.trailer {
		size += len(t)
	}
	if len(p.trailer) == 0 {
		size += 12
	}

	out := make([]byte, 0, size)
	out = append(out, chunk.Signature...)
	out = h.Append(out)
	for _, m := range p.metadata {
		out = append(out, m...)
	}
	for _, part := range f.parts {
		out = chunk.Append(out, chunk.TagIDAT, part)
	}
	if len(p.trailer) == 0 {
		return chunk.Append(out, chunk.TagIEND, nil)
	}
	for _, t := range p.trailer {
		out = append(out, t...)
	}
	return out
}

// plainPNG serializes a frame that was not produced by Parse from its own
// fields alone.
func (f *Frame) plainPNG() []byte {
	h := chunk.IHDR{
		Width:     uint32(f.Width),
		Height:    uint32(f.Height),
		BitDepth:  f.BitDepth,
		ColorType: uint8(f.ColorType),
	}
	if f.interlace == 1 {
		h.InterlaceMethod = 1
	}

	out := append([]byte(nil), chunk.Signature...)
	out = h.Append(out)
	if len(f.Palette) > 0 {
		out = chunk.Append(out, chunk.TagPLTE, f.Palette)
	}
	if len(f.Transparency) > 0 {
		out = chunk.Append(out, chunk.TagTRNS, f.Transparency)
	}
	if len(f.parts) > 0 {
		for _, part := range f.parts {
			out = chunk.Append(out, chunk.TagIDAT, part)
		}
	} else {
		out = chunk.Append(out, chunk.TagIDAT, f.data)
	}
	return chunk.Append(out, chunk.TagIEND, nil)
}
