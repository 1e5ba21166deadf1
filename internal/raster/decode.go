package raster

import (
	"fmt"
	"math"
)

// Params describes the image a compressed stream encodes.
type Params struct {
	Width        int
	Height       int
	BitDepth     uint8
	ColorType    ColorType
	Interlaced   bool   // Adam7
	Palette      []byte // packed RGB triples
	Transparency []byte // tRNS payload
}

// Decode inflates, unfilters and color-converts compressed into a
// Width*Height*4 byte RGBA buffer in row-major order.
func Decode(compressed []byte, p Params) ([]byte, error) {
	bpp, err := BytesPerPixel(p.ColorType, p.BitDepth)
	if err != nil {
		return nil, err
	}
	if p.ColorType == Indexed && len(p.Palette) == 0 {
		return nil, ErrPaletteRequired
	}
	if p.Width < 0 || p.Height < 0 || tooLarge(p.Width, p.Height) {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, p.Width, p.Height)
	}

	need := p.Height * (1 + p.Width*bpp)
	if p.Interlaced {
		need = interlacedSize(p.Width, p.Height, bpp)
	}
	raw, err := Inflate(compressed, need)
	if err != nil {
		return nil, err
	}
	// Inflate stops at need bytes; only a short stream fails here.
	if len(raw) < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrShortPixelData, len(raw), need)
	}

	pix := make([]byte, p.Width*p.Height*bpp)
	if p.Interlaced {
		err = deinterlace(pix, raw, p.Width, p.Height, bpp)
	} else {
		_, err = unfilterPass(pix, raw, p.Width*bpp, p.Height, bpp)
	}
	if err != nil {
		return nil, err
	}

	rgba := make([]byte, p.Width*p.Height*4)
	if err := toRGBA(rgba, pix, p.ColorType, p.Palette, p.Transparency); err != nil {
		return nil, err
	}
	return rgba, nil
}

// tooLarge reports whether a width*height*4 byte RGBA buffer would not
// fit in an int.
func tooLarge(width, height int) bool {
	if width == 0 || height == 0 {
		return false
	}
	return uint64(width) > math.MaxInt32 || uint64(height) > math.MaxInt32 ||
		uint64(width)*uint64(height) > math.MaxInt/8
}
