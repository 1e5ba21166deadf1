package raster

import "fmt"

// ColorType is the PNG color type from IHDR.
type ColorType uint8

const (
	Grayscale      ColorType = 0
	Truecolor      ColorType = 2
	Indexed        ColorType = 3
	GrayscaleAlpha ColorType = 4
	TruecolorAlpha ColorType = 6
)

func (c ColorType) String() string {
	switch c {
	case Grayscale:
		return "grayscale"
	case Truecolor:
		return "truecolor"
	case Indexed:
		return "indexed"
	case GrayscaleAlpha:
		return "grayscale+alpha"
	case TruecolorAlpha:
		return "truecolor+alpha"
	}
	return fmt.Sprintf("ColorType(%d)", uint8(c))
}

// HasAlpha reports whether samples of this color type carry an alpha channel.
func (c ColorType) HasAlpha() bool {
	return c == GrayscaleAlpha || c == TruecolorAlpha
}

// BytesPerPixel returns the filter unit for the given color type at the
// given bit depth. Only depth 8 is supported.
func BytesPerPixel(ct ColorType, bitDepth uint8) (int, error) {
	var bpp int
	switch ct {
	case Grayscale, Indexed:
		bpp = 1
	case GrayscaleAlpha:
		bpp = 2
	case Truecolor:
		bpp = 3
	case TruecolorAlpha:
		bpp = 4
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedColorType, uint8(ct))
	}
	if bitDepth != 8 {
		return 0, fmt.Errorf("%w: %d (color type %v)", ErrUnsupportedBitDepth, bitDepth, ct)
	}
	return bpp, nil
}

// toRGBA expands len(dst)/4 pixels of raw samples into dst.
func toRGBA(dst, raw []byte, ct ColorType, palette, trns []byte) error {
	n := len(dst) / 4
	switch ct {
	case Grayscale:
		for i := 0; i < n; i++ {
			v, o := raw[i], i*4
			dst[o+0] = v
			dst[o+1] = v
			dst[o+2] = v
			dst[o+3] = 0xFF
		}
	case Truecolor:
		for i, j := 0, 0; i < n; i, j = i+1, j+3 {
			o := i * 4
			dst[o+0] = raw[j+0]
			dst[o+1] = raw[j+1]
			dst[o+2] = raw[j+2]
			dst[o+3] = 0xFF
		}
	case GrayscaleAlpha:
		for i, j := 0, 0; i < n; i, j = i+1, j+2 {
			v, o := raw[j], i*4
			dst[o+0] = v
			dst[o+1] = v
			dst[o+2] = v
			dst[o+3] = raw[j+1]
		}
	case TruecolorAlpha:
		copy(dst, raw[:n*4])
	case Indexed:
		if len(palette) == 0 {
			return ErrPaletteRequired
		}
		for i := 0; i < n; i++ {
			idx, o := int(raw[i]), i*4
			// Indices past the palette stay black.
			if p := idx * 3; p+2 < len(palette) {
				dst[o+0] = palette[p+0]
				dst[o+1] = palette[p+1]
				dst[o+2] = palette[p+2]
			}
			if idx < len(trns) {
				dst[o+3] = trns[idx]
			} else {
				dst[o+3] = 0xFF
			}
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedColorType, uint8(ct))
	}
	return nil
}
