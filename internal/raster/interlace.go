package raster

import "fmt"

// interlaceScan defines the placement and size of a pass for Adam7 interlacing.
type interlaceScan struct {
	xFactor, yFactor, xOffset, yOffset int
}

// adam7 defines Adam7 interlacing, with 7 passes of reduced images.
// See https://www.w3.org/TR/PNG/#8Interlace
var adam7 = [7]interlaceScan{
	{8, 8, 0, 0},
	{8, 8, 4, 0},
	{4, 8, 0, 4},
	{4, 4, 2, 0},
	{2, 4, 0, 2},
	{2, 2, 1, 0},
	{1, 2, 0, 1},
}

// passSize returns the dimensions of a reduced image. Either may be zero,
// in which case the pass has no scanlines at all.
func passSize(p interlaceScan, width, height int) (int, int) {
	// Add the multiplication factor and subtract one, effectively rounding up.
	return (width - p.xOffset + p.xFactor - 1) / p.xFactor,
		(height - p.yOffset + p.yFactor - 1) / p.yFactor
}

// deinterlace unfilters the seven Adam7 passes in src and scatters their
// pixels into dst, a full-size buffer of width*bpp byte rows.
func deinterlace(dst, src []byte, width, height, bpp int) error {
	fullStride := width * bpp
	for pass, p := range adam7 {
		pw, ph := passSize(p, width, height)
		if pw == 0 || ph == 0 {
			continue
		}
		stride := pw * bpp
		reduced := make([]byte, ph*stride)
		n, err := unfilterPass(reduced, src, stride, ph, bpp)
		if err != nil {
			return fmt.Errorf("adam7 pass %d: %w", pass, err)
		}
		src = src[n:]

		s := 0
		for y := 0; y < ph; y++ {
			dBase := (y*p.yFactor+p.yOffset)*fullStride + p.xOffset*bpp
			for x := 0; x < pw; x++ {
				d := dBase + x*p.xFactor*bpp
				copy(dst[d:d+bpp], reduced[s:s+bpp])
				s += bpp
			}
		}
	}
	return nil
}

// interlacedSize is the filtered byte count of all non-empty passes.
func interlacedSize(width, height, bpp int) int {
	total := 0
	for _, p := range adam7 {
		pw, ph := passSize(p, width, height)
		if pw == 0 || ph == 0 {
			continue
		}
		total += ph * (1 + pw*bpp)
	}
	return total
}
