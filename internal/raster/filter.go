package raster

import "fmt"

// Filter type, as per the PNG spec.
const (
	ftNone    = 0
	ftSub     = 1
	ftUp      = 2
	ftAverage = 3
	ftPaeth   = 4
)

// paeth implements the Paeth predictor over the left (a), up (b) and
// up-left (c) neighbors. Ties resolve to a, then b, then c.
func paeth(a, b, c uint8) uint8 {
	pc := int(c)
	pa := int(b) - pc
	pb := int(a) - pc
	pc = abs(pa + pb)
	pa = abs(pa)
	pb = abs(pb)
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// unfilterRow reverses filter ft on cdat in place. pdat is the previous
// reconstructed row, all zeros for the first row of a pass.
func unfilterRow(ft byte, cdat, pdat []byte, bpp int) error {
	n := len(cdat)
	lead := min(bpp, n)
	switch ft {
	case ftNone:
		// No-op.
	case ftSub:
		for i := bpp; i < n; i++ {
			cdat[i] += cdat[i-bpp]
		}
	case ftUp:
		for i, p := range pdat {
			cdat[i] += p
		}
	case ftAverage:
		// The first pixel has no left neighbor.
		for i := 0; i < lead; i++ {
			cdat[i] += pdat[i] / 2
		}
		for i := bpp; i < n; i++ {
			cdat[i] += uint8((int(cdat[i-bpp]) + int(pdat[i])) / 2)
		}
	case ftPaeth:
		// With left and up-left absent the predictor is always up.
		for i := 0; i < lead; i++ {
			cdat[i] += pdat[i]
		}
		for i := bpp; i < n; i++ {
			cdat[i] += paeth(cdat[i-bpp], pdat[i], pdat[i-bpp])
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFilterType, ft)
	}
	return nil
}

// unfilterPass reconstructs rows scanlines of stride bytes from src, each
// prefixed by its filter type byte, into dst. It returns the number of
// src bytes consumed.
func unfilterPass(dst, src []byte, stride, rows, bpp int) (int, error) {
	need := rows * (1 + stride)
	if len(src) < need {
		return 0, fmt.Errorf("%w: have %d bytes, need %d", ErrShortPixelData, len(src), need)
	}
	prev := make([]byte, stride)
	for y := 0; y < rows; y++ {
		line := src[y*(1+stride) : (y+1)*(1+stride)]
		cur := dst[y*stride : (y+1)*stride]
		copy(cur, line[1:])
		if err := unfilterRow(line[0], cur, prev, bpp); err != nil {
			return 0, fmt.Errorf("row %d: %w", y, err)
		}
		// The current row for y is the previous row for y+1.
		prev = cur
	}
	return need, nil
}
