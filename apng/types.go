package apng

import (
	"fmt"

	"github.com/zsiec/apng/internal/raster"
)

// ColorType is the PNG color type shared by every frame.
type ColorType = raster.ColorType

const (
	ColorGrayscale      = raster.Grayscale
	ColorTruecolor      = raster.Truecolor
	ColorIndexed        = raster.Indexed
	ColorGrayscaleAlpha = raster.GrayscaleAlpha
	ColorTruecolorAlpha = raster.TruecolorAlpha
)

// DisposeOp is what happens to the frame's region of the canvas after the
// frame is displayed.
type DisposeOp uint8

const (
	DisposeNone       DisposeOp = 0
	DisposeBackground DisposeOp = 1
	DisposePrevious   DisposeOp = 2
)

func (d DisposeOp) String() string {
	switch d {
	case DisposeNone:
		return "none"
	case DisposeBackground:
		return "background"
	case DisposePrevious:
		return "previous"
	}
	return fmt.Sprintf("DisposeOp(%d)", uint8(d))
}

// BlendOp is how the frame's pixels combine with the canvas.
type BlendOp uint8

const (
	BlendSource BlendOp = 0
	BlendOver   BlendOp = 1
)

func (b BlendOp) String() string {
	switch b {
	case BlendSource:
		return "source"
	case BlendOver:
		return "over"
	}
	return fmt.Sprintf("BlendOp(%d)", uint8(b))
}
