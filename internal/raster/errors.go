package raster

import "errors"

var (
	ErrUnsupportedBitDepth  = errors.New("raster: unsupported bit depth")
	ErrUnsupportedColorType = errors.New("raster: unsupported color type")
	ErrPaletteRequired      = errors.New("raster: palette required for indexed color")
	ErrUnknownFilterType    = errors.New("raster: unknown filter type")
	ErrDecompressionFailed  = errors.New("raster: decompression failed")
	ErrShortPixelData       = errors.New("raster: not enough pixel data")
	ErrImageTooLarge        = errors.New("raster: image dimensions too large")
)
