// Package raster reconstructs RGBA pixels from a PNG image data stream:
// zlib inflate, scanline filter reversal, Adam7 de-interlacing, and
// conversion from the stored color model to 8-bit non-premultiplied RGBA.
//
// Only 8-bit samples are supported. Other bit depths are rejected rather
// than decoded approximately.
package raster
