// Package apng decodes Animated PNG streams into a container of frames.
//
// [Parse] walks the chunk stream once, groups image data by frame-control
// chunk, and returns an [APNG] holding the global header, palette and
// transparency, plus one [Frame] per fcTL. Pixel reconstruction is lazy:
// [Frame.RGBA] inflates, unfilters and color-converts a frame on first use
// and caches the result. [Frame.PNG] re-emits a frame as a standalone
// single-image PNG from its original compressed bytes, without re-encoding.
//
// Disposal and blend operations are exposed as metadata only. Compositing
// frames onto a full canvas is left to the caller.
//
// For format details, see:
//
// https://wiki.mozilla.org/APNG_Specification
// https://www.w3.org/TR/PNG/
package apng
