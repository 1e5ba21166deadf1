package chunk

import "errors"

var (
	ErrInvalidSignature = errors.New("chunk: invalid PNG signature")
	ErrTruncated        = errors.New("chunk: truncated chunk")
	ErrChecksumMismatch = errors.New("chunk: checksum mismatch")
	ErrInvalidHeader    = errors.New("chunk: invalid IHDR")
)
