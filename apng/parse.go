package apng

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/zsiec/apng/internal/chunk"
)

// Parse decodes the chunk structure of an APNG stream. Image data is kept
// compressed until a frame's pixels are requested. Parse copies what it
// keeps, so data may be reused once it returns.
//
// Frames are delimited by fcTL chunks rather than by the acTL frame count.
// Image data that precedes the first fcTL belongs to the default image and
// is not part of the animation.
func Parse(data []byte, opts ...ParseOption) (*APNG, error) {
	cfg := parseConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = slog.Default()
	}

	var readerOpts []func(*chunk.Reader)
	if cfg.verifyCRC {
		readerOpts = append(readerOpts, chunk.ReaderOptVerifyChecksums())
	}
	r, err := chunk.NewReader(data, readerOpts...)
	if err != nil {
		return nil, err
	}

	asm := newAssembler(cfg)
	for {
		c, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := asm.add(c); err != nil {
			return nil, err
		}
	}
	return asm.finish()
}

// assembler groups chunks into frames during a single forward scan.
type assembler struct {
	log    *slog.Logger
	strict bool

	apng        *APNG
	seenHeader  bool
	cur         *Frame
	frames      []*Frame
	nextSeq     uint32
	skippedData int
}

func newAssembler(cfg parseConfig) *assembler {
	return &assembler{
		log:    cfg.log.With("component", "apng"),
		strict: cfg.strictSequence,
		apng:   &APNG{},
	}
}

func (a *assembler) add(c chunk.Chunk) error {
	switch c.Type {
	case chunk.TypeIHDR:
		return a.addHeader(c)
	case chunk.TypeACTL:
		ac, err := parseACTL(c.Data)
		if err != nil {
			return err
		}
		a.apng.FrameCount = ac.numFrames
		a.apng.LoopCount = ac.numPlays
	case chunk.TypePLTE:
		if len(c.Data) > 0 {
			a.apng.Palette = bytes.Clone(c.Data)
			a.apng.metadata = append(a.apng.metadata, bytes.Clone(c.Raw))
		}
	case chunk.TypeTRNS:
		if len(c.Data) > 0 {
			a.apng.Transparency = bytes.Clone(c.Data)
			a.apng.metadata = append(a.apng.metadata, bytes.Clone(c.Raw))
		}
	case chunk.TypeFCTL:
		return a.openFrame(c)
	case chunk.TypeIDAT:
		a.addData(c.Data)
	case chunk.TypeFDAT:
		if len(c.Data) < seqSize {
			if a.strict {
				return fmt.Errorf("%w: fdAT length %d at offset %d", ErrMalformedChunk, len(c.Data), c.Offset)
			}
			a.log.Debug("fdAT too short for sequence number", "offset", c.Offset, "length", len(c.Data))
			return nil
		}
		if err := a.checkSequence(c); err != nil {
			return err
		}
		a.addData(c.Data[seqSize:])
	case chunk.TypeIEND:
		a.apng.trailer = append(a.apng.trailer, bytes.Clone(c.Raw))
	case chunk.TypeOther:
		a.log.Debug("retaining ancillary chunk", "chunk", c.Tag, "offset", c.Offset, "length", len(c.Data))
		a.apng.metadata = append(a.apng.metadata, bytes.Clone(c.Raw))
	}
	return nil
}

func (a *assembler) addHeader(c chunk.Chunk) error {
	h, err := chunk.ParseIHDR(c.Data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedChunk, err)
	}
	if a.seenHeader {
		a.log.Debug("duplicate IHDR overwrites header", "offset", c.Offset)
	}
	a.seenHeader = true

	p := a.apng
	p.header = h
	p.Width = int(h.Width)
	p.Height = int(h.Height)
	p.BitDepth = h.BitDepth
	p.ColorType = ColorType(h.ColorType)
	p.CompressionMethod = h.CompressionMethod
	p.FilterMethod = h.FilterMethod
	p.InterlaceMethod = h.InterlaceMethod
	return nil
}

func (a *assembler) openFrame(c chunk.Chunk) error {
	fc, err := parseFCTL(c.Data)
	if err != nil {
		return err
	}
	if err := a.checkSequence(c); err != nil {
		return err
	}
	if a.cur != nil {
		a.frames = append(a.frames, a.cur)
	}

	f := &Frame{
		Width:     int(fc.width),
		Height:    int(fc.height),
		Left:      int(fc.xOffset),
		Top:       int(fc.yOffset),
		DelayNum:  fc.delayNum,
		DelayDen:  fc.delayDen,
		DisposeOp: fc.disposeOp,
		BlendOp:   fc.blendOp,
	}
	// There is no earlier canvas for the first frame to restore.
	if len(a.frames) == 0 && f.DisposeOp == DisposePrevious {
		f.DisposeOp = DisposeBackground
	}
	a.cur = f
	return nil
}

func (a *assembler) addData(payload []byte) {
	if a.cur == nil {
		a.skippedData += len(payload)
		return
	}
	a.cur.parts = append(a.cur.parts, payload)
}

// checkSequence validates the sequence number leading an fcTL or fdAT
// payload. Outside strict mode mismatches are only logged.
func (a *assembler) checkSequence(c chunk.Chunk) error {
	seq := binary.BigEndian.Uint32(c.Data[:seqSize])
	want := a.nextSeq
	a.nextSeq = seq + 1
	if seq == want {
		return nil
	}
	if a.strict {
		return fmt.Errorf("%w: %s at offset %d has %d, want %d", ErrSequenceOrder, c.Tag, c.Offset, seq, want)
	}
	a.log.Debug("sequence number out of order", "chunk", c.Tag, "offset", c.Offset, "got", seq, "want", want)
	return nil
}

func (a *assembler) finish() (*APNG, error) {
	if a.cur != nil {
		a.frames = append(a.frames, a.cur)
		a.cur = nil
	}
	if a.skippedData > 0 {
		a.log.Debug("default image is not part of the animation", "bytes", a.skippedData)
	}

	total := 0
	for _, f := range a.frames {
		for _, part := range f.parts {
			total += len(part)
		}
	}
	if len(a.frames) == 0 || total == 0 {
		return nil, ErrNoFramesExtracted
	}

	p := a.apng
	for i, f := range a.frames {
		if err := f.seal(p); err != nil {
			return nil, &FrameError{Index: i, Err: err}
		}
	}
	p.Frames = a.frames

	if p.FrameCount != uint32(len(p.Frames)) {
		a.log.Debug("declared frame count differs from frames found",
			"declared", p.FrameCount, "found", len(p.Frames))
	}
	return p, nil
}

// seal copies the frame's data parts into one buffer and attaches the
// container-wide pixel format.
func (f *Frame) seal(p *APNG) error {
	n := 0
	for _, part := range f.parts {
		n += len(part)
	}
	if n == 0 {
		return ErrEmptyFrameData
	}

	f.data = make([]byte, 0, n)
	parts := make([][]byte, 0, len(f.parts))
	for _, part := range f.parts {
		if len(part) == 0 {
			continue
		}
		start := len(f.data)
		f.data = append(f.data, part...)
		parts = append(parts, f.data[start:len(f.data):len(f.data)])
	}
	f.parts = parts

	f.BitDepth = p.BitDepth
	f.ColorType = p.ColorType
	f.Palette = p.Palette
	f.Transparency = p.Transparency
	f.interlace = p.InterlaceMethod
	f.container = p
	return nil
}
