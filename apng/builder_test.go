package apng

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/klauspost/compress/zlib"

	"github.com/zsiec/apng/internal/chunk"
)

// builder assembles APNG streams for tests. fcTL and fdAT sequence
// numbers are assigned in call order unless set explicitly.
type builder struct {
	buf []byte
	seq uint32
}

func newBuilder() *builder {
	return &builder{buf: []byte(chunk.Signature)}
}

func (b *builder) chunk(tag string, data []byte) *builder {
	b.buf = chunk.Append(b.buf, tag, data)
	return b
}

func (b *builder) ihdr(w, h int, ct ColorType) *builder {
	return b.chunk(chunk.TagIHDR, chunk.IHDR{
		Width:     uint32(w),
		Height:    uint32(h),
		BitDepth:  8,
		ColorType: uint8(ct),
	}.Payload())
}

func (b *builder) actl(frames, plays uint32) *builder {
	data := binary.BigEndian.AppendUint32(nil, frames)
	data = binary.BigEndian.AppendUint32(data, plays)
	return b.chunk(chunk.TagACTL, data)
}

type fctlArgs struct {
	w, h, x, y int
	num, den   uint16
	dispose    DisposeOp
	blend      BlendOp
}

func (b *builder) fctl(a fctlArgs) *builder {
	b.fctlSeq(b.seq, a)
	b.seq++
	return b
}

func (b *builder) fctlSeq(seq uint32, a fctlArgs) *builder {
	data := binary.BigEndian.AppendUint32(nil, seq)
	for _, v := range []int{a.w, a.h, a.x, a.y} {
		data = binary.BigEndian.AppendUint32(data, uint32(v))
	}
	data = binary.BigEndian.AppendUint16(data, a.num)
	data = binary.BigEndian.AppendUint16(data, a.den)
	data = append(data, byte(a.dispose), byte(a.blend))
	return b.chunk(chunk.TagFCTL, data)
}

func (b *builder) idat(data []byte) *builder {
	return b.chunk(chunk.TagIDAT, data)
}

func (b *builder) fdat(data []byte) *builder {
	b.fdatSeq(b.seq, data)
	b.seq++
	return b
}

func (b *builder) fdatSeq(seq uint32, data []byte) *builder {
	return b.chunk(chunk.TagFDAT, append(binary.BigEndian.AppendUint32(nil, seq), data...))
}

func (b *builder) iend() *builder {
	return b.chunk(chunk.TagIEND, nil)
}

func (b *builder) bytes() []byte {
	return b.buf
}

func deflate(t testing.TB, raw []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// pattern returns w*h RGBA pixels that differ per frame seed.
func pattern(w, h, seed int) []byte {
	pix := make([]byte, 0, w*h*4)
	for y := range h {
		for x := range w {
			pix = append(pix, byte(x*16+seed), byte(y*16), byte(seed*40), byte(255-x-seed))
		}
	}
	return pix
}

// scanlines prefixes every row of pix with filter type None.
func scanlines(pix []byte, stride int) []byte {
	out := make([]byte, 0, len(pix)+len(pix)/stride)
	for i := 0; i < len(pix); i += stride {
		out = append(out, 0)
		out = append(out, pix[i:i+stride]...)
	}
	return out
}

// rgbaFrame returns the compressed data of a w x h truecolor+alpha frame
// and the pixels it decodes to.
func rgbaFrame(t testing.TB, w, h, seed int) (data, pix []byte) {
	t.Helper()
	pix = pattern(w, h, seed)
	return deflate(t, scanlines(pix, w*4)), pix
}

// twoFrames is a 4x3 animation whose first frame is also the default
// image and whose second frame is split across two fdAT chunks.
func twoFrames(t testing.TB) (stream []byte, pix [][]byte) {
	t.Helper()
	d0, p0 := rgbaFrame(t, 4, 3, 0)
	d1, p1 := rgbaFrame(t, 2, 2, 1)
	half := len(d1) / 2

	b := newBuilder().
		ihdr(4, 3, ColorTruecolorAlpha).
		actl(2, 3).
		fctl(fctlArgs{w: 4, h: 3, num: 1, den: 10}).
		idat(d0).
		fctl(fctlArgs{w: 2, h: 2, x: 1, y: 1, num: 3, den: 20, dispose: DisposePrevious, blend: BlendOver}).
		fdat(d1[:half]).
		fdat(d1[half:]).
		iend()
	return b.bytes(), [][]byte{p0, p1}
}
