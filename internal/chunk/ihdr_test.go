package chunk

import (
	"bytes"
	"errors"
	"testing"
)

func TestIHDRRoundTrip(t *testing.T) {
	t.Parallel()
	h := IHDR{
		Width:             640,
		Height:            480,
		BitDepth:          8,
		ColorType:         3,
		CompressionMethod: 0,
		FilterMethod:      0,
		InterlaceMethod:   1,
	}
	got, err := ParseIHDR(h.Payload())
	if err != nil {
		t.Fatal(err)
	}
	if got != h {
		t.Errorf("ParseIHDR = %+v, want %+v", got, h)
	}

	enc := h.Append(nil)
	if len(enc) != IHDRSize+12 {
		t.Fatalf("encoded length = %d, want %d", len(enc), IHDRSize+12)
	}
	if string(enc[4:8]) != TagIHDR {
		t.Errorf("tag = %q", enc[4:8])
	}
	if got := h.Append([]byte("x")); !bytes.Equal(got[1:], enc) || got[0] != 'x' {
		t.Errorf("Append did not extend dst")
	}
}

func TestParseIHDRShort(t *testing.T) {
	t.Parallel()
	if _, err := ParseIHDR(make([]byte, 12)); !errors.Is(err, ErrInvalidHeader) {
		t.Errorf("got %v, want ErrInvalidHeader", err)
	}
}
