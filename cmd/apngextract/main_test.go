package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"

	"github.com/zsiec/apng/apng"
	"github.com/zsiec/apng/internal/chunk"
)

// testStream is a 2x2 truecolor+alpha animation with two opaque frames.
func testStream(t *testing.T) []byte {
	t.Helper()
	var z bytes.Buffer
	zw := zlib.NewWriter(&z)
	row := []byte{0, 255, 0, 0, 255, 0, 255, 0, 255}
	zw.Write(row)
	zw.Write(row)
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	fctl := func(seq uint32) []byte {
		b := binary.BigEndian.AppendUint32(nil, seq)
		b = binary.BigEndian.AppendUint32(b, 2)
		b = binary.BigEndian.AppendUint32(b, 2)
		b = binary.BigEndian.AppendUint32(b, 0)
		b = binary.BigEndian.AppendUint32(b, 0)
		b = binary.BigEndian.AppendUint16(b, 1)
		b = binary.BigEndian.AppendUint16(b, 4)
		return append(b, 0, 0)
	}

	out := []byte(chunk.Signature)
	out = chunk.Append(out, chunk.TagIHDR, chunk.IHDR{Width: 2, Height: 2, BitDepth: 8, ColorType: 6}.Payload())
	out = chunk.Append(out, chunk.TagACTL, []byte{0, 0, 0, 2, 0, 0, 0, 0})
	out = chunk.Append(out, chunk.TagFCTL, fctl(0))
	out = chunk.Append(out, chunk.TagIDAT, z.Bytes())
	out = chunk.Append(out, chunk.TagFCTL, fctl(1))
	out = chunk.Append(out, chunk.TagFDAT, append([]byte{0, 0, 0, 2}, z.Bytes()...))
	return chunk.Append(out, chunk.TagIEND, nil)
}

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "anim.png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPrintInfo(t *testing.T) {
	a, err := load(writeTemp(t, testStream(t)), true)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	printInfo(&buf, a)
	out := buf.String()

	for _, want := range []string{
		"size      2x2",
		"truecolor+alpha, 8-bit",
		"frames    2 (declared 2)",
		"loops     forever",
		"duration  500ms",
		"2x2+0+0  250ms",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := load(filepath.Join(t.TempDir(), "nope.png"), false); !os.IsNotExist(err) {
		t.Errorf("missing file: err = %v", err)
	}
	_, err := load(writeTemp(t, []byte("not a png at all")), false)
	if err == nil || !strings.Contains(err.Error(), "signature") {
		t.Errorf("bad file: err = %v", err)
	}
}

func TestFramesCmd(t *testing.T) {
	path := writeTemp(t, testStream(t))

	pngDir := filepath.Join(t.TempDir(), "png")
	cmd := &framesCmd{File: path, Output: pngDir, Name: "f"}
	if err := cmd.Run(&cli{}); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"f_0.png", "f_1.png"} {
		data, err := os.ReadFile(filepath.Join(pngDir, name))
		if err != nil {
			t.Fatal(err)
		}
		if !apngStandalone(data) {
			t.Errorf("%s is not a plain PNG", name)
		}
	}

	rawDir := filepath.Join(t.TempDir(), "raw")
	cmd = &framesCmd{File: path, Output: rawDir, Name: "f", RGBA: true}
	if err := cmd.Run(&cli{}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(rawDir, "f_1_2x2.rgba"))
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{255, 0, 0, 255, 0, 255, 0, 255, 255, 0, 0, 255, 0, 255, 0, 255}
	if !bytes.Equal(data, want) {
		t.Errorf("rgba = %v, want %v", data, want)
	}
}

func TestWriteRGBAFrameError(t *testing.T) {
	a, err := apng.Parse(testStream(t))
	if err != nil {
		t.Fatal(err)
	}
	err = writeRGBA(context.Background(), a, filepath.Join(t.TempDir(), "missing"), "f")
	if err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}

func apngStandalone(data []byte) bool {
	return bytes.HasPrefix(data, []byte(chunk.Signature)) && !apng.IsAPNG(data)
}
