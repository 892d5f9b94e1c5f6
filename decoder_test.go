package lzss

import (
	"errors"
	"testing"
)

func TestDecompressUnexpectedEOF(t *testing.T) {
	dec, err := NewDecoder(nil)
	if err != nil {
		t.Fatal(err)
	}
	// A lone '1' flag bit with no literal byte following.
	_, err = dec.Decompress([]byte{0x80}, 10)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("want ErrUnexpectedEOF, got %v", err)
	}
}

func TestDecompressTruncatedStreamMissingTerminator(t *testing.T) {
	w := NewBitWriter()
	for _, b := range []byte("ab") {
		_ = w.WriteBit(1)
		_ = w.WriteBits(uint32(b), 8)
	}
	// No terminator written: the body alone supplies exactly 2 bytes.
	data := w.Flush()

	dec, err := NewDecoder(nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = dec.Decompress(data, 2)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("want ErrUnexpectedEOF reading the missing terminator, got %v", err)
	}
}

func TestDecompressAcceptsMaxLengthField(t *testing.T) {
	dec, err := NewDecoder(nil)
	if err != nil {
		t.Fatal(err)
	}
	p := DefaultParams()

	// Hand-craft a single match record with a nonzero position (valid) and
	// max length field, which is in-range by construction; instead corrupt
	// by encoding it then flipping enough bits is fragile, so this test
	// exercises the boundary via direct field construction using BitWriter.
	w := NewBitWriter()
	_ = w.WriteBit(0)
	_ = w.WriteBits(5, p.IndexBits) // nonzero position
	_ = w.WriteBits(uint32(p.RawLookAhead()-1), p.LengthBits) // max length field: in range
	_ = w.WriteBit(0)
	_ = w.WriteBits(0, p.IndexBits) // terminator
	data := w.Flush()

	// This should decode fine (length field at its max is still in range);
	// the out-of-range guard is exercised structurally by Params bounds
	// rather than by a crafted invalid field, since every representable
	// LengthBits value maps into [BreakEven+1, LookAhead] by construction.
	// The match record above decodes to exactly LookAhead() bytes.
	if _, err := dec.Decompress(data, p.LookAhead()); err != nil {
		t.Fatalf("max-length field should be in range: %v", err)
	}
}

func TestDecompressRejectsTrailingGarbageAfterTerminator(t *testing.T) {
	enc, err := NewEncoder(nil)
	if err != nil {
		t.Fatal(err)
	}
	compressed, err := enc.Compress([]byte("hello"))
	if err != nil {
		t.Fatal(err)
	}
	compressed = append(compressed, 0xFF, 0xFF, 0xFF)

	dec, err := NewDecoder(nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = dec.Decompress(compressed, len("hello"))
	if !errors.Is(err, ErrTrailingData) {
		t.Fatalf("want ErrTrailingData, got %v", err)
	}
}

func TestDecompressRejectsEarlyTerminator(t *testing.T) {
	enc, err := NewEncoder(nil)
	if err != nil {
		t.Fatal(err)
	}
	compressed, err := enc.Compress([]byte("hello"))
	if err != nil {
		t.Fatal(err)
	}

	dec, err := NewDecoder(nil)
	if err != nil {
		t.Fatal(err)
	}
	// Ask for more bytes than the stream actually holds: the terminator
	// arrives before outLen is reached.
	_, err = dec.Decompress(compressed, len("hello")+1)
	if !errors.Is(err, ErrTrailingData) {
		t.Fatalf("want ErrTrailingData, got %v", err)
	}
}

func TestDecompressCustomParamsMustMatchEncoder(t *testing.T) {
	encParams := &Params{IndexBits: 8, LengthBits: 3}
	enc, err := NewEncoder(encParams)
	if err != nil {
		t.Fatal(err)
	}
	compressed, err := enc.Compress([]byte("custom parameter round trip"))
	if err != nil {
		t.Fatal(err)
	}

	dec, err := NewDecoder(encParams)
	if err != nil {
		t.Fatal(err)
	}
	want := "custom parameter round trip"
	out, err := dec.Decompress(compressed, len(want))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != want {
		t.Fatalf("got %q", out)
	}
}
